/*
Package decancer cures text from Unicode confusables, homoglyphs, Zalgo
marks and bidi tricks.

Description

User names and chat messages are a favourite playground for people trying
to get past content filters. Text like

    vＥⓡ𝔂 𝔽𝕌Ňℕｙ ţ乇𝕏𝓣

reads "very funny text" to a human, but not to a naive word filter. Package
decancer maps such text to a canonical, lowercase, mostly ASCII form:

    cured, err := decancer.Cure("vＥⓡ𝔂 𝔽𝕌Ňℕｙ ţ乇𝕏𝓣", 0)
    // cured.String() == "very funny text"

Curing is driven by two tables generated from the Unicode Character
Database and a curated list of confusables. Every codepoint of the input is
looked up and translated to a character, a string or nothing at all.
Options may prevent curing of whole writing systems, of diacritics or of
capitalization.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Text containing right-to-left characters is brought into visual order
before curing, following the Unicode Bidirectional Algorithm (UAX#9,
implemented in sub-package bidi). Bidi control characters are dropped,
unless Hebrew or Arabic script is retained. An attacker therefore cannot
spell a word backwards and flip it with a right-to-left override.

Cured text is still not guaranteed to be plain ASCII. Type CuredString
offers comparison operations which treat similar looking characters such
as 'o' and '0' as equal. Its Find, Censor and Replace operations
additionally tolerate repeated characters, so "hhheeeellllo" is found when
searching for "hello".

Cure is safe for concurrent use. Scratch space for the bidi algorithm is
taken from a pool and returned after each call.

Sub-package locale derives Options from the user's environment, package
cache memoizes cures of recurring text.
*/
package decancer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

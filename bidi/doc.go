/*
Package bidi implements the parts of the Unicode Bidirectional Algorithm
(UAX#9) needed to bring text into visual order.

From the Unicode Consortium (https://unicode.org/reports/tr9/):

The Unicode Standard prescribes a memory representation order known as
logical order. When text is presented in horizontal lines, most scripts
display characters from left to right. However, there are several scripts
(such as Arabic or Hebrew) where the natural ordering of horizontal text in
display is from right to left. If all of the text has a uniform horizontal
direction, then the ordering of the display text is unambiguous.

However, because these right-to-left scripts use digits that are written
from left to right, the text is actually bidirectional: a mixture of
right-to-left and left-to-right text. In addition to digits, embedded words
from English and other scripts are also written from left to right, also
producing bidirectional text. Without a clear specification, ambiguities can
arise in determining the ordering of the displayed characters when the
horizontal direction of the text is not uniform.

[…]

Contents

This package resolves paragraphs (P1–P3), explicit embeddings, overrides
and isolates (X1–X10), weak types (W1–W7), bracket pairs and neutral types
(BD16, N0–N2), implicit levels (I1–I2) and reorders resolved levels
(L1–L2) into visual runs. It works on byte offsets into UTF-8 text: every
byte of a multi-byte character carries the class and level of the character.

It does not implement line breaking, mirroring (L4) or combining mark
reordering (L3). Clients wanting the full UAX#9 API should use
golang.org/x/text/unicode/bidi.

Bidi classes and paired brackets are read from an embedded table
generated from the UCD files UnicodeData.txt and BidiBrackets.txt.

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
*/
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

package decancer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/decancer/internal/tables"
)

// TranslationKind tells the variant of a Translation.
type TranslationKind int8

// Kinds of translations.
const (
	TranslationNone      TranslationKind = iota // character is dropped
	TranslationCharacter                        // a single character
	TranslationString                           // a string of characters
)

// Translation is the translation of a single codepoint.
//
// The zero value is a translation to nothing, which is what control
// characters, surrogates, combining marks, private use characters and
// similar codepoints translate to.
type Translation struct {
	kind TranslationKind
	r    rune
	s    string
}

func noTranslation() Translation {
	return Translation{}
}

func characterTranslation(r rune) Translation {
	if !utf8.ValidRune(r) {
		panic("decancer: table translation is not a Unicode scalar value")
	}
	return Translation{kind: TranslationCharacter, r: r}
}

func stringTranslation(s string) Translation {
	return Translation{kind: TranslationString, s: s}
}

// poolString reads a string from the string pool of codepoints.bin.
// The pool starts after the similarity table.
func poolString(word uint32, b1 uint8) Translation {
	offset := int(similarEnd) + (int((word>>20)&0x07)<<8 | int(b1))
	size := int((word >> 23) & 0x1f)
	return stringTranslation(string(tables.Codepoints.Slice(offset, size)))
}

// Kind returns the variant of t.
func (t Translation) Kind() TranslationKind {
	return t.kind
}

// Rune returns the character of a character translation, and false for
// other kinds.
func (t Translation) Rune() (rune, bool) {
	return t.r, t.kind == TranslationCharacter
}

// String returns the text t translates to. It is empty for TranslationNone.
func (t Translation) String() string {
	switch t.kind {
	case TranslationCharacter:
		return string(t.r)
	case TranslationString:
		return t.s
	}
	return ""
}

// Equals checks if t is similar to s. The comparison is case-insensitive.
func (t Translation) Equals(s string) bool {
	switch t.kind {
	case TranslationCharacter:
		r, size := utf8.DecodeRuneInString(s)
		return size > 0 && size == len(s) && Similar(t.r, r)
	case TranslationString:
		return equalsSimilar(t.s, s)
	}
	return s == ""
}

func (t Translation) writeTo(b *strings.Builder) {
	switch t.kind {
	case TranslationCharacter:
		b.WriteRune(t.r)
	case TranslationString:
		b.WriteString(t.s)
	}
}

func (t Translation) toUpper() Translation {
	switch t.kind {
	case TranslationCharacter:
		t.r = unicode.ToUpper(t.r)
	case TranslationString:
		t.s = strings.ToUpper(t.s)
	}
	return t
}

// stripIf removes translations which are not ASCII if asciiOnly is set and
// translations not consisting of ASCII letters, digits or spaces if
// alnumOnly is set.
func (t Translation) stripIf(asciiOnly, alnumOnly bool) Translation {
	if t.kind == TranslationNone {
		return t
	}
	if asciiOnly && !t.isASCII() || alnumOnly && !t.isAlphanumeric() {
		return noTranslation()
	}
	return t
}

func (t Translation) isASCII() bool {
	if t.kind == TranslationCharacter {
		return t.r < utf8.RuneSelf
	}
	for i := 0; i < len(t.s); i++ {
		if t.s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (t Translation) isAlphanumeric() bool {
	if t.kind == TranslationCharacter {
		return isAlphanumeric(t.r)
	}
	for i := 0; i < len(t.s); i++ {
		if !isAlphanumeric(rune(t.s[i])) {
			return false
		}
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == ' '
}

package decancer

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// CodepointSource delivers the codepoints of a text in logical order.
//
// Next returns false after the last codepoint. A source returns an error
// wrapping ErrInvalidInput for malformed input. SizeHint is an estimate of
// the number of UTF-8 bytes still to come and is used for buffer
// allocation only.
type CodepointSource interface {
	Next() (rune, bool, error)
	SizeHint() int
}

// --- UTF-8 -----------------------------------------------------------------

// UTF8Source reads codepoints from UTF-8 encoded text.
type UTF8Source struct {
	text []byte
	pos  int
}

// NewUTF8Source creates a source reading from text.
func NewUTF8Source(text []byte) *UTF8Source {
	return &UTF8Source{text: text}
}

// Next is part of interface CodepointSource.
func (src *UTF8Source) Next() (rune, bool, error) {
	if src.pos >= len(src.text) {
		return 0, false, nil
	}
	r, size := utf8.DecodeRune(src.text[src.pos:])
	if r == utf8.RuneError && size <= 1 {
		return 0, false, errors.Wrapf(ErrInvalidInput, "invalid UTF-8 at byte %d", src.pos)
	}
	src.pos += size
	return r, true, nil
}

// SizeHint is part of interface CodepointSource.
func (src *UTF8Source) SizeHint() int {
	return len(src.text) - src.pos
}

// --- UTF-16 ----------------------------------------------------------------

// UTF16Source reads codepoints from UTF-16 encoded text.
type UTF16Source struct {
	units []uint16
	pos   int
}

// NewUTF16Source creates a source reading length code units from units.
// A length of 0 reads up to the first 0 unit, or to the end of units if
// there is none, as is usual for strings coming from C. A length beyond
// len(units) is an error.
func NewUTF16Source(units []uint16, length int) (*UTF16Source, error) {
	if length < 0 || length > len(units) {
		return nil, errors.Wrapf(ErrInvalidInput, "UTF-16 length %d out of range", length)
	}
	if length == 0 {
		for length < len(units) && units[length] != 0 {
			length++
		}
	}
	return &UTF16Source{units: units[:length]}, nil
}

// Next is part of interface CodepointSource.
func (src *UTF16Source) Next() (rune, bool, error) {
	if src.pos >= len(src.units) {
		return 0, false, nil
	}
	u := rune(src.units[src.pos])
	if !utf16.IsSurrogate(u) {
		src.pos++
		return u, true, nil
	}
	if src.pos+1 < len(src.units) {
		if r := utf16.DecodeRune(u, rune(src.units[src.pos+1])); r != utf8.RuneError {
			src.pos += 2
			return r, true, nil
		}
	}
	return 0, false, errors.Wrapf(ErrInvalidInput, "unpaired surrogate %#04x at unit %d", u, src.pos)
}

// SizeHint is part of interface CodepointSource.
func (src *UTF16Source) SizeHint() int {
	return (len(src.units) - src.pos) * 3 / 2
}

// --- UTF-32 ----------------------------------------------------------------

// UTF32Source reads codepoints from a sequence of runes.
type UTF32Source struct {
	runes []rune
	pos   int
}

// NewUTF32Source creates a source reading from runes.
func NewUTF32Source(runes []rune) *UTF32Source {
	return &UTF32Source{runes: runes}
}

// Next is part of interface CodepointSource.
func (src *UTF32Source) Next() (rune, bool, error) {
	if src.pos >= len(src.runes) {
		return 0, false, nil
	}
	r := src.runes[src.pos]
	if !utf8.ValidRune(r) {
		return 0, false, errors.Wrapf(ErrInvalidInput, "%#x at index %d is not a Unicode scalar value", r, src.pos)
	}
	src.pos++
	return r, true, nil
}

// SizeHint is part of interface CodepointSource.
func (src *UTF32Source) SizeHint() int {
	return len(src.runes) - src.pos
}

package decancer

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Cure cures text, which must be valid UTF-8.
//
// Unless opts disables it, text is brought into visual order first, and
// right-to-left runs are cured back to front. The result contains no
// surrogates, replacement characters or private use characters.
//
// Cure returns an error wrapping ErrInvalidInput for malformed text, and
// wrapped bidi errors (e.g. ErrLevelExplicitOverflow) for pathological
// nesting of bidi controls. In the latter case callers may retry with
// opts.DisableBidi().
func Cure(text string, opts Options) (CuredString, error) {
	if !utf8.ValidString(text) {
		return CuredString{}, errors.Wrap(ErrInvalidInput, "text is not valid UTF-8")
	}
	return cure(text, opts)
}

// CureBytes cures UTF-8 encoded text.
func CureBytes(text []byte, opts Options) (CuredString, error) {
	return CureSource(NewUTF8Source(text), opts)
}

// CureUTF16 cures UTF-16 encoded text of length code units. With a length
// of 0 the text ends at the first 0 unit.
func CureUTF16(units []uint16, length int, opts Options) (CuredString, error) {
	src, err := NewUTF16Source(units, length)
	if err != nil {
		return CuredString{}, err
	}
	return CureSource(src, opts)
}

// CureRunes cures a sequence of runes.
func CureRunes(text []rune, opts Options) (CuredString, error) {
	return CureSource(NewUTF32Source(text), opts)
}

// CureSource cures the text delivered by src. The source is read to the
// end before curing starts; a decoding error produces no output.
func CureSource(src CodepointSource, opts Options) (CuredString, error) {
	var b strings.Builder
	b.Grow(src.SizeHint())
	for {
		r, ok, err := src.Next()
		if err != nil {
			CT().Debugf("decancer: cannot decode input: %v", err)
			return CuredString{}, err
		}
		if !ok {
			break
		}
		b.WriteRune(r)
	}
	return cure(b.String(), opts)
}

func cure(text string, opts Options) (CuredString, error) {
	var b strings.Builder
	b.Grow(len(text))
	if opts.Is(OptDisableBidi) {
		cureRun(&b, text, false, opts)
	} else {
		resolver := borrowResolver()
		defer releaseResolver(resolver)
		runs, err := resolver.Reorder(text)
		if err != nil {
			CT().Errorf("decancer: cannot bring text into visual order: %v", err)
			return CuredString{}, errors.Wrap(err, "decancer: bidi")
		}
		for _, run := range runs {
			cureRun(&b, text[run.Start:run.End], run.IsRTL(), opts)
		}
	}
	return CuredString{text: finish(b.String())}, nil
}

// cureRun appends the translations of the characters of run to b, last
// character first if reverse is set.
func cureRun(b *strings.Builder, run string, reverse bool, opts Options) {
	if !reverse {
		for _, r := range run {
			CureChar(r, opts).writeTo(b)
		}
		return
	}
	for len(run) > 0 {
		r, size := utf8.DecodeLastRuneInString(run)
		CureChar(r, opts).writeTo(b)
		run = run[:len(run)-size]
	}
}

// disallowed codepoints must never be part of a CuredString.
var disallowed = runes.Predicate(func(r rune) bool {
	return r == utf8.RuneError ||
		(r >= 0xd800 && r <= 0xdfff) || // surrogates
		(r >= 0xe000 && r <= 0xf8ff) || // private use
		r >= 0xf0000 // supplementary private use
})

func finish(s string) string {
	if strings.IndexFunc(s, disallowed.Contains) < 0 {
		return s
	}
	out, _, err := transform.String(runes.Remove(disallowed), s)
	if err != nil {
		CT().Errorf("decancer: cannot strip disallowed codepoints: %v", err)
		return strings.Map(func(r rune) rune {
			if disallowed.Contains(r) {
				return -1
			}
			return r
		}, s)
	}
	return out
}

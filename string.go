package decancer

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pkg/errors"
)

// CuredString is the result of curing a text.
//
// Its comparison operations are case-insensitive and treat similar looking
// characters as equal. Note that right-to-left text in a CuredString is
// stored in visual order, so printing it may look odd.
//
// CuredString is immutable; Censor and Replace return new values.
type CuredString struct {
	text string
}

// Len returns the length of the cured text in bytes.
func (cs CuredString) Len() int {
	return len(cs.text)
}

// Bytes returns a copy of the cured text.
func (cs CuredString) Bytes() []byte {
	return []byte(cs.text)
}

func (cs CuredString) String() string {
	return cs.text
}

// Equals checks if the cured text is similar to s, character by character.
func (cs CuredString) Equals(s string) bool {
	return equalsSimilar(cs.text, s)
}

// StartsWith checks if the cured text starts with something similar to s.
func (cs CuredString) StartsWith(s string) bool {
	return hasPrefixSimilar(cs.text, s)
}

// EndsWith checks if the cured text ends with something similar to s.
func (cs CuredString) EndsWith(s string) bool {
	return hasSuffixSimilar(cs.text, s)
}

// Contains checks if the cured text contains something similar to s.
//
// Contains does a single pass over the cured text and does not tolerate
// repeated characters; use Find for that.
func (cs CuredString) Contains(s string) bool {
	return containsSimilar(cs.text, s)
}

// Find returns a Matcher for similar looking occurrences of needle,
// tolerating repeated characters.
//
//     cured, _ := decancer.Cure("wow hello wow heellllo!", 0)
//     m := cured.Find("hello")
//     m.Next()   // {4 9}, true
//     m.Next()   // {14 22}, true
//     m.Next()   // {0 0}, false
//
// An empty needle never matches.
func (cs CuredString) Find(needle string) *Matcher {
	return newMatcher(cs.text, needle)
}

// FindMultiple finds the occurrences of every needle. Overlapping matches
// are merged, and matches are sorted by position.
func (cs CuredString) FindMultiple(needles ...string) []Match {
	ranges := arraylist.New()
	for _, needle := range needles {
		m := cs.Find(needle)
		for match, ok := m.Next(); ok; match, ok = m.Next() {
			ranges.Add(match)
		}
	}
	return mergeMatches(ranges)
}

// Censor replaces every character of every occurrence of needle with
// filler.
//
//     cured, _ := decancer.Cure("wow heellllo wow hello wow!", 0)
//     censored, _ := cured.Censor("hello", '*')
//     // censored.String() == "wow ******** wow ***** wow!"
func (cs CuredString) Censor(needle string, filler rune) (CuredString, error) {
	if err := checkFiller(filler); err != nil {
		return cs, err
	}
	return cs.censor(cs.Find(needle).All(), filler), nil
}

// CensorMultiple censors the occurrences of every needle with filler.
func (cs CuredString) CensorMultiple(needles []string, filler rune) (CuredString, error) {
	if err := checkFiller(filler); err != nil {
		return cs, err
	}
	return cs.censor(cs.FindMultiple(needles...), filler), nil
}

// Replace replaces every occurrence of needle with replacement, which must
// not be empty.
func (cs CuredString) Replace(needle, replacement string) (CuredString, error) {
	if err := checkReplacement(replacement); err != nil {
		return cs, err
	}
	return cs.replace(cs.Find(needle).All(), replacement), nil
}

// ReplaceMultiple replaces the occurrences of every needle with replacement.
func (cs CuredString) ReplaceMultiple(needles []string, replacement string) (CuredString, error) {
	if err := checkReplacement(replacement); err != nil {
		return cs, err
	}
	return cs.replace(cs.FindMultiple(needles...), replacement), nil
}

func checkFiller(filler rune) error {
	if filler == 0 || !utf8.ValidRune(filler) {
		return errors.Wrapf(ErrInvalidInput, "invalid filler %#x", filler)
	}
	return nil
}

func checkReplacement(replacement string) error {
	if replacement == "" {
		return errors.Wrap(ErrInvalidInput, "empty replacement")
	}
	if !utf8.ValidString(replacement) {
		return errors.Wrap(ErrInvalidInput, "replacement is not valid UTF-8")
	}
	return nil
}

// censor fills the characters of matches, which are sorted and do not
// overlap.
func (cs CuredString) censor(matches []Match, filler rune) CuredString {
	return cs.rewrite(matches, func(b *strings.Builder, match string) {
		for range match {
			b.WriteRune(filler)
		}
	})
}

func (cs CuredString) replace(matches []Match, replacement string) CuredString {
	return cs.rewrite(matches, func(b *strings.Builder, _ string) {
		b.WriteString(replacement)
	})
}

func (cs CuredString) rewrite(matches []Match, f func(*strings.Builder, string)) CuredString {
	if len(matches) == 0 {
		return cs
	}
	var b strings.Builder
	b.Grow(len(cs.text))
	last := 0
	for _, match := range matches {
		b.WriteString(cs.text[last:match.Start])
		f(&b, cs.text[match.Start:match.End])
		last = match.End
	}
	b.WriteString(cs.text[last:])
	return CuredString{text: b.String()}
}

package decancer

import (
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// Match is the byte range [Start, End) of a match within a CuredString.
type Match struct {
	Start, End int
}

// Matcher finds similar looking occurrences of a needle in a haystack.
//
// Characters of the haystack are compared with Similar, and repetitions of
// a needle's character are swallowed: "hhheeeeelllloo" matches "hello" as
// a whole. Within a match, a non-alphabetic separator is skipped as long as
// it keeps repeating the same character, so "h-e-l-l-o" matches as well.
// Matches are reported left to right and do not overlap.
//
// A Matcher is created by CuredString.Find. It is not safe for concurrent
// use.
type Matcher struct {
	haystack []rune
	hpos     int // next character of haystack
	needle   []rune
	npos     int // next character of needle
	restore  *startingPosition
	index    int // byte position after the last consumed character
	start    int // byte position of current match
}

// startingPosition remembers a haystack character which did not continue a
// match, but may start the next one.
type startingPosition struct {
	hpos  int
	start int
	size  int
}

// needleChar is a character of the needle together with its successor.
type needleChar struct {
	r       rune
	next    rune
	hasNext bool
}

func newMatcher(haystack, needle string) *Matcher {
	m := &Matcher{needle: []rune(needle)}
	if len(needle) > 0 && len(haystack) >= len(needle) {
		m.haystack = []rune(haystack)
	}
	return m
}

func (m *Matcher) nextHaystack() (rune, bool) {
	if m.hpos >= len(m.haystack) {
		return 0, false
	}
	r := m.haystack[m.hpos]
	m.hpos++
	return r, true
}

func (m *Matcher) nextNeedle() (needleChar, bool) {
	if m.npos >= len(m.needle) {
		return needleChar{}, false
	}
	c := needleChar{r: m.needle[m.npos]}
	m.npos++
	if m.npos < len(m.needle) {
		c.next, c.hasNext = m.needle[m.npos], true
	}
	return c, true
}

// restart rewinds the needle and searches the haystack for the start of
// the next match.
func (m *Matcher) restart() (needleChar, bool) {
	m.npos = 0
	first, ok := m.nextNeedle()
	if !ok {
		return first, false
	}
	if p := m.restore; p != nil {
		m.restore = nil
		m.hpos = p.hpos
		m.start = p.start
		m.index = p.start + p.size
		return first, true
	}
	skipped := 0
	for {
		r, ok := m.nextHaystack()
		if !ok {
			return first, false
		}
		size := utf8.RuneLen(r)
		if Similar(r, first.r) {
			m.start = m.index + skipped
			m.index = m.start + size
			return first, true
		}
		skipped += size
	}
}

// Next returns the next match. It returns false if there are no more
// matches.
func (m *Matcher) Next() (Match, bool) {
	cur, ok := m.restart()
	if !ok {
		return Match{}, false
	}
	end := m.index
	first := cur.r
	completed := !cur.hasNext
	var separator rune // 0 if no separator is being skipped
	for {
		r, ok := m.nextHaystack()
		if !ok {
			break
		}
		size := utf8.RuneLen(r)
		if cur.hasNext && Similar(r, cur.next) {
			m.index += size
			end = m.index
			separator = 0
			if cur, ok = m.nextNeedle(); !ok {
				return Match{m.start, end}, true
			}
			if !cur.hasNext {
				completed = true
			}
			continue
		}
		if Similar(r, cur.r) { // repetition
			m.index += size
			end = m.index
			separator = 0
			if !cur.hasNext {
				completed = true
			}
			continue
		}
		if Similar(r, first) {
			m.restore = &startingPosition{hpos: m.hpos, start: m.index, size: size}
			if completed {
				return Match{m.start, end}, true
			}
			if cur, ok = m.restart(); !ok {
				return Match{}, false
			}
			continue
		}
		m.index += size
		if separator == 0 && !isASCIILetter(r) {
			separator = r
			continue
		}
		if separator != 0 && unicode.ToLower(r) == unicode.ToLower(separator) {
			continue
		}
		if completed {
			return Match{m.start, end}, true
		}
		separator = 0
		if cur, ok = m.restart(); !ok {
			return Match{}, false
		}
	}
	if completed {
		return Match{m.start, end}, true
	}
	return Match{}, false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// All collects the remaining matches.
func (m *Matcher) All() []Match {
	var matches []Match
	for {
		match, ok := m.Next()
		if !ok {
			return matches
		}
		matches = append(matches, match)
	}
}

// mergeMatches sorts matches by start position and merges overlapping or
// adjacent ones.
func mergeMatches(matches *arraylist.List) []Match {
	if matches.Empty() {
		return nil
	}
	matches.Sort(func(a, b interface{}) int {
		return utils.IntComparator(a.(Match).Start, b.(Match).Start)
	})
	merged := make([]Match, 0, matches.Size())
	it := matches.Iterator()
	for it.Next() {
		cur := it.Value().(Match)
		if n := len(merged); n > 0 && cur.Start <= merged[n-1].End {
			if cur.End > merged[n-1].End {
				merged[n-1].End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

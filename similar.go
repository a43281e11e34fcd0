package decancer

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/decancer/internal/tables"
)

// Similar checks if two characters look similar after curing, e.g. 'o'
// and '0'. The comparison is case-insensitive.
//
// Similarity groups live in codepoints.bin as a sequence of ASCII bytes,
// where the last member of a group has bit 7 set.
func Similar(a, b rune) bool {
	a, b = unicode.ToLower(a), unicode.ToLower(b)
	if a == b {
		return true
	}
	if a > 0xff || b > 0xff {
		return false
	}
	var seen uint8
	for off := int(similarStart); off < int(similarEnd); off++ {
		cur := tables.Codepoints.At(off)
		sim := rune(cur & 0x7f)
		if sim == a {
			seen |= 1
		} else if sim == b {
			seen |= 2
		}
		if seen == 3 {
			return true
		}
		if cur >= 0x80 {
			seen = 0
		}
	}
	return false
}

// equalsSimilar compares a and b character by character.
func equalsSimilar(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if !Similar(ra, rb) {
			return false
		}
		a, b = a[na:], b[nb:]
	}
	return len(a) == 0 && len(b) == 0
}

// hasPrefixSimilar checks if s starts with something similar to prefix.
func hasPrefixSimilar(s, prefix string) bool {
	for len(prefix) > 0 {
		if len(s) == 0 {
			return false
		}
		rs, ns := utf8.DecodeRuneInString(s)
		rp, np := utf8.DecodeRuneInString(prefix)
		if !Similar(rs, rp) {
			return false
		}
		s, prefix = s[ns:], prefix[np:]
	}
	return true
}

// hasSuffixSimilar checks if s ends with something similar to suffix,
// comparing backwards from the ends.
func hasSuffixSimilar(s, suffix string) bool {
	for len(suffix) > 0 {
		if len(s) == 0 {
			return false
		}
		rs, ns := utf8.DecodeLastRuneInString(s)
		rx, nx := utf8.DecodeLastRuneInString(suffix)
		if !Similar(rs, rx) {
			return false
		}
		s, suffix = s[:len(s)-ns], suffix[:len(suffix)-nx]
	}
	return true
}

// containsSimilar scans s once with a restartable cursor into sub. On a
// mismatch the cursor restarts at the beginning of sub, the current
// character of s is not compared again.
func containsSimilar(s, sub string) bool {
	cursor := sub
	for len(cursor) > 0 {
		if len(s) == 0 {
			return false
		}
		rs, ns := utf8.DecodeRuneInString(s)
		rc, nc := utf8.DecodeRuneInString(cursor)
		s = s[ns:]
		if Similar(rs, rc) {
			cursor = cursor[nc:]
		} else {
			cursor = sub
		}
	}
	return true
}

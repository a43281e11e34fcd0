package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/decancer/internal/ucdparse"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// character holds the properties of UnicodeData.txt the generator needs.
type character struct {
	category      string
	bidi          string
	decomposition []rune // without formatting tag
	compat        bool   // decomposition carries a formatting tag
	numeric       string
	lower         rune // simple lowercase mapping, 0 if none
}

type charRange struct {
	from, to rune
	char     *character
}

// database is the contents of UnicodeData.txt. Codepoints not listed are
// unassigned (category Cn).
type database struct {
	chars  map[rune]*character
	ranges []charRange
}

func loadUCD(path string) (*database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "run download.go in internal/testdata first")
	}
	defer f.Close()
	db := &database{chars: make(map[rune]*character, 35000)}
	var perr error
	err = ucdparse.Parse(f, func(t *ucdparse.Token) {
		if perr != nil {
			return
		}
		c := &character{
			category: t.Field(2),
			bidi:     t.Field(4),
			numeric:  t.Field(8),
		}
		if c.decomposition, c.compat, perr = parseDecomposition(t.Field(5)); perr != nil {
			perr = errors.Wrapf(perr, "line %d", t.LineNo)
			return
		}
		if lower := t.Field(13); lower != "" {
			var n uint64
			if n, perr = strconv.ParseUint(lower, 16, 32); perr != nil {
				perr = errors.Wrapf(perr, "line %d", t.LineNo)
				return
			}
			c.lower = rune(n)
		}
		from, to := t.Range()
		if from == to {
			db.chars[from] = c
			return
		}
		T().Debugf("range %s %#U..%#U", t.Field(1), from, to)
		db.ranges = append(db.ranges, charRange{from: from, to: to, char: c})
	})
	if err == nil {
		err = perr
	}
	return db, err
}

func parseDecomposition(field string) (runes []rune, compat bool, err error) {
	for i, hex := range strings.Fields(field) {
		if i == 0 && strings.HasPrefix(hex, "<") {
			compat = true
			continue
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, false, errors.Wrapf(err, "decomposition %q", field)
		}
		runes = append(runes, rune(n))
	}
	return runes, compat, nil
}

// Len returns the number of items, counting ranges once.
func (db *database) Len() int {
	return len(db.chars) + len(db.ranges)
}

func (db *database) lookup(r rune) *character {
	if c, ok := db.chars[r]; ok {
		return c
	}
	for _, rng := range db.ranges {
		if r >= rng.from && r <= rng.to {
			return rng.char
		}
	}
	return nil
}

// Category returns the general category of r.
func (db *database) Category(r rune) string {
	if c := db.lookup(r); c != nil {
		return c.category
	}
	return "Cn"
}

// Bidi returns the bidi class of r, or "" for unassigned codepoints.
func (db *database) Bidi(r rune) string {
	if c := db.lookup(r); c != nil {
		return c.bidi
	}
	return ""
}

// Lower returns the lowercase of r, or r itself.
func (db *database) Lower(r rune) rune {
	if c := db.lookup(r); c != nil && c.lower != 0 {
		return c.lower
	}
	return r
}

// Numeric returns the decimal digit value of r, if it has one.
func (db *database) Numeric(r rune) (int, bool) {
	c := db.lookup(r)
	if c == nil || c.numeric == "" || strings.Contains(c.numeric, "/") {
		return 0, false
	}
	n, err := strconv.Atoi(c.numeric)
	if err != nil || n < 0 || n > 9 {
		return 0, false
	}
	return n, true
}

// Decompose returns the full compatibility decomposition of r, or nil if
// r does not decompose.
func (db *database) Decompose(r rune) []rune {
	if r >= 0xac00 && r <= 0xd7a3 {
		return []rune(norm.NFKD.String(string(r)))
	}
	c := db.lookup(r)
	if c == nil || len(c.decomposition) == 0 {
		return nil
	}
	return db.decomposeFull(r)
}

func (db *database) decomposeFull(r rune) []rune {
	c := db.lookup(r)
	if c == nil || len(c.decomposition) == 0 {
		return []rune{r}
	}
	var runes []rune
	for _, d := range c.decomposition {
		runes = append(runes, db.decomposeFull(d)...)
	}
	return runes
}

// CanonicalSingleton returns the canonical decomposition of r if it is a
// single codepoint.
func (db *database) CanonicalSingleton(r rune) (rune, bool) {
	c := db.lookup(r)
	if c == nil || c.compat || len(c.decomposition) != 1 {
		return 0, false
	}
	return c.decomposition[0], true
}

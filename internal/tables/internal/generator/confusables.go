package main

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/decancer/internal/ucdparse"
	"github.com/pkg/errors"
)

// deriveMarker as a curated translation asks for the translation to be
// derived from the decomposition, while still applying the entry's flags.
const deriveMarker = "*"

// maxTranslation is the longest translation a record may point to.
const maxTranslation = 31

// Scripts in the order of their attribute values, starting at 4.
var scriptNames = []string{"greek", "cyrillic", "hebrew", "arabic", "devanagari", "bengali",
	"armenian", "gujarati", "tamil", "thai", "lao", "burmese", "khmer", "mongolian",
	"chinese", "japanese", "korean", "braille", "emojis"}

type scriptBlock struct {
	from, to rune
	script   uint8
}

// curated is the contents of confusables.txt and scripts.txt.
type curated struct {
	general       map[rune]string
	caseSensitive *treemap.Map // rune → string
	turkish       map[rune]bool
	blocks        []scriptBlock
}

// entry is a codepoint with its translation and attribute byte.
type entry struct {
	cp   rune
	text string
	attr uint8
}

func readCurated(ucd *database, dir string) (*curated, error) {
	cur := &curated{
		general:       make(map[rune]string),
		caseSensitive: treemap.NewWith(utils.Int32Comparator),
		turkish:       make(map[rune]bool),
	}
	if err := cur.readBlocks(filepath.Join(dir, "scripts.txt")); err != nil {
		return nil, err
	}
	type mapping struct {
		cp   rune
		text string
	}
	var direct, mapped []mapping
	err := parseFile(filepath.Join(dir, "confusables.txt"), func(t *ucdparse.Token) error {
		from, to := t.Range()
		text := t.Field(1)
		if text != deriveMarker {
			runes, err := t.Runes(1)
			if err != nil {
				return err
			}
			text = string(runes)
		}
		flags := map[string]bool{}
		for _, f := range strings.Fields(t.Field(2)) {
			flags[f] = true
		}
		for r := from; r <= to; r++ {
			tt := text
			if flags["sync"] && text != "" && text != deriveMarker {
				first, _ := utf8.DecodeRuneInString(text)
				tt = string(first + r - from)
			}
			if flags["cs"] {
				cur.caseSensitive.Put(r, tt)
				continue
			}
			lower := ucd.Lower(r)
			if flags["tr"] {
				cur.turkish[lower] = true
			}
			if lower == r {
				direct = append(direct, mapping{r, tt})
			} else {
				mapped = append(mapped, mapping{lower, tt})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, m := range direct {
		cur.general[m.cp] = m.text
	}
	// translations of uppercase characters serve their lowercase
	// counterparts, unless these have their own
	for _, m := range mapped {
		if _, ok := cur.general[m.cp]; !ok && m.cp >= 0x80 {
			cur.general[m.cp] = m.text
		}
	}
	T().Infof("Read %d curated translations, %d case-sensitive", len(cur.general), cur.caseSensitive.Size())
	return cur, nil
}

func (cur *curated) readBlocks(path string) error {
	index := make(map[string]uint8, len(scriptNames))
	for i, name := range scriptNames {
		index[name] = uint8(i + 4)
	}
	return parseFile(path, func(t *ucdparse.Token) error {
		script, ok := index[t.Field(1)]
		if !ok {
			return errors.Errorf("line %d: unknown script %q", t.LineNo, t.Field(1))
		}
		from, to := t.Range()
		cur.blocks = append(cur.blocks, scriptBlock{from: from, to: to, script: script})
		return nil
	})
}

func (cur *curated) script(r rune) uint8 {
	for _, b := range cur.blocks {
		if r >= b.from && r <= b.to {
			return b.script
		}
	}
	return 0
}

func parseFile(path string, f func(*ucdparse.Token) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	T().Debugf("Found file %s ...", filepath.Base(path))
	var ferr error
	err = ucdparse.Parse(file, func(t *ucdparse.Token) {
		if ferr == nil {
			ferr = f(t)
		}
	})
	if err == nil {
		err = ferr
	}
	return errors.Wrap(err, filepath.Base(path))
}

// --- Derivation -------------------------------------------------------

type derivation struct {
	text       string
	diacritics bool
	ok         bool
}

// deriver translates codepoints by following their compatibility
// decompositions down to ASCII.
type deriver struct {
	ucd  *database
	cur  *curated
	memo map[rune]derivation
}

// maxDepth limits the nesting of decompositions to follow.
const maxDepth = 4

func (d *deriver) derive(r rune, depth int) derivation {
	if r < utf8.RuneSelf {
		return derivation{text: strings.ToLower(string(r)), ok: true}
	}
	if res, ok := d.memo[r]; ok {
		return res
	}
	res := d.decompose(r, depth)
	d.memo[r] = res
	return res
}

func (d *deriver) decompose(r rune, depth int) derivation {
	if depth > maxDepth {
		return derivation{}
	}
	text, listed := d.cur.general[r]
	if listed && text != deriveMarker {
		return derivation{text: text, ok: true}
	}
	if !listed && isMarkOrFormat(d.ucd.Category(r), true) {
		return derivation{ok: true}
	}
	if decomp := d.ucd.Decompose(r); decomp != nil {
		var b strings.Builder
		dia := false
		for _, c := range decomp {
			if isMarkOrFormat(d.ucd.Category(c), false) {
				dia = true
				continue
			}
			if c < utf8.RuneSelf {
				b.WriteString(strings.ToLower(string(c)))
				continue
			}
			sub := d.derive(d.ucd.Lower(c), depth+1)
			if !sub.ok {
				return derivation{}
			}
			b.WriteString(sub.text)
			dia = dia || sub.diacritics
		}
		if b.Len() == 0 {
			return derivation{ok: dia}
		}
		return derivation{text: b.String(), diacritics: dia, ok: true}
	}
	if n, ok := d.ucd.Numeric(r); ok {
		return derivation{text: string(rune('0' + n)), ok: true}
	}
	return derivation{}
}

func isMarkOrFormat(category string, format bool) bool {
	return category == "Mn" || category == "Me" || (format && category == "Cf")
}

// isNone reports codepoints which never get a record: controls,
// surrogates, private use and everything above variation selectors.
func isNone(r rune) bool {
	return r <= 9 || (r >= 14 && r <= 31) || r == 127 || (r >= 0xd800 && r <= 0xf8ff) || r >= 0xe01f0
}

// isSpecialRTL reports directional formatting characters. They are
// handled by the bidi algorithm.
func isSpecialRTL(r rune) bool {
	return (r >= 0x200e && r <= 0x200f) || (r >= 0x202a && r <= 0x202e) || (r >= 0x2066 && r <= 0x2069)
}

// deriveEntries creates the general entries, sorted by codepoint.
func deriveEntries(ucd *database, cur *curated) []entry {
	d := &deriver{ucd: ucd, cur: cur, memo: make(map[rune]derivation)}
	var entries []entry
	for r := rune(0x80); r <= utf8.MaxRune; r++ {
		if isNone(r) || isSpecialRTL(r) || ucd.Category(r) == "Cn" || ucd.Lower(r) != r {
			continue
		}
		res := d.derive(r, 0)
		if !res.ok || len(res.text) > maxTranslation || !isASCII(res.text) {
			continue
		}
		attr := cur.script(r) << 2
		if cur.turkish[r] {
			attr |= 2
		}
		if res.diacritics {
			attr |= 1
		}
		entries = append(entries, entry{cp: r, text: res.text, attr: attr})
	}
	T().Infof("Derived %d translations", len(entries))
	return entries
}

// caseSensitiveEntries creates the entries for uppercase overrides, sorted
// by codepoint.
func caseSensitiveEntries(cur *curated) []entry {
	entries := make([]entry, 0, cur.caseSensitive.Size())
	it := cur.caseSensitive.Iterator()
	for it.Next() {
		r := it.Key().(rune)
		entries = append(entries, entry{cp: r, text: it.Value().(string), attr: cur.script(r) << 2})
	}
	return entries
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

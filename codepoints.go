package decancer

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/decancer/internal/tables"
)

// Layout of codepoints.bin:
//
//    u16 offset of case-sensitive records
//    u16 start of similarity groups
//    u16 end of similarity groups = start of string pool
//    general records
//    case-sensitive records
//    similarity groups
//    string pool
//
// Records are 6 bytes each and sorted by first codepoint.
const (
	headerSize = 6
	recordSize = 6
)

var (
	caseSensitiveOffset = int(tables.Codepoints.U16At(0))
	similarStart        = tables.Codepoints.U16At(2)
	similarEnd          = tables.Codepoints.U16At(4)
	generalCount        = (caseSensitiveOffset - headerSize) / recordSize
	caseSensitiveCount  = (int(similarStart) - caseSensitiveOffset) / recordSize
)

// codepoint is a record of codepoints.bin.
//
//    word bits  0..19   first codepoint
//    word bits 20..26   ASCII translation (character records)
//    word bits 20..22   high bits of pool offset (string records)
//    word bits 23..27   string length (string records)
//    word bit  28       string record flag
//    b1                 span | 0x80 for proportional ranges (character records)
//                       low byte of pool offset (string records)
//    b2                 attributes, see Options.refuseCure
type codepoint struct {
	word   uint32
	b1, b2 uint8
}

func codepointAt(offset int) codepoint {
	return codepoint{
		word: tables.Codepoints.U32At(offset),
		b1:   tables.Codepoints.At(offset + 4),
		b2:   tables.Codepoints.At(offset + 5),
	}
}

func (cp codepoint) first() rune {
	return rune(cp.word & 0xfffff)
}

func (cp codepoint) isString() bool {
	return cp.word >= 0x10000000
}

func (cp codepoint) last() rune {
	if cp.isString() {
		return cp.first()
	}
	return cp.first() + rune(cp.b1&0x7f)
}

func (cp codepoint) translation(code rune) Translation {
	if cp.isString() {
		return poolString(cp.word, cp.b1)
	}
	ascii := rune((cp.word >> 20) & 0x7f)
	if ascii == 0 {
		return noTranslation()
	}
	if cp.b1 >= 0x80 {
		ascii += code - cp.first()
	}
	return characterTranslation(ascii)
}

// translate searches count records at offset for a record covering code.
// It returns false if there is none or if opts refuses the record's
// translation.
func translate(code rune, offset, count int, opts Options) (Translation, bool) {
	i := sort.Search(count, func(i int) bool {
		return codepointAt(offset+i*recordSize).last() >= code
	})
	if i == count {
		return noTranslation(), false
	}
	cp := codepointAt(offset + i*recordSize)
	if code < cp.first() || opts.refuseCure(cp.b2) {
		return noTranslation(), false
	}
	return cp.translation(code), true
}

// resolve finds the translation of c, whose lowercase form is lc. A false
// return value means that c is to be kept as is (modulo lowercasing).
func resolve(c, lc rune, opts Options) (Translation, bool) {
	retainCaps := opts.Is(OptRetainCapitalization)
	if c != lc {
		if t, ok := translate(c, caseSensitiveOffset, caseSensitiveCount, opts); ok {
			if retainCaps {
				t = t.toUpper()
			}
			return t, true
		}
	}
	t, ok := translate(lc, headerSize, generalCount, opts)
	if ok && c != lc && retainCaps {
		t = t.toUpper()
	}
	return t, ok
}

// CureChar cures a single character. It does not apply the bidi algorithm,
// as that needs the context of the surrounding text, and therefore ignores
// Options.DisableBidi.
func CureChar(r rune, opts Options) Translation {
	if isNone(r) {
		return noTranslation()
	}
	if isBidiControl(r) && !opts.Is(OptRetainHebrew) && !opts.Is(OptRetainArabic) {
		return noTranslation()
	}
	lc := unicode.ToLower(r)
	def := lc
	if lc != r && opts.Is(OptRetainCapitalization) {
		def = r
	}
	var t Translation
	if lc < utf8.RuneSelf {
		t = characterTranslation(def)
	} else if tr, ok := resolve(r, lc, opts); ok {
		t = tr
	} else {
		t = characterTranslation(def)
	}
	return t.stripIf(opts.Is(OptASCIIOnly), opts.Is(OptAlphanumericOnly))
}

// isNone is true for control characters (except whitespace), surrogates,
// private use characters, variation selectors and anything beyond.
func isNone(r rune) bool {
	return r < 0 || r <= 9 || (r >= 14 && r <= 31) || r == 127 ||
		(r >= 0xd800 && r <= 0xf8ff) || r >= 0xe01f0
}

func isBidiControl(r rune) bool {
	return (r >= 0x200e && r <= 0x200f) || (r >= 0x202a && r <= 0x202e) ||
		(r >= 0x2066 && r <= 0x2069)
}

package main

import (
	"encoding/binary"
	"sort"

	"github.com/npillmayer/decancer/internal/ucdparse"
	"github.com/pkg/errors"
)

// Bidi classes in the order of their numeric values in bidi.bin.
var bidiClassNames = []string{"B", "S", "WS", "ON", "ET", "ES", "CS", "EN", "L", "BN", "R",
	"AN", "AL", "LRE", "RLE", "PDF", "LRO", "RLO", "LRI", "RLI", "FSI", "PDI"}

// The class dictionary stores 20-bit codepoints, which leaves out plane 16.
// Plane 16 is private use and never survives curing.
const lastClassified = 0xfffff

type bracketPair struct {
	o rune
	c rune
}

func readBrackets(path string) ([]bracketPair, error) {
	bracketList := make([]bracketPair, 0, 65)
	err := parseFile(path, func(t *ucdparse.Token) error {
		if t.Field(2) != "o" {
			return nil
		}
		closing, err := t.Runes(1)
		if err != nil {
			return err
		}
		if len(closing) != 1 {
			return errors.Errorf("line %d: invalid paired bracket %q", t.LineNo, t.Field(1))
		}
		pair := bracketPair{}
		pair.o, _ = t.Range()
		pair.c = closing[0]
		bracketList = append(bracketList, pair)
		T().Debugf("%s", t.Comment)
		return nil
	})
	return bracketList, err
}

// packBrackets encodes bracket pairs as 5-byte records sorted by the
// smaller of both brackets. A record holds the canonical decomposition of
// the opening bracket in the lower 20 bits, then the low byte of the
// opening bracket, the distance to the closing bracket and its sign. The
// fifth byte is the high byte of the opening bracket.
func packBrackets(ucd *database, pairs []bracketPair) ([]byte, error) {
	type packed struct {
		key   rune
		bytes [5]byte
	}
	recs := make([]packed, 0, len(pairs))
	for _, p := range pairs {
		diff := p.c - p.o
		dist := diff
		if dist < 0 {
			dist = -dist
		}
		if dist > 7 || p.o > 0xffff {
			return nil, errors.Errorf("bracket pair %#U/%#U does not fit record", p.o, p.c)
		}
		dec, _ := ucd.CanonicalSingleton(p.o)
		first := uint32(dec) | uint32(p.o&0xff)<<20 | uint32(dist)<<28
		if diff < 0 {
			first |= 0x80000000
		}
		rec := packed{key: p.o}
		if p.c < p.o {
			rec.key = p.c
		}
		binary.LittleEndian.PutUint32(rec.bytes[:], first)
		rec.bytes[4] = uint8(p.o >> 8)
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].key < recs[j].key })
	out := make([]byte, 0, len(recs)*5)
	for _, rec := range recs {
		out = append(out, rec.bytes[:]...)
	}
	return out, nil
}

// packClasses encodes runs of codepoints of equal bidi class as 6-byte
// entries: codepoint and class in a u32, the span of the run in a u16.
// Unassigned codepoints and non-spacing marks get no entry.
func packClasses(ucd *database) ([]byte, int, error) {
	classes := make(map[string]uint32, len(bidiClassNames))
	for i, name := range bidiClassNames {
		classes[name] = uint32(i)
	}
	var out []byte
	var buf [6]byte
	n := 0
	var start, last rune
	cls := ""
	flush := func() error {
		if cls == "" {
			return nil
		}
		v, ok := classes[cls]
		if !ok {
			return errors.Errorf("unknown bidi class %q at %#U", cls, start)
		}
		binary.LittleEndian.PutUint32(buf[:], uint32(start)|v<<20)
		binary.LittleEndian.PutUint16(buf[4:], uint16(last-start))
		out = append(out, buf[:]...)
		n++
		return nil
	}
	for r := rune(0); r <= lastClassified; r++ {
		b := ucd.Bidi(r)
		if b == "NSM" {
			b = ""
		}
		if b != "" && b == cls && last == r-1 && r-start <= 0xffff {
			last = r
			continue
		}
		if err := flush(); err != nil {
			return nil, 0, err
		}
		start, last, cls = r, r, b
	}
	if err := flush(); err != nil {
		return nil, 0, err
	}
	if n > 0xffff {
		return nil, 0, errors.Errorf("too many bidi class entries: %d", n)
	}
	return out, n, nil
}

// generateBidi creates bidi.bin: a header with the offset and count of the
// class dictionary, followed by the bracket records and the dictionary.
func generateBidi(ucd *database, bracketsFile string) ([]byte, error) {
	pairs, err := readBrackets(bracketsFile)
	if err != nil {
		return nil, err
	}
	T().Infof("Read %d bracket pairs", len(pairs))
	if len(pairs) == 0 {
		return nil, errors.New("did not read any bracket pairs")
	}
	brackets, err := packBrackets(ucd, pairs)
	if err != nil {
		return nil, err
	}
	dict, n, err := packClasses(ucd)
	if err != nil {
		return nil, err
	}
	T().Infof("Packed %d bidi class entries", n)
	blob := make([]byte, 4, 4+len(brackets)+len(dict))
	binary.LittleEndian.PutUint16(blob[0:], uint16(4+len(brackets)))
	binary.LittleEndian.PutUint16(blob[2:], uint16(n))
	blob = append(blob, brackets...)
	blob = append(blob, dict...)
	return blob, nil
}

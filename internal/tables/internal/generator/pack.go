package main

import (
	"bytes"
	"encoding/binary"
	"path/filepath"

	"github.com/npillmayer/decancer/internal/ucdparse"
	"github.com/pkg/errors"
)

// Limits of the record format.
const (
	maxRunLength = 127
	maxPoolSize  = 2048
)

// stringPool collects the translations longer than one character.
// Translations that are contained in the pool already are not added again.
type stringPool struct {
	bytes   []byte
	offsets map[string]int
}

func newStringPool() *stringPool {
	return &stringPool{offsets: make(map[string]int)}
}

func (p *stringPool) offset(s string) (int, error) {
	if o, ok := p.offsets[s]; ok {
		return o, nil
	}
	o := bytes.Index(p.bytes, []byte(s))
	if o < 0 {
		o = len(p.bytes)
		p.bytes = append(p.bytes, s...)
	}
	if o >= maxPoolSize {
		return 0, errors.Errorf("string pool overflow adding %q", s)
	}
	p.offsets[s] = o
	return o, nil
}

type syncMode int8

const (
	undecided    syncMode = iota
	repeated              // all codepoints of the run translate to the same character
	proportional          // translations advance with the codepoints
)

// record is a run of codepoints sharing the attribute byte and mapping to
// single characters, or a single codepoint with a longer translation.
type record struct {
	start, last rune
	char        rune // translation of start; 0 means removal
	sync        syncMode
	text        string // non-empty for string records
	attr        uint8
}

func (rec *record) extends(e entry, v rune) bool {
	if rec.text != "" || e.cp != rec.last+1 || e.attr != rec.attr || rec.last-rec.start >= maxRunLength {
		return false
	}
	off := e.cp - rec.start
	if rec.sync == undecided {
		if v == rec.char {
			rec.sync = repeated
		} else if rec.char != 0 && v == rec.char+off {
			rec.sync = proportional
		}
	}
	if (rec.sync == repeated && v == rec.char) || (rec.sync == proportional && v == rec.char+off) {
		rec.last = e.cp
		return true
	}
	return false
}

// packRecords merges entries into runs and encodes them as 6-byte records.
func packRecords(entries []entry, pool *stringPool) ([]byte, int, error) {
	var recs []*record
	var cur *record
	for _, e := range entries {
		if len(e.text) > 1 {
			cur = &record{start: e.cp, last: e.cp, text: e.text, attr: e.attr}
			recs = append(recs, cur)
			continue
		}
		var v rune
		if len(e.text) == 1 {
			v = rune(e.text[0])
		}
		if cur != nil && cur.extends(e, v) {
			continue
		}
		cur = &record{start: e.cp, last: e.cp, char: v, attr: e.attr}
		recs = append(recs, cur)
	}
	out := make([]byte, 0, len(recs)*6)
	var buf [6]byte
	for _, rec := range recs {
		if rec.text == "" {
			size := uint8(rec.last - rec.start)
			if rec.sync == proportional && size > 0 {
				size |= 0x80
			}
			binary.LittleEndian.PutUint32(buf[:], uint32(rec.start)|uint32(rec.char)<<20)
			buf[4] = size
		} else {
			o, err := pool.offset(rec.text)
			if err != nil {
				return nil, 0, err
			}
			kv := uint32(rec.start) | uint32(o>>8&7)<<20 | uint32(len(rec.text))<<23 | 0x10000000
			binary.LittleEndian.PutUint32(buf[:], kv)
			buf[4] = uint8(o & 0xff)
		}
		buf[5] = rec.attr
		out = append(out, buf[:]...)
	}
	return out, len(recs), nil
}

// readSimilar encodes the similarity groups, setting the high bit on the
// last member of each group.
func readSimilar(path string) ([]byte, error) {
	var sim []byte
	err := parseFile(path, func(t *ucdparse.Token) error {
		first, _ := t.Range()
		rest, err := t.Runes(1)
		if err != nil {
			return err
		}
		group := append([]rune{first}, rest...)
		for i, r := range group {
			if r >= 0x80 {
				return errors.Errorf("line %d: %#U is not ASCII", t.LineNo, r)
			}
			b := uint8(r)
			if i == len(group)-1 {
				b |= 0x80
			}
			sim = append(sim, b)
		}
		return nil
	})
	return sim, err
}

// generateCodepoints creates codepoints.bin: a header of three offsets
// (case-sensitive records, similarity start, similarity end), followed by
// the general records, the case-sensitive records, the similarity groups
// and the string pool.
func generateCodepoints(ucd *database, dir string) ([]byte, error) {
	cur, err := readCurated(ucd, dir)
	if err != nil {
		return nil, err
	}
	pool := newStringPool()
	general, ngeneral, err := packRecords(deriveEntries(ucd, cur), pool)
	if err != nil {
		return nil, err
	}
	cs, ncs, err := packRecords(caseSensitiveEntries(cur), pool)
	if err != nil {
		return nil, err
	}
	sim, err := readSimilar(filepath.Join(dir, "similar.txt"))
	if err != nil {
		return nil, err
	}
	csOffset := 6 + len(general)
	simStart := csOffset + len(cs)
	simEnd := simStart + len(sim)
	if simEnd > 0xffff {
		return nil, errors.Errorf("codepoint records too large: %d bytes", simEnd)
	}
	T().Infof("Packed %d general records, %d case-sensitive records, pool of %d bytes",
		ngeneral, ncs, len(pool.bytes))
	blob := make([]byte, 6, simEnd+len(pool.bytes))
	binary.LittleEndian.PutUint16(blob[0:], uint16(csOffset))
	binary.LittleEndian.PutUint16(blob[2:], uint16(simStart))
	binary.LittleEndian.PutUint16(blob[4:], uint16(simEnd))
	blob = append(blob, general...)
	blob = append(blob, cs...)
	blob = append(blob, sim...)
	blob = append(blob, pool.bytes...)
	return blob, nil
}

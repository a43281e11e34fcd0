package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestStringPool(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	pool := newStringPool()
	for _, test := range []struct {
		text   string
		offset int
	}{
		{"hello", 0}, {"ell", 1}, {"lo!", 5}, {"hello", 0},
	} {
		o, err := pool.offset(test.text)
		if err != nil {
			t.Fatal(err)
		}
		if o != test.offset {
			t.Errorf("expected %q at offset %d, have %d", test.text, test.offset, o)
		}
	}
	if string(pool.bytes) != "hellolo!" {
		t.Errorf("unexpected pool %q", pool.bytes)
	}
	if _, err := pool.offset(strings.Repeat("x", maxPoolSize)); err != nil {
		t.Fatalf("pool should take a string starting below its limit: %v", err)
	}
	if _, err := pool.offset("yy"); err == nil {
		t.Errorf("expected pool overflow")
	}
}

func TestPackRecords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	entries := []entry{
		{0x100, "a", 0}, {0x101, "b", 0}, {0x102, "c", 0}, // proportional run
		{0x103, "", 0}, {0x104, "", 0}, // repeated removal
		{0x105, "ss", 4},
		{0x106, "s", 4},
	}
	out, n, err := packRecords(entries, newStringPool())
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || len(out) != 24 {
		t.Fatalf("expected 4 records, have %d in %d bytes", n, len(out))
	}
	expected := []struct {
		kv         uint32
		size, attr uint8
	}{
		{0x100 | 'a'<<20, 0x82, 0},
		{0x103, 1, 0},
		{0x105 | 2<<23 | 0x10000000, 0, 4},
		{0x106 | 's'<<20, 0, 4},
	}
	for i, exp := range expected {
		rec := out[i*6 : i*6+6]
		if kv := binary.LittleEndian.Uint32(rec); kv != exp.kv || rec[4] != exp.size || rec[5] != exp.attr {
			t.Errorf("record %d: expected %#x/%#x/%d, have %#x/%#x/%d", i, exp.kv, exp.size, exp.attr,
				kv, rec[4], rec[5])
		}
	}
}

func TestRunLengthIsLimited(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var entries []entry
	for r := rune(0x1000); r < 0x1000+200; r++ {
		entries = append(entries, entry{cp: r, text: "x"})
	}
	out, n, err := packRecords(entries, newStringPool())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || out[4] != maxRunLength || out[10] != 200-maxRunLength-2 {
		t.Errorf("expected runs of %d and %d, have %d records %v", maxRunLength+1, 200-maxRunLength-1, n, out)
	}
}

func testDatabase() *database {
	return &database{
		chars: map[rune]*character{
			0x41:   {category: "Lu", bidi: "L", lower: 0x61},
			0x42:   {category: "Lu", bidi: "L", lower: 0x62},
			0xc9:   {category: "Lu", bidi: "L", lower: 0xe9, decomposition: []rune{0x45, 0x301}},
			0xe9:   {category: "Ll", bidi: "L", decomposition: []rune{0x65, 0x301}},
			0xf8:   {category: "Ll", bidi: "L"},
			0x301:  {category: "Mn", bidi: "NSM"},
			0x5d0:  {category: "Lo", bidi: "R"},
			0x661:  {category: "Nd", bidi: "AN", numeric: "1"},
			0x2460: {category: "No", bidi: "ON", decomposition: []rune{0x31}, compat: true},
			0x2329: {category: "Ps", bidi: "ON", decomposition: []rune{0x3008}},
		},
		ranges: []charRange{
			{from: 0x4e00, to: 0x4e05, char: &character{category: "Lo", bidi: "L"}},
		},
	}
}

func TestDerive(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	ucd := testDatabase()
	cur := &curated{
		general:       map[rune]string{0xf8: "o"},
		caseSensitive: treemap.NewWith(utils.Int32Comparator),
		turkish:       map[rune]bool{},
	}
	d := &deriver{ucd: ucd, cur: cur, memo: map[rune]derivation{}}
	tests := []struct {
		r          rune
		text       string
		diacritics bool
		ok         bool
	}{
		{0xe9, "e", true, true},
		{0xf8, "o", false, true},
		{0x301, "", false, true},
		{0x661, "1", false, true},
		{0x2460, "1", false, true},
		{0x5d0, "", false, false},
		{0x4e01, "", false, false},
	}
	for _, test := range tests {
		res := d.derive(test.r, 0)
		if res.text != test.text || res.diacritics != test.diacritics || res.ok != test.ok {
			t.Errorf("%#U: expected %q/%v/%v, have %q/%v/%v", test.r, test.text, test.diacritics, test.ok,
				res.text, res.diacritics, res.ok)
		}
	}
	if ucd.Category(0x4e03) != "Lo" || ucd.Category(0x4e06) != "Cn" {
		t.Errorf("expected ranges to be looked up")
	}
	if dec, ok := ucd.CanonicalSingleton(0x2329); !ok || dec != 0x3008 {
		t.Errorf("expected canonical singleton U+3008, have %#U", dec)
	}
	if _, ok := ucd.CanonicalSingleton(0x2460); ok {
		t.Errorf("compatibility decomposition is not canonical")
	}
}

func TestPackClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out, n, err := packClasses(testDatabase())
	if err != nil {
		t.Fatal(err)
	}
	if n != 9 {
		t.Fatalf("expected 9 entries, have %d", n)
	}
	// AB, É, é, ø, א, ١, 〈, ①, 一…丅
	expected := []struct {
		first rune
		span  uint16
		class uint32
	}{
		{0x41, 1, 8}, {0xc9, 0, 8}, {0xe9, 0, 8}, {0xf8, 0, 8}, {0x5d0, 0, 10}, {0x661, 0, 11},
		{0x2329, 0, 3}, {0x2460, 0, 3}, {0x4e00, 5, 8},
	}
	for i, exp := range expected {
		kv := binary.LittleEndian.Uint32(out[i*6:])
		span := binary.LittleEndian.Uint16(out[i*6+4:])
		if rune(kv&0xfffff) != exp.first || kv>>20 != exp.class || span != exp.span {
			t.Errorf("entry %d: expected %#x+%d class %d, have %#x+%d class %d", i, exp.first, exp.span,
				exp.class, kv&0xfffff, span, kv>>20)
		}
	}
}

func TestPackBrackets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	pairs := []bracketPair{{0x2329, 0x232a}, {0x298f, 0x298e}, {0x28, 0x29}}
	out, err := packBrackets(testDatabase(), pairs)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		0x00, 0x00, 0x80, 0x12, 0x00, // ( )
		0x08, 0x30, 0x90, 0x12, 0x23, // 〈 〉 decomposing to U+3008
		0x00, 0x00, 0xf0, 0x98, 0x29, // ⦏ ⦎ closing below opening
	}
	if !bytes.Equal(out, expected) {
		t.Errorf("expected % x, have % x", expected, out)
	}
	if _, err := packBrackets(testDatabase(), []bracketPair{{0x28, 0x40}}); err == nil {
		t.Errorf("expected distant brackets to be rejected")
	}
}

func TestGenerateCodepoints(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	T().SetTraceLevel(tracing.LevelDebug)
	//
	dir := t.TempDir()
	files := map[string]string{
		"confusables.txt": "00F8 ; 006F ;  # o with stroke\n" +
			"13D7 ; 0061 ;  # CHEROKEE LETTER DI\n" +
			"A4EE ; 0061 ;  # LISU LETTER A\n",
		"scripts.txt": "0370..03FF ; greek\n",
		"similar.txt": "0061 ; 0034 0040\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	ucd := testDatabase()
	ucd.chars[0x13d7] = &character{category: "Lu", bidi: "L", lower: 0xaba7}
	ucd.chars[0xaba7] = &character{category: "Ll", bidi: "L"}
	ucd.chars[0xa4ee] = &character{category: "Lo", bidi: "L"}
	blob, err := generateCodepoints(ucd, dir)
	if err != nil {
		t.Fatal(err)
	}
	csOffset := int(binary.LittleEndian.Uint16(blob[0:]))
	simStart := int(binary.LittleEndian.Uint16(blob[2:]))
	simEnd := int(binary.LittleEndian.Uint16(blob[4:]))
	if !bytes.Equal(blob[simStart:simEnd], []byte{'a', '4', '@' | 0x80}) {
		t.Errorf("unexpected similarity groups % x", blob[simStart:simEnd])
	}
	chars := make(map[rune]rune)
	for off := 6; off < csOffset; off += 6 {
		kv := binary.LittleEndian.Uint32(blob[off:])
		chars[rune(kv&0xfffff)] = rune(kv>>20&0x7f)
	}
	// a curated capital translates its small letter
	if chars[0xaba7] != 'a' || chars[0xa4ee] != 'a' || chars[0xf8] != 'o' {
		t.Errorf("expected records for U+ABA7, U+A4EE and U+00F8, have %v", chars)
	}
	if _, ok := chars[0x13d7]; ok {
		t.Errorf("capital U+13D7 should not have a record of its own")
	}
}

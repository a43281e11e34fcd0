package bidi

import (
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/decancer/internal/tables"
)

// Class is a bidi character type as defined in UAX#9. The numeric values are
// used in the embedded class table and must not change.
type Class uint8

// Bidi classes
const (
	B   Class = iota // Paragraph Separator
	S                // Segment Separator
	WS               // Whitespace
	ON               // Other Neutrals
	ET               // European Number Terminator
	ES               // European Number Separator
	CS               // Common Number Separator
	EN               // European Number
	L                // Left-to-Right
	BN               // Boundary Neutral
	R                // Right-to-Left
	AN               // Arabic Number
	AL               // Arabic Letter
	LRE              // Left-to-Right Embedding
	RLE              // Right-to-Left Embedding
	PDF              // Pop Directional Format
	LRO              // Left-to-Right Override
	RLO              // Right-to-Left Override
	LRI              // Left-to-Right Isolate
	RLI              // Right-to-Left Isolate
	FSI              // First Strong Isolate
	PDI              // Pop Directional Isolate
	NSM              // Non-spacing Mark, not stored in the class table
	classCount
)

var classNames = [...]string{
	"B", "S", "WS", "ON", "ET", "ES", "CS", "EN", "L", "BN", "R", "AN", "AL",
	"LRE", "RLE", "PDF", "LRO", "RLO", "LRI", "RLI", "FSI", "PDI", "NSM",
}

func (c Class) String() string {
	if c < classCount {
		return classNames[c]
	}
	return "Class(?)"
}

// Layout of the class dictionary in bidi.bin: entries of 6 bytes, sorted by
// first codepoint. The u32 holds the codepoint in the lower 20 bits and the
// class above, the u16 is the span of the range.
var (
	dictOffset = int(tables.Bidi.U16At(0))
	dictCount  = int(tables.Bidi.U16At(2))
)

// LookupClass returns the bidi class of r. Non-spacing marks and unassigned
// codepoints have no entry; for these LookupClass returns false.
func LookupClass(r rune) (Class, bool) {
	i := sort.Search(dictCount, func(i int) bool {
		off := dictOffset + i*6
		first := rune(tables.Bidi.U32At(off) & 0xfffff)
		return first+rune(tables.Bidi.U16At(off+4)) >= r
	})
	if i == dictCount {
		return ON, false
	}
	off := dictOffset + i*6
	kv := tables.Bidi.U32At(off)
	if r < rune(kv&0xfffff) {
		return ON, false
	}
	return Class(kv >> 20), true
}

// Classify writes the class of every byte of text into classes, which
// must be of at least len(text). Bytes of multi-byte characters
// replicate the character's class.
//
// Characters without a class entry (non-spacing marks, unassigned
// codepoints) are classified as NSM. Rule W1 resolves them per isolating
// run sequence.
func Classify(text string, classes []Class) {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		c, ok := LookupClass(r)
		if !ok {
			c = NSM
		}
		for j := i; j < i+size; j++ {
			classes[j] = c
		}
		i += size
	}
}

func (c Class) isNeutralOrIsolate() bool {
	switch c {
	case B, S, WS, ON, PDI, LRI, RLI, FSI:
		return true
	}
	return false
}

// isRTLInitiator is true for explicit initiators of right-to-left
// embeddings, overrides and isolates. FSI is resolved separately.
func (c Class) isRTLInitiator() bool {
	return c == RLE || c == RLO || c == RLI
}

func (c Class) isIsolateInitiator() bool {
	return c == RLI || c == LRI || c == FSI
}

func (c Class) isStrong() bool {
	return c == L || c == R || c == AL
}

func (c Class) overrideStatus() overrideStatus {
	switch c {
	case RLO:
		return overrideRTL
	case LRO:
		return overrideLTR
	case RLI, LRI, FSI:
		return overrideIsolate
	}
	return overrideNeutral
}

// removedByX9 is true for classes which X9 removes from further
// processing. We keep them in place but skip them.
func (c Class) removedByX9() bool {
	switch c {
	case RLE, LRE, RLO, LRO, PDF, BN:
		return true
	}
	return false
}

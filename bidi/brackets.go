package bidi

import (
	"sort"

	"github.com/npillmayer/decancer/internal/tables"
)

// BD16MaxNesting is the maximum stack depth for rule BD16 as defined in UAX#9.
const BD16MaxNesting = 63

// --- Brackets and bracket stack --------------------------------------------

// Brackets require a disproportionate amount of work in UAX#9. It reads:
//
// A bracket pair is a pair of characters consisting of an opening paired bracket
// and a closing paired bracket such that the Bidi_Paired_Bracket property value
// of the former or its canonical equivalent equals the latter or its canonical
// equivalent and which are algorithmically identified at specific text positions
// within an isolating run sequence.
//
// The following algorithm identifies all of the bracket pairs in a given isolating run sequence:
//
// * Create a fixed-size stack for exactly 63 elements each consisting of a bracket
//   character and a text position. Initialize it to empty.
// * Create a list for elements each consisting of two text positions, one for an opening
//   paired bracket and the other for a corresponding closing paired bracket. Initialize
//   it to empty.
// * Inspect each character in the isolating run sequence in logical order.
//   - If an opening paired bracket is found and there is room in the stack, push its
//     Bidi_Paired_Bracket property value and its text position onto the stack.
//   - If an opening paired bracket is found and there is no room in the stack, stop
//     processing BD16 for the remainder of the isolating run sequence.
//   - If a closing paired bracket is found, do the following:
// 	   1. Declare a variable that holds a reference to the current stack element and
//        initialize it with the top element of the stack.
// 	   2. Compare the closing paired bracket being inspected or its canonical equivalent
//        to the bracket in the current stack element.
// 	   3. If the values match, meaning the two characters form a bracket pair, then
// 	      . Append the text position in the current stack element together with the
//          text position of the closing paired bracket to the list.
// 	      . Pop the stack through the current stack element inclusively.
// 	   4. Else, if the current stack element is not at the bottom of the stack, advance
//        it to the next element deeper in the stack and go back to step 2.
// 	   5. Else, continue with inspecting the next character without popping the stack.
// * Sort the list of pairs of text positions in ascending order based on the text position of the opening paired bracket.
//
// Examples of bracket pairs:
//
// 	Text                Pairings
// 	1 2 3 4 5 6 7 8
// 	a ) b ( c           None
// 	a ( b ] c           None
// 	a ( b ) c           2-4
// 	a ( b [ c ) d ]     2-6
// 	a ( b ] c ) d       2-6
// 	a ( b ) c ) d       2-4
// 	a ( b ( c ) d       4-6
// 	a ( b ( c ) d )     2-8, 4-6
// 	a ( b { c } d )     2-8, 4-6

// bracket is a paired bracket. opening is the canonical opening bracket of
// the pair, for both the opening and the closing bracket, so they may be
// compared directly.
type bracket struct {
	opening rune
	isOpen  bool
}

// Bracket records in bidi.bin are 5 bytes each, starting at offset 4 and
// sorted by the lower codepoint of the pair:
//
//    u32 bits  0..19   canonical decomposition of the opening bracket, or 0
//    u32 bits 20..27   low byte of the opening bracket
//    u32 bits 28..30   distance to the closing bracket
//    u32 bit  31       closing bracket is below the opening bracket
//    u8                high byte of the opening bracket
const bracketRecordSize = 5

var bracketCount = (dictOffset - 4) / bracketRecordSize

func bracketAt(i int) (open, close, canonical rune) {
	off := 4 + i*bracketRecordSize
	first := tables.Bidi.U32At(off)
	open = rune(tables.Bidi.At(off+4))<<8 | rune((first>>20)&0xff)
	diff := rune((first >> 28) & 7)
	if first&0x80000000 != 0 {
		close = open - diff
	} else {
		close = open + diff
	}
	canonical = rune(first & 0xfffff)
	if canonical == 0 {
		canonical = open
	}
	return
}

func bracketMatches(i int, r rune) (bracket, bool) {
	if i < 0 || i >= bracketCount {
		return bracket{}, false
	}
	open, close, canonical := bracketAt(i)
	if r == open || r == close {
		return bracket{opening: canonical, isOpen: r == open}, true
	}
	return bracket{}, false
}

// lookupBracket finds r in the table of paired brackets. Pairs may enclose
// other pairs (e.g. U+298D/U+2990 and U+298E/U+298F), so the two records
// preceding the search position are candidates.
func lookupBracket(r rune) (bracket, bool) {
	i := sort.Search(bracketCount, func(i int) bool {
		open, close, _ := bracketAt(i)
		return open > r && close > r
	})
	for j := i - 1; j >= i-2; j-- {
		if b, ok := bracketMatches(j, r); ok {
			return b, true
		}
	}
	return bracket{}, false
}

// bracketPair is a pair of text positions of matching brackets, together
// with the index of the level runs they are found in.
type bracketPair struct {
	start, end       int
	startRun, endRun int
}

// This is the stack to perform the algorithm described above
type bracketStack []brktpos
type brktpos struct {
	opening rune // canonical opening bracket
	pos     int  // text position
	run     int  // level run index
}

func (bs bracketStack) push(b brktpos) (bool, bracketStack) {
	if len(bs) >= BD16MaxNesting { // stop in case of stack overflow, as defined in UAX#9
		return false, bs
	}
	return true, append(bs, b)
}

// popWith checks for an opening bracket on the bracket stack matching a
// given closing bracket. It performs steps 1–5 from the algorithm described
// above.
func (bs bracketStack) popWith(opening rune) (bool, brktpos, bracketStack) {
	for i := len(bs) - 1; i >= 0; i-- { // start at TOS, possibly skip unclosed opening brackets
		if bs[i].opening == opening {
			open := bs[i]
			return true, open, bs[:i]
		}
	}
	return false, brktpos{}, bs
}

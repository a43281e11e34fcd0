package bidi

import (
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
)

type overrideStatus uint8

const (
	overrideNeutral overrideStatus = iota
	overrideRTL
	overrideLTR
	overrideIsolate
)

// status is an entry of the directional status stack (BD16 of X1).
type status struct {
	level    Level
	override overrideStatus
}

// maxStatusDepth is the capacity of the directional status stack: one
// entry per possible explicit level plus the paragraph entry.
const maxStatusDepth = int(MaxExplicitDepth) + 2

// statusStack is the directional status stack of rules X1–X8, together
// with the counters for isolates and embeddings which did not fit.
//
// The stack never drops below the paragraph entry. Overflow counters
// saturate instead of wrapping around.
type statusStack struct {
	entries            *arraystack.Stack
	overflowIsolates   int
	overflowEmbeddings int
	validIsolates      int
}

func newStatusStack() *statusStack {
	return &statusStack{entries: arraystack.New()}
}

// reset prepares the stack for a new paragraph (X1).
func (st *statusStack) reset(base Level) {
	st.entries.Clear()
	st.entries.Push(status{level: base, override: overrideNeutral})
	st.overflowIsolates, st.overflowEmbeddings, st.validIsolates = 0, 0, 0
}

func (st *statusStack) top() status {
	e, ok := st.entries.Peek()
	if !ok {
		panic("bidi: directional status stack is empty")
	}
	return e.(status)
}

func (st *statusStack) size() int {
	return st.entries.Size()
}

// push pushes an entry if there is room and no overflow is pending.
func (st *statusStack) push(s status) bool {
	if st.entries.Size() >= maxStatusDepth || st.overflowIsolates > 0 || st.overflowEmbeddings > 0 {
		return false
	}
	st.entries.Push(s)
	return true
}

// pop removes the top entry, but never the paragraph entry.
func (st *statusStack) pop() (status, bool) {
	if st.entries.Size() < 2 {
		return status{}, false
	}
	e, _ := st.entries.Pop()
	return e.(status), true
}

// popIsolate pops entries up to and including the topmost isolate entry (X6a).
func (st *statusStack) popIsolate() {
	for {
		s, ok := st.pop()
		if !ok || s.override == overrideIsolate {
			return
		}
	}
}

func saturatingInc(n *int) {
	if *n < math.MaxInt32 {
		*n++
	}
}

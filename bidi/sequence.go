package bidi

import (
	"unicode/utf8"
)

// Range is a byte range [Start, End) of text.
type Range struct {
	Start, End int
}

// IsolatingRunSequence is a sequence of level runs which rules W1–W7 and
// N0–N2 operate on (BD13). Runs are in logical order; SOS and EOS are the
// classes at the start and end of the sequence.
type IsolatingRunSequence struct {
	Runs []Range
	SOS  Class
	EOS  Class
}

// LevelRuns splits levels into maximal runs of equal level (BD7).
// Characters removed by rule X9 do not start a new run.
func LevelRuns(levels []Level, classes []Class) []Range {
	if len(levels) == 0 {
		return nil
	}
	var runs []Range
	start, level := 0, levels[0]
	for i := 1; i < len(levels); i++ {
		if !classes[i].removedByX9() && levels[i] != level {
			runs = append(runs, Range{Start: start, End: i})
			start, level = i, levels[i]
		}
	}
	return append(runs, Range{Start: start, End: len(levels)})
}

// IsolatingRunSequences computes the isolating run sequences of a paragraph
// of base level base (X10). levels and classes hold the resolved explicit
// levels and the original classes of the paragraph. Sequences are returned
// in the order in which they are completed; a sequence spanning an isolate
// is completed at its last run.
func IsolatingRunSequences(base Level, levels []Level, classes []Class) []IsolatingRunSequence {
	var runSequences [][]Range
	stack := [][]Range{nil}
	for _, run := range LevelRuns(levels, classes) {
		startClass := classes[run.Start]
		endClass := startClass
		for i := run.End - 1; i >= run.Start; i-- {
			if !classes[i].removedByX9() {
				endClass = classes[i]
				break
			}
		}
		var seq []Range
		if startClass == PDI && len(stack) > 1 {
			seq = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		seq = append(seq, run)
		if endClass.isIsolateInitiator() {
			stack = append(stack, seq)
		} else {
			runSequences = append(runSequences, seq)
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if len(stack[i]) > 0 {
			runSequences = append(runSequences, stack[i])
		}
	}
	sequences := make([]IsolatingRunSequence, len(runSequences))
	for i, runs := range runSequences {
		sequences[i] = makeSequence(base, runs, levels, classes)
	}
	return sequences
}

func makeSequence(base Level, runs []Range, levels []Level, classes []Class) IsolatingRunSequence {
	seq := IsolatingRunSequence{Runs: runs}
	start, end := runs[0].Start, runs[len(runs)-1].End
	seqLevel := levels[start]
	seq.forward("", start, 0, func(i int) bool {
		if classes[i].removedByX9() {
			return true
		}
		seqLevel = levels[i]
		return false
	})
	endLevel := levels[end-1]
	seq.backward("", end, len(runs)-1, func(i int) bool {
		if classes[i].removedByX9() {
			return true
		}
		endLevel = levels[i]
		return false
	})
	preceding := base
	for i := start - 1; i >= 0; i-- {
		if !classes[i].removedByX9() {
			preceding = levels[i]
			break
		}
	}
	lastClass := BN
	for i := end - 1; i >= 0; i-- {
		if !classes[i].removedByX9() {
			lastClass = classes[i]
			break
		}
	}
	succeeding := base
	if !lastClass.isIsolateInitiator() {
		for i := end; i < len(classes); i++ {
			if !classes[i].removedByX9() {
				succeeding = levels[i]
				break
			}
		}
	}
	seq.SOS = maxLevel(seqLevel, preceding).Class()
	seq.EOS = maxLevel(endLevel, succeeding).Class()
	return seq
}

func maxLevel(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}

// isLead is true if i is the first byte of a character. Without text every
// position counts as a character.
func isLead(text string, i int) bool {
	return i >= len(text) || utf8.RuneStart(text[i])
}

// forward calls f for the position of every character from pos onwards,
// where pos is located in run ri, until f returns false.
func (seq *IsolatingRunSequence) forward(text string, pos, ri int, f func(int) bool) {
	for ; ri < len(seq.Runs); ri++ {
		run := seq.Runs[ri]
		if pos < run.Start {
			pos = run.Start
		}
		for i := pos; i < run.End; i++ {
			if isLead(text, i) && !f(i) {
				return
			}
		}
	}
}

// backward calls f for the position of every character before pos, where
// pos is located in run ri, going backwards until f returns false.
func (seq *IsolatingRunSequence) backward(text string, pos, ri int, f func(int) bool) {
	for ; ri >= 0; ri-- {
		run := seq.Runs[ri]
		if pos > run.End {
			pos = run.End
		}
		for i := pos - 1; i >= run.Start; i-- {
			if isLead(text, i) && !f(i) {
				return
			}
		}
		pos = run.Start
	}
}

// positions returns the position of every character of the sequence.
func (seq *IsolatingRunSequence) positions(text string, buf []int) []int {
	buf = buf[:0]
	seq.forward(text, seq.Runs[0].Start, 0, func(i int) bool {
		buf = append(buf, i)
		return true
	})
	return buf
}

// spread copies the class of every character to its trailing bytes.
func (seq *IsolatingRunSequence) spread(text string, classes []Class) {
	for _, run := range seq.Runs {
		for i := run.Start + 1; i < run.End; i++ {
			if !isLead(text, i) {
				classes[i] = classes[i-1]
			}
		}
	}
}

func charLen(text string, i int) int {
	if i >= len(text) {
		return 1
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return size
}

func decodeAt(text string, i int) rune {
	r, _ := utf8.DecodeRuneInString(text[i:])
	return r
}

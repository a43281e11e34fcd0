package bidi

import "sort"

// bracketPairs identifies the bracket pairs of the sequence (BD16). Only
// characters of class ON after resolution of weak types are considered.
func (seq *IsolatingRunSequence) bracketPairs(text string, classes []Class) []bracketPair {
	var pairs []bracketPair
	stack := make(bracketStack, 0, BD16MaxNesting)
	var ok bool
	var open brktpos
outer:
	for ri, run := range seq.Runs {
		for i := run.Start; i < run.End; i++ {
			if !isLead(text, i) || classes[i] != ON || i >= len(text) {
				continue
			}
			b, isBracket := lookupBracket(decodeAt(text, i))
			if !isBracket {
				continue
			}
			if b.isOpen {
				if ok, stack = stack.push(brktpos{opening: b.opening, pos: i, run: ri}); !ok {
					T().Debugf("bidi: bracket stack overflow at %d", i)
					break outer
				}
			} else if ok, open, stack = stack.popWith(b.opening); ok {
				pairs = append(pairs, bracketPair{
					start:    open.pos,
					end:      i,
					startRun: open.run,
					endRun:   ri,
				})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].start < pairs[j].start })
	return pairs
}

// resolveNeutral applies rules N0–N2 to the sequence. original holds the
// classes before rule W1; marks following a bracket take on the bracket's
// resolved class.
func (seq *IsolatingRunSequence) resolveNeutral(text string, original, classes []Class, levels []Level, buf []int) []int {
	e := levels[seq.Runs[0].Start].Class()
	notE := R
	if e == R {
		notE = L
	}
	for _, pair := range seq.bracketPairs(text, classes) { // N0
		foundE, foundNotE := false, false
		startLen := charLen(text, pair.start)
		seq.forward(text, pair.start+startLen, pair.startRun, func(j int) bool {
			if j >= pair.end {
				return false
			}
			switch c := classes[j]; {
			case c == e:
				foundE = true
			case c == notE:
				foundNotE = true
			case c == EN || c == AN:
				if e == L {
					foundNotE = true
				} else {
					foundE = true
				}
			}
			return !foundE
		})
		var set Class
		switch {
		case foundE:
			set = e
		case foundNotE:
			set = seq.SOS
			seq.backward(text, pair.start, pair.startRun, func(j int) bool {
				switch c := classes[j]; c {
				case L, R, EN, AN:
					set = c
					return false
				}
				return true
			})
			if set == EN || set == AN {
				set = R
			}
		default:
			continue
		}
		endLen := charLen(text, pair.end)
		classes[pair.start] = set
		classes[pair.end] = set
		setBN := func(j int) bool {
			if classes[j] != BN {
				return false
			}
			classes[j] = set
			return true
		}
		setFollowing := func(j int) bool {
			if classes[j] != BN && (original[j] != NSM || classes[j] != ON) {
				return false
			}
			classes[j] = set
			return true
		}
		seq.backward(text, pair.start, pair.startRun, setBN)
		seq.forward(text, pair.start+startLen, pair.startRun, setFollowing)
		seq.forward(text, pair.end+endLen, pair.endRun, setFollowing)
	}
	pos := seq.positions(text, buf)
	prev := seq.SOS
	for k := 0; k < len(pos); k++ { // N1, N2
		if !isNeutralOrBN(classes[pos[k]]) {
			prev = classes[pos[k]]
			continue
		}
		start := k
		next := seq.EOS
		for k+1 < len(pos) {
			if c := classes[pos[k+1]]; !isNeutralOrBN(c) {
				next = c
				break
			}
			k++
		}
		set := e
		switch {
		case prev == L && next == L:
			set = L
		case isRorNumber(prev) && isRorNumber(next):
			set = R
		}
		for _, j := range pos[start : k+1] {
			classes[j] = set
		}
		prev = set
	}
	return pos
}

func isNeutralOrBN(c Class) bool {
	return c == BN || c.isNeutralOrIsolate()
}

// isRorNumber is true for classes which count as R for rules N1 and N2.
func isRorNumber(c Class) bool {
	return c == R || c == AN || c == EN
}

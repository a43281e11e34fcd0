package bidi

// resolveWeak applies rules W1–W7 to the sequence.
func (seq *IsolatingRunSequence) resolveWeak(text string, classes []Class) {
	prevBeforeW1 := seq.SOS
	prevBeforeW4 := seq.SOS
	prevBeforeW5 := seq.SOS
	lastStrongIsAL := false
	var etRun, bnRun []int
	for ri, run := range seq.Runs {
		for i := run.Start; i < run.End; i++ {
			if !isLead(text, i) {
				continue
			}
			if classes[i] == BN {
				bnRun = append(bnRun, i)
				continue
			}
			if classes[i] == NSM { // W1
				classes[i] = prevBeforeW1
			}
			prevBeforeW1 = classes[i]
			if prevBeforeW1.isIsolateInitiator() || prevBeforeW1 == PDI {
				prevBeforeW1 = ON
			}
			w2 := classes[i]
			switch classes[i] {
			case EN: // W2
				if lastStrongIsAL {
					classes[i] = AN
				}
			case AL: // W3
				classes[i] = R
			}
			switch w2 {
			case L, R:
				lastStrongIsAL = false
			case AL:
				lastStrongIsAL = true
			}
			beforeW456 := classes[i]
			switch classes[i] {
			case EN: // W5, ETs before EN
				for _, j := range etRun {
					classes[j] = EN
				}
				etRun = etRun[:0]
			case ES, CS: // W4
				size := charLen(text, i)
				next := seq.EOS
				seq.forward(text, i+size, ri, func(j int) bool {
					if classes[j].removedByX9() {
						return true
					}
					next = classes[j]
					return false
				})
				if next == EN && lastStrongIsAL {
					next = AN
				}
				switch {
				case prevBeforeW4 == EN && next == EN:
					classes[i] = EN
				case prevBeforeW4 == AN && classes[i] == CS && next == AN:
					classes[i] = AN
				default:
					classes[i] = ON
					seq.neutralizeAdjacentBN(text, classes, i, size, ri, ON)
				}
			case ET: // W5, ETs after EN
				if prevBeforeW5 == EN {
					classes[i] = EN
				} else {
					etRun = append(etRun, bnRun...)
					etRun = append(etRun, i)
				}
			}
			bnRun = bnRun[:0]
			prevBeforeW5 = classes[i]
			if prevBeforeW5 != ET { // W6
				for _, j := range etRun {
					classes[j] = ON
				}
				etRun = etRun[:0]
			}
			prevBeforeW4 = beforeW456
		}
	}
	for _, j := range etRun {
		classes[j] = ON
	}
	lastStrongIsL := seq.SOS == L // W7
	seq.forward(text, seq.Runs[0].Start, 0, func(i int) bool {
		switch classes[i] {
		case EN:
			if lastStrongIsL {
				classes[i] = L
			}
		case L:
			lastStrongIsL = true
		case R, AL:
			lastStrongIsL = false
		}
		return true
	})
}

// neutralizeAdjacentBN sets BN characters adjacent to the character at
// position i (of byte length size, in run ri) to class c.
func (seq *IsolatingRunSequence) neutralizeAdjacentBN(text string, classes []Class, i, size, ri int, c Class) {
	set := func(j int) bool {
		if classes[j] != BN {
			return false
		}
		classes[j] = c
		return true
	}
	seq.backward(text, i, ri, set)
	seq.forward(text, i+size, ri, set)
}

package bidi

import "unicode/utf8"

// computeExplicit applies rules X1–X8 to a paragraph. All slices are
// relative to the paragraph. processing must be a copy of original; it
// receives the classes after overrides, with explicit embedding and
// override initiators turned into BN.
func computeExplicit(text string, base Level, st *statusStack, original, processing []Class, levels []Level) {
	st.reset(base)
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		switch c := original[i]; c {
		case RLE, LRE, RLO, LRO, RLI, LRI, FSI:
			last := st.top()
			levels[i] = last.level
			isolate := c.isIsolateInitiator()
			if isolate {
				applyOverride(last, processing, i)
			}
			rtl := c.isRTLInitiator() || (c == FSI && firstStrong(text, original, i+size, len(text), true) == R)
			var next Level
			var err error
			if rtl {
				next, err = last.level.nextRTL()
			} else {
				next, err = last.level.nextLTR()
			}
			if err == nil && st.push(status{level: next, override: c.overrideStatus()}) {
				if isolate {
					st.validIsolates++
				} else {
					levels[i] = next
				}
			} else {
				T().Debugf("bidi: directional status overflow at %d, level %d", i, last.level)
				if isolate {
					saturatingInc(&st.overflowIsolates)
				} else if st.overflowIsolates == 0 {
					saturatingInc(&st.overflowEmbeddings)
				}
			}
			if !isolate {
				processing[i] = BN
			}
		case PDI:
			if st.overflowIsolates > 0 {
				st.overflowIsolates--
			} else if st.validIsolates > 0 {
				st.overflowEmbeddings = 0
				st.popIsolate()
				st.validIsolates--
			}
			last := st.top()
			levels[i] = last.level
			applyOverride(last, processing, i)
		case PDF:
			if st.overflowIsolates == 0 {
				if st.overflowEmbeddings > 0 {
					st.overflowEmbeddings--
				} else if st.top().override != overrideIsolate {
					st.pop()
				}
			}
			levels[i] = st.top().level
			processing[i] = BN
		case B:
			levels[i] = base
		default:
			last := st.top()
			levels[i] = last.level
			if c != BN {
				applyOverride(last, processing, i)
			}
		}
		for j := i + 1; j < i+size; j++ {
			levels[j] = levels[i]
			processing[j] = processing[i]
		}
		i += size
	}
}

func applyOverride(s status, processing []Class, i int) {
	switch s.override {
	case overrideRTL:
		processing[i] = R
	case overrideLTR:
		processing[i] = L
	}
}

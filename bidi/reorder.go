package bidi

import "unicode/utf8"

// Run is a run of text at a single resolved level, in visual order.
type Run struct {
	Start, End int // byte range [Start, End)
	Level      Level
}

// IsRTL is true if the characters of the run are to be displayed right to
// left.
func (r Run) IsRTL() bool {
	return r.Level.IsRTL()
}

// resolveImplicit applies rules I1 and I2 to a paragraph.
func resolveImplicit(classes []Class, levels []Level) error {
	for i, c := range classes {
		var err error
		if levels[i].IsRTL() {
			switch c {
			case L, EN, AN:
				err = levels[i].raise(1)
			}
		} else {
			switch c {
			case R:
				err = levels[i].raise(1)
			case AN, EN:
				err = levels[i].raise(2)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// visualRuns applies rules L1 and L2 to a paragraph and appends its runs
// in visual order to runs. Run positions are relative to the paragraph.
func visualRuns(text string, base Level, original []Class, levels []Level, runs []Run) ([]Run, error) {
	if len(text) == 0 {
		return runs, nil
	}
	resetFrom, resetTo := 0, -1 // L1
	prevLevel := base
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		switch original[i] {
		case B, S:
			resetTo = i + size
			if resetFrom < 0 {
				resetFrom = i
			}
		case WS, FSI, LRI, RLI, PDI:
			if resetFrom < 0 {
				resetFrom = i
			}
		case RLE, LRE, RLO, LRO, PDF, BN:
			if resetFrom < 0 {
				resetFrom = i
			}
			setLevel(levels[i:i+size], prevLevel)
		default:
			resetFrom = -1
		}
		if resetFrom >= 0 && resetTo >= 0 {
			setLevel(levels[resetFrom:resetTo], base)
			resetFrom, resetTo = -1, -1
		}
		prevLevel = levels[i]
		i += size
	}
	if resetFrom >= 0 {
		setLevel(levels[resetFrom:], base)
	}
	first := len(runs)
	start, level := 0, levels[0]
	minLevel, maxLevel := level, level
	for i := 1; i < len(levels); i++ {
		if levels[i] != level {
			runs = append(runs, Run{Start: start, End: i, Level: level})
			start, level = i, levels[i]
			if level < minLevel {
				minLevel = level
			}
			if level > maxLevel {
				maxLevel = level
			}
		}
	}
	runs = append(runs, Run{Start: start, End: len(levels), Level: level})
	para := runs[first:]
	minLevel, err := minLevel.lowestOdd() // L2
	if err != nil {
		return runs, err
	}
	for maxLevel >= minLevel {
		for s := 0; s < len(para); {
			if para[s].Level < maxLevel {
				s++
				continue
			}
			e := s + 1
			for e < len(para) && para[e].Level >= maxLevel {
				e++
			}
			reverseRuns(para[s:e])
			s = e
		}
		if err := maxLevel.lower(1); err != nil {
			return runs, err
		}
	}
	return runs, nil
}

func setLevel(levels []Level, l Level) {
	for i := range levels {
		levels[i] = l
	}
}

func reverseRuns(runs []Run) {
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
}

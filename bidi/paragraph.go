package bidi

import "unicode/utf8"

// Paragraph is a paragraph of text (rule P1), given as a byte range.
type Paragraph struct {
	Start, End  int   // byte range [Start, End) within the text
	Level       Level // base level (P2, P3)
	PureLTR     bool  // no character will be reordered
	HasIsolates bool  // paragraph contains isolate controls
}

// Paragraphs splits text into paragraphs and determines their base
// levels. classes holds the class of every byte of text, as produced by
// Classify. Paragraph separators are kept with the preceding paragraph.
func Paragraphs(text string, classes []Class) []Paragraph {
	var paras []Paragraph
	start := 0
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if classes[i-size] == B {
			paras = append(paras, makeParagraph(text, classes, start, i))
			start = i
		}
	}
	if start < len(text) {
		paras = append(paras, makeParagraph(text, classes, start, len(text)))
	}
	return paras
}

func makeParagraph(text string, classes []Class, from, to int) Paragraph {
	p := Paragraph{Start: from, End: to, PureLTR: true}
	if firstStrong(text, classes, from, to, false) != L {
		p.Level = RTL
	}
	for i := from; i < to; i++ {
		switch c := classes[i]; {
		case c.isIsolateInitiator() || c == PDI:
			p.HasIsolates = true
			p.PureLTR = false
		case c == R || c == AL || c == AN || (c.removedByX9() && c != BN):
			p.PureLTR = false
		}
	}
	if p.Level.IsRTL() {
		p.PureLTR = false
	}
	return p
}

// firstStrong finds the first character of class L, R or AL in
// text[from:to], skipping characters between an isolate initiator and its
// matching PDI (P2). If isolated is set, the search stops at a PDI without
// matching initiator (X5c). Without any strong character firstStrong
// returns L.
func firstStrong(text string, classes []Class, from, to int, isolated bool) Class {
	depth := 0
	for i := from; i < to; {
		_, size := utf8.DecodeRuneInString(text[i:])
		switch c := classes[i]; {
		case c.isIsolateInitiator():
			depth++
		case c == PDI:
			if depth > 0 {
				depth--
			} else if isolated {
				return L
			}
		case c == B:
			return L
		case depth == 0 && c == L:
			return L
		case depth == 0 && (c == R || c == AL):
			return R
		}
		i += size
	}
	return L
}

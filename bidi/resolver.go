package bidi

// Resolver brings text into visual order. It keeps scratch buffers between
// calls and therefore must not be used concurrently.
type Resolver struct {
	original   []Class
	processing []Class
	levels     []Level
	positions  []int
	runs       []Run
	stack      *statusStack
}

// NewResolver creates a resolver.
func NewResolver() *Resolver {
	return &Resolver{stack: newStatusStack()}
}

// Reorder resolves the bidi levels of text, which must be valid UTF-8, and
// returns its runs in visual order, paragraph by paragraph. The returned
// slice is owned by the resolver and valid until the next call.
func (r *Resolver) Reorder(text string) ([]Run, error) {
	r.original = resizeClasses(r.original, len(text))
	r.processing = resizeClasses(r.processing, len(text))
	if cap(r.levels) < len(text) {
		r.levels = make([]Level, len(text))
	}
	r.levels = r.levels[:len(text)]
	r.runs = r.runs[:0]
	Classify(text, r.original)
	copy(r.processing, r.original)
	for _, p := range Paragraphs(text, r.original) {
		if p.PureLTR {
			r.runs = append(r.runs, Run{Start: p.Start, End: p.End, Level: LTR})
			continue
		}
		if err := r.resolveParagraph(text, p); err != nil {
			T().Errorf("bidi: cannot resolve paragraph at %d: %v", p.Start, err)
			return nil, err
		}
	}
	return r.runs, nil
}

func (r *Resolver) resolveParagraph(text string, p Paragraph) error {
	txt := text[p.Start:p.End]
	original := r.original[p.Start:p.End]
	processing := r.processing[p.Start:p.End]
	levels := r.levels[p.Start:p.End]
	computeExplicit(txt, p.Level, r.stack, original, processing, levels)
	for _, seq := range IsolatingRunSequences(p.Level, levels, original) {
		seq.resolveWeak(txt, processing)
		seq.spread(txt, processing)
		r.positions = seq.resolveNeutral(txt, original, processing, levels, r.positions)
		seq.spread(txt, processing)
	}
	if err := resolveImplicit(processing, levels); err != nil {
		return err
	}
	first := len(r.runs)
	runs, err := visualRuns(txt, p.Level, original, levels, r.runs)
	if err != nil {
		return err
	}
	for i := first; i < len(runs); i++ {
		runs[i].Start += p.Start
		runs[i].End += p.Start
	}
	r.runs = runs
	return nil
}

func resizeClasses(c []Class, n int) []Class {
	if cap(c) < n {
		return make([]Class, n)
	}
	return c[:n]
}

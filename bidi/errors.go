package bidi

import "github.com/pkg/errors"

// Errors for level bookkeeping which went wrong. They signal pathological
// nesting and terminate the resolution of a text.
var (
	ErrLevelExplicitOverflow      = errors.New("bidi: explicit level overflow")
	ErrLevelImplicitOverflow      = errors.New("bidi: implicit level overflow")
	ErrLevelModificationOverflow  = errors.New("bidi: level modification overflow")
	ErrLevelModificationUnderflow = errors.New("bidi: level modification underflow")
)

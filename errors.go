package decancer

import (
	"github.com/npillmayer/decancer/bidi"
	"github.com/pkg/errors"
)

// ErrInvalidInput is returned for malformed input text, i.e. invalid UTF-8,
// unpaired UTF-16 surrogates or runes which are not Unicode scalar values,
// and for empty replacements.
var ErrInvalidInput = errors.New("decancer: invalid input")

// Errors of the bidi engine. Cure returns them wrapped; use errors.Is to
// test for them. Users may retry with Options.DisableBidi.
var (
	ErrLevelExplicitOverflow      = bidi.ErrLevelExplicitOverflow
	ErrLevelImplicitOverflow      = bidi.ErrLevelImplicitOverflow
	ErrLevelModificationOverflow  = bidi.ErrLevelModificationOverflow
	ErrLevelModificationUnderflow = bidi.ErrLevelModificationUnderflow
)

package execdata

import "errors"

// ErrIncompatibleMode indicates execution-data capture was requested
// together with multi-pattern mode or a combiner other than
// InclusionExclusion (spec.md §6, §9).
var ErrIncompatibleMode = errors.New("execdata: capture requires single-pattern mode and the InclusionExclusion combiner")

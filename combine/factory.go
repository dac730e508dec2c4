package combine

import (
	"fmt"

	"github.com/concussgo/concuss/coloring"
)

// Kind names a combiner variant from config.combine.count (spec.md §6).
type Kind string

const (
	KindInclusionExclusion Kind = "InclusionExclusion"
	KindColorCount         Kind = "ColorCount"
	KindHybridCount        Kind = "HybridCount"
	KindBVColorCount       Kind = "BVColorCount"
	KindBVHybridCount      Kind = "BVHybridCount"
)

// New builds the combiner named by kind for pattern size p, coloring chi,
// treedepth lower bound td, and the forward-table hint (ignored by the
// color-tracking variants, which have no forward counterpart).
func New(kind Kind, p int, chi *coloring.Coloring, td int, forward bool) (Combiner, error) {
	switch kind {
	case KindInclusionExclusion:
		return NewInclusionExclusion(p, chi, td, forward), nil
	case KindColorCount:
		return NewColorCount(p, chi), nil
	case KindHybridCount:
		return NewHybridCount(p, chi, forward), nil
	case KindBVColorCount:
		return NewBVColorCount(p, chi), nil
	case KindBVHybridCount:
		return NewBVHybridCount(p, chi, forward), nil
	default:
		return nil, fmt.Errorf("combine.New: kind=%q: %w", kind, ErrUnknownKind)
	}
}

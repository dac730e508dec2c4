package dp

import (
	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/graphmodel"
)

// BVTable is ScalarTable under the bit-vector name (spec.md §5.7
// "BVTable"). The storage and combination logic are representation-agnostic
// — entries are keyed by Pattern.Key() — so BVTable is a bare alias rather
// than a reimplementation. The patterns it receives come from
// pattern.AllPatterns, which builds KPattern values only, so a BVTable holds
// the same entries a ScalarTable does.
type BVTable = ScalarTable

// NewBVTable is NewScalarTable under the name the bit-vector pipeline calls
// for, so callers selecting a table kind by configuration don't need a
// special case for the bit-vector variant.
func NewBVTable(g *graphmodel.Graph, tdd *decompose.TDD) *BVTable {
	return NewScalarTable(g, tdd)
}

// BVColorTable is ColorTable under the bit-vector name; like BVTable it
// receives KPattern values.
type BVColorTable = ColorTable

// NewBVColorTable is NewColorTable under the bit-vector pipeline's name.
func NewBVColorTable(g *graphmodel.Graph, tdd *decompose.TDD, chi *coloring.Coloring) *BVColorTable {
	return NewColorTable(g, tdd, chi)
}

package combine

import "github.com/concussgo/concuss/coloring"

// BVColorCount is ColorCount under the bit-vector name, run over
// dp.BVColorTable, whose patterns are KPattern values from
// pattern.AllPatterns (spec.md §4.8 "BVColorCount"): the packed-integer count
// layout the spec describes is a memory-layout detail of the color-tracking
// table, not a different combination algorithm, so — mirroring the
// BVTable/BVColorTable alias decision in package dp — BVColorCount reuses
// ColorCount's bookkeeping outright.
type BVColorCount = ColorCount

// NewBVColorCount is NewColorCount under the bit-vector pipeline's name.
func NewBVColorCount(p int, chi *coloring.Coloring) *BVColorCount {
	return NewColorCount(p, chi)
}

// BVHybridCount is HybridCount under the bit-vector name.
type BVHybridCount = HybridCount

// NewBVHybridCount is NewHybridCount under the bit-vector pipeline's name.
func NewBVHybridCount(p int, chi *coloring.Coloring, forward bool) *BVHybridCount {
	return NewHybridCount(p, chi, forward)
}

package combine

import (
	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// ColorCount tracks, per copy, which host colors its image occupies, so
// smaller color sets never need their own decompositions (spec.md §4.8
// "ColorCount"), ported from
// original_source/lib/pattern_counting/double_count/color_count.py.
type ColorCount struct {
	chi       *coloring.Coloring
	minP      int
	treeDepth int

	nColors int
	raw     map[string]int64
	totals  map[string]int64
}

// NewColorCount builds a ColorCount for pattern size p over coloring chi.
func NewColorCount(p int, chi *coloring.Coloring) *ColorCount {
	minP := p
	if n := chi.NumColors(); n < minP {
		minP = n
	}
	return &ColorCount{chi: chi, minP: minP, treeDepth: minP, raw: make(map[string]int64), totals: make(map[string]int64)}
}

// Table implements Combiner.
func (c *ColorCount) Table(g *graphmodel.Graph, tdd *decompose.TDD, h *pattern.Graph, k int) dp.Table {
	return dp.NewColorTable(g, tdd, c.chi)
}

// BeforeColorSet implements Combiner.
func (c *ColorCount) BeforeColorSet(colors []int) {
	c.nColors = len(colors)
	c.raw = make(map[string]int64)
}

// CombineCount implements Combiner.
func (c *ColorCount) CombineCount(count interface{}) {
	cs, ok := count.(ColorSetCounts)
	if !ok {
		return
	}
	if c.treeDepth <= c.nColors && c.nColors <= c.minP {
		for k, v := range cs {
			c.raw[k] += v
		}
	}
}

// AfterColorSet implements Combiner.
func (c *ColorCount) AfterColorSet(colors []int) {
	mergeMax(c.totals, c.raw)
}

// GetCount implements Combiner.
func (c *ColorCount) GetCount() int64 {
	var sum int64
	for _, v := range c.totals {
		sum += v
	}
	return sum
}

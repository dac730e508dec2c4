package combine

import (
	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// InclusionExclusion counts patterns in subgraphs with fewer than p colors
// and adjusts the total with Möbius-like coefficients (spec.md §4.8
// "InclusionExclusion"), ported from
// original_source/lib/pattern_counting/double_count/inclusion_exclusion.py.
type InclusionExclusion struct {
	minP      int
	chiP      int
	treeDepth int
	forward   bool
	inEx      []int64 // inEx[minP-nColors] is μ(nColors)

	nColors              int
	currentColorSetCount int64
	patternCount         int64
}

// NewInclusionExclusion builds the μ coefficient table for pattern size p,
// coloring chi, treedepth lower bound td and table kind forward.
func NewInclusionExclusion(p int, chi *coloring.Coloring, td int, forward bool) *InclusionExclusion {
	chiP := chi.NumColors()
	minP := p
	if chiP < minP {
		minP = chiP
	}
	c := &InclusionExclusion{minP: minP, chiP: chiP, treeDepth: td, forward: forward}

	bound := td
	if minP < bound {
		bound = minP
	}
	for nColors := minP; nColors >= bound; nColors-- {
		discrepancy := minP - nColors
		remaining := chiP - nColors
		var sum int64
		for i, mod := range c.inEx {
			sum += choose(remaining, discrepancy-i) * mod
		}
		c.inEx = append(c.inEx, 1-sum)
	}
	return c
}

// Table implements Combiner.
func (c *InclusionExclusion) Table(g *graphmodel.Graph, tdd *decompose.TDD, h *pattern.Graph, k int) dp.Table {
	if c.forward {
		return dp.NewForwardTable(g, tdd, h, k)
	}
	return dp.NewScalarTable(g, tdd)
}

// BeforeColorSet implements Combiner.
func (c *InclusionExclusion) BeforeColorSet(colors []int) {
	c.nColors = len(colors)
	c.currentColorSetCount = 0
}

// CombineCount implements Combiner.
func (c *InclusionExclusion) CombineCount(count interface{}) {
	sc, ok := count.(ScalarCount)
	if !ok {
		return
	}
	if c.treeDepth <= c.nColors && c.nColors <= c.minP {
		c.patternCount += c.inEx[c.minP-c.nColors] * int64(sc)
		c.currentColorSetCount += int64(sc)
	}
}

// AfterColorSet implements Combiner.
func (c *InclusionExclusion) AfterColorSet(colors []int) {}

// ColorSetCount returns the count accumulated for the color set most
// recently processed — execdata's counts_per_colorset.txt dump reads this
// right after AfterColorSet runs.
func (c *InclusionExclusion) ColorSetCount() int64 { return c.currentColorSetCount }

// GetCount implements Combiner.
func (c *InclusionExclusion) GetCount() int64 { return c.patternCount }

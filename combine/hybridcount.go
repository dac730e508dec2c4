package combine

import (
	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/dp"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// HybridCount chooses a small covering family of size-p color sets on which
// it runs ColorCount-style DP, so every size-(p-1) color subset is counted
// at least once, and falls back to cheaper InclusionExclusion-style DP for
// every other color set (spec.md §4.8 "HybridCount"), ported from
// original_source/lib/pattern_counting/double_count/hybrid_count.py.
type HybridCount struct {
	chi       *coloring.Coloring
	minP      int
	treeDepth int
	forward   bool

	colorDPSet map[string]bool // full min_p-size sets chosen for ColorDP

	useColorDP    bool
	currentColors []int
	raw           map[string]int64
	overcount     map[string]int64
	totals        map[string]int64
}

// NewHybridCount builds the covering family and an empty HybridCount for
// pattern size p over coloring chi.
func NewHybridCount(p int, chi *coloring.Coloring, forward bool) *HybridCount {
	usedCols := chi.Colors()
	minP := p
	if len(usedCols) < minP {
		minP = len(usedCols)
	}
	c := &HybridCount{
		chi:        chi,
		minP:       minP,
		treeDepth:  minP,
		forward:    forward,
		colorDPSet: make(map[string]bool),
		raw:        make(map[string]int64),
		overcount:  make(map[string]int64),
		totals:     make(map[string]int64),
	}
	c.buildCoveringFamily(usedCols)
	return c
}

// buildCoveringFamily greedily picks min_p-size color sets so that every
// (min_p-1)-size subset of used colors is a subset of at least one chosen
// set; on pass j a candidate set is accepted only if fewer than j of its
// subsets are already covered (spec.md §9 "HybridCount construction... iterate in one
// deterministic order — lexicographic on color ids").
func (c *HybridCount) buildCoveringFamily(usedCols []int) {
	if c.minP < 1 {
		return
	}
	subsets := combinations(usedCols, c.minP-1)
	order := make([]string, len(subsets))
	bySet := make(map[string][]int, len(subsets))
	covered := make(map[string]bool, len(subsets))
	for i, s := range subsets {
		key := colorKey(s)
		order[i] = key
		bySet[key] = s
		covered[key] = false
	}

	j := 0
	for {
		anyUncovered := false
		for _, key := range order {
			if !covered[key] {
				anyUncovered = true
				break
			}
		}
		if !anyUncovered {
			break
		}
		j++
		for _, key := range order {
			if covered[key] {
				continue
			}
			k := bySet[key]
			member := make(map[int]bool, len(k))
			for _, v := range k {
				member[v] = true
			}
			for _, i := range usedCols {
				if member[i] {
					continue
				}
				k2 := append(append([]int(nil), k...), i)
				combos := combinations(k2, c.minP-1)
				add := j
				for _, cc := range combos {
					if covered[colorKey(cc)] {
						add--
					}
					if add == 0 {
						break
					}
				}
				if add != 0 {
					for _, cc := range combos {
						covered[colorKey(cc)] = true
					}
					c.colorDPSet[colorKey(k2)] = true
				}
			}
		}
	}
}

// Table implements Combiner.
func (c *HybridCount) Table(g *graphmodel.Graph, tdd *decompose.TDD, h *pattern.Graph, k int) dp.Table {
	if c.useColorDP {
		return dp.NewColorTable(g, tdd, c.chi)
	}
	if c.forward {
		return dp.NewForwardTable(g, tdd, h, k)
	}
	return dp.NewScalarTable(g, tdd)
}

// BeforeColorSet implements Combiner.
func (c *HybridCount) BeforeColorSet(colors []int) {
	c.currentColors = append([]int(nil), colors...)
	c.useColorDP = c.colorDPSet[colorKey(colors)]
	if c.useColorDP {
		c.raw = make(map[string]int64)
	}
}

// CombineCount implements Combiner.
func (c *HybridCount) CombineCount(count interface{}) {
	if !(c.treeDepth <= len(c.currentColors) && len(c.currentColors) <= c.minP) {
		return
	}
	if c.useColorDP {
		cs, ok := count.(ColorSetCounts)
		if !ok {
			return
		}
		for k, v := range cs {
			c.raw[k] += v
		}
		return
	}
	sc, ok := count.(ScalarCount)
	if !ok {
		return
	}
	c.overcount[colorKey(c.currentColors)] += int64(sc)
}

// AfterColorSet implements Combiner.
func (c *HybridCount) AfterColorSet(colors []int) {
	if c.useColorDP {
		mergeMax(c.totals, c.raw)
	}
}

// GetCount implements Combiner: every overcounted large color set has its
// strict subsets' ColorDP totals subtracted back out, then everything is
// summed.
func (c *HybridCount) GetCount() int64 {
	var total int64
	for ocKey, oc := range c.overcount {
		ocSet := parseColorKey(ocKey)
		for _, sub := range powerset(ocSet) {
			oc -= c.totals[colorKey(sub)]
		}
		total += oc
	}
	for _, v := range c.totals {
		total += v
	}
	return total
}

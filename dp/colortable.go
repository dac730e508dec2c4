package dp

import (
	"sort"
	"strconv"
	"strings"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// colorSetKey canonicalizes a color set (ascending, comma-joined) for use as
// a Counter key, mirroring Python's frozenset hashing with a deterministic
// string instead.
func colorSetKey(colors []int) string {
	cp := append([]int(nil), colors...)
	sort.Ints(cp)
	parts := make([]string, len(cp))
	for i, c := range cp {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// ColorTable is the color-tracking DP table (spec.md §5.7 "ColorTable"),
// ported from original_source/lib/pattern_counting/dp/color_dptable.py:
// entries are Counters keyed by the set of host colors an isomorphism's
// image occupies, instead of a plain count. Used by the ColorCount and
// HybridCount combiners, never by InclusionExclusion (spec.md §4.8 notes
// the two representations are not interchangeable).
type ColorTable struct {
	g       *graphmodel.Graph
	tdd     *decompose.TDD
	colorOf map[int]int
	data    map[string]map[string]map[string]int64
}

// NewColorTable returns an empty ColorTable over host graph g, decomposition
// tdd, and the ambient coloring chi (used to label each isomorphism's image
// with its occupied color set).
func NewColorTable(g *graphmodel.Graph, tdd *decompose.TDD, chi *coloring.Coloring) *ColorTable {
	colorOf := make(map[int]int, chi.Len())
	for _, v := range chi.Vertices() {
		c, _ := chi.Get(v)
		colorOf[v] = c
	}
	return &ColorTable{g: g, tdd: tdd, colorOf: colorOf, data: make(map[string]map[string]map[string]int64)}
}

func (t *ColorTable) setCounter(tuple []int, p pattern.Pattern, counter map[string]int64) {
	key := tupleKey(tuple)
	bucket, ok := t.data[key]
	if !ok {
		bucket = make(map[string]map[string]int64)
		t.data[key] = bucket
	}
	bucket[p.Key()] = counter
}

// GetCounter returns the raw colorset->count Counter for (tuple, pattern).
func (t *ColorTable) GetCounter(tuple []int, p pattern.Pattern) map[string]int64 {
	bucket, ok := t.data[tupleKey(tuple)]
	if !ok {
		return nil
	}
	return bucket[p.Key()]
}

// Get implements Table by summing the Counter — the scalar total count,
// ignoring which colors produced it.
func (t *ColorTable) Get(tuple []int, p pattern.Pattern) (int64, bool) {
	counter := t.GetCounter(tuple, p)
	if counter == nil {
		return 0, false
	}
	var sum int64
	for _, c := range counter {
		sum += c
	}
	return sum, true
}

// Free implements Table.
func (t *ColorTable) Free(tuple []int) {
	delete(t.data, tupleKey(tuple))
}

// Leaf implements Table.
func (t *ColorTable) Leaf(v int, patterns []pattern.Pattern) {
	depth := t.tdd.Depth[v]
	for _, p := range patterns {
		counter := make(map[string]int64)
		for _, p2 := range p.InverseForget(depth) {
			if colors, ok := isIsomorphismColor(t.g, t.tdd, v, p2, t.colorOf); ok {
				counter[colorSetKey(colors)]++
			}
		}
		t.setCounter([]int{v}, p, counter)
	}
}

// InnerVertex implements Table.
func (t *ColorTable) InnerVertex(v int, patterns []pattern.Pattern) {
	depth := t.tdd.Depth[v]
	children := append([]int(nil), t.tdd.Children[v]...)
	for _, p := range patterns {
		counter := make(map[string]int64)
		for _, p2 := range p.InverseForget(depth) {
			for cs, c := range t.GetCounter(children, p2) {
				counter[cs] += c
			}
		}
		t.setCounter([]int{v}, p, counter)
	}
	if len(children) > 0 {
		t.Free(children)
	}
}

// InnerVertexSet implements Table.
func (t *ColorTable) InnerVertexSet(prefix []int, patterns []pattern.Pattern) {
	front := prefix[:len(prefix)-1]
	last := prefix[len(prefix)-1:]
	for _, p := range patterns {
		counter := make(map[string]int64)
		for _, pair := range p.InverseJoin() {
			frontCounter := t.GetCounter(front, pair[0])
			lastCounter := t.GetCounter(last, pair[1])
			for csA, cA := range frontCounter {
				for csB, cB := range lastCounter {
					merged := mergeColorSetKeys(csA, csB)
					counter[merged] += cA * cB
				}
			}
		}
		t.setCounter(prefix, p, counter)
	}
}

// mergeColorSetKeys unions two canonical colorSetKey strings.
func mergeColorSetKeys(a, b string) string {
	set := make(map[string]bool)
	for _, s := range strings.Split(a, ",") {
		if s != "" {
			set[s] = true
		}
	}
	for _, s := range strings.Split(b, ",") {
		if s != "" {
			set[s] = true
		}
	}
	parts := make([]string, 0, len(set))
	for s := range set {
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

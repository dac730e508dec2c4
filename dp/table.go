package dp

import (
	"fmt"
	"strings"

	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// Table is the DP table capability set (spec.md §5.7): each inner-vertex
// level's entries are computed from its children's entries, and the table
// itself knows how to combine them, since scalar, color-tracking and
// bit-vector representations all combine entries differently.
type Table interface {
	// Leaf computes and stores entries for leaf vertex v, for every pattern
	// in patterns (spec.md §4.7 "computeLeaf(v, π)").
	Leaf(v int, patterns []pattern.Pattern)
	// InnerVertex computes and stores entries for inner vertex v from the
	// table entry at its full children tuple, for every pattern in patterns
	// (spec.md §4.7 "computeInnerVertex(v, π)"). Consumed child entries may
	// be freed.
	InnerVertex(v int, patterns []pattern.Pattern)
	// InnerVertexSet computes and stores entries for a children-prefix
	// tuple by splitting it into its front and last element and combining
	// via inverseJoin (spec.md §4.7 "computeInnerVertexSet(C, π)").
	InnerVertexSet(prefix []int, patterns []pattern.Pattern)
	// Get returns the stored count for (tuple, pattern).
	Get(tuple []int, p pattern.Pattern) (int64, bool)
	// Free releases every entry keyed by tuple.
	Free(tuple []int)
}

// Dumper is implemented by Table variants that can enumerate their
// surviving entries for execution-data capture (spec.md §6). Not every
// Table variant needs this — ColorTable's counter-of-colorsets shape has no
// single natural dump format, so it is left out of the capability set.
type Dumper interface {
	Dump() map[string]map[string]int64
}

func tupleKey(tuple []int) string {
	parts := make([]string, len(tuple))
	for i, v := range tuple {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}

// ScalarTable is the plain dictionary-backed DP table (spec.md §5.7
// "ScalarTable"), ported from
// original_source/lib/pattern_counting/dp/dptable.py's DPTable: a nested
// map (vertex-tuple) -> pattern-key -> count.
type ScalarTable struct {
	g    *graphmodel.Graph
	tdd  *decompose.TDD
	data map[string]map[string]int64
}

// NewScalarTable returns an empty ScalarTable over host graph g and
// decomposition tdd.
func NewScalarTable(g *graphmodel.Graph, tdd *decompose.TDD) *ScalarTable {
	return &ScalarTable{g: g, tdd: tdd, data: make(map[string]map[string]int64)}
}

func (t *ScalarTable) set(tuple []int, p pattern.Pattern, count int64) {
	key := tupleKey(tuple)
	bucket, ok := t.data[key]
	if !ok {
		bucket = make(map[string]int64)
		t.data[key] = bucket
	}
	bucket[p.Key()] = count
}

// Get implements Table.
func (t *ScalarTable) Get(tuple []int, p pattern.Pattern) (int64, bool) {
	bucket, ok := t.data[tupleKey(tuple)]
	if !ok {
		return 0, false
	}
	v, ok := bucket[p.Key()]
	return v, ok
}

// Free implements Table.
func (t *ScalarTable) Free(tuple []int) {
	delete(t.data, tupleKey(tuple))
}

// Dump returns every surviving tuple-key -> pattern-key -> count entry, for
// execution-data capture (spec.md §6 "DP table dump"). Callers must not
// mutate the returned maps.
func (t *ScalarTable) Dump() map[string]map[string]int64 {
	return t.data
}

// Leaf implements Table: sum, over π' in inverseForget(depth(v), π), of
// the indicator isIsomorphism(v, π').
func (t *ScalarTable) Leaf(v int, patterns []pattern.Pattern) {
	depth := t.tdd.Depth[v]
	for _, p := range patterns {
		var sum int64
		for _, p2 := range p.InverseForget(depth) {
			if isIsomorphism(t.g, t.tdd, v, p2) {
				sum++
			}
		}
		t.set([]int{v}, p, sum)
	}
}

// InnerVertex implements Table: sum, over π' in inverseForget(depth(v), π),
// of the table entry at (children(v), π').
func (t *ScalarTable) InnerVertex(v int, patterns []pattern.Pattern) {
	depth := t.tdd.Depth[v]
	children := append([]int(nil), t.tdd.Children[v]...)
	for _, p := range patterns {
		var sum int64
		for _, p2 := range p.InverseForget(depth) {
			if c, ok := t.Get(children, p2); ok {
				sum += c
			}
		}
		t.set([]int{v}, p, sum)
	}
	if len(children) > 0 {
		t.Free(children)
	}
}

// InnerVertexSet implements Table: split prefix into prefix[:-1] and
// prefix[-1:], sum over (π1, π2) in inverseJoin(π) of
// table[prefix[:-1]][π1] * table[prefix[-1:]][π2].
func (t *ScalarTable) InnerVertexSet(prefix []int, patterns []pattern.Pattern) {
	front := prefix[:len(prefix)-1]
	last := prefix[len(prefix)-1:]
	for _, p := range patterns {
		var sum int64
		for _, pair := range p.InverseJoin() {
			c1, ok1 := t.Get(front, pair[0])
			c2, ok2 := t.Get(last, pair[1])
			if ok1 && ok2 {
				sum += c1 * c2
			}
		}
		t.set(prefix, p, sum)
	}
}

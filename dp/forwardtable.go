package dp

import (
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/pattern"
)

// ForwardTable is the push-style DP table (spec.md §5.7 "ForwardTable"),
// ported from original_source/lib/pattern_counting/dp/forward_dptable.py's
// ForwardDPTable: instead of pulling a target pattern's count from its
// inverseForget/inverseJoin preimages, it walks every source pattern once
// and pushes its contribution forward into the (smaller) pattern it forgets
// or joins into. Same table contents as ScalarTable, reached by the other
// direction — useful when the preimage sets are large relative to the
// pattern universe itself.
type ForwardTable struct {
	g    *graphmodel.Graph
	tdd  *decompose.TDD
	h    *pattern.Graph
	k    int
	data map[string]map[string]int64
}

// NewForwardTable returns an empty ForwardTable over host graph g,
// decomposition tdd, pattern graph h and pattern size k.
func NewForwardTable(g *graphmodel.Graph, tdd *decompose.TDD, h *pattern.Graph, k int) *ForwardTable {
	return &ForwardTable{g: g, tdd: tdd, h: h, k: k, data: make(map[string]map[string]int64)}
}

func (t *ForwardTable) add(tuple []int, p pattern.Pattern, delta int64) {
	if delta == 0 {
		return
	}
	key := tupleKey(tuple)
	bucket, ok := t.data[key]
	if !ok {
		bucket = make(map[string]int64)
		t.data[key] = bucket
	}
	bucket[p.Key()] += delta
}

// Get implements Table.
func (t *ForwardTable) Get(tuple []int, p pattern.Pattern) (int64, bool) {
	bucket, ok := t.data[tupleKey(tuple)]
	if !ok {
		return 0, false
	}
	v, ok := bucket[p.Key()]
	return v, ok
}

// Free implements Table.
func (t *ForwardTable) Free(tuple []int) {
	delete(t.data, tupleKey(tuple))
}

// Dump returns every surviving tuple-key -> pattern-key -> count entry, for
// execution-data capture (spec.md §6 "DP table dump"). Callers must not
// mutate the returned maps.
func (t *ForwardTable) Dump() map[string]map[string]int64 {
	return t.data
}

// Leaf implements Table: for every source pattern π1, forget depth(v) to
// find the target π2 it contributes to, and push isIsomorphism(v, π1)
// forward into table[(v,)][π2].
func (t *ForwardTable) Leaf(v int, patterns []pattern.Pattern) {
	depth := t.tdd.Depth[v]
	for _, p1 := range pattern.AllPatterns(t.h, depth+1) {
		p2, ok := p1.Forget(depth)
		if !ok {
			continue
		}
		if isIsomorphism(t.g, t.tdd, v, p1) {
			t.add([]int{v}, p2, 1)
		}
	}
}

// InnerVertex implements Table: for every source pattern π1, forget
// depth(v) to find π2, and push the children-tuple count forward.
func (t *ForwardTable) InnerVertex(v int, patterns []pattern.Pattern) {
	depth := t.tdd.Depth[v]
	children := append([]int(nil), t.tdd.Children[v]...)
	for _, p1 := range pattern.AllPatterns(t.h, depth+1) {
		p2, ok := p1.Forget(depth)
		if !ok {
			continue
		}
		if c, ok := t.Get(children, p1); ok {
			t.add([]int{v}, p2, c)
		}
	}
	if len(children) > 0 {
		t.Free(children)
	}
}

// InnerVertexSet implements Table: for every source pattern π1 and every
// pattern π2 it can join with, push front*last forward into the joined
// pattern's prefix entry.
func (t *ForwardTable) InnerVertexSet(prefix []int, patterns []pattern.Pattern) {
	front := prefix[:len(prefix)-1]
	last := prefix[len(prefix)-1:]
	universe := pattern.AllPatterns(t.h, t.k)
	for _, p1 := range patterns {
		c1, ok1 := t.Get(front, p1)
		if !ok1 || c1 == 0 {
			continue
		}
		for _, p2 := range universe {
			joined, ok := p1.Join(p2)
			if !ok {
				continue
			}
			c2, ok2 := t.Get(last, p2)
			if !ok2 || c2 == 0 {
				continue
			}
			t.add(prefix, joined, c1*c2)
		}
	}
}

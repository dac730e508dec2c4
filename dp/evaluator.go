package dp

import (
	"github.com/concussgo/concuss/decompose"
	"github.com/concussgo/concuss/pattern"
)

// Evaluator drives a Table through a treedepth decomposition's post-order
// evaluation (spec.md §4.7 "Post-order evaluation").
type Evaluator struct {
	Table Table
}

// NewEvaluator returns an Evaluator that writes into table.
func NewEvaluator(table Table) *Evaluator {
	return &Evaluator{Table: table}
}

// Run evaluates tdd bottom-up over pattern graph h with boundary size k,
// and returns the count contributed by this decomposition: the table entry
// for the root under the trivial whole-of-H pattern.
func (e *Evaluator) Run(tdd *decompose.TDD, h *pattern.Graph, k int) int64 {
	e.walk(tdd, h, k)
	count, ok := e.Table.Get([]int{tdd.Root}, pattern.TrivialPattern(h))
	if !ok {
		return 0
	}
	return count
}

// ColorCounter is implemented by ColorTable/BVColorTable: the root-tuple
// read a color-tracking combiner needs instead of Run's scalar Get.
// Callers (pipeline's orchestration) type-assert a dp.Table against this to
// decide between Run and RunColor without depending on the concrete table
// type.
type ColorCounter interface {
	GetCounter(tuple []int, p pattern.Pattern) map[string]int64
}

// RunColor is Run's color-tracking counterpart, used when e.Table is a
// ColorTable or BVColorTable: it returns the root's colorset->count Counter
// instead of a single scalar, for ColorCount/HybridCount's CombineCount.
// Returns nil if e.Table does not track colors.
func (e *Evaluator) RunColor(tdd *decompose.TDD, h *pattern.Graph, k int) map[string]int64 {
	e.walk(tdd, h, k)
	cc, ok := e.Table.(ColorCounter)
	if !ok {
		return nil
	}
	return cc.GetCounter([]int{tdd.Root}, pattern.TrivialPattern(h))
}

func (e *Evaluator) walk(tdd *decompose.TDD, h *pattern.Graph, k int) {
	universe := pattern.AllPatterns(h, k)
	for _, v := range postOrder(tdd) {
		children := tdd.Children[v]
		if len(children) == 0 {
			e.Table.Leaf(v, pattern.AllPatterns(h, tdd.Depth[v]))
			continue
		}
		for i := 2; i <= len(children); i++ {
			e.Table.InnerVertexSet(children[:i], universe)
		}
		e.Table.InnerVertex(v, pattern.AllPatterns(h, tdd.Depth[v]))
	}
}

// postOrder returns tdd's vertices in post-order (children before parent),
// children visited in the order BuildTDD recorded them.
func postOrder(tdd *decompose.TDD) []int {
	out := make([]int, 0, len(tdd.Vertices))
	var visit func(v int)
	visit = func(v int) {
		for _, c := range tdd.Children[v] {
			visit(c)
		}
		out = append(out, v)
	}
	visit(tdd.Root)
	return out
}

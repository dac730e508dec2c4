package coloring

import (
	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/tfgraph"
)

// pair is an unordered vertex pair, canonicalized with the smaller id first,
// used as a helper-graph edge key.
type pair struct{ a, b int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Augment performs one transitive/fraternal augmentation step on tf,
// returning a new TFGraph with the step's arcs added (spec.md §4.1
// "Transitive-fraternal augmentation (one step i)"). step is the weight
// recorded on every arc this call introduces.
func Augment(tf *tfgraph.TFGraph, step int) *tfgraph.TFGraph {
	out := tf.Clone()
	n := tf.N()

	// --- transitive triples: x->y, y->u, no x->u => add x->u ---
	transitivePairs := make(map[pair]bool)
	for y := 0; y < n; y++ {
		xs := tf.InNeighborsOf(y)
		us := tf.OutNeighbors(y)
		for _, x := range xs {
			for _, u := range us {
				if x == u || tf.HasArc(x, u) {
					continue
				}
				if !out.HasArc(x, u) {
					_ = out.AddArc(x, u, step)
				}
				transitivePairs[makePair(x, u)] = true
			}
		}
	}

	// --- fraternal triples: x->u, y->u, no edge x~y => helper edge {x,y} ---
	helper := graphmodel.New()
	for v := 0; v < n; v++ {
		_ = helper.AddVertex(v)
	}
	for u := 0; u < n; u++ {
		xs := tf.InNeighborsOf(u)
		for i := 0; i < len(xs); i++ {
			for j := i + 1; j < len(xs); j++ {
				x, y := xs[i], xs[j]
				if tf.Undirected(x, y) {
					continue
				}
				// "Remove from the fraternal helper every pair that became
				// transitive in this step" (spec.md §4.1).
				if transitivePairs[makePair(x, y)] {
					continue
				}
				_ = helper.AddEdge(x, y)
			}
		}
	}

	helperOriented := LowDegreeOrientation(helper)
	for _, a := range helperOriented.Arcs() {
		if !out.HasArc(a.From, a.To) {
			_ = out.AddArc(a.From, a.To, step)
		}
	}
	return out
}

// AugmentWeighted performs one weighted augmentation step: only triples
// whose constituent arc weights sum to exactly step are enumerated, using
// the per-weight in-neighbour index, producing precisely the depth-step
// arcs without redundant rescans of earlier steps (spec.md §4.1 "A weighted
// variant").
func AugmentWeighted(tf *tfgraph.TFGraph, step int) *tfgraph.TFGraph {
	out := tf.Clone()
	n := tf.N()

	transitivePairs := make(map[pair]bool)
	for y := 0; y < n; y++ {
		for wxy := 0; wxy <= step; wxy++ {
			wyu := step - wxy
			if wyu < 0 {
				continue
			}
			xs := tf.InNeighborsWithWeight(y, wxy)
			us := outNeighborsWithWeight(tf, y, wyu)
			for _, x := range xs {
				for _, u := range us {
					if x == u || tf.HasArc(x, u) {
						continue
					}
					if !out.HasArc(x, u) {
						_ = out.AddArc(x, u, step)
					}
					transitivePairs[makePair(x, u)] = true
				}
			}
		}
	}

	helper := graphmodel.New()
	for v := 0; v < n; v++ {
		_ = helper.AddVertex(v)
	}
	for u := 0; u < n; u++ {
		for wxu := 0; wxu <= step; wxu++ {
			wyu := step - wxu
			if wyu < 0 {
				continue
			}
			xs := tf.InNeighborsWithWeight(u, wxu)
			ys := tf.InNeighborsWithWeight(u, wyu)
			for _, x := range xs {
				for _, y := range ys {
					if x == y || tf.Undirected(x, y) {
						continue
					}
					if transitivePairs[makePair(x, y)] {
						continue
					}
					_ = helper.AddEdge(x, y)
				}
			}
		}
	}

	helperOriented := LowDegreeOrientation(helper)
	for _, a := range helperOriented.Arcs() {
		if !out.HasArc(a.From, a.To) {
			_ = out.AddArc(a.From, a.To, step)
		}
	}
	return out
}

func outNeighborsWithWeight(tf *tfgraph.TFGraph, v, weight int) []int {
	out := make([]int, 0)
	for _, u := range tf.OutNeighbors(v) {
		if w, ok := tf.ArcWeight(v, u); ok && w == weight {
			out = append(out, u)
		}
	}
	return out
}

// TruncatedAugment is the truncated_tf_augmentation variant named in
// spec.md §6: identical to Augment, but caps the number of transitive and
// fraternal triples explored per vertex to maxTriplesPerVertex, trading
// completeness of the augmentation for speed on dense intermediate graphs
// (ported from
// original_source/lib/coloring/basic/truncated_tf_augmentation.py, which
// the distilled spec.md §4.1 does not describe but §6's config table
// names).
func TruncatedAugment(tf *tfgraph.TFGraph, step, maxTriplesPerVertex int) *tfgraph.TFGraph {
	out := tf.Clone()
	n := tf.N()

	transitivePairs := make(map[pair]bool)
	for y := 0; y < n; y++ {
		xs := tf.InNeighborsOf(y)
		us := tf.OutNeighbors(y)
		explored := 0
	transitiveLoop:
		for _, x := range xs {
			for _, u := range us {
				if explored >= maxTriplesPerVertex {
					break transitiveLoop
				}
				explored++
				if x == u || tf.HasArc(x, u) {
					continue
				}
				if !out.HasArc(x, u) {
					_ = out.AddArc(x, u, step)
				}
				transitivePairs[makePair(x, u)] = true
			}
		}
	}

	helper := graphmodel.New()
	for v := 0; v < n; v++ {
		_ = helper.AddVertex(v)
	}
	for u := 0; u < n; u++ {
		xs := tf.InNeighborsOf(u)
		explored := 0
	fraternalLoop:
		for i := 0; i < len(xs); i++ {
			for j := i + 1; j < len(xs); j++ {
				if explored >= maxTriplesPerVertex {
					break fraternalLoop
				}
				explored++
				x, y := xs[i], xs[j]
				if tf.Undirected(x, y) || transitivePairs[makePair(x, y)] {
					continue
				}
				_ = helper.AddEdge(x, y)
			}
		}
	}

	helperOriented := LowDegreeOrientation(helper)
	for _, a := range helperOriented.Arcs() {
		if !out.HasArc(a.From, a.To) {
			_ = out.AddArc(a.From, a.To, step)
		}
	}
	return out
}

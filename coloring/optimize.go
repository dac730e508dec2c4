package coloring

import (
	"math/rand"

	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/tfgraph"
)

// OptimizationInterval is the optional edge-randomisation refiner named in
// spec.md §6 (color.optimization) and ported from
// original_source/lib/coloring/basic/optimization_interval.py: after each
// augmentation step of a failed center check, it takes a window of
// consecutive vertices and reorients the arcs inside that window with a
// low-degree orientation of the induced subgraph, in the hope of shrinking
// the eventual color count. It is disabled by default (spec.md §4.1's
// augmentation loop only invokes it when the caller's Options request it).
type OptimizationInterval struct {
	Rand         *rand.Rand
	WindowLength int
}

// Apply picks WindowLength consecutive vertices of the host graph in
// ascending id order, from a random start and wrapping around, removes the
// arcs of tf whose both endpoints lie in that window, and adds the arcs of a
// fresh LowDegreeOrientation of the induced window subgraph that are not
// already present. Arcs with one endpoint outside the window are kept.
// Returns a new TFGraph; tf is unmodified.
func (o *OptimizationInterval) Apply(g *graphmodel.Graph, tf *tfgraph.TFGraph) *tfgraph.TFGraph {
	if o == nil || o.WindowLength <= 0 {
		return tf
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return tf
	}
	r := o.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	window := o.WindowLength
	if window > len(vertices) {
		window = len(vertices)
	}
	start := r.Intn(len(vertices))
	windowSet := make(map[int]bool, window)
	for i := 0; i < window; i++ {
		windowSet[vertices[(start+i)%len(vertices)]] = true
	}

	sub := graphmodel.New()
	for v := range windowSet {
		_ = sub.AddVertex(v)
	}
	for v := range windowSet {
		for _, u := range g.Neighbors(v) {
			if windowSet[u] {
				_ = sub.AddEdge(v, u)
			}
		}
	}
	subOriented := LowDegreeOrientation(sub)

	out := tf.Clone()
	for v := range windowSet {
		for _, u := range out.OutNeighbors(v) {
			if windowSet[u] {
				out.RemoveArc(v, u)
			}
		}
	}
	for _, a := range subOriented.Arcs() {
		if !out.HasArc(a.From, a.To) {
			_ = out.AddArc(a.From, a.To, a.Weight)
		}
	}
	return out
}

package pattern

import "github.com/concussgo/concuss/graphmodel"

// Graph is the pattern graph H: a small host-graph-shaped subject whose
// isomorphic copies are counted. It reuses graphmodel.Graph's adjacency-set
// representation unchanged — H is always small (spec.md §5.6), so
// graphmodel's trimming preprocessor is not used here; besides the plain
// vertex/edge/neighbor surface, only Degeneracy is (by TreedepthLowerBound).
type Graph = graphmodel.Graph

// New returns an empty pattern graph.
func New() *Graph {
	return graphmodel.New()
}

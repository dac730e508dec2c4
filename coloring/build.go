package coloring

import (
	"fmt"

	"github.com/concussgo/concuss/graphmodel"
	"github.com/concussgo/concuss/tfgraph"
	"github.com/concussgo/concuss/unionfind"
)

const methodBuild = "BuildPCenteredColoring"

const defaultMaxTriplesPerVertex = 64

// BuildPCenteredColoring orchestrates the coloring stage end to end
// (spec.md §2 pipeline, §4.1-§4.4): orient, iteratively augment and color
// and center-check until depth p succeeds, then merge-colors postprocess.
// g must already be normalized to a dense 0..n-1 id range.
func BuildPCenteredColoring(g *graphmodel.Graph, p int, opts Options) (*Coloring, error) {
	if p <= 0 || p > unionfind.MaxCombinationSize {
		return nil, fmt.Errorf("%s: p=%d: %w", methodBuild, p, ErrPTooLarge)
	}
	if g.N() == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoVertices)
	}
	if opts.Preprocess != nil {
		g = g.TrimLowAndHighDegree(opts.Preprocess.MinDegree, opts.Preprocess.MaxDegree)
	}

	var tf *tfgraph.TFGraph
	switch opts.Orientation {
	case OrientationSandpile:
		tf = SandpileOrientation(g, opts.VertexWeight)
	default:
		tf = LowDegreeOrientation(g)
	}

	heuristic := opts.heuristicFn()
	chooser := opts.Chooser.fn()
	colorFromOrientation := func(oriented *tfgraph.TFGraph) *Coloring {
		und := orientedToUndirected(oriented, g.N())
		return heuristic(und, chooser)
	}

	maxTriples := opts.MaxTriplesPerVertex
	if maxTriples <= 0 {
		maxTriples = defaultMaxTriplesPerVertex
	}

	col := colorFromOrientation(tf)
	ok, _ := CheckTreeDepth(g, col, p)

	for step := 1; !ok; step++ {
		switch opts.Step {
		case StepTruncatedTransFrater:
			tf = TruncatedAugment(tf, step, maxTriples)
		default:
			tf = Augment(tf, step)
		}
		if opts.Optimization != nil {
			tf = opts.Optimization.Apply(g, tf)
		}
		col = colorFromOrientation(tf)
		ok, _ = CheckTreeDepth(g, col, p)

		if step > g.N()+p {
			// a proper p-centered coloring always exists within O(n) augmentation
			// steps for a graph of bounded expansion; this bound only guards
			// against an invariant violation in the augmentation/coloring
			// interplay, never fires on a conforming input.
			return nil, fmt.Errorf("%s: augmentation did not converge after %d steps", methodBuild, step)
		}
	}

	return MergeColors(g, col, p), nil
}

// orientedToUndirected projects an oriented TFGraph back to its undirected
// skeleton, the graph the coloring heuristics operate on (spec.md §4.1:
// "the coloring is recomputed (greedy ... or DSATUR, or max-degree-first)
// on the undirected projection").
func orientedToUndirected(tf *tfgraph.TFGraph, n int) *graphmodel.Graph {
	g := graphmodel.New()
	for v := 0; v < n; v++ {
		_ = g.AddVertex(v)
	}
	for _, a := range tf.Arcs() {
		_ = g.AddEdge(a.From, a.To)
	}
	return g
}

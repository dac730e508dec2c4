// Package coloring builds p-centered colorings of a host graph: a low-degree
// orientation, iterated transitive/fraternal augmentation, a pluggable
// coloring heuristic, a union-find-backed tree-depth center check, and a
// greedy merge-colors postprocess (spec.md §4.1-§4.4).
package coloring

import "errors"

// Sentinel errors. Callers MUST use errors.Is.
var (
	// ErrPTooLarge indicates the requested depth p exceeds
	// unionfind.MaxCombinationSize, the hard cap imposed by the bit-packed
	// histogram word width (spec.md §9).
	ErrPTooLarge = errors.New("coloring: requested depth p exceeds the union-find field width")

	// ErrNotProperColoring indicates a supplied coloring has an edge
	// joining two same-colored vertices.
	ErrNotProperColoring = errors.New("coloring: coloring is not proper")

	// ErrNotCentered indicates a supplied coloring fails the p-centered
	// check for the requested depth.
	ErrNotCentered = errors.New("coloring: coloring is not p-centered")

	// ErrNoVertices indicates an operation was asked to color an empty graph.
	ErrNoVertices = errors.New("coloring: graph has no vertices")
)

// Package graphmodel defines the host graph G that CONCUSS counts pattern
// occurrences in: an undirected, simple, integer-vertex adjacency-set graph,
// together with the preprocessors that normalize an arbitrary loader's
// output into the dense 0..n-1 id range the counting kernel requires.
//
// graphmodel is adapted from lvlath/core: the same sentinel-error-and-RWMutex
// discipline, ported to small non-negative integer vertex ids instead of
// string ids, since the host graphs CONCUSS counts over arrive already
// id-mapped from a loader (see the format package).
package graphmodel

import "errors"

// Sentinel errors for graphmodel operations. Callers MUST use errors.Is.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graphmodel: vertex not found")

	// ErrSelfLoop indicates an edge endpoint equal to itself was rejected.
	ErrSelfLoop = errors.New("graphmodel: self-loops are not permitted in the counting kernel")

	// ErrNegativeVertex indicates a negative vertex id was supplied.
	ErrNegativeVertex = errors.New("graphmodel: vertex ids must be non-negative")

	// ErrNotNormalized indicates an operation that requires a dense 0..n-1
	// id range was invoked on a graph that has not been normalized.
	ErrNotNormalized = errors.New("graphmodel: graph is not normalized to a dense id range")
)

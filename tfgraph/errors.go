// Package tfgraph implements the oriented, weighted graph used internally by
// the coloring stage (spec.md §3 "Oriented/weighted graph (TFGraph)"): each
// arc u->v carries the augmentation step at which it was introduced, and the
// structure is indexed for fast in-neighbour-by-weight lookup, which the
// weighted transitive/fraternal augmentation variant needs.
//
// Adapted from lvlath/core's directed-edge bookkeeping (core.Edge.Directed,
// core.Graph.adjacencyList) generalized from string to int vertex ids and
// narrowed to the single invariant TFGraph needs: at most one arc per
// ordered pair.
package tfgraph

import "errors"

// ErrArcExists indicates an attempt to add a second arc for the same
// ordered pair; TFGraph enforces at most one arc per (u,v) (spec.md §3).
var ErrArcExists = errors.New("tfgraph: arc already exists for this ordered pair")

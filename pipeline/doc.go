// Package pipeline wires graphmodel, coloring, decompose, pattern, dp and
// combine together into the end-to-end subgraph-counting run spec.md §2
// diagrams: preprocess/normalize, p-centered coloring, the color-set
// sweep, per-component TDD construction, the k-pattern DP table, and the
// count combiner.
package pipeline

// Package concuss counts copies of a small pattern graph inside a larger
// host graph using color-coding: a p-centered coloring of the host lets a
// treedepth decomposition be built per color set, and a k-pattern dynamic
// program walks each decomposition bottom-up to tally embeddings, which a
// combiner folds into a final count.
//
// The pipeline runs in six stages, each its own subpackage:
//
//	graphmodel/ — thread-safe host/pattern graph storage and normalization
//	coloring/   — p-centered coloring construction and verification
//	decompose/  — color-set sweep and per-component treedepth decomposition
//	pattern/    — k-pattern universe (boundary, forget/join) and named builders
//	dp/         — the bottom-up dynamic program over one decomposition
//	combine/    — InclusionExclusion, ColorCount and HybridCount count folding
//
// format/ reads and writes the graph, coloring and pattern file formats;
// config/ maps an INI run configuration onto these packages' option types;
// execdata/ captures a run's intermediate artifacts into a zip archive;
// pipeline/ wires all of the above into one Run call; internal/cli and
// cmd/concuss expose it as a command-line tool.
package concuss

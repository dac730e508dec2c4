// Package execdata writes the execution-data zip archive spec.md §6
// describes: the run's config, graph, and pattern files, a visinfo.cfg
// summary, the largest component's edgelist, its TDD, a DP table dump, and
// per-color-set counts. Capture is only meaningful for a single-pattern run
// using the InclusionExclusion combiner — CheckCompatible enforces that.
package execdata

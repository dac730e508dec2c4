// Package combine implements the count combiners that fold per-TDD,
// per-color-set DP results into a single pattern count (spec.md §4.8).
package combine

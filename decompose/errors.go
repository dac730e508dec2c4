// Package decompose enumerates, for every color set of bounded size, the
// connected components of the host graph induced on that color set, and
// builds a rooted treedepth decomposition (TDD) for each component using
// the ambient p-centered coloring as a guide (spec.md §4.5, §4.6).
package decompose

import "errors"

// ErrNoCenter indicates the TDD builder could not find a vertex whose color
// is unique within the component being decomposed. Per spec.md §4.6 this is
// an internal invariant violation — it indicates a bug in the coloring or
// the sweep, never bad user input — because the sweep only ever hands the
// builder components whose treedepth is already bounded by p.
var ErrNoCenter = errors.New("decompose: no center found while building treedepth decomposition")

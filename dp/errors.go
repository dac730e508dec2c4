// Package dp implements the k-pattern dynamic-programming table: the
// bottom-up post-order evaluation that counts isomorphic copies of the
// pattern graph H rooted at each vertex of a treedepth decomposition
// (spec.md §3 "DP table", §4.7).
package dp

import "errors"

// ErrFieldTooNarrow is the sentinel for a field width too narrow to hold
// n^p occurrences without overflow (spec.md §7 "arithmetic saturation").
// RequiredBits and FitsInInt64 report widths as values and do not return
// it; no function in this package returns it.
var ErrFieldTooNarrow = errors.New("dp: field width insufficient for n^p occurrences")

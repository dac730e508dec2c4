// Package pattern models the pattern graph H and the k-pattern algebra the
// DP stage walks over each treedepth decomposition.
package pattern

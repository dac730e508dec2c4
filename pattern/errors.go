// Package pattern models the pattern graph H, the small subgraph whose
// isomorphic copies in the host graph are being counted, together with the
// k-pattern algebra (spec.md §3 "k-pattern", §4.7) the dynamic program walks
// over each treedepth decomposition.
package pattern

import "errors"

// Sentinel errors for pattern operations. Callers MUST use errors.Is.
var (
	// ErrUnknownPatternName indicates ParseName or TreedepthLowerBoundNamed
	// saw a pattern family name outside the supported mini-language.
	ErrUnknownPatternName = errors.New("pattern: unknown pattern name")

	// ErrInvalidPatternSize indicates a pattern family was asked to build
	// with a size argument outside its valid range (e.g. clique{0}).
	ErrInvalidPatternSize = errors.New("pattern: invalid pattern size")

	// ErrBoundaryTooLarge indicates a k-pattern boundary exceeded k slots.
	ErrBoundaryTooLarge = errors.New("pattern: boundary exceeds k slots")

	// ErrSlotOutOfRange indicates a slot index outside [0,k) was requested.
	ErrSlotOutOfRange = errors.New("pattern: slot index out of range")

	// ErrMismatchedGraph indicates a join was attempted between patterns
	// built over two different pattern graphs.
	ErrMismatchedGraph = errors.New("pattern: patterns reference different pattern graphs")
)

package pipeline

import "errors"

// Sentinel errors for top-level pipeline orchestration. Callers MUST use
// errors.Is.
var (
	// ErrEmptyPattern indicates the pattern graph has no vertices.
	ErrEmptyPattern = errors.New("pipeline: pattern graph has no vertices")

	// ErrSuppliedColoringNotCentered indicates a caller-supplied coloring
	// (the CLI's -c flag) failed proper/p-centered verification and -C was
	// not given to skip it.
	ErrSuppliedColoringNotCentered = errors.New("pipeline: supplied coloring failed verification")
)

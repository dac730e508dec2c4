package config

import "errors"

// Sentinel errors for configuration loading. Callers MUST use errors.Is.
var (
	// ErrInvalidConfig indicates an unrecognised value for a recognised
	// option key.
	ErrInvalidConfig = errors.New("config: invalid option value")
)

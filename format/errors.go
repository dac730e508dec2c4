package format

import "errors"

// Sentinel errors for format operations. Callers MUST use errors.Is.
var (
	// ErrUnknownExtension indicates a filename's extension matches none of
	// the supported graph formats.
	ErrUnknownExtension = errors.New("format: unrecognised file extension")

	// ErrMalformedLine indicates a line did not match its format's expected
	// shape (wrong field count, ...). A field that fails integer parsing
	// yields the underlying strconv error instead of this sentinel.
	ErrMalformedLine = errors.New("format: malformed line")

	// ErrMalformedColoring indicates a coloring file's header did not match
	// its body, or a line lacked the ':' of "vertex: color". A field that
	// fails integer parsing yields the underlying strconv error instead.
	ErrMalformedColoring = errors.New("format: malformed coloring file")

	// ErrMalformedGML indicates a GML file's block structure was unbalanced
	// or a required field (node id, edge source/target) was missing.
	ErrMalformedGML = errors.New("format: malformed GML file")
)

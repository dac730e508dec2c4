package combine

import "errors"

// ErrUnknownKind indicates New was asked for a combiner kind name it does
// not recognise (spec.md §6 "combine.count").
var ErrUnknownKind = errors.New("combine: unknown combiner kind")

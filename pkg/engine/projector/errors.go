package projector

import "errors"

// Binding failures are data-dependent and recoverable: they describe a
// mismatch between a specification and the schema it was bound against.
// They are wrapped with diagnostic context and can be tested with
// [errors.Is]. Precondition violations (out-of-range indices on a bound
// projector, duplicate aliases at construction) panic instead.
var (
	// ErrAttributeMissing is returned when a named lookup failed against the
	// schema actually presented.
	ErrAttributeMissing = errors.New("attribute missing")

	// ErrAttributeCountMismatch is returned when a positional lookup is out
	// of range, or when an alias count does not match a projector's output
	// count.
	ErrAttributeCountMismatch = errors.New("attribute count mismatch")

	// ErrAttributeExists is returned when merging projection components
	// produces a duplicate result attribute name.
	ErrAttributeExists = errors.New("attribute already exists")
)

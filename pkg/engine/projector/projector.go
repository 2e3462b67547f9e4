// Package projector implements the schema-projection and attribute-binding
// layer of the query engine.
//
// A projection is described declaratively as an unbound specification (by
// attribute name, by position, all attributes, renamed, or a composition of
// these) while input schemas are still unknown, and is later bound against
// one or more concrete schemas. Binding validates the specification and
// produces an immutable bound projector that tells downstream operators, for
// every output column, which column of which input feeds it.
package projector

import (
	"fmt"

	"github.com/quiverdb/quiver/pkg/engine/schema"
)

// SingleSourceProjector is an unbound projection specification over a single
// input. Implementations are immutable value objects: Bind is pure and may be
// called repeatedly against different schemas.
type SingleSourceProjector interface {
	fmt.Stringer

	// Bind resolves the specification against the given source schema. It
	// returns a binding failure ([ErrAttributeMissing],
	// [ErrAttributeCountMismatch], or [ErrAttributeExists]) when the schema
	// does not satisfy the specification.
	Bind(source *schema.Schema) (*BoundSingleSourceProjector, error)

	// Clone returns a deep copy of the specification.
	Clone() SingleSourceProjector

	// Describe renders the specification as an infix-like expression string
	// for logging and error messages. The format carries no compatibility
	// guarantee.
	Describe(verbose bool) string
}

// MultiSourceProjector is an unbound projection specification over an ordered
// list of inputs.
type MultiSourceProjector interface {
	fmt.Stringer

	// Bind resolves the specification against the given source schemas.
	Bind(sources []*schema.Schema) (*BoundMultiSourceProjector, error)

	// Clone returns a deep copy of the specification.
	Clone() MultiSourceProjector

	// Describe renders the specification for diagnostics.
	Describe(verbose bool) string
}

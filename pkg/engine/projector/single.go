package projector

import (
	"fmt"
	"slices"
	"strings"

	"github.com/quiverdb/quiver/pkg/engine/schema"
)

// Named creates a projector that selects the single attribute with the given
// name. Binding fails with [ErrAttributeMissing] when the schema has no such
// attribute.
func Named(name string) SingleSourceProjector {
	return &namedAttributeProjector{name: name}
}

type namedAttributeProjector struct {
	name string
}

func (p *namedAttributeProjector) Bind(source *schema.Schema) (*BoundSingleSourceProjector, error) {
	position := source.LookupAttributePosition(p.name)
	if position < 0 {
		return nil, fmt.Errorf("no attribute %q in the schema %s: %w",
			p.name, source, ErrAttributeMissing)
	}
	bound := NewBoundSingleSourceProjector(source)
	bound.Add(position)
	return bound, nil
}

func (p *namedAttributeProjector) Clone() SingleSourceProjector {
	return &namedAttributeProjector{name: p.name}
}

func (p *namedAttributeProjector) Describe(_ bool) string {
	return p.name
}

func (p *namedAttributeProjector) String() string {
	return p.Describe(false)
}

// AttributeAt creates a projector that selects the attribute at the given
// position. Binding fails with [ErrAttributeCountMismatch] when the schema
// has fewer attributes.
func AttributeAt(position int) SingleSourceProjector {
	return &positionedAttributeProjector{position: position}
}

type positionedAttributeProjector struct {
	position int
}

func (p *positionedAttributeProjector) Bind(source *schema.Schema) (*BoundSingleSourceProjector, error) {
	if p.position >= source.AttributeCount() {
		return nil, fmt.Errorf("source schema has too few attributes (%d vs %d): %w",
			source.AttributeCount(), p.position, ErrAttributeCountMismatch)
	}
	bound := NewBoundSingleSourceProjector(source)
	bound.Add(p.position)
	return bound, nil
}

func (p *positionedAttributeProjector) Clone() SingleSourceProjector {
	return &positionedAttributeProjector{position: p.position}
}

func (p *positionedAttributeProjector) Describe(_ bool) string {
	return fmt.Sprintf("AttributeAt(%d)", p.position)
}

func (p *positionedAttributeProjector) String() string {
	return p.Describe(false)
}

// All creates a projector that selects every attribute of the schema, in
// schema order.
func All() SingleSourceProjector {
	return &allAttributesProjector{}
}

// AllWithPrefix creates a projector that selects every attribute of the
// schema, in schema order, prefixing every resulting name with prefix.
func AllWithPrefix(prefix string) SingleSourceProjector {
	return &allAttributesProjector{prefix: prefix}
}

type allAttributesProjector struct {
	prefix string
}

func (p *allAttributesProjector) Bind(source *schema.Schema) (*BoundSingleSourceProjector, error) {
	bound := NewBoundSingleSourceProjector(source)
	for i := 0; i < source.AttributeCount(); i++ {
		if p.prefix == "" {
			bound.Add(i)
		} else {
			bound.AddAs(i, p.prefix+source.Attribute(i).Name)
		}
	}
	return bound, nil
}

func (p *allAttributesProjector) Clone() SingleSourceProjector {
	return &allAttributesProjector{prefix: p.prefix}
}

func (p *allAttributesProjector) Describe(_ bool) string {
	return p.prefix + "*"
}

func (p *allAttributesProjector) String() string {
	return p.Describe(false)
}

// Rename wraps a projector, replacing the names of its outputs with the
// given aliases. Binding fails with [ErrAttributeCountMismatch] when the
// inner projector's output count does not equal the number of aliases.
//
// Aliases must be pairwise unique; a duplicate alias is a programming error
// and panics at construction.
func Rename(aliases []string, source SingleSourceProjector) SingleSourceProjector {
	seen := make(map[string]struct{}, len(aliases))
	for _, alias := range aliases {
		if _, ok := seen[alias]; ok {
			panic(fmt.Sprintf("the provided list of aliases isn't unique: %s",
				strings.Join(aliases, ", ")))
		}
		seen[alias] = struct{}{}
	}
	return &renamingProjector{aliases: slices.Clone(aliases), source: source}
}

type renamingProjector struct {
	aliases []string
	source  SingleSourceProjector
}

func (p *renamingProjector) Bind(source *schema.Schema) (*BoundSingleSourceProjector, error) {
	inner, err := p.source.Bind(source)
	if err != nil {
		return nil, err
	}
	intermediate := inner.ResultSchema()
	if len(p.aliases) != intermediate.AttributeCount() {
		return nil, fmt.Errorf(
			"number of aliases (%d) does not match the attribute count in source schema (%d): %s: %w",
			len(p.aliases), intermediate.AttributeCount(), intermediate, ErrAttributeCountMismatch)
	}
	// Rebuild the projection, replacing the names. Aliases are unique, so
	// the appends cannot collide.
	bound := NewBoundSingleSourceProjector(source)
	for i := 0; i < intermediate.AttributeCount(); i++ {
		bound.AddAs(inner.SourceAttributePosition(i), p.aliases[i])
	}
	return bound, nil
}

func (p *renamingProjector) Clone() SingleSourceProjector {
	return &renamingProjector{aliases: slices.Clone(p.aliases), source: p.source.Clone()}
}

func (p *renamingProjector) Describe(verbose bool) string {
	return fmt.Sprintf("(%s) RENAME AS (%s)",
		p.source.Describe(verbose), strings.Join(p.aliases, ", "))
}

func (p *renamingProjector) String() string {
	return p.Describe(false)
}

// CompoundSingleSourceProjector concatenates the outputs of an ordered
// sequence of projectors bound against the same schema. Binding fails with
// [ErrAttributeExists] when two components produce an output with the same
// name, and fails fast with the first component failure otherwise.
type CompoundSingleSourceProjector struct {
	components []SingleSourceProjector
}

// Compound creates a compound projector from the given components, taking
// ownership of them.
func Compound(components ...SingleSourceProjector) *CompoundSingleSourceProjector {
	return &CompoundSingleSourceProjector{components: components}
}

// Add appends a component and returns the compound projector for chaining.
func (p *CompoundSingleSourceProjector) Add(component SingleSourceProjector) *CompoundSingleSourceProjector {
	p.components = append(p.components, component)
	return p
}

func (p *CompoundSingleSourceProjector) Bind(source *schema.Schema) (*BoundSingleSourceProjector, error) {
	bound := NewBoundSingleSourceProjector(source)
	for _, component := range p.components {
		part, err := component.Bind(source)
		if err != nil {
			return nil, err
		}
		for j := 0; j < part.ResultSchema().AttributeCount(); j++ {
			name := part.ResultSchema().Attribute(j).Name
			if !bound.AddAs(part.SourceAttributePosition(j), name) {
				return nil, fmt.Errorf("duplicate attribute name %q in result schema %s: %w",
					name, bound.ResultSchema(), ErrAttributeExists)
			}
		}
	}
	return bound, nil
}

func (p *CompoundSingleSourceProjector) Clone() SingleSourceProjector {
	clone := &CompoundSingleSourceProjector{components: make([]SingleSourceProjector, len(p.components))}
	for i, component := range p.components {
		clone.components[i] = component.Clone()
	}
	return clone
}

func (p *CompoundSingleSourceProjector) Describe(verbose bool) string {
	rendered := make([]string, len(p.components))
	for i, component := range p.components {
		rendered[i] = component.Describe(verbose)
	}
	return fmt.Sprintf("(%s)", strings.Join(rendered, ", "))
}

func (p *CompoundSingleSourceProjector) String() string {
	return p.Describe(false)
}

// AttributesAt creates a projector that selects the attributes at the given
// positions, in the given order.
func AttributesAt(positions ...int) SingleSourceProjector {
	compound := Compound()
	for _, position := range positions {
		compound.Add(AttributeAt(position))
	}
	return compound
}

// NamedAttributes creates a projector that selects the attributes with the
// given names, in the given order.
func NamedAttributes(names ...string) SingleSourceProjector {
	compound := Compound()
	for _, name := range names {
		compound.Add(Named(name))
	}
	return compound
}

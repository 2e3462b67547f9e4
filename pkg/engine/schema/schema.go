// Package schema describes the shape of the relations a query operates on.
// A schema is an ordered list of named, typed, nullable attributes with
// position lookup by name. Result schemas of projections are built
// incrementally with [Schema.AddAttribute], which enforces name uniqueness.
package schema

import (
	"fmt"
	"strings"

	"github.com/quiverdb/quiver/pkg/engine/datatype"
)

// Attribute is a single column descriptor within a [Schema].
type Attribute struct {
	Name     string
	Type     datatype.DataType
	Nullable bool
}

// String returns a human-readable rendering of the attribute, used in
// diagnostics and error messages.
func (a Attribute) String() string {
	nullability := "NOT NULL"
	if a.Nullable {
		nullability = "NULLABLE"
	}
	return fmt.Sprintf("%s: %s %s", a.Name, a.Type, nullability)
}

// Schema is an ordered sequence of attributes with unique names.
type Schema struct {
	attributes []Attribute
	positions  map[string]int
}

// New creates a schema from the given attributes.
// Attribute names must be unique; a duplicate name is a programming error
// and panics.
func New(attributes ...Attribute) *Schema {
	s := &Schema{
		attributes: make([]Attribute, 0, len(attributes)),
		positions:  make(map[string]int, len(attributes)),
	}
	for _, attribute := range attributes {
		if !s.AddAttribute(attribute) {
			panic(fmt.Sprintf("duplicate attribute name %q in schema", attribute.Name))
		}
	}
	return s
}

// AddAttribute appends an attribute to the schema.
// It returns false without modifying the schema if an attribute with the
// same name already exists.
func (s *Schema) AddAttribute(attribute Attribute) bool {
	if _, ok := s.positions[attribute.Name]; ok {
		return false
	}
	if s.positions == nil {
		s.positions = make(map[string]int)
	}
	s.positions[attribute.Name] = len(s.attributes)
	s.attributes = append(s.attributes, attribute)
	return true
}

// AttributeCount returns the number of attributes in the schema.
func (s *Schema) AttributeCount() int {
	return len(s.attributes)
}

// Attribute returns the attribute at the given position.
// The position must be in range.
func (s *Schema) Attribute(position int) Attribute {
	return s.attributes[position]
}

// LookupAttributePosition returns the position of the attribute with the
// given name, or -1 if the schema has no such attribute.
func (s *Schema) LookupAttributePosition(name string) int {
	position, ok := s.positions[name]
	if !ok {
		return -1
	}
	return position
}

// String returns a human-readable rendering of the schema.
func (s *Schema) String() string {
	rendered := make([]string, len(s.attributes))
	for i, attribute := range s.attributes {
		rendered[i] = attribute.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(rendered, ", "))
}

package schema

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/quiverdb/quiver/pkg/engine/datatype"
)

// ToArrow converts the schema into an Arrow schema, so that bound result
// schemas are directly consumable by an Arrow-based evaluation layer.
func (s *Schema) ToArrow() *arrow.Schema {
	fields := make([]arrow.Field, len(s.attributes))
	for i, attribute := range s.attributes {
		fields[i] = arrow.Field{
			Name:     attribute.Name,
			Type:     datatype.ToArrow[attribute.Type],
			Nullable: attribute.Nullable,
		}
	}
	return arrow.NewSchema(fields, nil)
}

// FromArrow converts an Arrow schema into a [Schema]. It returns an error if
// a field has a data type the engine does not support, or if field names are
// not unique.
func FromArrow(as *arrow.Schema) (*Schema, error) {
	s := &Schema{
		attributes: make([]Attribute, 0, as.NumFields()),
		positions:  make(map[string]int, as.NumFields()),
	}
	for i := range as.NumFields() {
		field := as.Field(i)
		dt, err := datatype.FromArrow(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		if !s.AddAttribute(Attribute{Name: field.Name, Type: dt, Nullable: field.Nullable}) {
			return nil, fmt.Errorf("duplicate field name %q", field.Name)
		}
	}
	return s, nil
}

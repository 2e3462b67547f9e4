package projector

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/quiverdb/quiver/pkg/engine/schema"
)

// SourceAttribute identifies one column in one of the inputs of a projector:
// the attribute at Position within the schema of input Source.
type SourceAttribute struct {
	Source   int
	Position int
}

// Compare orders source attributes by (Source, Position).
func (a SourceAttribute) Compare(b SourceAttribute) int {
	if c := cmp.Compare(a.Source, b.Source); c != 0 {
		return c
	}
	return cmp.Compare(a.Position, b.Position)
}

// BoundMultiSourceProjector is a validated, concrete projection over an
// ordered list of input schemas: an ordered sequence of output attributes,
// each backed by a [SourceAttribute], plus a reverse index from source
// attribute to the output positions that reference it.
//
// A bound projector is built append-only during binding and must be treated
// as immutable afterwards; it is then safe for concurrent reads.
type BoundMultiSourceProjector struct {
	sourceSchemas []*schema.Schema
	projectionMap []SourceAttribute
	reverseMap    map[SourceAttribute][]int
	resultSchema  *schema.Schema
}

// NewBoundMultiSourceProjector creates an empty bound projector over the
// given input schemas.
func NewBoundMultiSourceProjector(sources []*schema.Schema) *BoundMultiSourceProjector {
	return &BoundMultiSourceProjector{
		sourceSchemas: slices.Clone(sources),
		reverseMap:    make(map[SourceAttribute][]int),
		resultSchema:  schema.New(),
	}
}

// SourceCount returns the number of input schemas.
func (p *BoundMultiSourceProjector) SourceCount() int {
	return len(p.sourceSchemas)
}

// SourceSchema returns the input schema at the given index.
func (p *BoundMultiSourceProjector) SourceSchema(source int) *schema.Schema {
	return p.sourceSchemas[source]
}

// SourceSchemas returns a copy of the list of input schemas.
func (p *BoundMultiSourceProjector) SourceSchemas() []*schema.Schema {
	return slices.Clone(p.sourceSchemas)
}

// ResultSchema returns the derived output schema.
func (p *BoundMultiSourceProjector) ResultSchema() *schema.Schema {
	return p.resultSchema
}

// SourceIndex returns which input feeds the output attribute at position i.
func (p *BoundMultiSourceProjector) SourceIndex(i int) int {
	return p.projectionMap[i].Source
}

// SourceAttributePosition returns the position within its input schema of
// the source attribute feeding the output attribute at position i.
func (p *BoundMultiSourceProjector) SourceAttributePosition(i int) int {
	return p.projectionMap[i].Position
}

// Add appends an output attribute that reuses the source attribute's
// original name. It returns false without modifying the projector if the
// result schema already contains that name; fan-out of the same source
// attribute under distinct names is expressed with [BoundMultiSourceProjector.AddAs].
// No synthetic disambiguation is applied.
func (p *BoundMultiSourceProjector) Add(source, position int) bool {
	return p.AddAs(source, position, "")
}

// AddAs appends an output attribute under the given alias, copying the
// source attribute's type and nullability. An empty alias reuses the source
// attribute's name. It returns false without modifying the projector if the
// result schema already contains the name.
//
// Out-of-range source indices or attribute positions are programming errors
// and panic.
func (p *BoundMultiSourceProjector) AddAs(source, position int, alias string) bool {
	if source < 0 || source >= p.SourceCount() {
		panic(fmt.Sprintf("source index %d out of range [0, %d)", source, p.SourceCount()))
	}
	sourceSchema := p.sourceSchemas[source]
	if position < 0 || position >= sourceSchema.AttributeCount() {
		panic(fmt.Sprintf("attribute position %d out of range [0, %d) for source %d",
			position, sourceSchema.AttributeCount(), source))
	}

	attribute := sourceSchema.Attribute(position)
	if alias != "" {
		attribute.Name = alias
	}
	if !p.resultSchema.AddAttribute(attribute) {
		return false
	}

	ref := SourceAttribute{Source: source, Position: position}
	p.reverseMap[ref] = append(p.reverseMap[ref], len(p.projectionMap))
	p.projectionMap = append(p.projectionMap, ref)
	return true
}

// ProjectedAttributePositions returns the output positions, in ascending
// order, that project the given source attribute. The returned slice is
// empty when the attribute is not projected, and must not be modified.
func (p *BoundMultiSourceProjector) ProjectedAttributePositions(source, position int) []int {
	return p.reverseMap[SourceAttribute{Source: source, Position: position}]
}

// IsAttributeProjected reports whether any output attribute projects the
// given source attribute.
func (p *BoundMultiSourceProjector) IsAttributeProjected(source, position int) bool {
	_, ok := p.reverseMap[SourceAttribute{Source: source, Position: position}]
	return ok
}

// NumberOfProjectionsForAttribute returns how many output attributes project
// the given source attribute.
func (p *BoundMultiSourceProjector) NumberOfProjectionsForAttribute(source, position int) int {
	return len(p.reverseMap[SourceAttribute{Source: source, Position: position}])
}

// GetSingleSourceProjector derives a single-source projector containing only
// the outputs that reference the given input, preserving their result names
// and relative order.
func (p *BoundMultiSourceProjector) GetSingleSourceProjector(source int) *BoundSingleSourceProjector {
	result := NewBoundSingleSourceProjector(p.SourceSchema(source))
	for i := 0; i < p.resultSchema.AttributeCount(); i++ {
		if p.SourceIndex(i) == source {
			result.AddAs(p.SourceAttributePosition(i), p.resultSchema.Attribute(i).Name)
		}
	}
	return result
}

// ReferredAttributeNames returns the names of the distinct source attributes
// referenced by the projector, ordered by (source, position). Used by
// expression nodes for dependency analysis.
func (p *BoundMultiSourceProjector) ReferredAttributeNames() []string {
	refs := make([]SourceAttribute, 0, len(p.reverseMap))
	for ref := range p.reverseMap {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, SourceAttribute.Compare)

	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = p.sourceSchemas[ref.Source].Attribute(ref.Position).Name
	}
	return names
}

// BoundSingleSourceProjector is a [BoundMultiSourceProjector] specialized to
// exactly one input schema.
type BoundSingleSourceProjector struct {
	multi BoundMultiSourceProjector
}

// NewBoundSingleSourceProjector creates an empty bound projector over the
// given input schema.
func NewBoundSingleSourceProjector(source *schema.Schema) *BoundSingleSourceProjector {
	return &BoundSingleSourceProjector{multi: *NewBoundMultiSourceProjector([]*schema.Schema{source})}
}

// SourceSchema returns the input schema.
func (p *BoundSingleSourceProjector) SourceSchema() *schema.Schema {
	return p.multi.SourceSchema(0)
}

// ResultSchema returns the derived output schema.
func (p *BoundSingleSourceProjector) ResultSchema() *schema.Schema {
	return p.multi.ResultSchema()
}

// SourceAttributePosition returns the input position of the source attribute
// feeding the output attribute at position i.
func (p *BoundSingleSourceProjector) SourceAttributePosition(i int) int {
	return p.multi.SourceAttributePosition(i)
}

// Add appends an output attribute reusing the source attribute's name.
// See [BoundMultiSourceProjector.Add].
func (p *BoundSingleSourceProjector) Add(position int) bool {
	return p.multi.Add(0, position)
}

// AddAs appends an output attribute under the given alias.
// See [BoundMultiSourceProjector.AddAs].
func (p *BoundSingleSourceProjector) AddAs(position int, alias string) bool {
	return p.multi.AddAs(0, position, alias)
}

// ProjectedAttributePositions returns the output positions that project the
// source attribute at the given position.
func (p *BoundSingleSourceProjector) ProjectedAttributePositions(position int) []int {
	return p.multi.ProjectedAttributePositions(0, position)
}

// IsAttributeProjected reports whether any output attribute projects the
// source attribute at the given position.
func (p *BoundSingleSourceProjector) IsAttributeProjected(position int) bool {
	return p.multi.IsAttributeProjected(0, position)
}

// NumberOfProjectionsForAttribute returns how many output attributes project
// the source attribute at the given position.
func (p *BoundSingleSourceProjector) NumberOfProjectionsForAttribute(position int) int {
	return p.multi.NumberOfProjectionsForAttribute(0, position)
}

// ReferredAttributeNames returns the names of the distinct source attributes
// referenced by the projector, in source position order.
func (p *BoundSingleSourceProjector) ReferredAttributeNames() []string {
	return p.multi.ReferredAttributeNames()
}

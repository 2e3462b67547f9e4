package projector

import (
	"fmt"
	"strings"

	"github.com/quiverdb/quiver/pkg/engine/schema"
)

// CompoundMultiSourceProjector concatenates the outputs of an ordered
// sequence of single-source projectors, each tagged with the input it
// targets. Binding resolves every component against its input schema and
// merges the outputs in order; a duplicate result name fails with
// [ErrAttributeExists].
type CompoundMultiSourceProjector struct {
	components []sourcedProjector
}

type sourcedProjector struct {
	source    int
	projector SingleSourceProjector
}

// CompoundMultiSource creates an empty compound multi-source projector.
func CompoundMultiSource() *CompoundMultiSourceProjector {
	return &CompoundMultiSourceProjector{}
}

// Add appends a component targeting the given input index and returns the
// compound projector for chaining.
func (p *CompoundMultiSourceProjector) Add(source int, component SingleSourceProjector) *CompoundMultiSourceProjector {
	p.components = append(p.components, sourcedProjector{source: source, projector: component})
	return p
}

func (p *CompoundMultiSourceProjector) Bind(sources []*schema.Schema) (*BoundMultiSourceProjector, error) {
	bound := NewBoundMultiSourceProjector(sources)
	for _, component := range p.components {
		part, err := component.projector.Bind(sources[component.source])
		if err != nil {
			return nil, err
		}
		for j := 0; j < part.ResultSchema().AttributeCount(); j++ {
			name := part.ResultSchema().Attribute(j).Name
			if !bound.AddAs(component.source, part.SourceAttributePosition(j), name) {
				return nil, fmt.Errorf("duplicate attribute name %q in result schema %s: %w",
					name, bound.ResultSchema(), ErrAttributeExists)
			}
		}
	}
	return bound, nil
}

func (p *CompoundMultiSourceProjector) Clone() MultiSourceProjector {
	clone := &CompoundMultiSourceProjector{components: make([]sourcedProjector, len(p.components))}
	for i, component := range p.components {
		clone.components[i] = sourcedProjector{
			source:    component.source,
			projector: component.projector.Clone(),
		}
	}
	return clone
}

func (p *CompoundMultiSourceProjector) Describe(verbose bool) string {
	rendered := make([]string, len(p.components))
	for i, component := range p.components {
		rendered[i] = fmt.Sprintf("%d: %s", component.source, component.projector.Describe(verbose))
	}
	return strings.Join(rendered, ", ")
}

func (p *CompoundMultiSourceProjector) String() string {
	return p.Describe(false)
}

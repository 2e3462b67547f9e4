package projector

// DecomposeNth splits a bound multi-source projector with respect to one of
// its inputs, so that a projection can be pushed below that input in an
// execution pipeline. It returns:
//
//   - a rewritten multi-source projector over the same list of input schemas,
//     whose references to the given input are redirected to decomposed
//     positions while all other references are copied unchanged, and
//   - a minimal single-source projector over that input's schema, selecting
//     only the distinct attributes actually referenced, in first-seen order.
//
// Repeated references to the same source attribute collapse to one
// decomposed column and are fanned back out by the rewritten projector:
// the decomposed projector's output count equals the number of distinct
// referenced positions, not the number of references. Substituting the
// decomposed projector's result schema for the input's schema and re-binding
// the rewritten projector against it reproduces the original result schema.
func DecomposeNth(sourceIndex int, p *BoundMultiSourceProjector) (*BoundMultiSourceProjector, *BoundSingleSourceProjector) {
	decomposed := NewBoundSingleSourceProjector(p.SourceSchema(sourceIndex))
	rewritten := NewBoundMultiSourceProjector(p.SourceSchemas())

	// Deduplicates source positions already assigned a decomposed position.
	uniqualizer := make(map[int]int)

	for i := 0; i < p.ResultSchema().AttributeCount(); i++ {
		position := p.SourceAttributePosition(i)
		alias := p.ResultSchema().Attribute(i).Name

		if p.SourceIndex(i) != sourceIndex {
			// Leave unchanged.
			rewritten.AddAs(p.SourceIndex(i), position, alias)
			continue
		}

		decomposedPosition, ok := uniqualizer[position]
		if !ok {
			decomposedPosition = decomposed.ResultSchema().AttributeCount()
			uniqualizer[position] = decomposedPosition
			decomposed.Add(position)
		}
		rewritten.AddAs(sourceIndex, decomposedPosition, alias)
	}

	return rewritten, decomposed
}

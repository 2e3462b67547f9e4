package projector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quiverdb/quiver/pkg/engine/datatype"
	"github.com/quiverdb/quiver/pkg/engine/schema"
)

func wideSchema() *schema.Schema {
	return schema.New(
		schema.Attribute{Name: "col0", Type: datatype.String, Nullable: true},
		schema.Attribute{Name: "col1", Type: datatype.Integer},
		schema.Attribute{Name: "col2", Type: datatype.Float, Nullable: true},
		schema.Attribute{Name: "col3", Type: datatype.Integer},
	)
}

func TestNamed(t *testing.T) {
	t.Run("binds to the attribute with the matching name", func(t *testing.T) {
		bound, err := Named("col2").Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 1, bound.ResultSchema().AttributeCount())
		require.Equal(t, "col2", bound.ResultSchema().Attribute(0).Name)
		require.Equal(t, 2, bound.SourceAttributePosition(0))
	})

	t.Run("fails when the name is absent", func(t *testing.T) {
		_, err := Named("missing").Bind(wideSchema())
		require.ErrorIs(t, err, ErrAttributeMissing)
		require.ErrorContains(t, err, `"missing"`)
		require.ErrorContains(t, err, "col0")
	})
}

func TestAttributeAt(t *testing.T) {
	t.Run("binds to the attribute at the position", func(t *testing.T) {
		bound, err := AttributeAt(3).Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 1, bound.ResultSchema().AttributeCount())
		require.Equal(t, "col3", bound.ResultSchema().Attribute(0).Name)
		require.Equal(t, 3, bound.SourceAttributePosition(0))
	})

	t.Run("fails when the schema has too few attributes", func(t *testing.T) {
		_, err := AttributeAt(4).Bind(wideSchema())
		require.ErrorIs(t, err, ErrAttributeCountMismatch)
	})
}

func TestAll(t *testing.T) {
	t.Run("binds to every attribute in schema order", func(t *testing.T) {
		bound, err := All().Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 4, bound.ResultSchema().AttributeCount())
		for i := 0; i < 4; i++ {
			require.Equal(t, wideSchema().Attribute(i).Name, bound.ResultSchema().Attribute(i).Name)
			require.Equal(t, i, bound.SourceAttributePosition(i))
		}
	})

	t.Run("applies the prefix to every resulting name", func(t *testing.T) {
		bound, err := AllWithPrefix("p_").Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 4, bound.ResultSchema().AttributeCount())
		expected := []string{"p_col0", "p_col1", "p_col2", "p_col3"}
		for i, name := range expected {
			require.Equal(t, name, bound.ResultSchema().Attribute(i).Name)
			require.Equal(t, i, bound.SourceAttributePosition(i))
		}
	})
}

func TestRename(t *testing.T) {
	t.Run("rebuilds the projection over the aliases", func(t *testing.T) {
		bound, err := Rename([]string{"a", "b"}, AttributesAt(3, 1)).Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 2, bound.ResultSchema().AttributeCount())
		require.Equal(t, "a", bound.ResultSchema().Attribute(0).Name)
		require.Equal(t, "b", bound.ResultSchema().Attribute(1).Name)
		require.Equal(t, 3, bound.SourceAttributePosition(0))
		require.Equal(t, 1, bound.SourceAttributePosition(1))
	})

	t.Run("fails when alias count does not match output count", func(t *testing.T) {
		_, err := Rename([]string{"a", "b", "c"}, AttributesAt(3, 1)).Bind(wideSchema())
		require.ErrorIs(t, err, ErrAttributeCountMismatch)
		require.ErrorContains(t, err, "aliases (3)")
	})

	t.Run("propagates the inner failure unchanged", func(t *testing.T) {
		_, err := Rename([]string{"a"}, Named("missing")).Bind(wideSchema())
		require.ErrorIs(t, err, ErrAttributeMissing)
	})

	t.Run("panics on duplicate aliases at construction", func(t *testing.T) {
		require.Panics(t, func() { Rename([]string{"a", "a"}, All()) })
	})
}

func TestCompound(t *testing.T) {
	t.Run("merges component outputs in order", func(t *testing.T) {
		spec := Compound(Named("col3"), AttributeAt(0))
		bound, err := spec.Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 2, bound.ResultSchema().AttributeCount())
		require.Equal(t, "col3", bound.ResultSchema().Attribute(0).Name)
		require.Equal(t, "col0", bound.ResultSchema().Attribute(1).Name)
	})

	t.Run("fails when two components produce the same name", func(t *testing.T) {
		input := schema.New(
			schema.Attribute{Name: "x", Type: datatype.Integer},
			schema.Attribute{Name: "y", Type: datatype.Integer},
		)
		spec := Compound(
			Rename([]string{"x"}, AttributeAt(1)),
			Named("x"),
		)
		_, err := spec.Bind(input)
		require.ErrorIs(t, err, ErrAttributeExists)
		require.ErrorContains(t, err, `"x"`)
	})

	t.Run("fails fast on the first component failure", func(t *testing.T) {
		spec := Compound(Named("missing"), AttributeAt(99))
		_, err := spec.Bind(wideSchema())
		require.ErrorIs(t, err, ErrAttributeMissing)
	})
}

func TestConvenienceProjectors(t *testing.T) {
	t.Run("AttributesAt", func(t *testing.T) {
		bound, err := AttributesAt(2, 0).Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 2, bound.ResultSchema().AttributeCount())
		require.Equal(t, 2, bound.SourceAttributePosition(0))
		require.Equal(t, 0, bound.SourceAttributePosition(1))
	})

	t.Run("NamedAttributes", func(t *testing.T) {
		bound, err := NamedAttributes("col1", "col0").Bind(wideSchema())
		require.NoError(t, err)
		require.Equal(t, 2, bound.ResultSchema().AttributeCount())
		require.Equal(t, "col1", bound.ResultSchema().Attribute(0).Name)
		require.Equal(t, "col0", bound.ResultSchema().Attribute(1).Name)
	})
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		spec     SingleSourceProjector
		expected string
	}{
		{
			name:     "named",
			spec:     Named("col1"),
			expected: "col1",
		},
		{
			name:     "positioned",
			spec:     AttributeAt(3),
			expected: "AttributeAt(3)",
		},
		{
			name:     "all",
			spec:     All(),
			expected: "*",
		},
		{
			name:     "all with prefix",
			spec:     AllWithPrefix("p_"),
			expected: "p_*",
		},
		{
			name:     "renaming",
			spec:     Rename([]string{"a", "b", "c"}, All()),
			expected: "(*) RENAME AS (a, b, c)",
		},
		{
			name:     "compound",
			spec:     Compound(Named("col0"), AttributeAt(1)),
			expected: "(col0, AttributeAt(1))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.spec.Describe(false))
			require.Equal(t, tt.expected, tt.spec.String())
		})
	}
}

func TestClone(t *testing.T) {
	original := Compound(
		Rename([]string{"a", "b"}, AttributesAt(3, 1)),
		Named("col0"),
	)
	clone := original.Clone()
	require.Equal(t, original.String(), clone.String())

	// The clone is a deep copy: growing the original does not affect it.
	original.Add(AttributeAt(2))
	require.NotEqual(t, original.String(), clone.String())

	bound, err := clone.Bind(wideSchema())
	require.NoError(t, err)
	require.Equal(t, 3, bound.ResultSchema().AttributeCount())
}

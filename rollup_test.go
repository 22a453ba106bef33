package notion2bases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spandigital/notion2bases"
	"github.com/spandigital/notion2bases/test"
)

func TestCompileRollup(t *testing.T) {
	tests := []struct {
		name     string
		function string
		relation string
		target   string
		want     string
		wantErr  bool
	}{
		{
			name:     "count without target property",
			function: "count",
			relation: "Tasks",
			want:     `note["Tasks"].length`,
		},
		{
			name:     "count ignores the target property",
			function: "count",
			relation: "Tasks",
			target:   "Done",
			want:     `note["Tasks"].length`,
		},
		{
			name:     "show original maps the target property",
			function: "show_original",
			relation: "Tasks",
			target:   "Done",
			want:     `note["Tasks"].map(value["Done"])`,
		},
		{
			name:     "show original without target is the relation itself",
			function: "show_original",
			relation: "Tasks",
			want:     `note["Tasks"]`,
		},
		{
			name:     "unique values",
			function: "show_unique",
			relation: "Tasks",
			target:   "Owner",
			want:     `note["Tasks"].map(value["Owner"]).unique()`,
		},
		{
			name:     "count values flattens",
			function: "count_values",
			relation: "Tasks",
			target:   "Labels",
			want:     `note["Tasks"].map(value["Labels"]).flat().length`,
		},
		{
			name:     "count unique",
			function: "count_unique",
			relation: "Tasks",
			target:   "Owner",
			want:     `note["Tasks"].map(value["Owner"]).unique().length`,
		},
		{
			name:     "count empty",
			function: "empty",
			relation: "Tasks",
			target:   "Done",
			want:     `note["Tasks"].map(value["Done"]).filter(value.isEmpty()).length`,
		},
		{
			name:     "count not empty",
			function: "not_empty",
			relation: "Tasks",
			target:   "Done",
			want:     `note["Tasks"].map(value["Done"]).filter(!value.isEmpty()).length`,
		},
		{
			name:     "percent empty",
			function: "percent_empty",
			relation: "Tasks",
			target:   "Done",
			want:     `(note["Tasks"].map(value["Done"]).filter(value.isEmpty()).length / note["Tasks"].length * 100)`,
		},
		{
			name:     "percent not empty",
			function: "percent_not_empty",
			relation: "Tasks",
			target:   "Done",
			want:     `(note["Tasks"].map(value["Done"]).filter(!value.isEmpty()).length / note["Tasks"].length * 100)`,
		},
		{
			name:     "earliest date",
			function: "earliest_date",
			relation: "Meetings",
			target:   "When",
			want:     `note["Meetings"].map(value["When"]).sort()[0]`,
		},
		{
			name:     "latest date",
			function: "latest_date",
			relation: "Meetings",
			target:   "When",
			want:     `note["Meetings"].map(value["When"]).sort()[-1]`,
		},
		{
			name:     "date range concatenates formatted bounds",
			function: "date_range",
			relation: "Meetings",
			target:   "When",
			want:     `(note["Meetings"].map(value["When"]).sort()[0].format("YYYY-MM-DD") + " - " + note["Meetings"].map(value["When"]).sort()[-1].format("YYYY-MM-DD"))`,
		},
		{
			name:     "unknown aggregation",
			function: "standard_deviation",
			relation: "Tasks",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := notion2bases.CompileRollup(tt.function, tt.relation, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, notion2bases.ErrUnknownAggregation)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileRollupFor(t *testing.T) {
	props := test.NewProjectSchema()

	t.Run("relation resolved through the schema", func(t *testing.T) {
		got, err := notion2bases.CompileRollupFor(props, "rUp")
		require.NoError(t, err)
		assert.Equal(t, `note["Tasks"].length`, got)
	})

	t.Run("relation and target names from the rollup config", func(t *testing.T) {
		got, err := notion2bases.CompileRollupFor(props, "rUp2")
		require.NoError(t, err)
		assert.Equal(t, `note["Tasks"].map(value["Done"]).filter(value.isEmpty()).length`, got)
	})

	t.Run("non rollup property", func(t *testing.T) {
		_, err := notion2bases.CompileRollupFor(props, "p%3AAa")
		assert.ErrorIs(t, err, notion2bases.ErrNotRollup)
	})

	t.Run("unknown property id", func(t *testing.T) {
		_, err := notion2bases.CompileRollupFor(props, "nope")
		assert.ErrorIs(t, err, notion2bases.ErrNotRollup)
	})
}

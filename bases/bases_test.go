package bases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spandigital/notion2bases/bases"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Price", want: "price"},
		{name: "spaces become underscores", in: "Due date", want: "due_date"},
		{name: "punctuation collapses", in: "Cost ($ / unit)", want: "cost_unit"},
		{name: "leading and trailing runs trimmed", in: "  %% Total %%  ", want: "total"},
		{name: "digits kept", in: "Q3 2025", want: "q3_2025"},
		{name: "empty falls back", in: "???", want: "property"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bases.SanitizeKey(tt.in))
		})
	}
}

func TestNewEntry(t *testing.T) {
	entry := bases.NewEntry("Due date", `note["Due date"] + "7d"`)
	assert.Equal(t, "due_date", entry.Key)
	assert.Equal(t, "Due date", entry.Name)
	assert.Equal(t, `note["Due date"] + "7d"`, entry.Formula)
}

package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spandigital/notion2bases/schema"
)

const descriptor = `{
  "properties": {
    "Price": {"id": "pr%3A", "type": "number"},
    "Name": {"id": "title", "type": "title"},
    "Total": {
      "id": "fRm",
      "type": "formula",
      "formula": {"expression": "multiply(ref(\"Price\"), 2)"}
    },
    "Tasks": {"id": "rEl", "type": "relation"},
    "Task count": {
      "id": "rUp",
      "type": "rollup",
      "rollup": {
        "relation_property_id": "rEl",
        "relation_property_name": "Tasks",
        "rollup_property_id": "dn",
        "rollup_property_name": "Done",
        "function": "count"
      }
    }
  }
}`

func TestParse(t *testing.T) {
	props, err := schema.Parse(strings.NewReader(descriptor))
	require.NoError(t, err)
	require.Len(t, props, 5)

	price, ok := props["pr%3A"]
	require.True(t, ok)
	assert.Equal(t, "Price", price.Name)
	assert.Equal(t, "number", price.Type)
	assert.Nil(t, price.Rollup)

	total, ok := props["fRm"]
	require.True(t, ok)
	assert.Equal(t, "formula", total.Type)
	assert.Equal(t, `multiply(ref("Price"), 2)`, total.Formula)

	rollup, ok := props["rUp"]
	require.True(t, ok)
	require.NotNil(t, rollup.Rollup)
	assert.Equal(t, "rEl", rollup.Rollup.RelationID)
	assert.Equal(t, "Tasks", rollup.Rollup.RelationName)
	assert.Equal(t, "Done", rollup.Rollup.TargetName)
	assert.Equal(t, "count", rollup.Rollup.Function)
}

func TestParseBytes(t *testing.T) {
	props, err := schema.ParseBytes([]byte(descriptor))
	require.NoError(t, err)
	name, ok := props.Name("rEl")
	require.True(t, ok)
	assert.Equal(t, "Tasks", name)
}

func TestParseInvalid(t *testing.T) {
	_, err := schema.Parse(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestSchemaAccessors(t *testing.T) {
	props, err := schema.ParseBytes([]byte(descriptor))
	require.NoError(t, err)

	_, ok := props.Name("missing")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"fRm"}, props.Formulas())
	assert.ElementsMatch(t, []string{"rUp"}, props.Rollups())
}

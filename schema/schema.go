// Package schema supplies note-database property schemas to the formula
// translator. A schema maps property identifiers to their name, type, and,
// for aggregate properties, the rollup configuration. Schemas are plain
// read-only data: the note-database client that produced the export owns
// their lifecycle.
package schema

// Property describes one database property from the export descriptor.
type Property struct {
	ID   string
	Name string
	Type string

	// Formula carries the source-language expression of a computed
	// property; empty for every other type.
	Formula string

	// Rollup is set for aggregate properties only.
	Rollup *Rollup
}

// Rollup is the configuration of an aggregate property: the relation
// property that supplies the related records, the property aggregated
// across them, and the aggregation function id. Exports ship both ids and
// display names; either may be empty depending on the export version.
type Rollup struct {
	RelationID   string
	RelationName string
	TargetID     string
	TargetName   string
	Function     string
}

// Schema maps property id to property.
type Schema map[string]Property

// Name resolves a property id to its display name.
func (s Schema) Name(id string) (string, bool) {
	prop, ok := s[id]
	if !ok {
		return "", false
	}
	return prop.Name, true
}

// Formulas returns the ids of every formula property in the schema.
func (s Schema) Formulas() []string {
	var ids []string
	for id, prop := range s {
		if prop.Type == "formula" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Rollups returns the ids of every rollup property in the schema.
func (s Schema) Rollups() []string {
	var ids []string
	for id, prop := range s {
		if prop.Rollup != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

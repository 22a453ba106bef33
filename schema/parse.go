package schema

import (
	"encoding/json"
	"fmt"
	"io"
)

// database mirrors the part of the export's database descriptor the
// translator needs. Properties are keyed by display name in the descriptor;
// the parsed schema re-keys them by id.
type database struct {
	Properties map[string]struct {
		ID      string `json:"id"`
		Type    string `json:"type"`
		Formula *struct {
			Expression string `json:"expression"`
		} `json:"formula,omitempty"`
		Rollup *struct {
			RelationPropertyID   string `json:"relation_property_id"`
			RelationPropertyName string `json:"relation_property_name"`
			RollupPropertyID     string `json:"rollup_property_id"`
			RollupPropertyName   string `json:"rollup_property_name"`
			Function             string `json:"function"`
		} `json:"rollup,omitempty"`
	} `json:"properties"`
}

// Parse reads a database descriptor from the note-database export and
// returns its property schema keyed by property id.
func Parse(r io.Reader) (Schema, error) {
	var db database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf("failed to decode database descriptor: %w", err)
	}
	return fromDatabase(db), nil
}

func fromDatabase(db database) Schema {
	schema := make(Schema, len(db.Properties))
	for name, raw := range db.Properties {
		prop := Property{
			ID:   raw.ID,
			Name: name,
			Type: raw.Type,
		}
		if raw.Formula != nil {
			prop.Formula = raw.Formula.Expression
		}
		if raw.Rollup != nil {
			prop.Rollup = &Rollup{
				RelationID:   raw.Rollup.RelationPropertyID,
				RelationName: raw.Rollup.RelationPropertyName,
				TargetID:     raw.Rollup.RollupPropertyID,
				TargetName:   raw.Rollup.RollupPropertyName,
				Function:     raw.Rollup.Function,
			}
		}
		schema[prop.ID] = prop
	}
	return schema
}

// ParseBytes is Parse over an in-memory descriptor.
func ParseBytes(data []byte) (Schema, error) {
	var db database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to decode database descriptor: %w", err)
	}
	return fromDatabase(db), nil
}

// Package test provides canned property schemas shared by the test suites
// and examples.
package test

import (
	"github.com/spandigital/notion2bases/schema"
)

// NewProjectSchema returns the property schema of a small project-tracking
// database: plain properties, a formula, a relation, and rollups over it.
func NewProjectSchema() schema.Schema {
	return schema.Schema{
		"p%3AAa": {
			ID:   "p%3AAa",
			Name: "Price",
			Type: "number",
		},
		"q%7CZz": {
			ID:   "q%7CZz",
			Name: "Quantity",
			Type: "number",
		},
		"t~tLe": {
			ID:   "t~tLe",
			Name: "Name",
			Type: "title",
		},
		"dUe": {
			ID:   "dUe",
			Name: "Due date",
			Type: "date",
		},
		"fRm": {
			ID:      "fRm",
			Name:    "Total",
			Type:    "formula",
			Formula: `multiply({{source:block_property:p%3AAa:number}}, {{source:block_property:q%7CZz:number}})`,
		},
		"rEl": {
			ID:   "rEl",
			Name: "Tasks",
			Type: "relation",
		},
		"rUp": {
			ID:   "rUp",
			Name: "Task count",
			Type: "rollup",
			Rollup: &schema.Rollup{
				RelationID: "rEl",
				TargetID:   "xYz",
				TargetName: "Done",
				Function:   "count",
			},
		},
		"rUp2": {
			ID:   "rUp2",
			Name: "Open tasks",
			Type: "rollup",
			Rollup: &schema.Rollup{
				RelationID:   "rEl",
				RelationName: "Tasks",
				TargetID:     "xYz",
				TargetName:   "Done",
				Function:     "empty",
			},
		},
	}
}

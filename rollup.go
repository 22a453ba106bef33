package notion2bases

import (
	"errors"
	"fmt"

	"github.com/spandigital/notion2bases/schema"
)

// ErrUnknownAggregation reports a rollup aggregation function id with no
// target-language rendering. The surrounding schema writer is expected to
// omit the property.
var ErrUnknownAggregation = errors.New("unknown aggregation function")

// ErrNotRollup reports that a schema property passed to CompileRollupFor is
// not an aggregate property.
var ErrNotRollup = errors.New("property is not a rollup")

// CompileRollup synthesizes a target-language formula that performs the
// cross-record aggregation described by a rollup configuration: the named
// relation property supplies the related records, targetProperty (optional)
// selects the value aggregated per record, and function picks the reducer.
// Unknown function ids produce a logged warning and ErrUnknownAggregation,
// never a panic.
func CompileRollup(function, relationProperty, targetProperty string) (string, error) {
	collection := PropertyAccess(relationProperty)
	values := collection
	if targetProperty != "" {
		values = collection + ".map(value[\"" + escapeName(targetProperty) + "\"])"
	}
	switch function {
	case "show_original":
		return values, nil
	case "show_unique", "unique":
		return values + ".unique()", nil
	case "count", "count_all":
		return collection + ".length", nil
	case "count_values":
		return values + ".flat().length", nil
	case "count_unique", "count_unique_values":
		return values + ".unique().length", nil
	case "empty", "count_empty":
		return values + ".filter(value.isEmpty()).length", nil
	case "not_empty", "count_not_empty":
		return values + ".filter(!value.isEmpty()).length", nil
	case "percent_empty":
		return "(" + values + ".filter(value.isEmpty()).length / " + collection + ".length * 100)", nil
	case "percent_not_empty":
		return "(" + values + ".filter(!value.isEmpty()).length / " + collection + ".length * 100)", nil
	case "earliest_date":
		return values + ".sort()[0]", nil
	case "latest_date":
		return values + ".sort()[-1]", nil
	case "date_range":
		earliest := values + `.sort()[0].format("YYYY-MM-DD")`
		latest := values + `.sort()[-1].format("YYYY-MM-DD")`
		return "(" + earliest + ` + " - " + ` + latest + ")", nil
	default:
		logger.Warn("skipping rollup with unknown aggregation",
			"function", function, "relation", relationProperty, "target", targetProperty)
		return "", fmt.Errorf("%w: %s", ErrUnknownAggregation, function)
	}
}

// CompileRollupFor compiles the rollup configuration of one schema property,
// resolving the relation and target property ids to names through the same
// schema.
func CompileRollupFor(props schema.Schema, propertyID string) (string, error) {
	prop, ok := props[propertyID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotRollup, propertyID)
	}
	if prop.Rollup == nil {
		return "", fmt.Errorf("%w: %s", ErrNotRollup, prop.Name)
	}
	relation := prop.Rollup.RelationName
	if relation == "" {
		relation, ok = props.Name(prop.Rollup.RelationID)
		if !ok {
			return "", fmt.Errorf("rollup %q: relation property %s not in schema", prop.Name, prop.Rollup.RelationID)
		}
	}
	// The target property lives in the related database, so the export's
	// display name is authoritative; the id is only a same-schema fallback.
	target := prop.Rollup.TargetName
	if target == "" {
		target, _ = props.Name(prop.Rollup.TargetID)
	}
	return CompileRollup(prop.Rollup.Function, relation, target)
}

package variant

import (
	"sort"

	"github.com/forgeui/backend/internal/blueprint"
)

// Axis is one materialized variant dimension.
type Axis struct {
	Name    string
	Values  []string
	Default string
}

// Table is the expanded style table for one blueprint.
type Table struct {
	Axes        []Axis
	HasVariants bool
}

// Expand builds the style table from a blueprint's variant declarations.
// Axes are ordered by name so output is stable across calls; values keep
// their declared order and the first declared value is the axis default.
func Expand(bp *blueprint.Blueprint) Table {
	if len(bp.Variants) == 0 {
		return Table{}
	}

	names := make([]string, 0, len(bp.Variants))
	for name := range bp.Variants {
		names = append(names, name)
	}
	sort.Strings(names)

	axes := make([]Axis, 0, len(names))
	for _, name := range names {
		values := bp.Variants[name]
		axes = append(axes, Axis{
			Name:    name,
			Values:  values,
			Default: values[0],
		})
	}

	return Table{Axes: axes, HasVariants: true}
}

// Style returns the style fragment for an axis/value pair, falling back to
// the empty string when the blueprint declares no fragment for it.
func Style(bp *blueprint.Blueprint, axis, value string) string {
	return bp.Styles.AxisStyle(axis, value)
}

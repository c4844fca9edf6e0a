// Package blueprint defines the framework-agnostic component description
// that every generator backend consumes.
//
// A Blueprint names a component, declares its base element, its variant
// axes with ordered value lists, per-axis style fragments, and any extra
// props and slots. Style buckets are classified once at ingestion into a
// tagged form (base literal, per-axis map, or extra literal) so backends
// pattern-match instead of re-deriving bucket meaning from key names.
package blueprint

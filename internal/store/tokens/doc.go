// Package tokens owns the single design-token document shared by all
// generated components.
//
// Tokens live in one JSON file grouped by category (colors, spacing,
// typography, radii, shadows, motion). Reads of a missing document return
// the built-in defaults; writes shallow-merge at the category level, so an
// update replaces the categories it names and leaves the rest untouched.
package tokens

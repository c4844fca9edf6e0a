// Package vocab holds the fixed lookup tables consulted during generation.
//
// Two tables exist: the base-element table mapping abstract base keys to
// concrete host element tags, and the prop-type table mapping prop names to
// semantic value types. Both are built once at startup, are immutable, and
// resolve unknown keys through a documented fallback instead of erroring.
package vocab

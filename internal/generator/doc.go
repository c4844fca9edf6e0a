// Package generator turns blueprints into source code for one of six UI
// framework targets.
//
// Each target is a single-pass emitter behind the Backend interface.
// Dispatch is a closed switch over the Target enum so adding or removing a
// target is compiler-checked. Backends share the vocabulary tables and the
// expanded variant table but own their target's idiom entirely: imports,
// variant representation, prop typing, and component shape.
//
// Emission never fails for a structurally valid blueprint: unknown base
// keys, unknown prop names, and empty variant sets all resolve through
// documented fallbacks.
package generator

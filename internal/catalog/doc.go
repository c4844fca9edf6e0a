// Package catalog holds the fixed library of pre-authored blueprints for
// common UI patterns.
//
// Entries are seeds: lookup hands out a deep copy the caller may edit
// before generation. An unrecognized pattern key resolves to the default
// entry instead of an error. Extra patterns can be seeded from a directory
// of YAML files at startup.
package catalog

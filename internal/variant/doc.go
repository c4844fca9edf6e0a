// Package variant materializes a blueprint's declarative style axes into
// the concrete table every backend walks.
//
// Expansion is a pure transform: identical input yields identical output on
// every call, with no shared state between calls.
package variant

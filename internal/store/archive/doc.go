// Package archive persists named blueprints as flat JSON files.
//
// The store owns a single directory: one file per blueprint, keyed by the
// caller-chosen name. Saves overwrite, reads of absent names report a
// not-found error by message, and there is no versioning.
package archive

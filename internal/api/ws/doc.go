// Package ws serves the live-preview websocket: clients push blueprint
// edits and receive regenerated source per target.
package ws

// Package http provides the gin HTTP handlers: generation, pattern
// catalogue, blueprint archive, design tokens, and service execution.
package http

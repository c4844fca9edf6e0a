// Package middleware provides gin middleware: CORS, per-IP rate
// limiting, and request ID propagation.
package middleware

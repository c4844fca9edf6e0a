// Package config loads backend configuration from environment variables
// with sensible defaults for local development.
package config

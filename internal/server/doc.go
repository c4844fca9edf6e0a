// Package server wires configuration, the generation engine, stores,
// providers, and the gin router into a runnable HTTP server.
package server

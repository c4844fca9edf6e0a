// Package types provides shared data structures for the ForgeUI backend.
//
// This package defines the service-provider contract used across all
// backend components.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - GenerateRequest: Component source generation
//   - ExecuteRequest: Service tool execution
//   - WSMessage: WebSocket communication
package types

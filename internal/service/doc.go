// Package service provides the service registry for ForgeUI provider
// management.
//
// The registry maintains a catalog of available service providers and
// routes tool execution to them.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(forgeProvider)
//	result, err := registry.Execute(ctx, "forge.generate", params, reqCtx)
package service

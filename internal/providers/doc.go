// Package providers implements the service provider system for ForgeUI.
//
// Service providers expose backend capabilities through a standardized
// tool-based interface. Each provider wraps one collaborator of the
// generation engine.
//
// Available Providers:
//   - Forge: Component source generation, targets, pattern catalogue
//   - Archive: Durable named blueprint storage
//   - Tokens: The shared design-token document
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	forge := forge.NewProvider(engine, catalog)
//	result, err := forge.Execute(ctx, "forge.generate", params, reqCtx)
package providers

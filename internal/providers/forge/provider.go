package forge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeui/backend/internal/catalog"
	"github.com/forgeui/backend/internal/generator"
	"github.com/forgeui/backend/internal/shared/types"
)

// Provider exposes the generation engine and pattern catalogue as a
// service.
type Provider struct {
	engine  *generator.Engine
	catalog *catalog.Catalog
}

// NewProvider creates a forge provider.
func NewProvider(engine *generator.Engine, catalog *catalog.Catalog) *Provider {
	return &Provider{engine: engine, catalog: catalog}
}

// Definition returns service metadata
func (f *Provider) Definition() types.Service {
	return types.Service{
		ID:          "forge",
		Name:        "Component Forge",
		Description: "Generate UI component source code from blueprints",
		Category:    types.CategoryGenerator,
		Capabilities: []string{
			"generate",
			"targets",
			"patterns",
		},
		Tools: []types.Tool{
			{
				ID:          "forge.generate",
				Name:        "Generate Component",
				Description: "Generate source code for a blueprint against one target",
				Parameters: []types.Parameter{
					{Name: "blueprint", Type: "object", Description: "Blueprint definition", Required: true},
					{Name: "target", Type: "string", Description: "Target identifier", Required: false},
					{Name: "with_types", Type: "boolean", Description: "Emit type annotations", Required: false},
					{Name: "with_docs", Type: "boolean", Description: "Emit documentation header", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "forge.generate_all",
				Name:        "Generate All Targets",
				Description: "Generate source code for a blueprint against every target",
				Parameters: []types.Parameter{
					{Name: "blueprint", Type: "object", Description: "Blueprint definition", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "forge.targets",
				Name:        "List Targets",
				Description: "List the recognized target identifiers",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "forge.patterns",
				Name:        "List Patterns",
				Description: "List the pattern catalogue keys",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "forge.pattern",
				Name:        "Get Pattern",
				Description: "Look up a catalogue pattern by key",
				Parameters: []types.Parameter{
					{Name: "key", Type: "string", Description: "Pattern key", Required: true},
				},
				Returns: "Blueprint",
			},
		},
	}
}

// Execute runs a forge operation
func (f *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "forge.generate":
		return f.generate(params)
	case "forge.generate_all":
		return f.generateAll(params)
	case "forge.targets":
		return f.targets()
	case "forge.patterns":
		return f.patterns()
	case "forge.pattern":
		return f.pattern(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (f *Provider) generate(params map[string]interface{}) (*types.Result, error) {
	content, err := blueprintParam(params)
	if err != nil {
		return failure(err.Error())
	}

	target, _ := params["target"].(string)
	opts := optionsFromParams(params)

	source, err := f.engine.GenerateJSON(content, generator.Target(target), opts)
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{
		"target": string(resolveTarget(target)),
		"source": source,
	})
}

func (f *Provider) generateAll(params map[string]interface{}) (*types.Result, error) {
	content, err := blueprintParam(params)
	if err != nil {
		return failure(err.Error())
	}

	opts := optionsFromParams(params)
	sources := make(map[string]interface{}, len(generator.Targets()))
	for _, target := range generator.Targets() {
		source, err := f.engine.GenerateJSON(content, target, opts)
		if err != nil {
			return failure(err.Error())
		}
		sources[string(target)] = source
	}

	return success(map[string]interface{}{"sources": sources})
}

func (f *Provider) targets() (*types.Result, error) {
	targets := generator.Targets()
	ids := make([]string, len(targets))
	for i, t := range targets {
		ids[i] = string(t)
	}
	return success(map[string]interface{}{"targets": ids, "count": len(ids)})
}

func (f *Provider) patterns() (*types.Result, error) {
	keys := f.catalog.Keys()
	return success(map[string]interface{}{"patterns": keys, "count": len(keys)})
}

func (f *Provider) pattern(params map[string]interface{}) (*types.Result, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return failure("key parameter required")
	}

	bp := f.catalog.Lookup(key)
	return success(map[string]interface{}{
		"key":       key,
		"known":     f.catalog.Has(key),
		"blueprint": bp,
	})
}

// blueprintParam extracts the blueprint parameter as JSON bytes, accepting
// both an inline object and a JSON string.
func blueprintParam(params map[string]interface{}) ([]byte, error) {
	raw, ok := params["blueprint"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("blueprint parameter required")
	}

	switch v := raw.(type) {
	case string:
		return []byte(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize blueprint: %v", err)
		}
		return data, nil
	}
}

func optionsFromParams(params map[string]interface{}) generator.Options {
	opts := generator.DefaultOptions()
	if v, ok := params["with_types"].(bool); ok {
		opts.WithTypes = v
	}
	if v, ok := params["with_docs"].(bool); ok {
		opts.WithDocs = v
	}
	return opts
}

// resolveTarget mirrors the engine's permissive dispatch so responses name
// the backend that actually ran.
func resolveTarget(target string) generator.Target {
	for _, t := range generator.Targets() {
		if string(t) == target {
			return t
		}
	}
	return generator.TargetReactTailwind
}

// Helper functions
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{Success: false, Error: &errMsg}, nil
}

package tokens

import (
	"context"
	"fmt"

	"github.com/forgeui/backend/internal/shared/types"
	"github.com/forgeui/backend/internal/store/tokens"
)

// Provider exposes the design-token document as a service.
type Provider struct {
	store *tokens.Store
}

// NewProvider creates a tokens provider.
func NewProvider(store *tokens.Store) *Provider {
	return &Provider{store: store}
}

// Definition returns service metadata
func (t *Provider) Definition() types.Service {
	return types.Service{
		ID:          "tokens",
		Name:        "Design Tokens",
		Description: "Shared design-token document for generated components",
		Category:    types.CategoryDesign,
		Capabilities: []string{
			"get",
			"category",
			"merge",
			"reset",
		},
		Tools: []types.Tool{
			{
				ID:          "tokens.get",
				Name:        "Get Tokens",
				Description: "Read the full token document",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "tokens.category",
				Name:        "Get Category",
				Description: "Read one token category",
				Parameters: []types.Parameter{
					{Name: "category", Type: "string", Description: "Category name", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "tokens.merge",
				Name:        "Merge Tokens",
				Description: "Shallow-merge categories into the token document",
				Parameters: []types.Parameter{
					{Name: "tokens", Type: "object", Description: "Categories to merge", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "tokens.reset",
				Name:        "Reset Tokens",
				Description: "Restore the built-in default token set",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a tokens operation
func (t *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "tokens.get":
		return t.get()
	case "tokens.category":
		return t.category(params)
	case "tokens.merge":
		return t.merge(params)
	case "tokens.reset":
		return t.reset()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (t *Provider) get() (*types.Result, error) {
	doc, err := t.store.Load()
	if err != nil {
		return failure(err.Error())
	}
	return success(map[string]interface{}{"tokens": doc})
}

func (t *Provider) category(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["category"].(string)
	if !ok || name == "" {
		return failure("category parameter required")
	}

	category, err := t.store.Category(name)
	if err != nil {
		return failure(err.Error())
	}
	return success(map[string]interface{}{"category": name, "tokens": category})
}

func (t *Provider) merge(params map[string]interface{}) (*types.Result, error) {
	raw, ok := params["tokens"].(map[string]interface{})
	if !ok {
		return failure("tokens parameter must be an object")
	}

	incoming := make(tokens.Document, len(raw))
	for category, values := range raw {
		valueMap, ok := values.(map[string]interface{})
		if !ok {
			return failure(fmt.Sprintf("category %q must be an object", category))
		}
		converted := make(map[string]string, len(valueMap))
		for token, value := range valueMap {
			str, ok := value.(string)
			if !ok {
				return failure(fmt.Sprintf("token %s.%s must be a string", category, token))
			}
			converted[token] = str
		}
		incoming[category] = converted
	}

	doc, err := t.store.Merge(incoming)
	if err != nil {
		return failure(err.Error())
	}
	return success(map[string]interface{}{"merged": true, "tokens": doc})
}

func (t *Provider) reset() (*types.Result, error) {
	doc, err := t.store.Reset()
	if err != nil {
		return failure(err.Error())
	}
	return success(map[string]interface{}{"reset": true, "tokens": doc})
}

// Helper functions
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{Success: false, Error: &errMsg}, nil
}

package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/shared/types"
	"github.com/forgeui/backend/internal/store/archive"
)

// Provider exposes the blueprint archive as a service.
type Provider struct {
	store *archive.Store
}

// NewProvider creates an archive provider.
func NewProvider(store *archive.Store) *Provider {
	return &Provider{store: store}
}

// Definition returns service metadata
func (a *Provider) Definition() types.Service {
	return types.Service{
		ID:          "archive",
		Name:        "Blueprint Archive",
		Description: "Durable named storage for blueprints",
		Category:    types.CategoryStorage,
		Capabilities: []string{
			"save",
			"get",
			"list",
			"remove",
		},
		Tools: []types.Tool{
			{
				ID:          "archive.save",
				Name:        "Save Blueprint",
				Description: "Store a blueprint under a name, overwriting any previous entry",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Archive name", Required: true},
					{Name: "blueprint", Type: "object", Description: "Blueprint definition", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "archive.get",
				Name:        "Get Blueprint",
				Description: "Read an archived blueprint by name",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Archive name", Required: true},
				},
				Returns: "Blueprint",
			},
			{
				ID:          "archive.list",
				Name:        "List Blueprints",
				Description: "List all archived blueprint names",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "archive.remove",
				Name:        "Remove Blueprint",
				Description: "Delete an archived blueprint by name",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Archive name", Required: true},
				},
				Returns: "boolean",
			},
		},
	}
}

// Execute runs an archive operation
func (a *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "archive.save":
		return a.save(params)
	case "archive.get":
		return a.get(params)
	case "archive.list":
		return a.list()
	case "archive.remove":
		return a.remove(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (a *Provider) save(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}

	raw, ok := params["blueprint"]
	if !ok || raw == nil {
		return failure("blueprint parameter required")
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return failure(fmt.Sprintf("failed to serialize blueprint: %v", err))
	}

	bp, err := blueprint.Parse(data)
	if err != nil {
		return failure(err.Error())
	}

	if err := a.store.Save(name, bp); err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{"saved": true, "name": name})
}

func (a *Provider) get(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}

	bp, err := a.store.Load(name)
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{"name": name, "blueprint": bp})
}

func (a *Provider) list() (*types.Result, error) {
	names, err := a.store.List()
	if err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{"blueprints": names, "count": len(names)})
}

func (a *Provider) remove(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}

	if err := a.store.Delete(name); err != nil {
		return failure(err.Error())
	}

	return success(map[string]interface{}{"deleted": true, "name": name})
}

// Helper functions
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{Success: false, Error: &errMsg}, nil
}

package tokens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeui/backend/internal/store/tokens"
)

func newProvider(t *testing.T) *Provider {
	t.Helper()
	store, err := tokens.New(t.TempDir())
	require.NoError(t, err)
	return NewProvider(store)
}

func TestGetReturnsDefaults(t *testing.T) {
	p := newProvider(t)

	result, err := p.Execute(context.Background(), "tokens.get", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	doc := result.Data["tokens"].(tokens.Document)
	assert.Equal(t, "#3b82f6", doc["colors"]["primary"])
}

func TestCategoryRequiresParam(t *testing.T) {
	p := newProvider(t)

	result, err := p.Execute(context.Background(), "tokens.category", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestMergeConvertsAndApplies(t *testing.T) {
	p := newProvider(t)

	result, err := p.Execute(context.Background(), "tokens.merge", map[string]interface{}{
		"tokens": map[string]interface{}{
			"colors": map[string]interface{}{"primary": "#111111"},
		},
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	doc := result.Data["tokens"].(tokens.Document)
	assert.Equal(t, "#111111", doc["colors"]["primary"])
}

func TestMergeRejectsNonStringValues(t *testing.T) {
	p := newProvider(t)

	result, err := p.Execute(context.Background(), "tokens.merge", map[string]interface{}{
		"tokens": map[string]interface{}{
			"spacing": map[string]interface{}{"md": 16},
		},
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, *result.Error, "must be a string")
}

func TestReset(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	_, err := p.Execute(ctx, "tokens.merge", map[string]interface{}{
		"tokens": map[string]interface{}{
			"colors": map[string]interface{}{"primary": "#111111"},
		},
	}, nil)
	require.NoError(t, err)

	result, err := p.Execute(ctx, "tokens.reset", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	doc := result.Data["tokens"].(tokens.Document)
	assert.Equal(t, "#3b82f6", doc["colors"]["primary"])
}

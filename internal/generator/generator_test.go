package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/vocab"
)

const buttonJSON = `{
	"name": "Button",
	"kind": "fragment",
	"base": "button",
	"variants": {
		"intent": ["primary", "secondary"],
		"size": ["md", "sm"]
	},
	"styles": {
		"base": "inline-flex items-center justify-center rounded-md",
		"intent": {"primary": "bg-blue-600 text-white", "secondary": "bg-gray-100"},
		"size": {"md": "h-10 px-4", "sm": "h-8 px-3"}
	},
	"props": ["children", "loading"]
}`

func newEngine() *Engine {
	return New(vocab.New())
}

func mustParse(t *testing.T, content string) *blueprint.Blueprint {
	t.Helper()
	bp, err := blueprint.Parse([]byte(content))
	require.NoError(t, err)
	return bp
}

func TestTargetsFixedOrder(t *testing.T) {
	assert.Equal(t, []Target{
		TargetReactTailwind,
		TargetStyledComponents,
		TargetCSSModules,
		TargetVue,
		TargetSolid,
		TargetHTML,
	}, Targets())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.WithTypes)
	assert.True(t, opts.WithDocs)
}

func TestUnknownTargetFallsBackToTailwind(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)
	opts := DefaultOptions()

	fallback := engine.Generate(bp, Target("svelte"), opts)
	tailwind := engine.Generate(bp, TargetReactTailwind, opts)

	assert.Equal(t, tailwind, fallback)
	assert.Contains(t, fallback, "class-variance-authority")
}

func TestGenerateDeterministic(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)
	opts := DefaultOptions()

	for _, target := range Targets() {
		first := engine.Generate(bp, target, opts)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, engine.Generate(bp, target, opts), "target %s", target)
		}
	}
}

func TestGenerateJSONRejectsInvalidBlueprint(t *testing.T) {
	engine := newEngine()

	source, err := engine.GenerateJSON([]byte(`{"base": "button"}`), TargetReactTailwind, DefaultOptions())
	require.Error(t, err)
	assert.Empty(t, source)
	assert.Contains(t, err.Error(), "name is required")
}

func TestGenerateJSONMalformed(t *testing.T) {
	engine := newEngine()

	source, err := engine.GenerateJSON([]byte(`not json`), TargetVue, DefaultOptions())
	require.Error(t, err)
	assert.Empty(t, source)
}

func TestGenerateUsesNameVerbatim(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, `{"name": "DataGridToolbar", "base": "container"}`)

	source := engine.Generate(bp, TargetReactTailwind, DefaultOptions())
	assert.Contains(t, source, "const DataGridToolbar = React.forwardRef")
	assert.Contains(t, source, `DataGridToolbar.displayName = "DataGridToolbar";`)
}

func TestWithDocsDisabled(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)
	opts := Options{WithTypes: true, WithDocs: false}

	for _, target := range []Target{TargetReactTailwind, TargetStyledComponents, TargetCSSModules, TargetSolid} {
		source := engine.Generate(bp, target, opts)
		assert.NotContains(t, source, "/**", "target %s", target)
	}
	for _, target := range []Target{TargetVue, TargetHTML} {
		source := engine.Generate(bp, target, opts)
		assert.NotContains(t, source, "<!--\n  Button", "target %s", target)
	}
}

func TestWithTypesDisabled(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)
	opts := Options{WithTypes: false, WithDocs: true}

	for _, target := range []Target{TargetReactTailwind, TargetStyledComponents, TargetCSSModules, TargetSolid} {
		source := engine.Generate(bp, target, opts)
		assert.NotContains(t, source, "interface ButtonProps", "target %s", target)
	}

	vue := engine.Generate(bp, TargetVue, opts)
	assert.Contains(t, vue, "<script setup>")
	assert.NotContains(t, vue, "lang=\"ts\"")
}

func TestUnknownBaseFallsBackToDiv(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, `{"name": "Widget", "base": "holo-panel"}`)

	source := engine.Generate(bp, TargetHTML, Options{})
	assert.Contains(t, source, "<div")
}

func TestDocHeaderListsVariantAxes(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)

	source := engine.Generate(bp, TargetReactTailwind, DefaultOptions())
	assert.Contains(t, source, " * Button - fragment component.")
	idx := strings.Index(source, " * - intent: primary | secondary")
	require.Positive(t, idx)
	assert.Greater(t, strings.Index(source, " * - size: md | sm"), idx)
}

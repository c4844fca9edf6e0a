package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLEmitsBlockPerVariantValue(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)

	source := engine.Generate(bp, TargetHTML, Options{WithDocs: false})

	// One base block plus one block per value, never the cross-product.
	assert.Equal(t, 1, strings.Count(source, "<!-- base -->"))
	assert.Contains(t, source, "<!-- intent: primary -->")
	assert.Contains(t, source, "<!-- intent: secondary -->")
	assert.Contains(t, source, "<!-- size: md -->")
	assert.Contains(t, source, "<!-- size: sm -->")
	assert.Equal(t, 5, strings.Count(source, "<button"))
}

func TestHTMLCombinesBaseWithValueFragment(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)

	source := engine.Generate(bp, TargetHTML, Options{WithDocs: false})

	assert.Contains(t, source, `class="inline-flex items-center justify-center rounded-md bg-blue-600 text-white"`)
	assert.Contains(t, source, `class="inline-flex items-center justify-center rounded-md h-8 px-3"`)
	assert.NotContains(t, source, "bg-blue-600 text-white h-10")
}

func TestHTMLVoidElementSelfCloses(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, `{"name": "Field", "base": "input", "styles": {"base": "h-10"}}`)

	source := engine.Generate(bp, TargetHTML, Options{})

	assert.Contains(t, source, `<input class="h-10" />`)
	assert.NotContains(t, source, "</input>")
}

func TestHTMLDocHeader(t *testing.T) {
	engine := newEngine()
	bp := mustParse(t, buttonJSON)

	source := engine.Generate(bp, TargetHTML, DefaultOptions())

	assert.True(t, strings.HasPrefix(source, "<!--\n  Button - fragment component."))
	assert.Contains(t, source, "- intent: primary | secondary")
}

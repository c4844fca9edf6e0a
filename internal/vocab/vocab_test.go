package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementResolution(t *testing.T) {
	tables := New()

	tests := []struct {
		base string
		tag  string
	}{
		{"button", "button"},
		{"checkbox", "input"},
		{"link", "a"},
		{"image", "img"},
		{"data-grid", "table"},
		{"modal", "div"},
		{"heading", "h2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.tag, tables.Element(tt.base), "base %q", tt.base)
	}
}

func TestElementFallback(t *testing.T) {
	tables := New()

	assert.Equal(t, FallbackElement, tables.Element("holo-panel"))
	assert.Equal(t, FallbackElement, tables.Element(""))
}

func TestPropResolution(t *testing.T) {
	tables := New()

	assert.Equal(t, PropString, tables.Prop("placeholder"))
	assert.Equal(t, PropBool, tables.Prop("loading"))
	assert.Equal(t, PropNode, tables.Prop("icon"))
	assert.Equal(t, PropStringHandler, tables.Prop("onChange"))
	assert.Equal(t, PropHandler, tables.Prop("onClose"))
	assert.Equal(t, PropOptions, tables.Prop("columns"))
}

func TestPropFallback(t *testing.T) {
	tables := New()

	assert.Equal(t, PropAny, tables.Prop("telemetryBlob"))
}

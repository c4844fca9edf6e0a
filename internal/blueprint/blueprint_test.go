package blueprint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	content := []byte(`{
		"name": "PrimaryButton",
		"kind": "fragment",
		"base": "button",
		"variants": {
			"intent": ["primary", "secondary"],
			"size": ["md", "sm"]
		},
		"styles": {
			"base": "inline-flex items-center",
			"intent": {"primary": "bg-blue-600", "secondary": "bg-gray-100"},
			"size": {"md": "h-10 px-4", "sm": "h-8 px-3"}
		},
		"props": ["children", "onClick", "loading"]
	}`)

	bp, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "PrimaryButton", bp.Name)
	assert.Equal(t, KindFragment, bp.Kind)
	assert.Equal(t, "button", bp.Base)
	assert.Len(t, bp.Variants, 2)
	assert.Equal(t, "inline-flex items-center", bp.Styles.Base)
	assert.Equal(t, "bg-blue-600", bp.Styles.AxisStyle("intent", "primary"))
	assert.Equal(t, "h-8 px-3", bp.Styles.AxisStyle("size", "sm"))
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse([]byte(`{"base": "button"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestParseEmptyAxis(t *testing.T) {
	_, err := Parse([]byte(`{"name": "Badge", "variants": {"tone": []}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no values")
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"name": `))
	require.Error(t, err)
}

func TestParseKindDefaultsToFragment(t *testing.T) {
	bp, err := Parse([]byte(`{"name": "Card"}`))
	require.NoError(t, err)
	assert.Equal(t, KindFragment, bp.Kind)
}

func TestParseClassifiesExtraBuckets(t *testing.T) {
	content := []byte(`{
		"name": "Select",
		"base": "select",
		"styles": {
			"base": "w-full",
			"trigger": "flex h-10 items-center"
		}
	}`)

	bp, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "w-full", bp.Styles.Base)
	assert.Equal(t, "flex h-10 items-center", bp.Styles.Extra["trigger"])
}

func TestParseDropsUndeclaredNestedBucket(t *testing.T) {
	content := []byte(`{
		"name": "Badge",
		"variants": {"tone": ["info"]},
		"styles": {
			"tone": {"info": "bg-sky-100"},
			"phantom": {"x": "unused"}
		}
	}`)

	bp, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "bg-sky-100", bp.Styles.AxisStyle("tone", "info"))
	assert.Empty(t, bp.Styles.AxisStyle("phantom", "x"))
	assert.NotContains(t, bp.Styles.Extra, "phantom")
}

func TestAxisStyleMissingResolvesEmpty(t *testing.T) {
	bp, err := Parse([]byte(`{"name": "Badge", "variants": {"tone": ["info", "warn"]}, "styles": {"tone": {"info": "bg-sky-100"}}}`))
	require.NoError(t, err)

	assert.Equal(t, "", bp.Styles.AxisStyle("tone", "warn"))
	assert.Equal(t, "", bp.Styles.AxisStyle("missing", "x"))
}

func TestCustomPropsFiltersReserved(t *testing.T) {
	bp := &Blueprint{
		Name:  "Input",
		Props: []string{"children", "onClick", "disabled", "className", "placeholder", "onChange"},
	}

	assert.Equal(t, []string{"placeholder", "onChange"}, bp.CustomProps())
}

func TestReserved(t *testing.T) {
	assert.True(t, Reserved("children"))
	assert.True(t, Reserved("className"))
	assert.False(t, Reserved("placeholder"))
}

func TestStylesRoundTrip(t *testing.T) {
	bp, err := Parse([]byte(`{
		"name": "Alert",
		"variants": {"tone": ["info", "danger"]},
		"styles": {
			"base": "rounded border p-4",
			"tone": {"info": "border-sky-200", "danger": "border-red-200"},
			"icon": "mr-2"
		}
	}`))
	require.NoError(t, err)

	data, err := json.Marshal(bp)
	require.NoError(t, err)

	var restored Blueprint
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, bp.Styles.Base, restored.Styles.Base)
	assert.Equal(t, bp.Styles.Axes, restored.Styles.Axes)
	assert.Equal(t, bp.Styles.Extra, restored.Styles.Extra)
}

func TestCloneIsIndependent(t *testing.T) {
	bp, err := Parse([]byte(`{
		"name": "Button",
		"variants": {"size": ["md", "sm"]},
		"styles": {"base": "inline-flex", "size": {"md": "h-10", "sm": "h-8"}},
		"props": ["children"]
	}`))
	require.NoError(t, err)

	clone := bp.Clone()
	clone.Name = "Mutated"
	clone.Variants["size"][0] = "xl"
	clone.Styles.Axes["size"]["md"] = "h-12"
	clone.Props[0] = "altered"

	assert.Equal(t, "Button", bp.Name)
	assert.Equal(t, "md", bp.Variants["size"][0])
	assert.Equal(t, "h-10", bp.Styles.Axes["size"]["md"])
	assert.Equal(t, "children", bp.Props[0])
}

package vocab

// PropType classifies the semantic value type of a component prop.
type PropType string

const (
	PropString        PropType = "string"
	PropBool          PropType = "boolean"
	PropNode          PropType = "node"
	PropStringHandler PropType = "string_handler"
	PropHandler       PropType = "handler"
	PropOptions       PropType = "options"
	PropAny           PropType = "any"
)

// Tables bundles the two vocabulary tables. Built once, read-only after.
type Tables struct {
	elements  map[string]string
	propTypes map[string]PropType
}

// FallbackElement is the host element used for unknown base keys.
const FallbackElement = "div"

// New creates the vocabulary tables.
func New() *Tables {
	return &Tables{
		elements: map[string]string{
			"button":    "button",
			"input":     "input",
			"textarea":  "textarea",
			"select":    "select",
			"checkbox":  "input",
			"label":     "label",
			"link":      "a",
			"image":     "img",
			"text":      "span",
			"heading":   "h2",
			"paragraph": "p",
			"list":      "ul",
			"list-item": "li",
			"form":      "form",
			"nav":       "nav",
			"data-grid": "table",
			"card":      "div",
			"modal":     "div",
			"container": "div",
		},
		propTypes: map[string]PropType{
			"label":       PropString,
			"placeholder": PropString,
			"title":       PropString,
			"description": PropString,
			"href":        PropString,
			"src":         PropString,
			"alt":         PropString,
			"name":        PropString,
			"value":       PropString,
			"disabled":    PropBool,
			"loading":     PropBool,
			"open":        PropBool,
			"checked":     PropBool,
			"required":    PropBool,
			"readonly":    PropBool,
			"selected":    PropBool,
			"fullWidth":   PropBool,
			"icon":        PropNode,
			"children":    PropNode,
			"header":      PropNode,
			"footer":      PropNode,
			"trigger":     PropNode,
			"onChange":    PropStringHandler,
			"onInput":     PropStringHandler,
			"onSearch":    PropStringHandler,
			"onSelect":    PropStringHandler,
			"onClick":     PropHandler,
			"onClose":     PropHandler,
			"onOpen":      PropHandler,
			"onSubmit":    PropHandler,
			"onToggle":    PropHandler,
			"options":     PropOptions,
			"items":       PropOptions,
			"columns":     PropOptions,
		},
	}
}

// Element resolves a base key to its host element tag.
// Unknown keys fall back to a generic container.
func (t *Tables) Element(base string) string {
	if tag, ok := t.elements[base]; ok {
		return tag
	}
	return FallbackElement
}

// Prop resolves a prop name to its semantic type.
// Unknown names fall back to the unconstrained type.
func (t *Tables) Prop(name string) PropType {
	if pt, ok := t.propTypes[name]; ok {
		return pt
	}
	return PropAny
}

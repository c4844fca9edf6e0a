package catalog

import (
	"sort"
	"sync"

	"github.com/forgeui/backend/internal/blueprint"
)

// DefaultPattern is handed out for unrecognized pattern keys.
const DefaultPattern = "button"

// Catalog is the pattern library. Built-in entries are fixed; Seed may add
// entries from disk at startup.
type Catalog struct {
	mu       sync.RWMutex
	patterns map[string]*blueprint.Blueprint
}

// New creates a catalog populated with the built-in patterns.
func New() *Catalog {
	return &Catalog{patterns: builtins()}
}

// Lookup returns a copy of the named pattern, or the default entry when the
// key is unrecognized. Never errors.
func (c *Catalog) Lookup(key string) *blueprint.Blueprint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if bp, ok := c.patterns[key]; ok {
		return bp.Clone()
	}
	return c.patterns[DefaultPattern].Clone()
}

// Has reports whether a pattern key exists.
func (c *Catalog) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.patterns[key]
	return ok
}

// Keys returns all pattern keys in sorted order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.patterns))
	for key := range c.patterns {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// add registers a pattern under a key. Used by the seeder.
func (c *Catalog) add(key string, bp *blueprint.Blueprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns[key] = bp
}

func builtins() map[string]*blueprint.Blueprint {
	return map[string]*blueprint.Blueprint{
		"button": {
			Name: "Button",
			Kind: blueprint.KindFragment,
			Base: "button",
			Variants: map[string][]string{
				"intent": {"primary", "secondary", "danger", "ghost"},
				"size":   {"md", "sm", "lg"},
			},
			Styles: blueprint.Styles{
				Base: "inline-flex items-center justify-center rounded-md font-medium transition-colors disabled:pointer-events-none disabled:opacity-50",
				Axes: map[string]map[string]string{
					"intent": {
						"primary":   "bg-blue-600 text-white hover:bg-blue-700",
						"secondary": "bg-gray-100 text-gray-900 hover:bg-gray-200",
						"danger":    "bg-red-600 text-white hover:bg-red-700",
						"ghost":     "hover:bg-gray-100 hover:text-gray-900",
					},
					"size": {
						"md": "h-10 px-4 py-2 text-sm",
						"sm": "h-8 px-3 text-xs",
						"lg": "h-12 px-6 text-base",
					},
				},
			},
			Props: []string{"loading", "icon"},
		},
		"input": {
			Name: "Input",
			Kind: blueprint.KindFragment,
			Base: "input",
			Variants: map[string][]string{
				"size": {"md", "sm", "lg"},
			},
			Styles: blueprint.Styles{
				Base: "flex w-full rounded-md border border-gray-300 bg-white focus-visible:outline-none focus-visible:ring-2 disabled:cursor-not-allowed disabled:opacity-50",
				Axes: map[string]map[string]string{
					"size": {
						"md": "h-10 px-3 py-2 text-sm",
						"sm": "h-8 px-2 text-xs",
						"lg": "h-12 px-4 text-base",
					},
				},
			},
			Props: []string{"placeholder", "value", "onChange"},
		},
		"select": {
			Name: "Select",
			Kind: blueprint.KindCompound,
			Base: "select",
			Variants: map[string][]string{
				"size": {"md", "sm", "lg"},
			},
			Styles: blueprint.Styles{
				Base: "flex w-full appearance-none rounded-md border border-gray-300 bg-white",
				Axes: map[string]map[string]string{
					"size": {
						"md": "h-10 px-3 text-sm",
						"sm": "h-8 px-2 text-xs",
						"lg": "h-12 px-4 text-base",
					},
				},
				Extra: map[string]string{
					"trigger": "flex items-center justify-between gap-2",
				},
			},
			Props: []string{"options", "value", "onSelect", "placeholder"},
			Slots: []string{"option"},
		},
		"checkbox": {
			Name: "Checkbox",
			Kind: blueprint.KindFragment,
			Base: "checkbox",
			Styles: blueprint.Styles{
				Base: "h-4 w-4 shrink-0 rounded border border-gray-300 accent-blue-600",
			},
			Props: []string{"checked", "label", "onToggle"},
		},
		"badge": {
			Name: "Badge",
			Kind: blueprint.KindFragment,
			Base: "text",
			Variants: map[string][]string{
				"intent": {"neutral", "success", "warning", "danger"},
			},
			Styles: blueprint.Styles{
				Base: "inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-semibold",
				Axes: map[string]map[string]string{
					"intent": {
						"neutral": "bg-gray-100 text-gray-800",
						"success": "bg-green-100 text-green-800",
						"warning": "bg-yellow-100 text-yellow-800",
						"danger":  "bg-red-100 text-red-800",
					},
				},
			},
		},
		"card": {
			Name: "Card",
			Kind: blueprint.KindCompound,
			Base: "card",
			Variants: map[string][]string{
				"padding": {"md", "none", "lg"},
			},
			Styles: blueprint.Styles{
				Base: "rounded-lg border border-gray-200 bg-white shadow-sm",
				Axes: map[string]map[string]string{
					"padding": {
						"md":   "p-4",
						"none": "",
						"lg":   "p-6",
					},
				},
			},
			Props: []string{"title", "footer"},
			Slots: []string{"header", "body", "footer"},
		},
		"alert": {
			Name: "Alert",
			Kind: blueprint.KindCompound,
			Base: "container",
			Variants: map[string][]string{
				"intent": {"info", "success", "warning", "danger"},
			},
			Styles: blueprint.Styles{
				Base: "relative w-full rounded-lg border p-4 text-sm",
				Axes: map[string]map[string]string{
					"intent": {
						"info":    "border-blue-200 bg-blue-50 text-blue-900",
						"success": "border-green-200 bg-green-50 text-green-900",
						"warning": "border-yellow-200 bg-yellow-50 text-yellow-900",
						"danger":  "border-red-200 bg-red-50 text-red-900",
					},
				},
			},
			Props: []string{"title", "icon", "onClose"},
		},
		"modal": {
			Name: "Modal",
			Kind: blueprint.KindCompound,
			Base: "modal",
			Variants: map[string][]string{
				"size": {"md", "sm", "lg", "full"},
			},
			Styles: blueprint.Styles{
				Base: "fixed left-1/2 top-1/2 z-50 -translate-x-1/2 -translate-y-1/2 rounded-lg bg-white p-6 shadow-lg",
				Axes: map[string]map[string]string{
					"size": {
						"md":   "w-full max-w-lg",
						"sm":   "w-full max-w-sm",
						"lg":   "w-full max-w-2xl",
						"full": "h-screen w-screen max-w-none rounded-none",
					},
				},
				Extra: map[string]string{
					"overlay": "fixed inset-0 z-40 bg-black/50",
				},
			},
			Props: []string{"open", "title", "onClose"},
			Slots: []string{"header", "body", "footer"},
		},
		"tabs": {
			Name: "Tabs",
			Kind: blueprint.KindCompound,
			Base: "nav",
			Variants: map[string][]string{
				"orientation": {"horizontal", "vertical"},
			},
			Styles: blueprint.Styles{
				Base: "inline-flex items-center justify-center rounded-md bg-gray-100 p-1",
				Axes: map[string]map[string]string{
					"orientation": {
						"horizontal": "flex-row",
						"vertical":   "flex-col",
					},
				},
				Extra: map[string]string{
					"trigger": "inline-flex items-center justify-center whitespace-nowrap rounded-sm px-3 py-1.5 text-sm font-medium",
				},
			},
			Props:       []string{"items", "value", "onSelect"},
			Slots:       []string{"tab", "panel"},
			Composition: []string{"TabList", "TabTrigger", "TabPanel"},
		},
		"data-table": {
			Name: "DataTable",
			Kind: blueprint.KindStructure,
			Base: "data-grid",
			Variants: map[string][]string{
				"density": {"compact", "normal", "comfortable"},
			},
			Styles: blueprint.Styles{
				Base: "w-full caption-bottom border-collapse text-sm",
				Axes: map[string]map[string]string{
					"density": {
						"compact":     "[&_td]:py-1 [&_th]:py-1",
						"normal":      "[&_td]:py-2 [&_th]:py-2",
						"comfortable": "[&_td]:py-4 [&_th]:py-4",
					},
				},
				Extra: map[string]string{
					"header": "border-b bg-gray-50 font-medium text-gray-500",
					"row":    "border-b transition-colors hover:bg-gray-50",
				},
			},
			Props:       []string{"columns", "items", "onSelect"},
			Slots:       []string{"header", "row", "empty"},
			Composition: []string{"TableHeader", "TableRow", "TableCell"},
		},
		"avatar": {
			Name: "Avatar",
			Kind: blueprint.KindFragment,
			Base: "image",
			Variants: map[string][]string{
				"size": {"md", "sm", "lg"},
			},
			Styles: blueprint.Styles{
				Base: "relative shrink-0 overflow-hidden rounded-full",
				Axes: map[string]map[string]string{
					"size": {
						"md": "h-10 w-10",
						"sm": "h-8 w-8",
						"lg": "h-14 w-14",
					},
				},
			},
			Props: []string{"src", "alt"},
		},
		"tooltip": {
			Name: "Tooltip",
			Kind: blueprint.KindFragment,
			Base: "text",
			Variants: map[string][]string{
				"placement": {"top", "bottom", "left", "right"},
			},
			Styles: blueprint.Styles{
				Base: "z-50 overflow-hidden rounded-md bg-gray-900 px-3 py-1.5 text-xs text-white shadow-md",
				Axes: map[string]map[string]string{
					"placement": {
						"top":    "mb-2",
						"bottom": "mt-2",
						"left":   "mr-2",
						"right":  "ml-2",
					},
				},
			},
			Props: []string{"label", "open"},
		},
	}
}

package generator

import (
	"fmt"
	"strings"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/variant"
	"github.com/forgeui/backend/internal/vocab"
)

// hostType pairs a host element's DOM interface with its React attribute
// type. Solid reuses the same attribute names under its JSX namespace.
type hostType struct {
	attrs string
	elem  string
}

var hostTypes = map[string]hostType{
	"button":   {"ButtonHTMLAttributes", "HTMLButtonElement"},
	"input":    {"InputHTMLAttributes", "HTMLInputElement"},
	"textarea": {"TextareaHTMLAttributes", "HTMLTextAreaElement"},
	"select":   {"SelectHTMLAttributes", "HTMLSelectElement"},
	"a":        {"AnchorHTMLAttributes", "HTMLAnchorElement"},
	"img":      {"ImgHTMLAttributes", "HTMLImageElement"},
	"form":     {"FormHTMLAttributes", "HTMLFormElement"},
	"table":    {"TableHTMLAttributes", "HTMLTableElement"},
	"label":    {"LabelHTMLAttributes", "HTMLLabelElement"},
	"li":       {"LiHTMLAttributes", "HTMLLIElement"},
	"ul":       {"HTMLAttributes", "HTMLUListElement"},
	"span":     {"HTMLAttributes", "HTMLSpanElement"},
	"p":        {"HTMLAttributes", "HTMLParagraphElement"},
	"h2":       {"HTMLAttributes", "HTMLHeadingElement"},
	"nav":      {"HTMLAttributes", "HTMLElement"},
	"div":      {"HTMLAttributes", "HTMLDivElement"},
}

func hostTypeFor(tag string) hostType {
	if ht, ok := hostTypes[tag]; ok {
		return ht
	}
	return hostType{"HTMLAttributes", "HTMLElement"}
}

// voidElements have no children in markup output.
var voidElements = map[string]bool{
	"input": true,
	"img":   true,
}

// union renders variant values as a TypeScript literal union.
func union(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " | ")
}

// lowerFirst lowercases the leading rune for derived identifiers such as
// primaryButtonVariants.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// tsType renders a semantic prop type in TypeScript, with the renderable
// type varying per target (React.ReactNode, JSX.Element, ...).
func tsType(pt vocab.PropType, nodeType string) string {
	switch pt {
	case vocab.PropString:
		return "string"
	case vocab.PropBool:
		return "boolean"
	case vocab.PropNode:
		return nodeType
	case vocab.PropStringHandler:
		return "(value: string) => void"
	case vocab.PropHandler:
		return "() => void"
	case vocab.PropOptions:
		return "{ label: string; value: string }[]"
	default:
		return "unknown"
	}
}

// docComment builds the JSDoc-style documentation header.
func docComment(bp *blueprint.Blueprint, table variant.Table) string {
	var b strings.Builder
	b.WriteString("/**\n")
	fmt.Fprintf(&b, " * %s - %s component.\n", bp.Name, bp.Kind)
	if table.HasVariants {
		b.WriteString(" *\n * Variants:\n")
		for _, axis := range table.Axes {
			fmt.Fprintf(&b, " * - %s: %s\n", axis.Name, strings.Join(axis.Values, " | "))
		}
	}
	b.WriteString(" */\n")
	return b.String()
}

// htmlComment builds the markup-flavored documentation header.
func htmlComment(bp *blueprint.Blueprint, table variant.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!--\n  %s - %s component.\n", bp.Name, bp.Kind)
	if table.HasVariants {
		b.WriteString("\n  Variants:\n")
		for _, axis := range table.Axes {
			fmt.Fprintf(&b, "  - %s: %s\n", axis.Name, strings.Join(axis.Values, " | "))
		}
	}
	b.WriteString("-->\n")
	return b.String()
}

// joinStyles concatenates non-empty style fragments with single spaces.
func joinStyles(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// axisNames lists axis names in table order.
func axisNames(table variant.Table) []string {
	names := make([]string, len(table.Axes))
	for i, axis := range table.Axes {
		names[i] = axis.Name
	}
	return names
}

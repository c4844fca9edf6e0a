package generator

import (
	"fmt"
	"strings"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/variant"
	"github.com/forgeui/backend/internal/vocab"
)

// htmlBackend emits static example markup instead of a component
// abstraction: one base block plus one block per variant value, each
// combining the base style with that single value's fragment. It never
// expands the cross-product over simultaneous axes.
type htmlBackend struct {
	vocab *vocab.Tables
}

func (h *htmlBackend) Emit(bp *blueprint.Blueprint, opts Options) string {
	table := variant.Expand(bp)
	tag := h.vocab.Element(bp.Base)

	var b strings.Builder

	if opts.WithDocs {
		b.WriteString(htmlComment(bp, table))
		b.WriteString("\n")
	}

	b.WriteString("<!-- base -->\n")
	b.WriteString(h.block(tag, bp.Styles.Base, bp.Name))

	for _, axis := range table.Axes {
		for _, value := range axis.Values {
			fmt.Fprintf(&b, "\n<!-- %s: %s -->\n", axis.Name, value)
			classes := joinStyles(bp.Styles.Base, variant.Style(bp, axis.Name, value))
			b.WriteString(h.block(tag, classes, bp.Name))
		}
	}

	return b.String()
}

func (h *htmlBackend) block(tag, classes, label string) string {
	if voidElements[tag] {
		return fmt.Sprintf("<%s class=%q />\n", tag, classes)
	}
	return fmt.Sprintf("<%s class=%q>%s</%s>\n", tag, classes, label, tag)
}

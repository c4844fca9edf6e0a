package generator

import (
	"fmt"
	"strings"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/variant"
	"github.com/forgeui/backend/internal/vocab"
)

// styledBackend emits a React component with one styled-components block
// per component. The scoped block is a fixed skeleton (layout, transition,
// disabled state) and deliberately does not expand the blueprint's
// per-axis style fragments into CSS; variant axes surface as typed props
// with their declared defaults.
type styledBackend struct {
	vocab *vocab.Tables
}

func (s *styledBackend) Emit(bp *blueprint.Blueprint, opts Options) string {
	table := variant.Expand(bp)
	tag := s.vocab.Element(bp.Base)
	host := hostTypeFor(tag)
	styledName := "Styled" + bp.Name

	var b strings.Builder

	// Header
	b.WriteString("import * as React from \"react\";\n")
	b.WriteString("import styled from \"styled-components\";\n\n")

	// Scoped style block: fixed skeleton, independent of blueprint styles.
	fmt.Fprintf(&b, "const %s = styled.%s`\n", styledName, tag)
	b.WriteString("  display: inline-flex;\n")
	b.WriteString("  align-items: center;\n")
	b.WriteString("  justify-content: center;\n")
	b.WriteString("  transition: all 150ms ease;\n\n")
	b.WriteString("  &:disabled {\n")
	b.WriteString("    opacity: 0.5;\n")
	b.WriteString("    pointer-events: none;\n")
	b.WriteString("  }\n")
	b.WriteString("`;\n\n")

	// Documentation
	if opts.WithDocs {
		b.WriteString(docComment(bp, table))
	}

	// Props type
	if opts.WithTypes {
		fmt.Fprintf(&b, "export interface %sProps extends React.%s<%s> {\n", bp.Name, host.attrs, host.elem)
		for _, axis := range table.Axes {
			fmt.Fprintf(&b, "  %s?: %s;\n", axis.Name, union(axis.Values))
		}
		for _, prop := range bp.CustomProps() {
			fmt.Fprintf(&b, "  %s?: %s;\n", prop, tsType(s.vocab.Prop(prop), "React.ReactNode"))
		}
		b.WriteString("}\n\n")
	}

	// Component body: variant props are destructured with their defaults
	// so downstream styling hooks can read them.
	destructured := []string{"className"}
	for _, axis := range table.Axes {
		destructured = append(destructured, fmt.Sprintf("%s = %q", axis.Name, axis.Default))
	}
	destructured = append(destructured, "children")

	if opts.WithTypes {
		fmt.Fprintf(&b, "const %s = React.forwardRef<%s, %sProps>(\n", bp.Name, host.elem, bp.Name)
	} else {
		fmt.Fprintf(&b, "const %s = React.forwardRef(\n", bp.Name)
	}
	fmt.Fprintf(&b, "  ({ %s, ...props }, ref) => {\n", strings.Join(destructured, ", "))
	b.WriteString("    return (\n")
	fmt.Fprintf(&b, "      <%s ref={ref} className={className}", styledName)
	for _, axis := range table.Axes {
		fmt.Fprintf(&b, " data-%s={%s}", axis.Name, axis.Name)
	}
	b.WriteString(" {...props}>\n")
	b.WriteString("        {children}\n")
	fmt.Fprintf(&b, "      </%s>\n", styledName)
	b.WriteString("    );\n  }\n);\n")

	fmt.Fprintf(&b, "%s.displayName = %q;\n\n", bp.Name, bp.Name)
	fmt.Fprintf(&b, "export default %s;\n", bp.Name)

	return b.String()
}

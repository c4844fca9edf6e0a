package generator

import (
	"fmt"
	"strings"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/variant"
	"github.com/forgeui/backend/internal/vocab"
)

// cssModulesBackend emits a React component whose style content lives in an
// external stylesheet. The applied class list is composed at runtime from
// styles.base plus the current value of each axis, with falsy entries
// filtered out.
type cssModulesBackend struct {
	vocab *vocab.Tables
}

func (m *cssModulesBackend) Emit(bp *blueprint.Blueprint, opts Options) string {
	table := variant.Expand(bp)
	tag := m.vocab.Element(bp.Base)
	host := hostTypeFor(tag)

	var b strings.Builder

	// Header
	b.WriteString("import * as React from \"react\";\n\n")
	fmt.Fprintf(&b, "import styles from \"./%s.module.css\";\n\n", bp.Name)

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
			fmt.Fprintf(&b, "  %s?: %s;\n", prop, tsType(m.vocab.Prop(prop), "React.ReactNode"))
		}
		b.WriteString("}\n\n")
	}

	// Component body
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

	entries := []string{"styles.base"}
	for _, axis := range table.Axes {
		entries = append(entries, fmt.Sprintf("%s && styles[%s]", axis.Name, axis.Name))
	}
	entries = append(entries, "className")
	fmt.Fprintf(&b, "    const classes = [%s]\n", strings.Join(entries, ", "))
	b.WriteString("      .filter(Boolean)\n")
	b.WriteString("      .join(\" \");\n\n")

	b.WriteString("    return (\n")
	fmt.Fprintf(&b, "      <%s ref={ref} className={classes} {...props}>\n", tag)
	b.WriteString("        {children}\n")
	fmt.Fprintf(&b, "      </%s>\n", tag)
	b.WriteString("    );\n  }\n);\n")

	fmt.Fprintf(&b, "%s.displayName = %q;\n\n", bp.Name, bp.Name)
	fmt.Fprintf(&b, "export default %s;\n", bp.Name)

	return b.String()
}

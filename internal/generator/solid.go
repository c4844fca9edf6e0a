package generator

import (
	"fmt"
	"strings"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/variant"
	"github.com/forgeui/backend/internal/vocab"
)

// solidBackend emits a Solid component. The incoming prop bag is split
// explicitly into local props (variant axes, class, children) and the
// forwarded rest via splitProps, matching that framework's prop-splitting
// idiom instead of object-rest destructuring.
type solidBackend struct {
	vocab *vocab.Tables
}

func (s *solidBackend) Emit(bp *blueprint.Blueprint, opts Options) string {
	table := variant.Expand(bp)
	tag := s.vocab.Element(bp.Base)
	host := hostTypeFor(tag)
	stylesName := lowerFirst(bp.Name) + "Styles"

	var b strings.Builder

	// Header
	if opts.WithTypes {
		b.WriteString("import { splitProps, type JSX } from \"solid-js\";\n\n")
	} else {
		b.WriteString("import { splitProps } from \"solid-js\";\n\n")
	}

	// Variant table
	if table.HasVariants {
		fmt.Fprintf(&b, "const %s = {\n", stylesName)
		for _, axis := range table.Axes {
			fmt.Fprintf(&b, "  %s: {\n", axis.Name)
			for _, value := range axis.Values {
				fmt.Fprintf(&b, "    %s: %q,\n", value, variant.Style(bp, axis.Name, value))
			}
			b.WriteString("  },\n")
		}
		if opts.WithTypes {
			b.WriteString("} as const;\n\n")
		} else {
			b.WriteString("};\n\n")
		}
	}

	// Documentation
	if opts.WithDocs {
		b.WriteString(docComment(bp, table))
	}

	// Props type
	if opts.WithTypes {
		fmt.Fprintf(&b, "export interface %sProps extends JSX.%s<%s> {\n", bp.Name, host.attrs, host.elem)
		for _, axis := range table.Axes {
			fmt.Fprintf(&b, "  %s?: %s;\n", axis.Name, union(axis.Values))
		}
		for _, prop := range bp.CustomProps() {
			fmt.Fprintf(&b, "  %s?: %s;\n", prop, tsType(s.vocab.Prop(prop), "JSX.Element"))
		}
		b.WriteString("}\n\n")
	}

	// Component body
	if opts.WithTypes {
		fmt.Fprintf(&b, "export function %s(props: %sProps) {\n", bp.Name, bp.Name)
	} else {
		fmt.Fprintf(&b, "export function %s(props) {\n", bp.Name)
	}

	local := make([]string, 0, len(table.Axes)+2)
	for _, axis := range table.Axes {
		local = append(local, fmt.Sprintf("%q", axis.Name))
	}
	local = append(local, "\"class\"", "\"children\"")
	fmt.Fprintf(&b, "  const [local, rest] = splitProps(props, [%s]);\n\n", strings.Join(local, ", "))

	if table.HasVariants {
		entries := []string{fmt.Sprintf("%q", bp.Styles.Base)}
		for _, axis := range table.Axes {
			entries = append(entries, fmt.Sprintf("%s.%s[local.%s ?? %q]", stylesName, axis.Name, axis.Name, axis.Default))
		}
		entries = append(entries, "local.class")
		b.WriteString("  const classes = () =>\n")
		fmt.Fprintf(&b, "    [%s]\n", strings.Join(entries, ", "))
		b.WriteString("      .filter(Boolean)\n")
		b.WriteString("      .join(\" \");\n\n")
	} else {
		b.WriteString("  const classes = () =>\n")
		fmt.Fprintf(&b, "    [%q, local.class].filter(Boolean).join(\" \");\n\n", bp.Styles.Base)
	}

	b.WriteString("  return (\n")
	fmt.Fprintf(&b, "    <%s class={classes()} {...rest}>\n", tag)
	b.WriteString("      {local.children}\n")
	fmt.Fprintf(&b, "    </%s>\n", tag)
	b.WriteString("  );\n}\n")

	return b.String()
}

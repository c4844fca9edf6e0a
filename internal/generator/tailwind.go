package generator

import (
	"fmt"
	"strings"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/variant"
	"github.com/forgeui/backend/internal/vocab"
)

// tailwindBackend emits a React component styled with utility classes.
// Variants go through a cva-style builder invoked with the current axis
// values; without variants the base style is applied as a single literal.
type tailwindBackend struct {
	vocab *vocab.Tables
}

func (t *tailwindBackend) Emit(bp *blueprint.Blueprint, opts Options) string {
	table := variant.Expand(bp)
	tag := t.vocab.Element(bp.Base)
	host := hostTypeFor(tag)
	variantsName := lowerFirst(bp.Name) + "Variants"

	var b strings.Builder

	// Header
	b.WriteString("import * as React from \"react\";\n")
	if table.HasVariants {
		b.WriteString("import { cva, type VariantProps } from \"class-variance-authority\";\n")
	}
	b.WriteString("\nimport { cn } from \"@/lib/utils\";\n\n")

	// Variant table
	if table.HasVariants {
		fmt.Fprintf(&b, "const %s = cva(\n", variantsName)
		fmt.Fprintf(&b, "  %q,\n", bp.Styles.Base)
		b.WriteString("  {\n    variants: {\n")
		for _, axis := range table.Axes {
			fmt.Fprintf(&b, "      %s: {\n", axis.Name)
			for _, value := range axis.Values {
				fmt.Fprintf(&b, "        %s: %q,\n", value, variant.Style(bp, axis.Name, value))
			}
			b.WriteString("      },\n")
		}
		b.WriteString("    },\n    defaultVariants: {\n")
		for _, axis := range table.Axes {
			fmt.Fprintf(&b, "      %s: %q,\n", axis.Name, axis.Default)
		}
		b.WriteString("    },\n  }\n);\n\n")
	}

	// Documentation
	if opts.WithDocs {
		b.WriteString(docComment(bp, table))
	}

	// Props type
	if opts.WithTypes {
		fmt.Fprintf(&b, "export interface %sProps\n", bp.Name)
		if table.HasVariants {
			fmt.Fprintf(&b, "  extends React.%s<%s>,\n", host.attrs, host.elem)
			fmt.Fprintf(&b, "    VariantProps<typeof %s> {\n", variantsName)
		} else {
			fmt.Fprintf(&b, "  extends React.%s<%s> {\n", host.attrs, host.elem)
		}
		b.WriteString("  asChild?: boolean;\n")
		for _, prop := range bp.CustomProps() {
			fmt.Fprintf(&b, "  %s?: %s;\n", prop, tsType(t.vocab.Prop(prop), "React.ReactNode"))
		}
		b.WriteString("}\n\n")
	}

	// Component body
	destructured := append([]string{"className"}, axisNames(table)...)
	destructured = append(destructured, "children")

	if opts.WithTypes {
		fmt.Fprintf(&b, "const %s = React.forwardRef<%s, %sProps>(\n", bp.Name, host.elem, bp.Name)
	} else {
		fmt.Fprintf(&b, "const %s = React.forwardRef(\n", bp.Name)
	}
	fmt.Fprintf(&b, "  ({ %s, ...props }, ref) => {\n", strings.Join(destructured, ", "))
	b.WriteString("    return (\n")
	fmt.Fprintf(&b, "      <%s\n        ref={ref}\n", tag)
	if table.HasVariants {
		fmt.Fprintf(&b, "        className={cn(%s({ %s }), className)}\n", variantsName, strings.Join(axisNames(table), ", "))
	} else {
		fmt.Fprintf(&b, "        className={cn(%q, className)}\n", bp.Styles.Base)
	}
	b.WriteString("        {...props}\n      >\n")
	b.WriteString("        {children}\n")
	fmt.Fprintf(&b, "      </%s>\n", tag)
	b.WriteString("    );\n  }\n);\n")

	// Name binding
	fmt.Fprintf(&b, "%s.displayName = %q;\n\n", bp.Name, bp.Name)
	fmt.Fprintf(&b, "export default %s;\n", bp.Name)

	return b.String()
}

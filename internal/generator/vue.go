package generator

import (
	"fmt"
	"strings"

	"github.com/forgeui/backend/internal/blueprint"
	"github.com/forgeui/backend/internal/variant"
	"github.com/forgeui/backend/internal/vocab"
)

// vueBackend emits a single-file component: a typed script setup block and
// a template block. The script block is only emitted when there is at least
// one variant axis or custom prop to declare.
type vueBackend struct {
	vocab *vocab.Tables
}

func (v *vueBackend) Emit(bp *blueprint.Blueprint, opts Options) string {
	table := variant.Expand(bp)
	tag := v.vocab.Element(bp.Base)
	custom := bp.CustomProps()
	hasProps := table.HasVariants || len(custom) > 0

	var b strings.Builder

	if opts.WithDocs {
		b.WriteString(htmlComment(bp, table))
		b.WriteString("\n")
	}

	// Script block
	if hasProps {
		if opts.WithTypes {
			b.WriteString("<script setup lang=\"ts\">\n")
			b.WriteString("interface Props {\n")
			for _, axis := range table.Axes {
				fmt.Fprintf(&b, "  %s?: %s;\n", axis.Name, union(axis.Values))
			}
			for _, prop := range custom {
				fmt.Fprintf(&b, "  %s?: %s;\n", prop, tsType(v.vocab.Prop(prop), "unknown"))
			}
			b.WriteString("}\n\n")

			if table.HasVariants {
				b.WriteString("const props = withDefaults(defineProps<Props>(), {\n")
				for _, axis := range table.Axes {
					fmt.Fprintf(&b, "  %s: %q,\n", axis.Name, axis.Default)
				}
				b.WriteString("});\n")
			} else {
				b.WriteString("const props = defineProps<Props>();\n")
			}
		} else {
			b.WriteString("<script setup>\n")
			names := make([]string, 0, len(table.Axes)+len(custom))
			for _, axis := range table.Axes {
				names = append(names, fmt.Sprintf("%q", axis.Name))
			}
			for _, prop := range custom {
				names = append(names, fmt.Sprintf("%q", prop))
			}
			fmt.Fprintf(&b, "const props = defineProps([%s]);\n", strings.Join(names, ", "))
		}

		if table.HasVariants {
			b.WriteString("\nconst variantClasses = {\n")
			for _, axis := range table.Axes {
				fmt.Fprintf(&b, "  %s: {\n", axis.Name)
				for _, value := range axis.Values {
					fmt.Fprintf(&b, "    %s: %q,\n", value, variant.Style(bp, axis.Name, value))
				}
				b.WriteString("  },\n")
			}
			if opts.WithTypes {
				b.WriteString("} as const;\n")
			} else {
				b.WriteString("};\n")
			}
		}
		b.WriteString("</script>\n\n")
	}

	// Template block
	b.WriteString("<template>\n")
	fmt.Fprintf(&b, "  <%s\n", tag)
	fmt.Fprintf(&b, "    class=%q\n", bp.Styles.Base)
	if table.HasVariants {
		refs := make([]string, len(table.Axes))
		for i, axis := range table.Axes {
			refs[i] = fmt.Sprintf("variantClasses.%s[props.%s]", axis.Name, axis.Name)
		}
		fmt.Fprintf(&b, "    :class=\"[%s]\"\n", strings.Join(refs, ", "))
	}
	if voidElements[tag] {
		b.WriteString("  />\n</template>\n")
	} else {
		b.WriteString("  >\n    <slot />\n")
		fmt.Fprintf(&b, "  </%s>\n</template>\n", tag)
	}

	return b.String()
}

package tokengraph

import (
	"fmt"
	"strings"
)

// ExportTailwind renders the store as a Tailwind theme extension whose color
// entries point at the exported CSS variables, so both exports stay in sync:
//
//	module.exports = {
//	  theme: {
//	    extend: {
//	      colors: {
//	        "background": "var(--background)",
//	        "primary": { "50": "var(--primary-50)", ... },
//	      },
//	    },
//	  },
//	};
//
// Primitive ramps nest by hue; semantic and component tokens stay flat.
func ExportTailwind(store *Store, config ExportConfig) (string, error) {
	tokens, err := flatten(store, config.Include)
	if err != nil {
		return "", err
	}

	ramps := make(map[string][]string) // hue → entries
	var rampOrder, flat []string

	for _, tok := range tokens {
		ref := fmt.Sprintf("var(%s)", varName(config.Prefix, tok.Name))

		if tok.Tier == TierPrimitive {
			if hue, shade, ok := SplitPrefixSuffix(tok.Name); ok && isNumeric(shade) {
				if _, seen := ramps[hue]; !seen {
					rampOrder = append(rampOrder, hue)
				}
				ramps[hue] = append(ramps[hue], fmt.Sprintf("          %q: %q,", shade, ref))
				continue
			}
		}

		flat = append(flat, fmt.Sprintf("        %q: %q,", tok.Name, ref))
	}

	var b strings.Builder
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")

	for _, hue := range rampOrder {
		b.WriteString(fmt.Sprintf("        %q: {\n", hue))
		b.WriteString(strings.Join(ramps[hue], "\n"))
		b.WriteString("\n        },\n")
	}

	if len(flat) > 0 {
		b.WriteString(strings.Join(flat, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")

	return b.String(), nil
}

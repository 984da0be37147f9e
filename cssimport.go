package tokengraph

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseSeedCSS extracts custom properties from a stylesheet, e.g.
//
//	:root {
//	  --primary: #7c3aed;
//	  --gray: rgb(113, 113, 122);
//	}
//
// and returns name → normalized hex for every property whose value parses
// as a color. Properties with non-color values are reported as warnings and
// skipped; the parse itself never fails.
func ParseSeedCSS(content string) (map[string]string, []string) {
	props := make(map[string]string)
	var warnings []string

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		if tt != css.CustomPropertyNameToken {
			continue
		}

		name := strings.TrimPrefix(string(text), "--")
		raw, isDecl := readCustomPropertyValue(lexer)
		if !isDecl {
			// A custom property name outside a declaration, e.g. the
			// argument of var(). Not a seed value.
			continue
		}

		if !looksLikeColor(raw) {
			warnings = append(warnings, fmt.Sprintf("seed property --%s: %q is not a color, skipped", name, raw))
			continue
		}

		props[name] = ParseColor(raw)
	}

	return props, warnings
}

// readCustomPropertyValue collects the declaration value following a custom
// property name, up to the terminating semicolon or closing brace. A name
// not followed by a colon is not a declaration and reports ok=false.
func readCustomPropertyValue(lexer *css.Lexer) (value string, ok bool) {
	// The colon must come before anything but whitespace.
	for {
		tt, _ := lexer.Next()
		if tt == css.WhitespaceToken {
			continue
		}
		if tt != css.ColonToken {
			return "", false
		}
		break
	}

	var parts []string
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken || tt == css.RightBraceToken {
			break
		}
		parts = append(parts, string(text))
	}

	return strings.TrimSpace(strings.Join(parts, "")), true
}

// looksLikeColor gates seed values before the tolerant codec sees them, so
// non-color custom properties (spacing, fonts) don't degrade to black.
func looksLikeColor(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return IsHex(v) || IsColorKeyword(v) || strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(")
}

package tokengraph

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Export flattens the finished store into text in the configured format.
// Exporting is pure formatting: no resolution happens here, and every
// Value kind the engine can produce renders to something usable.
func Export(store *Store, config ExportConfig) (string, error) {
	switch config.Format {
	case ExportTailwindFormat:
		return ExportTailwind(store, config)
	case ExportCSSFormat, "":
		return ExportCSS(store, config)
	default:
		return "", fmt.Errorf("unknown export format %q", config.Format)
	}
}

// WriteExport writes exported text to a file, creating parent directories.
func WriteExport(fs afero.Fs, path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ExportCSS renders the store as CSS custom properties: a :root block with
// light values and a .dark block carrying only the values that differ.
// Aliases render as var() references to the target token's variable.
func ExportCSS(store *Store, config ExportConfig) (string, error) {
	tokens, err := flatten(store, config.Include)
	if err != nil {
		return "", err
	}

	var light, dark []string
	for _, tok := range tokens {
		lightVal, err := renderValue(store, tok.Values[ModeLight], config.Prefix)
		if err != nil {
			return "", err
		}
		darkVal, err := renderValue(store, tok.Values[ModeDark], config.Prefix)
		if err != nil {
			return "", err
		}

		name := varName(config.Prefix, tok.Name)
		light = append(light, fmt.Sprintf("  %s: %s;", name, lightVal))
		if darkVal != lightVal {
			dark = append(dark, fmt.Sprintf("  %s: %s;", name, darkVal))
		}
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	b.WriteString(strings.Join(light, "\n"))
	b.WriteString("\n}\n")

	if len(dark) > 0 {
		b.WriteString("\n.dark {\n")
		b.WriteString(strings.Join(dark, "\n"))
		b.WriteString("\n}\n")
	}

	return b.String(), nil
}

// flatten enumerates the store bottom-up (primitive, semantic, component)
// and applies the group include filter.
func flatten(store *Store, include []string) ([]*Token, error) {
	var out []*Token

	for _, tier := range []Tier{TierPrimitive, TierSemantic, TierComponent} {
		tokens, err := store.Tokens(tier)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			ok, err := groupIncluded(tok.Group, include)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, tok)
			}
		}
	}

	return out, nil
}

// groupIncluded matches a token's slash-delimited group path against the
// include globs. An empty include list admits everything.
func groupIncluded(group string, include []string) (bool, error) {
	if len(include) == 0 {
		return true, nil
	}
	for _, pattern := range include {
		ok, err := doublestar.Match(pattern, group)
		if err != nil {
			return false, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// renderValue formats one Value for CSS output.
func renderValue(store *Store, v Value, prefix string) (string, error) {
	switch v.Kind {
	case KindAlias:
		target, err := store.TokenByID(v.Alias)
		if err != nil {
			return "", err
		}
		if target == nil {
			// Dangling alias: the engine never writes one, but a host may
			// hold stale data.
			return "", fmt.Errorf("alias target %s not found", v.Alias)
		}
		return fmt.Sprintf("var(%s)", varName(prefix, target.Name)), nil
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64), nil
	case KindString:
		return v.Str, nil
	default:
		if v.Color.A == 0 {
			return "transparent", nil
		}
		return ColorToHex(v.Color), nil
	}
}

// varName builds the CSS custom property name for a token.
func varName(prefix, name string) string {
	if prefix != "" {
		return "--" + prefix + "-" + name
	}
	return "--" + name
}

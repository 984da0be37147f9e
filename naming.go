package tokengraph

import (
	"strings"
	"unicode"
)

// Naming helpers used to widen the search space during resolution. They are
// pure functions and never mutate stored token names.

// ToKebab converts camelCase to kebab-case: primaryForeground →
// primary-foreground. Input that is already kebab-case passes through.
func ToKebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// ToCamel converts kebab-case to camelCase: primary-foreground →
// primaryForeground.
func ToCamel(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) == 1 {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}

	return b.String()
}

// SplitPrefixSuffix splits a name on its last hyphen: "primary-500" →
// ("primary", "500"), "outline-ring" → ("outline", "ring"). Names without a
// hyphen report ok=false.
func SplitPrefixSuffix(name string) (prefix, suffix string, ok bool) {
	i := strings.LastIndexByte(name, '-')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

// isNumeric reports whether the name is purely decimal digits, e.g. a bare
// shade step like "200".
func isNumeric(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

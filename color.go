package tokengraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float64
}

// Transparent is the distinguished fully-transparent black. It is a literal,
// never resolved through the naming cascade.
var Transparent = Color{R: 0, G: 0, B: 0, A: 0}

// namedColors is the small fixed set of color keywords the codec accepts.
// Anything else must arrive as hex or rgb()/rgba().
var namedColors = map[string]Color{
	"white":       {R: 1, G: 1, B: 1, A: 1},
	"black":       {R: 0, G: 0, B: 0, A: 1},
	"gray":        {R: 0.5, G: 0.5, B: 0.5, A: 1},
	"red":         {R: 0.937, G: 0.267, B: 0.267, A: 1},
	"green":       {R: 0.133, G: 0.773, B: 0.369, A: 1},
	"blue":        {R: 0.231, G: 0.510, B: 0.965, A: 1},
	"yellow":      {R: 0.918, G: 0.702, B: 0.031, A: 1},
	"orange":      {R: 0.976, G: 0.451, B: 0.086, A: 1},
	"purple":      {R: 0.659, G: 0.333, B: 0.969, A: 1},
	"pink":        {R: 0.926, G: 0.282, B: 0.600, A: 1},
	"transparent": Transparent,
}

// IsColorKeyword reports whether text is one of the fixed color keywords.
func IsColorKeyword(text string) bool {
	_, ok := namedColors[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// IsHex reports whether text looks like a #RGB, #RRGGBB or #RRGGBBAA color.
func IsHex(text string) bool {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "#") {
		return false
	}
	hex := text[1:]
	if len(hex) != 3 && len(hex) != 6 && len(hex) != 8 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}

// HexToColor parses #RGB, #RRGGBB and #RRGGBBAA. Unparseable input logs a
// warning and degrades to opaque black; it never fails.
func HexToColor(text string) Color {
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(text)), "#")

	// Expand shorthand: f0a → ff00aa
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}

	if len(raw) != 6 && len(raw) != 8 {
		log.Warn().Str("input", text).Msg("unparseable hex color, using opaque black")
		return Color{A: 1}
	}

	parse := func(s string) (float64, bool) {
		n, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(n) / 255, true
	}

	r, okR := parse(raw[0:2])
	g, okG := parse(raw[2:4])
	b, okB := parse(raw[4:6])
	a, okA := 1.0, true
	if len(raw) == 8 {
		a, okA = parse(raw[6:8])
	}
	if !okR || !okG || !okB || !okA {
		log.Warn().Str("input", text).Msg("unparseable hex color, using opaque black")
		return Color{A: 1}
	}

	return Color{R: r, G: g, B: b, A: a}
}

// ColorToHex formats a color as #rrggbb, or #rrggbbaa when the alpha channel
// is not fully opaque.
func ColorToHex(c Color) string {
	channel := func(v float64) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(v*255 + 0.5)
	}

	if c.A < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B), channel(c.A))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// ParseColor accepts hex, rgb(...), rgba(...) and the fixed color keywords,
// and returns the color in normalized hex form. Unrecognized input logs a
// warning and degrades to opaque black; it never fails.
func ParseColor(text string) string {
	return ColorToHex(parseColor(text))
}

// parseColor is the tolerant front door for every color string the system
// accepts.
func parseColor(text string) Color {
	s := strings.ToLower(strings.TrimSpace(text))

	if c, ok := namedColors[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		return HexToColor(s)
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		if c, ok := parseRGBFunc(s); ok {
			return c
		}
	}

	log.Warn().Str("input", text).Msg("unrecognized color, using opaque black")
	return Color{A: 1}
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a) with channels in
// 0-255 and alpha in 0-1.
func parseRGBFunc(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open == -1 || end == -1 || end < open {
		return Color{}, false
	}

	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}

	channels := make([]float64, 0, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, false
		}
		if i < 3 {
			f /= 255
		}
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		channels = append(channels, f)
	}

	c := Color{R: channels[0], G: channels[1], B: channels[2], A: 1}
	if len(channels) == 4 {
		c.A = channels[3]
	}
	return c, true
}

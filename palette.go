package tokengraph

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// shadeNames are the ramp steps every hue is expanded into, lightest first.
// The 500 step is the canonical "base shade" the shade-guess resolution
// strategy assumes.
var shadeNames = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// shadeLightness maps a ramp step to its target HSL lightness.
var shadeLightness = map[string]float64{
	"50":  0.97,
	"100": 0.94,
	"200": 0.88,
	"300": 0.80,
	"400": 0.66,
	"600": 0.46,
	"700": 0.38,
	"800": 0.30,
	"900": 0.22,
	"950": 0.14,
}

// Shade is one step of a generated ramp.
type Shade struct {
	Name string // e.g. "500"
	Hex  string // e.g. "#3b82f6"
}

// Palette is the set of hues the primitive tier is generated from.
type Palette struct {
	Hues map[string]string // hue name → base hex (becomes the 500 shade)
}

// DefaultPalette builds the standard palette around a primary color: a
// primary ramp plus a gray ramp sharing the primary hue at near-zero
// saturation.
func DefaultPalette(primaryHex string) Palette {
	base, err := colorful.Hex(ParseColor(primaryHex))
	if err != nil {
		// ParseColor already degraded the input; only malformed fallback
		// output could land here.
		base = colorful.Color{}
	}
	h, s, _ := base.Hsl()

	gray := colorful.Hsl(h, minFloat(s, 0.04), 0.55)

	return Palette{Hues: map[string]string{
		"primary": ParseColor(primaryHex),
		"gray":    gray.Clamped().Hex(),
	}}
}

// Ramp expands one hue into the full shade ramp. The 500 shade is the base
// hex verbatim; the rest vary only in lightness, so re-running with the same
// base always yields the same ramp.
func (p Palette) Ramp(hue string) []Shade {
	baseHex, ok := p.Hues[hue]
	if !ok {
		return nil
	}

	base, err := colorful.Hex(baseHex)
	if err != nil {
		log.Warn().Str("hue", hue).Str("hex", baseHex).Msg("unparseable ramp base, using opaque black")
		base = colorful.Color{}
	}
	h, s, _ := base.Hsl()

	shades := make([]Shade, 0, len(shadeNames))
	for _, name := range shadeNames {
		if name == "500" {
			shades = append(shades, Shade{Name: name, Hex: baseHex})
			continue
		}
		c := colorful.Hsl(h, s, shadeLightness[name]).Clamped()
		shades = append(shades, Shade{Name: name, Hex: c.Hex()})
	}

	return shades
}

// HueNames returns the hue names in deterministic order: primary, gray,
// then any extras sorted by name.
func (p Palette) HueNames() []string {
	names := make([]string, 0, len(p.Hues))
	if _, ok := p.Hues["primary"]; ok {
		names = append(names, "primary")
	}
	if _, ok := p.Hues["gray"]; ok {
		names = append(names, "gray")
	}

	extras := make([]string, 0, len(p.Hues))
	for name := range p.Hues {
		if name != "primary" && name != "gray" {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)

	return append(names, extras...)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

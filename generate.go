package tokengraph

import (
	"fmt"
	"os"
)

// Generate is the main entry point: it builds the full three-tier token
// graph into the configured host store. Re-running with identical inputs is
// idempotent: existing tokens are updated in place, never duplicated.
func Generate(config Config) (*GenerateResult, error) {
	result := &GenerateResult{}

	host := config.Host
	if host == nil {
		host = NewMemHost()
	}
	store := NewStore(host)

	// 1. Ensure collections and modes exist
	if err := store.Init(); err != nil {
		return nil, fmt.Errorf("init failed: %w", err)
	}

	// 2. Optional clean regenerate
	if config.ClearExisting {
		if err := store.RemoveAll(); err != nil {
			return nil, fmt.Errorf("clear failed: %w", err)
		}
	}

	// 3. Build the palette, applying seed overrides
	palette, seeded, warnings, err := buildPalette(config)
	if err != nil {
		return nil, err
	}
	result.SeededHues = seeded
	result.Warnings = warnings

	// 4. Resolve and write the three tiers, bottom up
	b := &tierBuilder{store: store, resolver: NewResolver(store)}

	if result.PrimitiveCount, err = buildPrimitives(b, palette); err != nil {
		return nil, fmt.Errorf("primitive tier failed: %w", err)
	}
	if result.SemanticCount, err = buildSemantics(b); err != nil {
		return nil, fmt.Errorf("semantic tier failed: %w", err)
	}
	if result.ComponentCount, err = buildComponents(b); err != nil {
		return nil, fmt.Errorf("component tier failed: %w", err)
	}

	return result, nil
}

// Clear empties the host's token store. Collections and modes survive.
func Clear(host Host) error {
	store := NewStore(host)
	if err := store.Init(); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}
	if err := store.RemoveAll(); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}
	return nil
}

// buildPalette assembles the hue set from config and the optional seed
// stylesheet. Seed custom properties override same-named hues.
func buildPalette(config Config) (Palette, int, []string, error) {
	primary := config.PrimaryColor
	if primary == "" {
		primary = "#3b82f6"
	}

	palette := DefaultPalette(primary)
	for name, hex := range config.Hues {
		palette.Hues[name] = ParseColor(hex)
	}

	var warnings []string
	seeded := 0

	if config.SeedCSS != "" {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(config.SeedCSS)
		if err != nil {
			return Palette{}, 0, nil, fmt.Errorf("read seed stylesheet: %w", err)
		}

		props, propWarnings := ParseSeedCSS(string(content))
		warnings = append(warnings, propWarnings...)

		for name, hex := range props {
			// Only properties naming a configured hue override the palette;
			// everything else in the sheet is ignored.
			if _, ok := palette.Hues[name]; !ok {
				continue
			}
			palette.Hues[name] = hex
			seeded++
		}
	}

	return palette, seeded, warnings, nil
}

package tokengraph

import "fmt"

// tierBuilder is the shared write path of the three builders: find or
// create the target token, then resolve and set one value per mode.
// Re-running with the same name always updates in place.
type tierBuilder struct {
	store    *Store
	resolver *Resolver
}

func (b *tierBuilder) write(tier Tier, name, group string, refs map[Mode]Reference) error {
	tok, err := b.store.Find(tier, name)
	if err != nil {
		return err
	}
	if tok == nil {
		tok, err = b.store.Create(tier, name, group, KindColor)
		if err != nil {
			return err
		}
	}

	for _, mode := range Modes {
		v, err := b.resolver.Resolve(tier, name, refs[mode], mode)
		if err != nil {
			return fmt.Errorf("resolve %s/%s %s: %w", tier, name, mode, err)
		}
		if err := b.store.SetValue(tok, mode, v); err != nil {
			return err
		}
	}

	return nil
}

// sameRef builds a per-mode reference map for mode-independent references.
func sameRef(ref Reference) map[Mode]Reference {
	return map[Mode]Reference{ModeLight: ref, ModeDark: ref}
}

// buildPrimitives writes the terminal tier: one token per shade of every
// palette ramp, plus the white/black base pair. All values are literals:
// the references are hex strings, so the cascade parses them directly.
func buildPrimitives(b *tierBuilder, palette Palette) (int, error) {
	count := 0

	for _, hue := range palette.HueNames() {
		group := "ramp/" + hue
		for _, shade := range palette.Ramp(hue) {
			name := hue + "-" + shade.Name
			if err := b.write(TierPrimitive, name, group, sameRef(ClassifyReference(shade.Hex))); err != nil {
				return count, err
			}
			count++
		}
	}

	base := []struct{ name, hex string }{
		{"white", "#ffffff"},
		{"black", "#000000"},
	}
	for _, t := range base {
		if err := b.write(TierPrimitive, t.name, "base", sameRef(ClassifyReference(t.hex))); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// buildSemantics writes the fixed semantic role vocabulary. References are
// primitive names, peer role names, or keywords; vocabulary order guarantees
// peer targets exist before anything references them.
func buildSemantics(b *tierBuilder) (int, error) {
	for _, entry := range semanticVocabulary {
		refs := map[Mode]Reference{
			ModeLight: ClassifyReference(entry.light),
			ModeDark:  ClassifyReference(entry.dark),
		}
		if err := b.write(TierSemantic, entry.name, entry.group, refs); err != nil {
			return 0, err
		}
	}
	return len(semanticVocabulary), nil
}

// buildComponents writes the per-component property groups. References name
// semantic roles; the cascade prefers Semantic over Primitive for this tier.
func buildComponents(b *tierBuilder) (int, error) {
	for _, entry := range componentVocabulary {
		if err := b.write(TierComponent, entry.name, entry.group, sameRef(ClassifyReference(entry.ref))); err != nil {
			return 0, err
		}
	}
	return len(componentVocabulary), nil
}

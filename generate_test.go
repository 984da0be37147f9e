package tokengraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateInto(t *testing.T, host Host) *GenerateResult {
	t.Helper()
	result, err := Generate(Config{PrimaryColor: "#3b82f6", Host: host})
	require.NoError(t, err)
	return result
}

func allTokens(t *testing.T, store *Store) []*Token {
	t.Helper()
	var all []*Token
	for _, tier := range []Tier{TierPrimitive, TierSemantic, TierComponent} {
		toks, err := store.Tokens(tier)
		require.NoError(t, err)
		all = append(all, toks...)
	}
	return all
}

func TestGenerateCounts(t *testing.T) {
	host := NewMemHost()
	result := generateInto(t, host)

	// Two ramps of 11 shades plus white/black.
	assert.Equal(t, 24, result.PrimitiveCount)
	assert.Equal(t, len(semanticVocabulary), result.SemanticCount)
	assert.Equal(t, len(componentVocabulary), result.ComponentCount)
	assert.Empty(t, result.Warnings)
}

func TestGenerateIdempotent(t *testing.T) {
	host := NewMemHost()
	first := generateInto(t, host)

	store := NewStore(host)
	idsBefore := make(map[string]string) // tier/name → id
	valuesBefore := make(map[string]Value)
	for _, tok := range allTokens(t, store) {
		key := tok.Tier.String() + "/" + tok.Name
		idsBefore[key] = tok.ID
		valuesBefore[key+"/light"] = tok.Values[ModeLight]
		valuesBefore[key+"/dark"] = tok.Values[ModeDark]
	}

	second := generateInto(t, host)
	assert.Equal(t, first.TotalCount(), second.TotalCount())

	after := allTokens(t, NewStore(host))
	require.Len(t, after, len(idsBefore), "re-run must not create duplicates")
	for _, tok := range after {
		key := tok.Tier.String() + "/" + tok.Name
		assert.Equal(t, idsBefore[key], tok.ID, "id of %s must be stable", key)
		assert.Equal(t, valuesBefore[key+"/light"], tok.Values[ModeLight], "%s light", key)
		assert.Equal(t, valuesBefore[key+"/dark"], tok.Values[ModeDark], "%s dark", key)
	}
}

func TestGenerateNoSelfOrDanglingAlias(t *testing.T) {
	host := NewMemHost()
	generateInto(t, host)
	store := NewStore(host)

	for _, tok := range allTokens(t, store) {
		for _, mode := range Modes {
			v := tok.Values[mode]
			if !v.IsAlias() {
				continue
			}
			assert.NotEqual(t, tok.ID, v.Alias, "%s/%s must not alias itself", tok.Tier, tok.Name)

			target, err := store.TokenByID(v.Alias)
			require.NoError(t, err)
			require.NotNil(t, target, "%s/%s alias target must exist", tok.Tier, tok.Name)
		}
	}
}

func TestGenerateTierMonotonicity(t *testing.T) {
	host := NewMemHost()
	generateInto(t, host)
	store := NewStore(host)

	for _, tok := range allTokens(t, store) {
		for _, mode := range Modes {
			v := tok.Values[mode]
			if !v.IsAlias() {
				continue
			}
			target, err := store.TokenByID(v.Alias)
			require.NoError(t, err)
			require.NotNil(t, target)

			switch tok.Tier {
			case TierPrimitive:
				t.Errorf("primitive %s holds an alias", tok.Name)
			case TierSemantic:
				assert.LessOrEqual(t, target.Tier, TierSemantic,
					"semantic %s aliases %s/%s", tok.Name, target.Tier, target.Name)
			case TierComponent:
				assert.NotEqual(t, TierComponent, target.Tier,
					"component %s aliases another component", tok.Name)
			}
		}
	}
}

func TestGenerateKnownAliases(t *testing.T) {
	host := NewMemHost()
	generateInto(t, host)
	store := NewStore(host)

	mustFind := func(tier Tier, name string) *Token {
		tok, err := store.Find(tier, name)
		require.NoError(t, err)
		require.NotNil(t, tok, "%s/%s", tier, name)
		return tok
	}

	// Semantic background aliases the light/dark ends of the gray ramp.
	background := mustFind(TierSemantic, "background")
	assert.Equal(t, AliasValue(mustFind(TierPrimitive, "gray-50").ID), background.Values[ModeLight])
	assert.Equal(t, AliasValue(mustFind(TierPrimitive, "gray-950").ID), background.Values[ModeDark])

	// Semantic ghost-background aliases the semantic transparent peer.
	ghost := mustFind(TierSemantic, "ghost-background")
	transparent := mustFind(TierSemantic, "transparent")
	assert.Equal(t, AliasValue(transparent.ID), ghost.Values[ModeLight])

	// The semantic transparent token itself holds the literal.
	assert.Equal(t, ColorValue(Transparent), transparent.Values[ModeLight])

	// primary-foreground aliases the white base primitive via the keyword.
	primaryFg := mustFind(TierSemantic, "primary-foreground")
	assert.Equal(t, AliasValue(mustFind(TierPrimitive, "white").ID), primaryFg.Values[ModeLight])

	// Component ghost button aliases the semantic ghost role.
	buttonGhost := mustFind(TierComponent, "button-ghost-background")
	assert.Equal(t, AliasValue(ghost.ID), buttonGhost.Values[ModeLight])
}

func TestGenerateClearExisting(t *testing.T) {
	host := NewMemHost()
	generateInto(t, host)

	before := allTokens(t, NewStore(host))

	result, err := Generate(Config{PrimaryColor: "#3b82f6", Host: host, ClearExisting: true})
	require.NoError(t, err)

	after := allTokens(t, NewStore(host))
	require.Len(t, after, len(before))
	assert.Equal(t, result.TotalCount(), len(after))

	// A clean regenerate issues fresh ids.
	beforeIDs := make(map[string]bool, len(before))
	for _, tok := range before {
		beforeIDs[tok.ID] = true
	}
	for _, tok := range after {
		assert.False(t, beforeIDs[tok.ID], "token %s kept its pre-clear id", tok.Name)
	}
}

func TestGenerateSeedOverridesPrimary(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "theme.css")
	sheet := ":root {\n  --primary: #7c3aed;\n  --spacing: 4px;\n}\n"
	require.NoError(t, os.WriteFile(seed, []byte(sheet), 0o644))

	host := NewMemHost()
	result, err := Generate(Config{PrimaryColor: "#3b82f6", SeedCSS: seed, Host: host})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SeededHues)
	require.Len(t, result.Warnings, 1, "non-color seed property warns")

	store := NewStore(host)
	primary500, err := store.Find(TierPrimitive, "primary-500")
	require.NoError(t, err)
	require.NotNil(t, primary500)
	assert.Equal(t, "#7c3aed", ColorToHex(primary500.Values[ModeLight].Color))
}

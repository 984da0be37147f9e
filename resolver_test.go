package tokengraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLiteral creates a token holding the same literal color in both modes.
func seedLiteral(t *testing.T, store *Store, tier Tier, name, hex string) *Token {
	t.Helper()
	tok, err := store.Create(tier, name, "test", KindColor)
	require.NoError(t, err)
	v := ColorValue(HexToColor(hex))
	require.NoError(t, store.SetValue(tok, ModeLight, v))
	require.NoError(t, store.SetValue(tok, ModeDark, v))
	return tok
}

func TestResolveExactLowerMatch(t *testing.T) {
	store := newTestStore(t)
	gray50 := seedLiteral(t, store, TierPrimitive, "gray-50", "#fafafa")
	r := NewResolver(store)

	v, err := r.Resolve(TierSemantic, "background", ClassifyReference("gray-50"), ModeLight)
	require.NoError(t, err)
	require.True(t, v.IsAlias())
	assert.Equal(t, gray50.ID, v.Alias)
}

func TestResolveComponentPrefersSemantic(t *testing.T) {
	store := newTestStore(t)
	// Same name exists in both lower tiers; Component must take the
	// Semantic one.
	seedLiteral(t, store, TierPrimitive, "background", "#ffffff")
	semantic := seedLiteral(t, store, TierSemantic, "background", "#fafafa")
	r := NewResolver(store)

	v, err := r.Resolve(TierComponent, "card-background", ClassifyReference("background"), ModeLight)
	require.NoError(t, err)
	require.True(t, v.IsAlias())
	assert.Equal(t, semantic.ID, v.Alias)
}

func TestResolveKeywordAliasesExistingToken(t *testing.T) {
	store := newTestStore(t)
	transparent := seedLiteral(t, store, TierSemantic, "transparent", "#00000000")
	r := NewResolver(store)

	// "transparent" is a keyword, but an existing Semantic token of that
	// name wins over the literal.
	v, err := r.Resolve(TierComponent, "ghost-background", ClassifyReference("transparent"), ModeLight)
	require.NoError(t, err)
	require.True(t, v.IsAlias())
	assert.Equal(t, transparent.ID, v.Alias)
}

func TestResolveKeywordLiteralWhenNoToken(t *testing.T) {
	store := newTestStore(t)
	r := NewResolver(store)

	v, err := r.Resolve(TierComponent, "chip-background", ClassifyReference("transparent"), ModeLight)
	require.NoError(t, err)
	assert.Equal(t, KindColor, v.Kind)
	assert.Equal(t, Transparent, v.Color)
}

func TestResolveSymmetricConflict(t *testing.T) {
	store := newTestStore(t)
	// Even with a plausible alias target present, the conflict pair goes
	// straight to the fallback literal.
	seedLiteral(t, store, TierSemantic, "textColor", "#111111")
	r := NewResolver(store)

	light, err := r.Resolve(TierSemantic, "foreground", ClassifyReference("textColor"), ModeLight)
	require.NoError(t, err)
	assert.Equal(t, KindColor, light.Kind)
	assert.Equal(t, "#171717", ColorToHex(light.Color))

	dark, err := r.Resolve(TierSemantic, "foreground", ClassifyReference("textColor"), ModeDark)
	require.NoError(t, err)
	assert.Equal(t, KindColor, dark.Kind)
	assert.Equal(t, "#fafafa", ColorToHex(dark.Color))
}

func TestResolveSelfReference(t *testing.T) {
	store := newTestStore(t)
	seedLiteral(t, store, TierSemantic, "transparent", "#00000000")
	r := NewResolver(store)

	v, err := r.Resolve(TierSemantic, "transparent", ClassifyReference("transparent"), ModeLight)
	require.NoError(t, err)
	assert.Equal(t, KindColor, v.Kind)
	assert.Equal(t, Transparent, v.Color)
}

func TestResolveCaseConvention(t *testing.T) {
	store := newTestStore(t)
	target := seedLiteral(t, store, TierSemantic, "primary-foreground", "#ffffff")
	r := NewResolver(store)

	v, err := r.Resolve(TierComponent, "button-label", ClassifyReference("primaryForeground"), ModeLight)
	require.NoError(t, err)
	require.True(t, v.IsAlias())
	assert.Equal(t, target.ID, v.Alias)
}

func TestResolveDecomposition(t *testing.T) {
	store := newTestStore(t)
	primary := seedLiteral(t, store, TierSemantic, "primary", "#3b82f6")
	r := NewResolver(store)

	// Neither "primary-button" nor "button" resolves; the prefix does.
	v, err := r.Resolve(TierComponent, "chip-background", ClassifyReference("primary-button"), ModeLight)
	require.NoError(t, err)
	require.True(t, v.IsAlias())
	assert.Equal(t, primary.ID, v.Alias)
}

func TestResolveShadeGuess(t *testing.T) {
	store := newTestStore(t)
	primary500 := seedLiteral(t, store, TierPrimitive, "primary-500", "#3b82f6")
	gray200 := seedLiteral(t, store, TierPrimitive, "gray-200", "#e5e5e5")
	r := NewResolver(store)

	// A bare hue name means its 500 shade.
	v, err := r.Resolve(TierSemantic, "accent", ClassifyReference("primary"), ModeLight)
	require.NoError(t, err)
	require.True(t, v.IsAlias())
	assert.Equal(t, primary500.ID, v.Alias)

	// A bare number means that step of the gray ramp.
	v, err = r.Resolve(TierSemantic, "border", ClassifyReference("200"), ModeLight)
	require.NoError(t, err)
	require.True(t, v.IsAlias())
	assert.Equal(t, gray200.ID, v.Alias)
}

func TestResolveLiteralHex(t *testing.T) {
	store := newTestStore(t)
	r := NewResolver(store)

	v, err := r.Resolve(TierPrimitive, "red-500", ClassifyReference("#ef4444"), ModeLight)
	require.NoError(t, err)
	assert.Equal(t, KindColor, v.Kind)
	assert.Equal(t, "#ef4444", ColorToHex(v.Color))
}

func TestResolveChainCycleRejected(t *testing.T) {
	store := newTestStore(t)
	alpha := seedLiteral(t, store, TierSemantic, "alpha", "#111111")
	beta := seedLiteral(t, store, TierSemantic, "beta", "#222222")

	// alpha already aliases beta; aliasing beta back to alpha would loop.
	require.NoError(t, store.SetValue(alpha, ModeLight, AliasValue(beta.ID)))

	r := NewResolver(store)
	v, err := r.Resolve(TierSemantic, "beta", ClassifyReference("alpha"), ModeLight)
	require.NoError(t, err)
	assert.False(t, v.IsAlias(), "looping candidate must be rejected")
	assert.Equal(t, KindColor, v.Kind)
}

func TestResolveTotality(t *testing.T) {
	store := newTestStore(t)
	r := NewResolver(store)

	refs := []string{"", "   ", "widget", "no-such-token", "totallyUnknownName", "999", "background"}
	for _, ref := range refs {
		for _, mode := range Modes {
			v, err := r.Resolve(TierSemantic, "background", ClassifyReference(ref), mode)
			require.NoError(t, err, "ref %q", ref)
			assert.Equal(t, KindColor, v.Kind, "ref %q resolves to a literal", ref)
		}
	}
}

func TestResolveFallbackByName(t *testing.T) {
	store := newTestStore(t)
	r := NewResolver(store)

	tests := []struct {
		name string
		mode Mode
		hex  string
	}{
		{"background", ModeLight, "#fafafa"},
		{"background", ModeDark, "#0a0a0a"},
		{"foreground", ModeLight, "#171717"},
		{"card-border", ModeDark, "#262626"},
		{"ghost-background", ModeLight, "#00000000"},
		{"widget", ModeLight, "#737373"},
		{"widget", ModeDark, "#737373"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.mode.String(), func(t *testing.T) {
			v, err := r.Resolve(TierComponent, tt.name, ClassifyReference(""), tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, ColorToHex(v.Color))
		})
	}
}

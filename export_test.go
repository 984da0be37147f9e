package tokengraph

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportedStore(t *testing.T) *Store {
	t.Helper()
	host := NewMemHost()
	generateInto(t, host)
	return NewStore(host)
}

func TestExportCSS(t *testing.T) {
	store := exportedStore(t)

	out, err := ExportCSS(store, ExportConfig{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, ":root {\n"))
	assert.Contains(t, out, "\n.dark {\n")

	// Primitives render as literals, aliases as var() references.
	assert.Contains(t, out, "--gray-50: #")
	assert.Contains(t, out, "--background: var(--gray-50);")
	assert.Contains(t, out, "--background: var(--gray-950);")

	// Transparent is identical in both modes, so it appears once.
	assert.Equal(t, 1, strings.Count(out, "--transparent: transparent;"))
}

func TestExportCSSPrefix(t *testing.T) {
	store := exportedStore(t)

	out, err := ExportCSS(store, ExportConfig{Prefix: "tg"})
	require.NoError(t, err)

	assert.Contains(t, out, "--tg-background: var(--tg-gray-50);")
	assert.NotContains(t, out, "--background:")
}

func TestExportCSSIncludeFilter(t *testing.T) {
	store := exportedStore(t)

	out, err := ExportCSS(store, ExportConfig{Include: []string{"button/**"}})
	require.NoError(t, err)

	assert.Contains(t, out, "--button-background:")
	assert.Contains(t, out, "--button-ghost-background:")
	assert.NotContains(t, out, "--card-background:")
	assert.NotContains(t, out, "--gray-50:")
}

func TestExportTailwind(t *testing.T) {
	store := exportedStore(t)

	out, err := ExportTailwind(store, ExportConfig{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "module.exports = {\n"))
	assert.Contains(t, out, "\"primary\": {")
	assert.Contains(t, out, "\"50\": \"var(--primary-50)\",")
	assert.Contains(t, out, "\"background\": \"var(--background)\",")
	// Base primitives have no shade suffix and stay flat.
	assert.Contains(t, out, "\"white\": \"var(--white)\",")
}

func TestExportUnknownFormat(t *testing.T) {
	store := exportedStore(t)

	_, err := Export(store, ExportConfig{Format: "scss"})
	assert.Error(t, err)
}

func TestWriteExport(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteExport(fs, "out/tokens.css", ":root {}\n"))

	content, err := afero.ReadFile(fs, "out/tokens.css")
	require.NoError(t, err)
	assert.Equal(t, ":root {}\n", string(content))
}

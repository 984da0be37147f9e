// Package tokengraph generates a three-tier design-token graph (primitive
// values, semantic aliases, component aliases) and materializes it as
// named, light/dark mode tokens inside a host design tool's variable store.
//
// # Generation
//
// Generate the full graph into an in-memory store:
//
//	result, err := tokengraph.Generate(tokengraph.Config{
//		PrimaryColor: "#3b82f6",
//	})
//
// Attach a real host by implementing the [Host] interface and passing it in
// [Config.Host]. Re-running Generate with the same inputs updates tokens in
// place; it never duplicates them.
//
// # Resolution
//
// The core of the package is the [Resolver]: given a target token slot and a
// reference string (a token name, a hex color, or a keyword), it tries an
// ordered cascade of matching strategies (exact peer match, exact
// lower-tier match, camelCase/kebab-case conversion, prefix/suffix
// decomposition, base-shade guessing, literal parsing) and falls back to a
// context-sensitive literal. Resolution always produces a usable value and
// never creates an alias cycle.
//
// # Export
//
// Flatten a finished store to text:
//
//	css, err := tokengraph.ExportCSS(store, tokengraph.ExportConfig{})
//	tw, err := tokengraph.ExportTailwind(store, tokengraph.ExportConfig{Include: []string{"button/**"}})
//
// # CLI Tool
//
// tokengraph also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/tokengraph/cmd/tokengraph@latest
package tokengraph

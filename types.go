package tokengraph

// Tier orders the three levels of the token graph. Primitive tokens hold
// literal values only; Semantic tokens alias Primitives or hold literals;
// Component tokens alias Semantics (preferred), Primitives, or hold literals.
type Tier int

// Tiers, lowest first.
const (
	TierPrimitive Tier = iota
	TierSemantic
	TierComponent
)

// String returns the tier name used in collection names and export groups.
func (t Tier) String() string {
	switch t {
	case TierPrimitive:
		return "primitive"
	case TierSemantic:
		return "semantic"
	case TierComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Below returns the tier directly beneath t. Primitive is terminal and
// returns itself.
func (t Tier) Below() Tier {
	if t == TierPrimitive {
		return TierPrimitive
	}
	return t - 1
}

// Mode selects one of the two required value slots per token.
type Mode int

// The fixed mode pair. Every token carries a value for both.
const (
	ModeLight Mode = iota
	ModeDark
)

// Modes lists both modes in resolution order.
var Modes = []Mode{ModeLight, ModeDark}

// String returns the mode name the host collection must use.
func (m Mode) String() string {
	if m == ModeDark {
		return "Dark"
	}
	return "Light"
}

// ValueKind tags the Value union and doubles as the declared type a token
// is created with in the host store.
type ValueKind int

// Value kinds.
const (
	KindColor ValueKind = iota
	KindNumber
	KindString
	KindAlias
)

// Value is a tagged union: a literal color/number/string, or an alias to
// another token by its host-issued id.
type Value struct {
	Kind   ValueKind
	Color  Color
	Number float64
	Str    string
	Alias  string // target token id, KindAlias only
}

// ColorValue wraps a literal color.
func ColorValue(c Color) Value { return Value{Kind: KindColor, Color: c} }

// NumberValue wraps a literal number.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// StringValue wraps a literal string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// AliasValue points at another token by id.
func AliasValue(id string) Value { return Value{Kind: KindAlias, Alias: id} }

// IsAlias reports whether the value references another token.
func (v Value) IsAlias() bool { return v.Kind == KindAlias }

// Token is a named, mode-keyed value holder within a tier. Identity is
// (Tier, Name); ID is an opaque handle issued by the host on creation and
// stable across updates. Group is a slash-delimited path used only for
// organization and export filtering, never for resolution.
type Token struct {
	ID     string
	Tier   Tier
	Name   string
	Group  string
	Values map[Mode]Value
}

// RefKind tags a Reference. The kind is decided once, at the tier-builder
// boundary, so the engine never re-sniffs the same string.
type RefKind int

// Reference kinds.
const (
	// RefNamed is a token name to resolve through the cascade.
	RefNamed RefKind = iota
	// RefHex is a literal hex color string.
	RefHex
	// RefKeyword is a reserved word (transparent, named colors).
	RefKeyword
)

// Reference is the input a tier builder supplies when asking the engine to
// populate a token: a token name, a hex color, or a keyword.
type Reference struct {
	Kind RefKind
	Text string
}

// Config holds generation configuration.
type Config struct {
	PrimaryColor  string            // base hex for the primary ramp (default #3b82f6)
	Hues          map[string]string // extra ramps: hue name → base hex
	SeedCSS       string            // optional stylesheet whose custom properties override hues
	ClearExisting bool              // empty the store before generating
	Host          Host              // host variable store; in-memory store when nil
	Verbose       bool              // enable resolution-step logging
}

// GenerateResult contains generation stats.
type GenerateResult struct {
	PrimitiveCount int
	SemanticCount  int
	ComponentCount int
	SeededHues     int // hues overridden by the seed stylesheet
	Warnings       []string
}

// TotalCount returns the number of tokens written across all tiers.
func (r *GenerateResult) TotalCount() int {
	return r.PrimitiveCount + r.SemanticCount + r.ComponentCount
}

// ExportFormat selects an exporter.
type ExportFormat string

// Export formats.
const (
	// ExportCSSFormat emits :root/.dark CSS custom property blocks.
	ExportCSSFormat ExportFormat = "css"
	// ExportTailwindFormat emits a Tailwind-style theme config snippet.
	ExportTailwindFormat ExportFormat = "tailwind"
)

// ExportConfig holds exporter configuration.
type ExportConfig struct {
	Format  ExportFormat
	Include []string // group glob patterns, e.g. "button/**"; empty = all
	Prefix  string   // variable name prefix, e.g. "tg" → --tg-background
}

package tokengraph

import (
	"strings"
)

// Resolver is the reference resolution engine. Given a target token slot
// (tier, name, mode) and a reference, it produces a Value by trying an
// ordered cascade of matching strategies against the store: alias matches
// first, then literal parsing, then a context-sensitive literal fallback.
// It never fails for an unresolvable reference, only for store errors.
type Resolver struct {
	store *Store
}

// NewResolver returns a resolver reading candidate tokens from store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// request carries one resolution attempt through the cascade.
type request struct {
	tier Tier
	name string
	ref  string
	kind RefKind
	mode Mode
}

// strategy is one step of the cascade. ok=false means "no match, try the
// next step"; errors are store failures and abort the cascade.
type strategy struct {
	name string
	fn   func(*Resolver, request) (Value, bool, error)
}

// cascade is the fixed strategy order. First success wins.
var cascade = []strategy{
	{"exact-peer", (*Resolver).exactPeer},
	{"exact-lower", (*Resolver).exactLower},
	{"case-convention", (*Resolver).caseConvention},
	{"decomposition", (*Resolver).decomposition},
	{"shade-guess", (*Resolver).shadeGuess},
	{"literal-parse", (*Resolver).literalParse},
}

// ClassifyReference tags a raw reference string once, at the tier-builder
// boundary, so the cascade never has to re-sniff it.
func ClassifyReference(text string) Reference {
	s := strings.TrimSpace(text)
	switch {
	case IsHex(s) || strings.HasPrefix(strings.ToLower(s), "rgb"):
		return Reference{Kind: RefHex, Text: s}
	case IsColorKeyword(s):
		return Reference{Kind: RefKeyword, Text: strings.ToLower(s)}
	default:
		return Reference{Kind: RefNamed, Text: s}
	}
}

// Resolve produces the value for one (tier, name, mode) slot from a
// reference. It always returns a usable Value; the error is non-nil only
// when the token store itself fails.
func (r *Resolver) Resolve(tier Tier, name string, ref Reference, mode Mode) (Value, error) {
	req := request{
		tier: tier,
		name: name,
		ref:  strings.TrimSpace(ref.Text),
		kind: ref.Kind,
		mode: mode,
	}

	if req.ref == "" {
		return r.fallback(req), nil
	}

	// Cycle guard: direct self-reference and known convention pairs go
	// straight to the literal fallback.
	if req.ref == req.name || isSymmetricConflict(req.name, req.ref) {
		log.Debug().
			Str("tier", tier.String()).
			Str("name", name).
			Str("ref", req.ref).
			Msg("cycle guard: resolving to fallback literal")
		return r.fallback(req), nil
	}

	for _, st := range cascade {
		v, ok, err := st.fn(r, req)
		if err != nil {
			return Value{}, err
		}
		if ok {
			log.Trace().
				Str("tier", tier.String()).
				Str("name", name).
				Str("ref", req.ref).
				Str("mode", mode.String()).
				Str("strategy", st.name).
				Msg("reference resolved")
			return v, nil
		}
	}

	return r.fallback(req), nil
}

// lowerTiers returns the tiers a target may alias into, nearest first.
// Component prefers Semantic over Primitive.
func lowerTiers(tier Tier) []Tier {
	var out []Tier
	for t := tier; t != TierPrimitive; t = t.Below() {
		out = append(out, t.Below())
	}
	return out
}

// exactPeer matches the reference against same-tier Semantic tokens (for
// separator-free Semantic references) or, for Component targets, against
// the Semantic tier the component must prefer.
func (r *Resolver) exactPeer(req request) (Value, bool, error) {
	if req.kind == RefHex {
		return Value{}, false, nil
	}

	switch req.tier {
	case TierSemantic:
		if strings.Contains(req.ref, "-") {
			return Value{}, false, nil
		}
		tok, err := r.store.Find(TierSemantic, req.ref)
		if err != nil {
			return Value{}, false, err
		}
		if tok == nil || tok.Name == req.name {
			return Value{}, false, nil
		}
		return r.aliasIfAcyclic(req, tok)

	case TierComponent:
		tok, err := r.store.Find(TierSemantic, req.ref)
		if err != nil {
			return Value{}, false, err
		}
		if tok == nil {
			return Value{}, false, nil
		}
		return r.aliasIfAcyclic(req, tok)
	}

	return Value{}, false, nil
}

// exactLower matches the reference name exactly in the tiers below the
// target.
func (r *Resolver) exactLower(req request) (Value, bool, error) {
	if req.kind == RefHex {
		return Value{}, false, nil
	}
	return r.probeLower(req, req.ref)
}

// caseConvention retries the lower-tier match with the reference converted
// between camelCase and kebab-case.
func (r *Resolver) caseConvention(req request) (Value, bool, error) {
	if req.kind != RefNamed {
		return Value{}, false, nil
	}

	for _, variant := range []string{ToKebab(req.ref), ToCamel(req.ref)} {
		if variant == req.ref {
			continue
		}
		v, ok, err := r.probeLower(req, variant)
		if ok || err != nil {
			return v, ok, err
		}
	}
	return Value{}, false, nil
}

// decomposition splits the reference on its last hyphen and tries the
// suffix, then the prefix, against the lower tiers.
func (r *Resolver) decomposition(req request) (Value, bool, error) {
	if req.kind != RefNamed {
		return Value{}, false, nil
	}

	prefix, suffix, ok := SplitPrefixSuffix(req.ref)
	if !ok {
		return Value{}, false, nil
	}

	for _, part := range []string{suffix, prefix} {
		if part == req.name {
			continue
		}
		v, found, err := r.probeLower(req, part)
		if found || err != nil {
			return v, found, err
		}
	}
	return Value{}, false, nil
}

// shadeGuess tries the canonical base-shade convention: a bare hue name
// means its 500 shade, and a bare number means that step of the gray ramp.
func (r *Resolver) shadeGuess(req request) (Value, bool, error) {
	if req.tier == TierPrimitive || req.kind != RefNamed || strings.Contains(req.ref, "-") {
		return Value{}, false, nil
	}

	candidate := req.ref + "-500"
	if isNumeric(req.ref) {
		candidate = "gray-" + req.ref
	}

	tok, err := r.store.Find(TierPrimitive, candidate)
	if err != nil {
		return Value{}, false, err
	}
	if tok == nil {
		return Value{}, false, nil
	}
	return r.aliasIfAcyclic(req, tok)
}

// literalParse handles references that are colors rather than names.
func (r *Resolver) literalParse(req request) (Value, bool, error) {
	if req.kind == RefNamed && !IsHex(req.ref) && !IsColorKeyword(req.ref) {
		return Value{}, false, nil
	}
	return ColorValue(parseColor(req.ref)), true, nil
}

// probeLower looks a candidate name up in each tier below the target,
// nearest first, and aliases the first match.
func (r *Resolver) probeLower(req request, candidate string) (Value, bool, error) {
	for _, tier := range lowerTiers(req.tier) {
		tok, err := r.store.Find(tier, candidate)
		if err != nil {
			return Value{}, false, err
		}
		if tok == nil {
			continue
		}
		if v, ok, err := r.aliasIfAcyclic(req, tok); ok || err != nil {
			return v, ok, err
		}
	}
	return Value{}, false, nil
}

// aliasIfAcyclic aliases the candidate unless its existing alias chain for
// this mode leads back to the target slot. A rejected candidate does not
// abort the cascade; later strategies (or the fallback) still run.
func (r *Resolver) aliasIfAcyclic(req request, candidate *Token) (Value, bool, error) {
	cyclic, err := r.introducesCycle(req, candidate)
	if err != nil {
		return Value{}, false, err
	}
	if cyclic {
		log.Debug().
			Str("tier", req.tier.String()).
			Str("name", req.name).
			Str("candidate", candidate.Name).
			Msg("alias chain loops back to target, candidate rejected")
		return Value{}, false, nil
	}
	return AliasValue(candidate.ID), true, nil
}

// introducesCycle walks the candidate's alias chain for the request's mode
// with a visited set, failing closed: reaching the target slot, or any
// repeated token, rejects the candidate.
func (r *Resolver) introducesCycle(req request, candidate *Token) (bool, error) {
	seen := make(map[string]bool)
	cur := candidate

	for cur != nil {
		if cur.Tier == req.tier && cur.Name == req.name {
			return true, nil
		}
		if seen[cur.ID] {
			return true, nil
		}
		seen[cur.ID] = true

		v, ok := cur.Values[req.mode]
		if !ok || !v.IsAlias() || v.Alias == "" {
			return false, nil
		}

		next, err := r.store.TokenByID(v.Alias)
		if err != nil {
			return false, err
		}
		cur = next
	}

	return false, nil
}

// fallback is the terminal cascade step: a context-sensitive literal chosen
// from the target name and mode. It never fails.
func (r *Resolver) fallback(req request) Value {
	name := strings.ToLower(ToKebab(req.name))
	dark := req.mode == ModeDark

	pick := func(light, darkHex string) Value {
		if dark {
			return ColorValue(HexToColor(darkHex))
		}
		return ColorValue(HexToColor(light))
	}

	switch {
	case strings.Contains(name, "transparent"), strings.Contains(name, "ghost"):
		return ColorValue(Transparent)
	case strings.Contains(name, "background"):
		return pick("#fafafa", "#0a0a0a")
	case strings.Contains(name, "foreground"), strings.Contains(name, "text"):
		return pick("#171717", "#fafafa")
	case strings.Contains(name, "border"), strings.Contains(name, "input"), strings.Contains(name, "ring"):
		return pick("#e5e5e5", "#262626")
	default:
		return ColorValue(HexToColor("#737373"))
	}
}

package tokengraph

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// MemHost is an in-memory Host. It is the reference implementation of the
// host boundary and the store the CLI generates into when no design tool is
// attached. Ids are uuids, issued once on creation and stable across value
// updates, matching the contract real hosts provide.
type MemHost struct {
	collections map[Tier]*memCollection
}

type memCollection struct {
	modeIDs map[Mode]string
	tokens  map[string]*Token // name → token
}

// NewMemHost returns an empty in-memory host.
func NewMemHost() *MemHost {
	return &MemHost{collections: make(map[Tier]*memCollection)}
}

// InitCollection implements Host. Calling it twice is a no-op.
func (h *MemHost) InitCollection(tier Tier) error {
	if _, ok := h.collections[tier]; ok {
		return nil
	}
	h.collections[tier] = &memCollection{
		modeIDs: map[Mode]string{
			ModeLight: uuid.NewString(),
			ModeDark:  uuid.NewString(),
		},
		tokens: make(map[string]*Token),
	}
	return nil
}

// FindToken implements Host.
func (h *MemHost) FindToken(tier Tier, name string) (*Token, error) {
	col, ok := h.collections[tier]
	if !ok {
		return nil, fmt.Errorf("%s collection not initialized", tier)
	}
	return col.tokens[name], nil
}

// CreateToken implements Host. The declared kind seeds both mode slots with
// a zero value of that kind so a token is never observed without its two
// modes.
func (h *MemHost) CreateToken(tier Tier, name, group string, kind ValueKind) (*Token, error) {
	col, ok := h.collections[tier]
	if !ok {
		return nil, fmt.Errorf("%s collection not initialized", tier)
	}
	if _, exists := col.tokens[name]; exists {
		return nil, fmt.Errorf("token %s/%s already exists", tier, name)
	}

	tok := &Token{
		ID:    uuid.NewString(),
		Tier:  tier,
		Name:  name,
		Group: group,
		Values: map[Mode]Value{
			ModeLight: {Kind: kind},
			ModeDark:  {Kind: kind},
		},
	}
	col.tokens[name] = tok
	return tok, nil
}

// SetTokenValue implements Host.
func (h *MemHost) SetTokenValue(id string, mode Mode, v Value) error {
	for _, col := range h.collections {
		for _, tok := range col.tokens {
			if tok.ID == id {
				tok.Values[mode] = v
				return nil
			}
		}
	}
	return fmt.Errorf("no token with id %s", id)
}

// Tokens implements Host. Tokens are returned sorted by name so exports are
// deterministic.
func (h *MemHost) Tokens(tier Tier) ([]*Token, error) {
	col, ok := h.collections[tier]
	if !ok {
		return nil, fmt.Errorf("%s collection not initialized", tier)
	}

	toks := make([]*Token, 0, len(col.tokens))
	for _, tok := range col.tokens {
		toks = append(toks, tok)
	}
	sort.Slice(toks, func(i, j int) bool { return toks[i].Name < toks[j].Name })
	return toks, nil
}

// RemoveAllTokens implements Host. Collections and their mode ids survive;
// only tokens are destroyed.
func (h *MemHost) RemoveAllTokens() error {
	for _, col := range h.collections {
		col.tokens = make(map[string]*Token)
	}
	return nil
}

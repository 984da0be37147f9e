package tokengraph

import "fmt"

// Host is the boundary to the design tool's persistent variable storage.
// Implementations own token and mode identity: ids are opaque handles the
// engine never parses or reconstructs.
type Host interface {
	// InitCollection ensures the tier's collection exists with exactly two
	// modes named Light and Dark. It is idempotent.
	InitCollection(tier Tier) error

	// FindToken returns the token with the given name in the tier's
	// collection, or (nil, nil) when absent.
	FindToken(tier Tier, name string) (*Token, error)

	// CreateToken creates a token with a declared value kind. The returned
	// token carries the host-issued id.
	CreateToken(tier Tier, name, group string, kind ValueKind) (*Token, error)

	// SetTokenValue writes one mode slot of an existing token.
	SetTokenValue(id string, mode Mode, v Value) error

	// Tokens enumerates every token in the tier's collection. Exporters
	// read the finished store through this.
	Tokens(tier Tier) ([]*Token, error)

	// RemoveAllTokens empties every collection.
	RemoveAllTokens() error
}

// Store wraps a Host with a per-tier name→token cache so the resolution
// cascade can probe candidate names cheaply. All engine and builder access
// goes through a Store value; there is no process-wide state. A Store is
// not safe for concurrent use; generation is a single sequential pass.
type Store struct {
	host  Host
	cache map[Tier]map[string]*Token
}

// NewStore returns a store backed by the given host.
func NewStore(host Host) *Store {
	return &Store{
		host:  host,
		cache: make(map[Tier]map[string]*Token),
	}
}

// Init ensures all three tier collections and their Light/Dark modes exist.
func (s *Store) Init() error {
	for _, tier := range []Tier{TierPrimitive, TierSemantic, TierComponent} {
		if err := s.host.InitCollection(tier); err != nil {
			return fmt.Errorf("init %s collection: %w", tier, err)
		}
	}
	return nil
}

// Find looks a token up by tier and name, populating the cache lazily.
func (s *Store) Find(tier Tier, name string) (*Token, error) {
	if tok, ok := s.cache[tier][name]; ok {
		return tok, nil
	}

	tok, err := s.host.FindToken(tier, name)
	if err != nil {
		return nil, fmt.Errorf("find %s/%s: %w", tier, name, err)
	}
	if tok == nil {
		return nil, nil
	}

	s.cacheToken(tok)
	return tok, nil
}

// Create creates a token in the host store and caches it. Callers must Find
// first; Create rejects names that already exist so re-runs can never
// duplicate a token.
func (s *Store) Create(tier Tier, name, group string, kind ValueKind) (*Token, error) {
	existing, err := s.Find(tier, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("create %s/%s: token already exists", tier, name)
	}

	tok, err := s.host.CreateToken(tier, name, group, kind)
	if err != nil {
		return nil, fmt.Errorf("create %s/%s: %w", tier, name, err)
	}

	s.cacheToken(tok)
	return tok, nil
}

// SetValue writes one mode slot of a token, both host-side and on the
// in-memory Token so later resolution reads see it.
func (s *Store) SetValue(tok *Token, mode Mode, v Value) error {
	if err := s.host.SetTokenValue(tok.ID, mode, v); err != nil {
		return fmt.Errorf("set %s/%s %s: %w", tok.Tier, tok.Name, mode, err)
	}

	if tok.Values == nil {
		tok.Values = make(map[Mode]Value, len(Modes))
	}
	tok.Values[mode] = v
	return nil
}

// Tokens enumerates a tier. The result reflects the host store, not just
// tokens touched this run.
func (s *Store) Tokens(tier Tier) ([]*Token, error) {
	toks, err := s.host.Tokens(tier)
	if err != nil {
		return nil, fmt.Errorf("list %s tokens: %w", tier, err)
	}
	return toks, nil
}

// TokenByID finds a token by its opaque id across all tiers. Used by the
// cycle guard to walk alias chains and by exporters to render alias targets.
func (s *Store) TokenByID(id string) (*Token, error) {
	for _, tier := range []Tier{TierPrimitive, TierSemantic, TierComponent} {
		toks, err := s.Tokens(tier)
		if err != nil {
			return nil, err
		}
		for _, tok := range toks {
			if tok.ID == id {
				return tok, nil
			}
		}
	}
	return nil, nil
}

// RemoveAll empties the host store and fully invalidates the cache.
func (s *Store) RemoveAll() error {
	if err := s.host.RemoveAllTokens(); err != nil {
		return fmt.Errorf("remove all tokens: %w", err)
	}
	s.cache = make(map[Tier]map[string]*Token)
	return nil
}

func (s *Store) cacheToken(tok *Token) {
	if s.cache[tok.Tier] == nil {
		s.cache[tok.Tier] = make(map[string]*Token)
	}
	s.cache[tok.Tier][tok.Name] = tok
}

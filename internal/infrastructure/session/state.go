// internal/infrastructure/session/state.go
package session

import (
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/auth"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/favorites"
	"github.com/your-org/storefront-backend/internal/domain/settings"
)

// State is everything one browser session owns: its settings, catalog, cart,
// favorites and auth flags, plus the admin's unpublished settings draft. Each
// store starts from hardcoded defaults and is discarded with the session —
// there is no durable storage behind any of it.
type State struct {
	ID        string
	CreatedAt time.Time

	Settings  *settings.Store
	Catalog   *catalog.Store
	Cart      *cart.Store
	Favorites *favorites.Store
	Auth      *auth.Service

	mu        sync.Mutex
	draft     *settings.SiteSettings
	expiresAt time.Time
}

func newState(id string, ttl time.Duration) *State {
	now := time.Now().UTC()
	return &State{
		ID:        id,
		CreatedAt: now,
		Settings:  settings.NewStore(),
		Catalog:   catalog.NewStore(),
		Cart:      cart.NewStore(),
		Favorites: favorites.NewStore(),
		Auth:      auth.NewService(),
		expiresAt: now.Add(ttl),
	}
}

// Draft returns a copy of the admin's settings draft, loading it from the
// committed settings on first access. Shoppers keep reading committed values
// until Publish.
func (s *State) Draft() settings.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked().Clone()
}

// ReplaceDraft swaps the whole draft, mirroring how the admin form submits a
// complete object rather than patches.
func (s *State) ReplaceDraft(next settings.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := next.Clone()
	s.draft = &clone
}

// UpdateDraft runs fn against the draft under the session lock. Used for the
// id-keyed banner and nav-link edits.
func (s *State) UpdateDraft(fn func(*settings.SiteSettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.draftLocked())
}

// UpdateDraftErr is UpdateDraft for edits that can fail (e.g. unknown ids).
// The draft keeps any changes fn made before returning the error, matching
// the form's field-at-a-time behavior.
func (s *State) UpdateDraftErr(fn func(*settings.SiteSettings) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.draftLocked())
}

// PublishDraft atomically replaces the committed settings with the draft.
// On validation failure the committed settings are untouched and the draft is
// kept for correction.
func (s *State) PublishDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Settings.Replace(*s.draftLocked())
}

// DiscardDraft throws the draft away; the next Draft call reloads from
// committed settings.
func (s *State) DiscardDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

func (s *State) draftLocked() *settings.SiteSettings {
	if s.draft == nil {
		clone := s.Settings.Get()
		s.draft = &clone
	}
	return s.draft
}

func (s *State) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *State) touch(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = now.Add(ttl)
}

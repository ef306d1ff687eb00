// internal/domain/settings/service.go
package settings

import (
	"fmt"
	"sync"
	"time"
)

// Store owns the committed SiteSettings for a single session. Reads always see
// a fully populated aggregate; Replace swaps the whole object at once, so a
// reader never observes a half-applied edit. There is no merge or patch path.
type Store struct {
	mu      sync.RWMutex
	current SiteSettings
}

// NewStore creates a settings store holding the default configuration
func NewStore() *Store {
	return &Store{
		current: DefaultSettings(),
	}
}

// Get returns the committed settings. The result is a deep copy; mutating it
// does not affect shared state.
func (s *Store) Get() SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Replace atomically swaps the entire aggregate. The incoming object must be
// complete and well shaped; enumerated styling fields outside their option
// sets are rejected and the committed settings stay untouched.
func (s *Store) Replace(next SiteSettings) error {
	if err := next.Validate(); err != nil {
		return fmt.Errorf("settings rejected: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next.Clone()
	return nil
}

// Draft-side edits. The admin dashboard works on a local copy of the settings;
// these helpers mutate that copy by id without reordering unrelated entries.
// Nothing here touches the committed store.

// AddBanner appends a banner with a fresh unique id and returns it. New
// banners start enabled, matching the admin form.
func (s *SiteSettings) AddBanner(b Banner) Banner {
	b.ID = nextBannerID(s.Banners)
	b.Enabled = true
	s.Banners = append(s.Banners, b)
	return b
}

// UpdateBanner replaces the banner matching the id, keeping its position.
// It reports whether the banner was found.
func (s *SiteSettings) UpdateBanner(b Banner) bool {
	for i := range s.Banners {
		if s.Banners[i].ID == b.ID {
			s.Banners[i] = b
			return true
		}
	}
	return false
}

// RemoveBanner deletes the banner with the given id; absent ids are a no-op
func (s *SiteSettings) RemoveBanner(id int64) {
	for i := range s.Banners {
		if s.Banners[i].ID == id {
			s.Banners = append(s.Banners[:i], s.Banners[i+1:]...)
			return
		}
	}
}

// ToggleBanner flips the enabled flag in place and reports whether the banner
// was found. Toggling never reorders the sequence.
func (s *SiteSettings) ToggleBanner(id int64) bool {
	for i := range s.Banners {
		if s.Banners[i].ID == id {
			s.Banners[i].Enabled = !s.Banners[i].Enabled
			return true
		}
	}
	return false
}

// GetBanner returns the banner with the given id, reporting whether it exists
func (s *SiteSettings) GetBanner(id int64) (Banner, bool) {
	for _, b := range s.Banners {
		if b.ID == id {
			return b, true
		}
	}
	return Banner{}, false
}

// UpdateNavLink replaces the nav link matching the id, keeping its position.
// It reports whether the link was found.
func (s *SiteSettings) UpdateNavLink(link NavLinkItem) bool {
	for i := range s.NavLinks {
		if s.NavLinks[i].ID == link.ID {
			s.NavLinks[i] = link
			return true
		}
	}
	return false
}

// nextBannerID assigns a current-time id like the admin form does. If two
// banners are added within the same millisecond the id is bumped past the
// existing maximum so ids never collide within a session.
func nextBannerID(existing []Banner) int64 {
	id := time.Now().UnixMilli()
	for _, b := range existing {
		if b.ID >= id {
			id = b.ID + 1
		}
	}
	return id
}

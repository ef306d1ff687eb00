// internal/infrastructure/session/registry.go
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
)

// Registry maps session ids to their in-memory state. Sessions slide their
// expiry on every access and are reaped by a background sweeper; an expired
// id behaves exactly like an unknown one, which is how a reload resets the
// storefront.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*State
	ttl      time.Duration
	sweep    time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewRegistry creates a session registry from configuration
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		sessions: make(map[string]*State),
		ttl:      cfg.Session.TTL,
		sweep:    cfg.Session.SweepInterval,
		done:     make(chan struct{}),
	}
}

// Create allocates a fresh session with default state and returns it
func (r *Registry) Create() *State {
	state := newState(uuid.New().String(), r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[state.ID] = state
	return state
}

// Get returns the live session for the id, reporting whether one exists.
// Expired sessions are treated as absent and removed.
func (r *Registry) Get(id string) (*State, bool) {
	now := time.Now().UTC()

	r.mu.RLock()
	state, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if state.expired(now) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, false
	}

	state.touch(now, r.ttl)
	return state, true
}

// GetOrCreate resolves the id to a live session, creating a fresh one when the
// id is empty, unknown or expired. It returns the state and whether it was
// newly created (so the caller can set the cookie).
func (r *Registry) GetOrCreate(id string) (*State, bool) {
	if id != "" {
		if state, ok := r.Get(id); ok {
			return state, false
		}
	}
	return r.Create(), true
}

// Count returns the number of live sessions
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// StartSweeper launches the background reaper for expired sessions
func (r *Registry) StartSweeper() {
	go func() {
		ticker := time.NewTicker(r.sweep)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.removeExpired()
			case <-r.done:
				return
			}
		}
	}()
}

// Stop shuts the sweeper down
func (r *Registry) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
	})
}

func (r *Registry) removeExpired() {
	now := time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, state := range r.sessions {
		if state.expired(now) {
			delete(r.sessions, id)
		}
	}
}

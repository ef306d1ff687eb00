// internal/domain/favorites/service.go
package favorites

import "sync"

// Store holds the set of favorited product ids for a single session.
// Membership is what matters; insertion order is kept so the favorites page
// displays products in the order they were hearted.
type Store struct {
	mu  sync.Mutex
	ids []int
}

// NewStore creates an empty favorites store
func NewStore() *Store {
	return &Store{}
}

// Toggle flips membership for the product id and returns the new state:
// true when the product is now a favorite, false when it was removed.
// Toggling twice always restores the prior state.
func (s *Store) Toggle(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.ids {
		if id == productID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false
		}
	}

	s.ids = append(s.ids, productID)
	return true
}

// IsFavorite reports whether the product id is in the set
func (s *Store) IsFavorite(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// List returns the favorited ids in insertion order
func (s *Store) List() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of favorited products
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

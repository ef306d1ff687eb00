// internal/domain/cart/service.go
package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Store holds the cart lines for a single session
type Store struct {
	mu    sync.Mutex
	items []Item
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{}
}

// AddRequest represents an add-to-cart request
type AddRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest represents an absolute quantity update. A quantity of
// zero (or below) removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Add puts a product in the cart. If a line for the product id already exists
// its quantity is incremented by quantity; otherwise a new line is appended.
func (s *Store) Add(product catalog.Product, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.items[i].Product = product // Refresh snapshot in case it changed
			return nil
		}
	}

	s.items = append(s.items, Item{
		Product:  product,
		Quantity: quantity,
		AddedAt:  time.Now().UTC(),
	})
	return nil
}

// UpdateQuantity sets the line quantity for the product id to an absolute
// value. A value <= 0 removes the line entirely; it is never left at zero.
// It reports whether a line for the id existed.
func (s *Store) UpdateQuantity(productID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			} else {
				s.items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// Remove deletes the line for the product id. Removing an absent id is a no-op.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart lines in insertion order
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the sum of quantities across all lines, used for the cart
// badge. Note this is not the number of lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Totals recomputes the cart totals from the current lines
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculateTotals(s.items)
}

// Snapshot returns the lines together with freshly computed totals
func (s *Store) Snapshot() Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)

	return Response{
		Items:  items,
		Totals: calculateTotals(items),
	}
}

func calculateTotals(items []Item) Totals {
	var totals Totals

	totals.ItemCount = len(items)
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.Subtotal += item.Product.Price * int64(item.Quantity)
	}

	return totals
}

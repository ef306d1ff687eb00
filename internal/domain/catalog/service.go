// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sync"
)

// Store holds the product catalog for a single session. Entries keep their
// insertion order; ids are assigned as max(existing)+1 so deletions leave gaps
// that are never reused within the same run of ids.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

// NewStore creates a catalog store seeded with the default products
func NewStore() *Store {
	return &Store{
		products: SeedProducts(),
	}
}

// NewEmptyStore creates a catalog store with no products
func NewEmptyStore() *Store {
	return &Store{}
}

// ProductCreateRequest represents the fields of a product to be created
type ProductCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	ImageURL    string `json:"image_url"`
	Notes       Notes  `json:"notes"`
}

// ProductUpdateRequest represents a full product replacement
type ProductUpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	ImageURL    string `json:"image_url"`
	Notes       Notes  `json:"notes"`
}

// List returns all products in insertion order
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Add appends a new product and returns the created record
func (s *Store) Add(req *ProductCreateRequest) (Product, error) {
	if req.Price < 0 {
		return Product{}, fmt.Errorf("price cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:          s.nextID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Notes:       req.Notes,
	}
	s.products = append(s.products, product)
	return product, nil
}

// Update replaces the product whose id matches. It reports whether a product
// was found; an absent id is left untouched and never creates a new entry.
func (s *Store) Update(product Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return true
		}
	}
	return false
}

// Delete removes the product with the given id. Deleting an absent id is a
// no-op.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// GetByID returns the product with the given id, reporting whether it exists
func (s *Store) GetByID(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Count returns the number of products in the catalog
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// nextID assigns max(existing)+1, or 1 for an empty catalog. Caller must hold
// the lock.
func (s *Store) nextID() int {
	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Item represents one line in the cart: a product plus its quantity. The cart
// holds at most one line per product id; re-adding a product merges into the
// existing line.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// Totals represents calculated cart totals. Totals are derived on every read
// and never cached.
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities (badge count)
	Subtotal      int64 `json:"sub_total"`      // Sum of price * quantity
}

// Response represents a cart with its lines and totals
type Response struct {
	Items  []Item `json:"items"`
	Totals Totals `json:"totals"`
}

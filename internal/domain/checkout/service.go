// internal/domain/checkout/service.go
package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// PaymentMethodCOD is the only payment method the storefront offers. Orders
// are confirmed immediately; no gateway is involved.
const PaymentMethodCOD = "cash_on_delivery"

// Service handles checkout business logic
type Service struct{}

// NewService creates a new checkout service
func NewService() *Service {
	return &Service{}
}

// ShippingDetails represents the delivery form collected at checkout
type ShippingDetails struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

// OrderLine is a snapshot of one cart line at the moment the order was placed
type OrderLine struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// Pricing represents the order pricing breakdown. Cash on delivery carries no
// tax or shipping charges here.
type Pricing struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shipping_cost"`
	TaxAmount    int64 `json:"tax_amount"`
	TotalAmount  int64 `json:"total_amount"`
}

// OrderConfirmation is the result of a successful checkout. It lives only in
// the response; nothing is persisted.
type OrderConfirmation struct {
	OrderNumber   string          `json:"order_number"`
	PlacedAt      time.Time       `json:"placed_at"`
	PaymentMethod string          `json:"payment_method"`
	Lines         []OrderLine     `json:"lines"`
	Pricing       Pricing         `json:"pricing"`
	Shipping      ShippingDetails `json:"shipping"`
}

// PlaceOrder snapshots the cart into an order confirmation and clears the
// cart. An empty cart is a client error, not a crash.
func (s *Service) PlaceOrder(cartStore *cart.Store, shipping ShippingDetails) (*OrderConfirmation, error) {
	snapshot := cartStore.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	lines := make([]OrderLine, len(snapshot.Items))
	for i, item := range snapshot.Items {
		lines[i] = OrderLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			LineTotal: item.Product.Price * int64(item.Quantity),
		}
	}

	confirmation := &OrderConfirmation{
		OrderNumber:   generateOrderNumber(),
		PlacedAt:      time.Now().UTC(),
		PaymentMethod: PaymentMethodCOD,
		Lines:         lines,
		Pricing: Pricing{
			Subtotal:    snapshot.Totals.Subtotal,
			TotalAmount: snapshot.Totals.Subtotal,
		},
		Shipping: shipping,
	}

	cartStore.Clear()
	return confirmation, nil
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.New().String()[:8]))
}

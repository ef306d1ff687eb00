package checkout

import (
	"strings"
	"testing"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

var testShipping = ShippingDetails{
	Name:       "Amina Khan",
	Address:    "12 Garden Road",
	City:       "Karachi",
	PostalCode: "74000",
	Phone:      "0300-1234567",
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	cartStore := cart.NewStore()
	cartStore.Add(catalog.Product{ID: 1, Name: "Azure Sky", Price: 100}, 2)
	cartStore.Add(catalog.Product{ID: 2, Name: "Noir Essence", Price: 250}, 1)

	service := NewService()
	confirmation, err := service.PlaceOrder(cartStore, testShipping)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	if len(confirmation.Lines) != 2 {
		t.Fatalf("got %d order lines, want 2", len(confirmation.Lines))
	}
	if confirmation.Lines[0].LineTotal != 200 {
		t.Errorf("first line total = %d, want 200", confirmation.Lines[0].LineTotal)
	}
	if confirmation.Pricing.Subtotal != 450 || confirmation.Pricing.TotalAmount != 450 {
		t.Errorf("pricing = %+v, want subtotal and total of 450", confirmation.Pricing)
	}
	if confirmation.PaymentMethod != PaymentMethodCOD {
		t.Errorf("payment method = %q, want %q", confirmation.PaymentMethod, PaymentMethodCOD)
	}
	if confirmation.Shipping != testShipping {
		t.Errorf("shipping = %+v, want the submitted details", confirmation.Shipping)
	}

	if cartStore.Count() != 0 {
		t.Error("cart not cleared after checkout")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	service := NewService()

	if _, err := service.PlaceOrder(cart.NewStore(), testShipping); err == nil {
		t.Error("PlaceOrder accepted an empty cart")
	}
}

func TestOrderNumberFormat(t *testing.T) {
	cartStore := cart.NewStore()
	cartStore.Add(catalog.Product{ID: 1, Name: "Azure Sky", Price: 100}, 1)

	confirmation, err := NewService().PlaceOrder(cartStore, testShipping)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	if !strings.HasPrefix(confirmation.OrderNumber, "ORD-") {
		t.Errorf("order number %q missing ORD- prefix", confirmation.OrderNumber)
	}
	if len(confirmation.OrderNumber) != len("ORD-")+8 {
		t.Errorf("order number %q has unexpected length", confirmation.OrderNumber)
	}
	if confirmation.OrderNumber != strings.ToUpper(confirmation.OrderNumber) {
		t.Errorf("order number %q is not uppercase", confirmation.OrderNumber)
	}
}

// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles the cash-on-delivery checkout endpoint
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkout.NewService(),
		config:          cfg,
	}
}

// PlaceOrder handles POST /checkout. On success the cart is cleared and the
// confirmation is returned; nothing is stored server-side.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var shipping checkout.ShippingDetails
	if err := c.ShouldBindJSON(&shipping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	confirmation, err := h.checkoutService.PlaceOrder(state.Cart, shipping)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    confirmation,
	})
}

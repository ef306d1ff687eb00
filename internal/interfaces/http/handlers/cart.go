// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	config *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cfg *config.Config) *CartHandler {
	return &CartHandler{
		config: cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    state.Cart.Snapshot(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req cart.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, found := state.Catalog.GetByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	if err := state.Cart.Add(product, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    state.Cart.Snapshot(),
	})
}

// UpdateCartItem handles PUT /cart/items/:id. The quantity is an absolute
// value; zero or less removes the line.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !state.Cart.UpdateQuantity(productID, req.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    state.Cart.Snapshot(),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id - no-op when absent
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	state.Cart.Remove(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    state.Cart.Snapshot(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	state.Cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    state.Cart.Snapshot(),
	})
}

// GetCartCount handles GET /cart/count - the badge number (sum of quantities)
func (h *CartHandler) GetCartCount(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": state.Cart.Count(),
		},
	})
}

// internal/interfaces/http/handlers/favorites.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// FavoritesHandler handles favorites endpoints
type FavoritesHandler struct {
	config *config.Config
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(cfg *config.Config) *FavoritesHandler {
	return &FavoritesHandler{
		config: cfg,
	}
}

// GetFavorites handles GET /favorites. Favorited products are resolved
// against the catalog on every read; ids whose product was deleted simply
// drop out of the view.
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	products := make([]catalog.Product, 0)
	for _, id := range state.Favorites.List() {
		if product, found := state.Catalog.GetByID(id); found {
			products = append(products, product)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorites retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// ToggleFavorite handles POST /favorites/:id/toggle
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
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

	if _, found := state.Catalog.GetByID(productID); !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	favorited := state.Favorites.Toggle(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite toggled successfully",
		"data": gin.H{
			"product_id":  productID,
			"is_favorite": favorited,
		},
	})
}

// IsFavorite handles GET /favorites/:id
func (h *FavoritesHandler) IsFavorite(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite status retrieved successfully",
		"data": gin.H{
			"product_id":  productID,
			"is_favorite": state.Favorites.IsFavorite(productID),
		},
	})
}

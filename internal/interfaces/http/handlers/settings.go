// internal/interfaces/http/handlers/settings.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// SettingsHandler serves the committed site settings to the storefront
type SettingsHandler struct {
	config *config.Config
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(cfg *config.Config) *SettingsHandler {
	return &SettingsHandler{
		config: cfg,
	}
}

// GetSettings handles GET /settings. With ?view=storefront the banner list is
// filtered down to enabled entries, which is what the shopper-facing pages
// render; the full object is returned otherwise.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	current := state.Settings.Get()

	if c.Query("view") == "storefront" {
		current.Banners = current.EnabledBanners()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings retrieved successfully",
		"data":    current,
	})
}

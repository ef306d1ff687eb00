// internal/interfaces/http/handlers/admin_settings.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/settings"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// AdminSettingsHandler handles the admin dashboard's settings draft. The
// draft is a server-side copy of the committed settings; every edit lands on
// the draft and shoppers see nothing until publish.
type AdminSettingsHandler struct {
	config *config.Config
}

// NewAdminSettingsHandler creates a new admin settings handler
func NewAdminSettingsHandler(cfg *config.Config) *AdminSettingsHandler {
	return &AdminSettingsHandler{
		config: cfg,
	}
}

// BannerCreateRequest represents a new promotional banner
type BannerCreateRequest struct {
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url" binding:"required"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
}

// BannerUpdateRequest represents a full banner replacement
type BannerUpdateRequest struct {
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url" binding:"required"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	Enabled    bool   `json:"enabled"`
}

// NavLinkUpdateRequest represents a full nav-link replacement
type NavLinkUpdateRequest struct {
	Text    string `json:"text" binding:"required"`
	Path    string `json:"path" binding:"required"`
	Enabled bool   `json:"enabled"`
}

// GetDraft handles GET /admin/settings/draft
func (h *AdminSettingsHandler) GetDraft(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings draft retrieved successfully",
		"data":    state.Draft(),
	})
}

// ReplaceDraft handles PUT /admin/settings/draft. The body must be the whole
// settings object; the form always submits everything at once.
func (h *AdminSettingsHandler) ReplaceDraft(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var draft settings.SiteSettings
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state.ReplaceDraft(draft)

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings draft updated successfully",
		"data":    state.Draft(),
	})
}

// AddBanner handles POST /admin/settings/draft/banners
func (h *AdminSettingsHandler) AddBanner(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req BannerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	var created settings.Banner
	state.UpdateDraft(func(draft *settings.SiteSettings) {
		created = draft.AddBanner(settings.Banner{
			Title:      req.Title,
			Subtitle:   req.Subtitle,
			ImageURL:   req.ImageURL,
			ButtonText: req.ButtonText,
			ButtonLink: req.ButtonLink,
		})
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Banner added to draft",
		"data":    created,
	})
}

// UpdateBanner handles PUT /admin/settings/draft/banners/:id
func (h *AdminSettingsHandler) UpdateBanner(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID",
		})
		return
	}

	var req BannerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	banner := settings.Banner{
		ID:         id,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		ImageURL:   req.ImageURL,
		ButtonText: req.ButtonText,
		ButtonLink: req.ButtonLink,
		Enabled:    req.Enabled,
	}

	found := false
	state.UpdateDraft(func(draft *settings.SiteSettings) {
		found = draft.UpdateBanner(banner)
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Banner not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Banner updated in draft",
		"data":    banner,
	})
}

// DeleteBanner handles DELETE /admin/settings/draft/banners/:id - idempotent
func (h *AdminSettingsHandler) DeleteBanner(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID",
		})
		return
	}

	state.UpdateDraft(func(draft *settings.SiteSettings) {
		draft.RemoveBanner(id)
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Banner removed from draft",
	})
}

// ToggleBanner handles POST /admin/settings/draft/banners/:id/toggle
func (h *AdminSettingsHandler) ToggleBanner(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID",
		})
		return
	}

	found := false
	var banner settings.Banner
	state.UpdateDraft(func(draft *settings.SiteSettings) {
		if found = draft.ToggleBanner(id); found {
			banner, _ = draft.GetBanner(id)
		}
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Banner not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Banner toggled in draft",
		"data":    banner,
	})
}

// UpdateNavLink handles PUT /admin/settings/draft/nav-links/:id
func (h *AdminSettingsHandler) UpdateNavLink(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid nav link ID",
		})
		return
	}

	var req NavLinkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	link := settings.NavLinkItem{
		ID:      id,
		Text:    req.Text,
		Path:    req.Path,
		Enabled: req.Enabled,
	}

	found := false
	state.UpdateDraft(func(draft *settings.SiteSettings) {
		found = draft.UpdateNavLink(link)
	})

	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Nav link not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Nav link updated in draft",
		"data":    link,
	})
}

// Publish handles POST /admin/settings/publish - atomically replaces the
// committed settings with the draft. On validation failure nothing changes
// and the draft is kept for correction.
func (h *AdminSettingsHandler) Publish(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	if err := state.PublishDraft(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings published successfully",
		"data":    state.Settings.Get(),
	})
}

// Discard handles POST /admin/settings/discard - drops the draft so the next
// read reloads from committed settings.
func (h *AdminSettingsHandler) Discard(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	state.DiscardDraft()

	c.JSON(http.StatusOK, gin.H{
		"message": "Settings draft discarded",
		"data":    state.Draft(),
	})
}

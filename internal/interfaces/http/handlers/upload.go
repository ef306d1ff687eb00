// internal/interfaces/http/handlers/upload.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/upload"
)

// UploadHandler handles image upload endpoints
type UploadHandler struct {
	uploadService *upload.Service
	config        *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadService: upload.NewService(cfg),
		config:        cfg,
	}
}

// UploadImage handles POST /uploads/images. The response carries a base64
// data URI the admin form stores into whichever image field it is editing.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}
	defer file.Close()

	reference, err := h.uploadService.EncodeImage(file, header)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully",
		"data":    reference,
	})
}

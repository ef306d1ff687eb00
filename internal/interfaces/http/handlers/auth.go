// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/auth"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// AuthHandler handles customer and admin authentication endpoints. Both are
// mock flows: failures come back as 401 with a fixed message so the client
// clears the password field and shows inline error text.
type AuthHandler struct {
	config *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		config: cfg,
	}
}

// Login handles POST /auth/login - accepts any non-empty credentials
func (h *AuthHandler) Login(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, success := state.Auth.Login(req.Email, req.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"data":    user,
	})
}

// Signup handles POST /auth/signup - accepts any non-empty triple
func (h *AuthHandler) Signup(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, success := state.Auth.Signup(req.Name, req.Email, req.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signed up successfully",
		"data":    user,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	state.Auth.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetProfile handles GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	user, signedIn := state.Auth.CurrentUser()
	if !signedIn {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not signed in",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

// AdminLogin handles POST /admin/login - exact match against the fixed pair
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	var req auth.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !state.Auth.AdminLogin(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin logged in successfully",
	})
}

// AdminLogout handles POST /admin/logout
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	state, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session not available"})
		return
	}

	state.Auth.AdminLogout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin logged out successfully",
	})
}

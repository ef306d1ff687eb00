// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/session"
)

const sessionContextKey = "session_state"

// Session resolves the session cookie to its in-memory state, creating a
// fresh session (and setting the cookie) when the id is missing, unknown or
// expired. Every route behind this middleware can assume a session exists.
func Session(registry *session.Registry, cfg *config.Config) gin.HandlerFunc {
	maxAge := int(cfg.Session.TTL.Seconds())

	return func(c *gin.Context) {
		id, _ := c.Cookie(cfg.Session.CookieName)

		state, created := registry.GetOrCreate(id)
		if created {
			c.SetCookie(cfg.Session.CookieName, state.ID, maxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, state)
		c.Next()
	}
}

// AdminRequired gates routes behind the session's admin flag. Unauthenticated
// access gets a 401 so the client can route to the admin login view and come
// back to the originally requested path after a successful login.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, ok := SessionFromContext(c)
		if !ok || !state.Auth.IsAdminAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin authentication required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext extracts the session state from gin context
func SessionFromContext(c *gin.Context) (*session.State, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	state, ok := value.(*session.State)
	return state, ok
}

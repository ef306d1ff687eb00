// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires every endpoint under the API group. The session
// middleware has already run; handlers read their stores from the session
// state in context.
func SetupRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	SetupStorefrontRoutes(rg, cfg)
	SetupAuthRoutes(rg, cfg)
	SetupAdminRoutes(rg, cfg)
}

// SetupStorefrontRoutes sets up the shopper-facing routes
func SetupStorefrontRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	settingsHandler := handlers.NewSettingsHandler(cfg)
	productHandler := handlers.NewProductHandler(cfg)
	cartHandler := handlers.NewCartHandler(cfg)
	favoritesHandler := handlers.NewFavoritesHandler(cfg)
	checkoutHandler := handlers.NewCheckoutHandler(cfg)
	uploadHandler := handlers.NewUploadHandler(cfg)

	rg.GET("/settings", settingsHandler.GetSettings)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", favoritesHandler.GetFavorites)
		favorites.GET("/:id", favoritesHandler.IsFavorite)
		favorites.POST("/:id/toggle", favoritesHandler.ToggleFavorite)
	}

	rg.POST("/checkout", checkoutHandler.PlaceOrder)

	rg.POST("/uploads/images", uploadHandler.UploadImage)
}

// SetupAuthRoutes sets up customer authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.GetProfile)
	}
}

// SetupAdminRoutes sets up the admin dashboard routes. Login and logout sit
// outside the gate; everything else requires the session's admin flag.
func SetupAdminRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(cfg)
	productHandler := handlers.NewProductHandler(cfg)
	adminSettingsHandler := handlers.NewAdminSettingsHandler(cfg)

	admin := rg.Group("/admin")

	admin.POST("/login", authHandler.AdminLogin)
	admin.POST("/logout", authHandler.AdminLogout)

	protected := admin.Group("")
	protected.Use(middleware.AdminRequired())
	{
		// Product management
		products := protected.Group("/products")
		{
			products.GET("", productHandler.AdminGetProducts)
			products.POST("", productHandler.AdminCreateProduct)
			products.PUT("/:id", productHandler.AdminUpdateProduct)
			products.DELETE("/:id", productHandler.AdminDeleteProduct)
		}

		// Settings draft editing and publishing
		settings := protected.Group("/settings")
		{
			settings.GET("/draft", adminSettingsHandler.GetDraft)
			settings.PUT("/draft", adminSettingsHandler.ReplaceDraft)
			settings.POST("/draft/banners", adminSettingsHandler.AddBanner)
			settings.PUT("/draft/banners/:id", adminSettingsHandler.UpdateBanner)
			settings.DELETE("/draft/banners/:id", adminSettingsHandler.DeleteBanner)
			settings.POST("/draft/banners/:id/toggle", adminSettingsHandler.ToggleBanner)
			settings.PUT("/draft/nav-links/:id", adminSettingsHandler.UpdateNavLink)
			settings.POST("/publish", adminSettingsHandler.Publish)
			settings.POST("/discard", adminSettingsHandler.Discard)
		}
	}
}

// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/analytics"
	"github.com/your-org/promptshop-backend/internal/domain/cart"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
	"github.com/your-org/promptshop-backend/internal/domain/newsletter"
	"github.com/your-org/promptshop-backend/internal/domain/order"
	"github.com/your-org/promptshop-backend/internal/domain/user"
	"github.com/your-org/promptshop-backend/internal/interfaces/http/handlers"
	"github.com/your-org/promptshop-backend/internal/interfaces/http/middleware"
	"github.com/your-org/promptshop-backend/internal/pkg/pdf"
)

// Dependencies carries the wired services the HTTP layer exposes
type Dependencies struct {
	Config     *config.Config
	Catalog    *catalog.Service
	Cart       *cart.Service
	Users      *user.Service
	Orders     *order.Service
	Analytics  *analytics.Service
	Newsletter *newsletter.Service
	PDF        *pdf.Service
}

// SetupRoutes registers all API routes on the given group
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	setupAuthRoutes(rg, deps)
	setupCatalogRoutes(rg, deps)
	setupCartRoutes(rg, deps)
	setupOrderRoutes(rg, deps)
	setupDashboardRoutes(rg, deps)
	setupAdminRoutes(rg, deps)
	setupNewsletterRoutes(rg, deps)
}

func setupAuthRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Cart, deps.Config)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Config))
		{
			protected.GET("/me", authHandler.GetProfile)
			protected.PUT("/me", authHandler.UpdateProfile)
		}
	}
}

func setupCatalogRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Config)

	prompts := rg.Group("/prompts")
	{
		prompts.GET("", catalogHandler.ListPrompts)
		prompts.GET("/featured", catalogHandler.GetFeaturedPrompts)
		prompts.GET("/slug/:slug", catalogHandler.GetPromptBySlug)
		prompts.GET("/:id", catalogHandler.GetPrompt)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", catalogHandler.ListCategories)
		categories.GET("/:slug", catalogHandler.GetCategory)
		categories.GET("/:slug/prompts", catalogHandler.GetCategoryPrompts)
	}

	bundles := rg.Group("/bundles")
	{
		bundles.GET("", catalogHandler.ListBundles)
		bundles.GET("/:id", catalogHandler.GetBundle)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Config)

	carts := rg.Group("/cart")
	// Optional auth so authenticated users get a user-scoped cart,
	// guests fall back to the session cookie
	carts.Use(middleware.OptionalAuthMiddleware(deps.Config))
	carts.Use(middleware.Session())
	{
		carts.GET("", cartHandler.GetCart)
		carts.DELETE("", cartHandler.ClearCart)
		carts.GET("/count", cartHandler.GetItemCount)
		carts.POST("/items", cartHandler.AddItem)
		carts.DELETE("/items/:id", cartHandler.RemoveItem)
		carts.POST("/coupon", cartHandler.ApplyCoupon)
		carts.DELETE("/coupon", cartHandler.RemoveCoupon)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Orders, deps.PDF, deps.Config)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(deps.Config))
	orders.Use(middleware.Session())
	{
		orders.POST("/checkout", orderHandler.Checkout)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.Receipt)
		orders.GET("/:id/items/:item_id/download", orderHandler.Download)
		orders.POST("/:id/cancel", orderHandler.Cancel)
	}
}

func setupDashboardRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	analyticsHandler := handlers.NewAnalyticsHandler(deps.Analytics, deps.Config)

	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(deps.Config))
	{
		dashboard.GET("/stats", analyticsHandler.GetDashboardStats)
	}
}

func setupAdminRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	analyticsHandler := handlers.NewAnalyticsHandler(deps.Analytics, deps.Config)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Config))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/stats", analyticsHandler.GetAdminStats)
	}
}

func setupNewsletterRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	newsletterHandler := handlers.NewNewsletterHandler(deps.Newsletter, deps.Config)

	nl := rg.Group("/newsletter")
	{
		nl.POST("/subscribe", newsletterHandler.Subscribe)
		nl.POST("/unsubscribe", newsletterHandler.Unsubscribe)
	}
}

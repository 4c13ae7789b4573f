// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/analytics"
	"github.com/your-org/promptshop-backend/internal/domain/cart"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
	"github.com/your-org/promptshop-backend/internal/domain/coupon"
	"github.com/your-org/promptshop-backend/internal/domain/newsletter"
	"github.com/your-org/promptshop-backend/internal/domain/order"
	"github.com/your-org/promptshop-backend/internal/domain/user"
	"github.com/your-org/promptshop-backend/internal/infrastructure/redis"
	"github.com/your-org/promptshop-backend/internal/interfaces/http"
	"github.com/your-org/promptshop-backend/internal/interfaces/http/routes"
	"github.com/your-org/promptshop-backend/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Wire the catalog from the fixture set
	catalogService := catalog.NewService(catalog.NewStore(catalog.DefaultFixtures()), cfg)
	couponBook := coupon.DefaultBook()

	// Carts live in Redis so they survive restarts
	cartStore := cart.NewRedisStore(redisClient.GetClient(), cfg.Cart.TTL)
	cartService := cart.NewService(cartStore, catalogService, couponBook, cfg)

	// Users and orders are held in memory, seeded with the demo accounts
	userService, err := user.NewService(user.NewStore(), cfg, user.DefaultSeedUsers())
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	orderService := order.NewService(order.NewStore(), cartService, catalogService, cfg)
	analyticsService := analytics.NewService(orderService.Store(), userService, catalogService, cfg)
	newsletterService := newsletter.NewService()
	pdfService := pdf.NewService(cfg)

	log.Println("✅ All systems operational!")

	server := http.NewServer(cfg, redisClient.GetClient(), &routes.Dependencies{
		Config:     cfg,
		Catalog:    catalogService,
		Cart:       cartService,
		Users:      userService,
		Orders:     orderService,
		Analytics:  analyticsService,
		Newsletter: newsletterService,
		PDF:        pdfService,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthclaim-portal/internal/adapters/http/middleware"
	"healthclaim-portal/internal/adapters/http/routes"
	"healthclaim-portal/internal/adapters/persistence/repositories"
	"healthclaim-portal/internal/config"
	"healthclaim-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "healthclaim-portal/docs" // Swagger docs
)

// @title Health Claim Portal API
// @version 1.0
// @description Reimbursement claim submission and review API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@healthclaim.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	store, audit := openStore(cfg)
	defer config.CloseDatabase()

	claims := repositories.ClaimStore(store)
	if cfg.Cache.Size > 0 {
		claims = repositories.NewCachedClaimSet(store, cfg.Cache.Size, cfg.Cache.TTL)
		log.Printf("✅ Claim cache enabled [size: %d, ttl: %s]", cfg.Cache.Size, cfg.Cache.TTL)
	}

	if cfg.SeedSampleData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := config.NewSeeder(claims, cfg).Run(ctx); err != nil {
			log.Printf("⚠️ Warning: Failed to seed sample claims: %v", err)
		}
		cancel()
	}

	// Services
	lifecycle := services.NewLifecycleService(claims, time.Now)
	portals := routes.Portals{
		Claimants: services.NewClaimantPortal(lifecycle, claims, time.Now),
		Reviewers: services.NewReviewerPortal(lifecycle, claims, audit, time.Now),
	}

	// Claims digest (optional)
	if cfg.Digest.Spec != "" {
		digest := services.NewDigestService(claims, cfg.Digest.Spec)
		if err := digest.Start(); err != nil {
			log.Fatalf("❌ Failed to start digest: %v", err)
		}
		defer digest.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Health Claim Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, cfg, portals)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// openStore returns the configured claim store and its review history
func openStore(cfg *config.Config) (repositories.ClaimStore, repositories.ClaimEventStore) {
	if !cfg.UsesDatabase() {
		log.Println("✅ Using in-memory claim store")
		return repositories.NewMemoryClaimSet(), repositories.NewMemoryClaimEventLog()
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	repo := repositories.NewClaimRepository(db)
	return repo, repo
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}

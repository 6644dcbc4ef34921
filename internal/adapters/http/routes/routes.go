package routes

import (
	"time"

	"healthclaim-portal/internal/adapters/http/handlers"
	"healthclaim-portal/internal/adapters/http/middleware"
	"healthclaim-portal/internal/config"
	"healthclaim-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Portals groups the role-scoped entry points served over HTTP
type Portals struct {
	Claimants *services.ClaimantPortal
	Reviewers *services.ReviewerPortal
}

// Setup configures all routes for the application
func Setup(app *fiber.App, cfg *config.Config, portals Portals) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	claimHandler := handlers.NewClaimHandler(portals.Claimants)
	reviewHandler := handlers.NewReviewHandler(portals.Reviewers)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, claimHandler, reviewHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	claimHandler *handlers.ClaimHandler,
	reviewHandler *handlers.ReviewHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Claimant routes
	claimRoutes := router.Group("/claims")
	claimRoutes.Use(middleware.NoCacheHeaders())
	setupClaimRoutes(claimRoutes, claimHandler, cfg)

	// Reviewer routes (Reviewer only)
	reviewerRoutes := router.Group("/reviewer")
	reviewerRoutes.Use(middleware.AuthMiddleware(cfg))
	reviewerRoutes.Use(middleware.ReviewerOnly())
	setupReviewerRoutes(reviewerRoutes, reviewHandler)
}

// setupClaimRoutes configures claimant routes
func setupClaimRoutes(router fiber.Router, handler *handlers.ClaimHandler, cfg *config.Config) {
	// Submission works with or without a token; a valid token stamps the claimant identity
	router.Post("/", middleware.SubmitRateLimiter(), middleware.OptionalAuth(cfg), handler.Submit)

	// Protected routes
	router.Get("/", middleware.AuthMiddleware(cfg), handler.ListMine)
	router.Get("/:id", middleware.AuthMiddleware(cfg), handler.GetMine)
}

// setupReviewerRoutes configures reviewer routes
func setupReviewerRoutes(router fiber.Router, handler *handlers.ReviewHandler) {
	claims := router.Group("/claims", middleware.NoCacheHeaders())
	claims.Get("/", handler.List)
	claims.Get("/:id", handler.Get)
	claims.Put("/:id/review", handler.Review)
	claims.Get("/:id/history", handler.History)

	// Aggregates only
	router.Get("/stats", middleware.PrivateCacheHeaders(30*time.Second), handler.Stats)
	router.Get("/dashboard", middleware.NoCacheHeaders(), handler.Dashboard)
}

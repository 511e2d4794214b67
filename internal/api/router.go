// Package api provides the HTTP API for Fareboard.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/fareboard/fareboard/internal/analytics"
	"github.com/fareboard/fareboard/internal/api/handler"
	"github.com/fareboard/fareboard/internal/api/middleware"
	"github.com/fareboard/fareboard/internal/auth"
	"github.com/fareboard/fareboard/internal/booking"
	"github.com/fareboard/fareboard/internal/preferences"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version            string
	BuildTime          string
	Logger             zerolog.Logger
	ServiceName        string
	Metrics            *middleware.Metrics
	JWTService         *auth.JWTService
	AnalyticsService   *analytics.Service
	PreferencesService *preferences.Service
	Store              *booking.Store
	Loader             *booking.Loader
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "fareboard-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Store)
	dashboardHandler := handler.NewDashboardHandler(cfg.AnalyticsService)
	exportHandler := handler.NewExportHandler(cfg.AnalyticsService)
	preferencesHandler := handler.NewPreferencesHandler(cfg.PreferencesService)
	adminHandler := handler.NewAdminHandler(cfg.Loader, cfg.Store)

	// Create auth middleware
	authMiddleware := middleware.Auth(cfg.JWTService)

	// Create rate limit middleware for different endpoint categories
	adminRateLimit := middleware.RateLimitByIP(middleware.AdminRateLimit)         // 10 req/min
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Dashboard projections (public) - standard rate limiting
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/summary", dashboardHandler.GetSummary)
			r.Get("/facets", dashboardHandler.GetFacets)
			r.Get("/records", dashboardHandler.GetRecords)
			r.Get("/map", dashboardHandler.GetMap)
		})

		// CSV export - larger responses, stricter rate limiting
		r.With(expensiveRateLimit).Get("/export", exportHandler.GetExport)

		// Preferences - standard rate limiting
		r.Route("/preferences", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Use(middleware.RequireJSON)
			r.Get("/theme", preferencesHandler.GetTheme)
			r.Put("/theme", preferencesHandler.PutTheme)
		})

		// Admin endpoints (authenticated) - for internal operations
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminRateLimit)
			r.Post("/dataset/reload", adminHandler.ReloadDataset)
		})
	})

	return r
}

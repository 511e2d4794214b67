// Package main provides the entrypoint for the Fareboard API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/fareboard/fareboard/internal/airports"
	"github.com/fareboard/fareboard/internal/analytics"
	"github.com/fareboard/fareboard/internal/api"
	"github.com/fareboard/fareboard/internal/api/middleware"
	"github.com/fareboard/fareboard/internal/auth"
	"github.com/fareboard/fareboard/internal/booking"
	"github.com/fareboard/fareboard/internal/database"
	"github.com/fareboard/fareboard/internal/preferences"
	"github.com/fareboard/fareboard/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "fareboard-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Fareboard API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Select the dataset source. Postgres is the production source; a URL or
	// local file path keeps development and demos database-free.
	source, pool := newDatasetSource(ctx, log)
	if pool != nil {
		defer pool.Close()
	}

	// Load the dataset. A failed load leaves the store empty rather than
	// crashing; the dashboard then renders its empty state and an operator
	// can trigger a reload.
	store := booking.NewStore()
	loader := booking.NewLoader(source, store, log)
	loader.Load(ctx)

	// Initialize analytics service
	analyticsService := analytics.NewService(analytics.ServiceConfig{
		Store:    store,
		Logger:   log,
		Resolver: airports.RouteDisplayName,
	})
	log.Info().Msg("analytics service initialized")

	// Initialize preferences repository and service
	var prefsRepo preferences.Repository
	if pool != nil {
		prefsRepo = preferences.NewPostgresRepository(pool)
	} else {
		prefsRepo = preferences.NewInMemoryRepository()
	}
	prefsService := preferences.NewService(preferences.ServiceConfig{
		Repository: prefsRepo,
		Logger:     log,
		CacheTTL:   1 * time.Minute,
	})
	log.Info().Msg("preferences service initialized")

	// Initialize JWT service (get signing key from environment)
	signingKey := os.Getenv("AUTH_SIGNING_KEY")
	if signingKey == "" {
		signingKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default auth signing key - not secure for production")
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SigningKey: signingKey,
	})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:            Version,
		BuildTime:          BuildTime,
		Logger:             log,
		ServiceName:        serviceName,
		Metrics:            metrics,
		JWTService:         jwtService,
		AnalyticsService:   analyticsService,
		PreferencesService: prefsService,
		Store:              store,
		Loader:             loader,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// newDatasetSource picks the booking dataset source from the environment.
// DATASET_SOURCE=postgres reads from the bookings table; otherwise
// DATASET_URL or DATASET_PATH select an HTTP or file source. The returned
// pool is non-nil only for the postgres source and is owned by the caller.
func newDatasetSource(ctx context.Context, log zerolog.Logger) (booking.Source, *pgxpool.Pool) {
	if os.Getenv("DATASET_SOURCE") == "postgres" {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")
		return booking.NewPostgresRepository(pool), pool
	}

	if url := os.Getenv("DATASET_URL"); url != "" {
		return &booking.HTTPSource{URL: url}, nil
	}

	path := os.Getenv("DATASET_PATH")
	if path == "" {
		path = "data/customer_booking.csv"
	}
	return &booking.FileSource{Path: path}, nil
}

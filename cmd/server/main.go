// Package main is the entry point for the flight route query service.
//
//	@title						Flight Route Query API
//	@version					1.0.0
//	@description				Route lookups and preference-driven flight leg search over a PostgreSQL flight dataset.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-route-query-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-route-query-service/docs"

	// Application layers
	"github.com/flight-search/flight-route-query-service/internal/adapter/cache"
	flighthttp "github.com/flight-search/flight-route-query-service/internal/adapter/http"
	"github.com/flight-search/flight-route-query-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-route-query-service/internal/adapter/repository/postgres"
	"github.com/flight-search/flight-route-query-service/internal/config"
	"github.com/flight-search/flight-route-query-service/internal/domain"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-route-query-service/internal/infrastructure/retry"
	"github.com/flight-search/flight-route-query-service/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("carrier_cache", cfg.CacheEnabled()).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}

// run wires the application and blocks until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		URL:             cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConns,
		ConnectAttempts: cfg.Database.ConnectAttempts,
		OnRetry:         logRetry(log, "postgres"),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	var carriers domain.CarrierResolver = postgres.NewCarrierRepository(pool)
	if cfg.CacheEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL, cfg.Database.ConnectAttempts, logRetry(log, "redis"))
		if err != nil {
			// The cache is an optimization; serve uncached rather than refuse to start.
			log.Warn().Err(err).Msg("Redis unavailable, carrier cache disabled")
		} else {
			defer rdb.Close()
			carriers = cache.NewCarrierCache(carriers, rdb, cfg.Cache.TTL, log)
		}
	}

	ucConfig := &usecase.Config{
		SearchTimeout: cfg.Timeouts.Search,
		Logger:        log,
	}

	handler := flighthttp.NewFlightHandler(flighthttp.Services{
		Search:      usecase.NewFlightSearchUseCase(postgres.NewLegStore(pool), carriers, ucConfig),
		Routes:      usecase.NewRouteLookupUseCase(postgres.NewRouteRepository(pool)),
		Preferences: usecase.NewPreferencesUseCase(postgres.NewPreferenceRepository(pool), ucConfig),
		Itineraries: usecase.NewItineraryUseCase(postgres.NewItineraryRepository(pool), ucConfig),
		Users:       usecase.NewUserUseCase(postgres.NewUserRepository(pool), ucConfig),
		Store:       pool,
		Logger:      log.WithComponent("http"),
	})

	e := newServer(cfg, log, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return gracefulShutdown(e, cfg, log)
}

// newServer builds the Echo instance with middleware and routes.
func newServer(cfg *config.Config, log *logger.Logger, h *flighthttp.FlightHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Production logs keep panics to the failing goroutine.
	recovery := middleware.DefaultRecoveryConfig()
	recovery.DisableStackAll = cfg.IsProduction()
	flighthttp.RegisterRoutes(e, h, middleware.Chain(log.Logger, recovery)...)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// setupLogger builds the application logger from config.
func setupLogger(cfg *config.Config) *logger.Logger {
	lcfg := logger.DefaultConfig()
	lcfg.Level = cfg.Logging.Level
	lcfg.Format = cfg.Logging.Format
	lcfg.Caller = cfg.IsDevelopment()

	return logger.New(lcfg)
}

// logRetry logs a failed startup ping for the named backing service.
func logRetry(log *logger.Logger, service string) retry.Notify {
	return func(attempt int, err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Str("service", service).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("Backing service not ready")
	}
}

// gracefulShutdown drains in-flight requests within the configured timeout.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, log *logger.Logger) error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}

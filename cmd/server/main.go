// Package main is the entry point for the flight search web backend.
//
//	@title						Flight Search Web API
//	@version					1.0.0
//	@description				Backend for the flight search web UI: airport autocomplete, the date range picker and normalized Sky Scrapper search results.
//
//	@contact.name				API Support
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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-search-web/docs"

	// Application layers
	"github.com/flight-search/flight-search-web/internal/adapter/cache"
	flighthttp "github.com/flight-search/flight-search-web/internal/adapter/http"
	"github.com/flight-search/flight-search-web/internal/adapter/http/middleware"
	"github.com/flight-search/flight-search-web/internal/adapter/provider/skyscrapper"
	"github.com/flight-search/flight-search-web/internal/calendar"
	"github.com/flight-search/flight-search-web/internal/config"
	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/logger"
	"github.com/flight-search/flight-search-web/internal/infrastructure/retry"
	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-search-web/internal/usecase"
)

const redisConnectTimeout = 5 * time.Second

// app holds what main has to release on shutdown.
type app struct {
	echo    *echo.Echo
	useCase usecase.FlightSearchUseCase
	redis   *redis.Client
}

func main() {
	// Load configuration
	cfg := config.MustLoad()

	appLogger := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  cfg.App.Name,
	})
	logger.Install(appLogger)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("cache", cfg.CacheEnabled()).
		Msg("Configuration loaded")

	if cfg.Upstream.APIKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY is not set; searches and autocomplete will return no results")
	}

	a := newApp(cfg, appLogger)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := a.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(a, cfg.Server.ShutdownTimeout)
}

// newApp wires the upstream client, optional cache, use case and HTTP layer.
func newApp(cfg *config.Config, appLogger *logger.Logger) *app {
	client := skyscrapper.NewClient(skyscrapper.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		APIKey:      cfg.Upstream.APIKey,
		Host:        cfg.Upstream.Host,
		Market:      cfg.Upstream.Market,
		LookupLimit: cfg.Upstream.LookupLimit,
		Timeout:     cfg.Timeouts.Upstream,
	})

	var directory domain.AirportDirectory = client
	rdb := connectCache(cfg)
	cacheStatus := flighthttp.CacheDisabled
	if rdb != nil {
		directory = cache.NewCachedDirectory(client, cache.NewRedisStore(rdb), cfg.Cache.TTL,
			appLogger.WithComponent("airport_cache").Logger)
		cacheStatus = flighthttp.CacheEnabled
	}

	flightUseCase := usecase.NewFlightSearchUseCase(
		directory,
		client,
		skyscrapper.NewNormalizer(appLogger.WithComponent("normalizer").Logger),
		appLogger.Logger,
		&usecase.Config{
			UpstreamTimeout: cfg.Timeouts.Upstream,
			Retry: retry.UpstreamConfig.
				WithMaxAttempts(cfg.Retry.MaxAttempts).
				WithInitialDelay(cfg.Retry.InitialDelay).
				WithMaxDelay(cfg.Retry.MaxDelay),
			Currency: cfg.Search.Currency,
			Market:   cfg.Upstream.Market,
			FenceTTL: cfg.Search.FenceTTL,
		},
	)

	clock := timeutil.NewRealClock()
	selector := calendar.NewSelector(clock, timeutil.MustGetLocation(cfg.Calendar.Timezone))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, appLogger.Logger, middleware.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		BodyLimit:    cfg.Server.BodyLimit,
		Recovery:     middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()},
	})

	flightHandler := flighthttp.NewFlightHandler(flightUseCase, flighthttp.HandlerConfig{
		ServiceName: cfg.App.Name,
		CacheStatus: cacheStatus,
		Clock:       clock,
	})
	flighthttp.RegisterRoutes(e, flightHandler, flighthttp.NewCalendarHandler(selector))

	// Swagger documentation endpoint
	flighthttp.RegisterSwagger(e)

	return &app{echo: e, useCase: flightUseCase, redis: rdb}
}

// connectCache returns a Redis client when the cache is configured and reachable.
// The service runs uncached rather than failing to start.
func connectCache(cfg *config.Config) *redis.Client {
	if !cfg.CacheEnabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	rdb, err := cache.Connect(ctx, cache.RedisConfig{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.Addr).Msg("Redis unavailable, airport cache disabled")
		return nil
	}

	log.Info().Str("addr", cfg.Cache.Addr).Dur("ttl", cfg.Cache.TTL).Msg("Airport cache enabled")
	return rdb
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(a *app, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Abort upstream calls first so in-flight handlers can finish
	a.useCase.Close()

	if err := a.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis client")
		}
	}

	log.Info().Msg("Server stopped")
}

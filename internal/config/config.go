// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Upstream UpstreamConfig
	Retry    RetryConfig
	Cache    CacheConfig
	Calendar CalendarConfig
	Search   SearchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BodyLimit       string        `env:"SERVER_BODY_LIMIT" envDefault:"64K"`
	AllowOrigins    []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
}

// TimeoutConfig holds timeout settings for upstream calls.
type TimeoutConfig struct {
	// Upstream bounds one attempt against the flight-search API
	Upstream time.Duration `env:"TIMEOUT_UPSTREAM" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"flight-search-web"`
}

// UpstreamConfig holds the Sky Scrapper (RapidAPI) settings.
type UpstreamConfig struct {
	APIKey      string `env:"RAPIDAPI_KEY"`
	BaseURL     string `env:"RAPIDAPI_BASE_URL" envDefault:"https://sky-scrapper.p.rapidapi.com/api"`
	Host        string `env:"RAPIDAPI_HOST" envDefault:"sky-scrapper.p.rapidapi.com"`
	Market      string `env:"RAPIDAPI_MARKET" envDefault:"en-US"`
	LookupLimit int    `env:"RAPIDAPI_LOOKUP_LIMIT" envDefault:"10"`
}

// RetryConfig controls how failed upstream calls are retried.
type RetryConfig struct {
	MaxAttempts  int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"2"`
	InitialDelay time.Duration `env:"RETRY_INITIAL_DELAY" envDefault:"250ms"`
	MaxDelay     time.Duration `env:"RETRY_MAX_DELAY" envDefault:"1s"`
}

// CacheConfig holds the optional Redis airport cache settings.
// The cache is disabled when Addr is empty.
type CacheConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_AIRPORT_TTL" envDefault:"10m"`
}

// CalendarConfig holds date picker settings.
type CalendarConfig struct {
	// Timezone decides which day is "today" for the picker
	Timezone string `env:"CALENDAR_TIMEZONE" envDefault:"UTC"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	Currency string        `env:"SEARCH_CURRENCY" envDefault:"USD"`
	FenceTTL time.Duration `env:"AUTOCOMPLETE_SEQUENCE_TTL" envDefault:"15m"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
		{"TIMEOUT_UPSTREAM", cfg.Timeouts.Upstream},
		{"CACHE_AIRPORT_TTL", cfg.Cache.TTL},
		{"AUTOCOMPLETE_SEQUENCE_TTL", cfg.Search.FenceTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Retry.MaxAttempts < 1 || cfg.Retry.MaxAttempts > 5 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be between 1 and 5, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.InitialDelay < 0 || cfg.Retry.MaxDelay < cfg.Retry.InitialDelay {
		return fmt.Errorf("RETRY_MAX_DELAY (%s) must not be less than RETRY_INITIAL_DELAY (%s)",
			cfg.Retry.MaxDelay, cfg.Retry.InitialDelay)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	// Without a key every search comes back empty; only development may run like that
	cfg.Upstream.APIKey = strings.TrimSpace(cfg.Upstream.APIKey)
	if cfg.Upstream.APIKey == "" && !cfg.IsDevelopment() {
		return fmt.Errorf("RAPIDAPI_KEY is required when APP_ENV is %s", cfg.App.Env)
	}

	if cfg.Upstream.LookupLimit < 1 {
		return fmt.Errorf("RAPIDAPI_LOOKUP_LIMIT must be positive, got %d", cfg.Upstream.LookupLimit)
	}

	if len(cfg.Search.Currency) != 3 {
		return fmt.Errorf("SEARCH_CURRENCY must be a 3-letter code, got %q", cfg.Search.Currency)
	}
	cfg.Search.Currency = strings.ToUpper(cfg.Search.Currency)

	if _, err := timeutil.GetLocation(cfg.Calendar.Timezone); err != nil {
		return fmt.Errorf("CALENDAR_TIMEZONE: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// CacheEnabled reports whether the Redis airport cache should be used.
func (c *Config) CacheEnabled() bool {
	return c.Cache.Addr != ""
}

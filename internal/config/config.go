// Package config provides environment-based configuration for the
// talent search service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when an environment variable is unset.
const (
	DefaultPort           = 8080
	DefaultScoringTimeout = 5 * time.Second
	DefaultMaxPageSize    = 100
	DefaultFilterCacheTTL = 5 * time.Minute
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 20
)

// Config holds the service configuration. Values come from the
// environment (a .env file is honored by the CLI entry point).
type Config struct {
	// Port is the HTTP listen port (PORT).
	Port int
	// DatabaseURL enables the PostgreSQL candidate loader when set
	// (DATABASE_URL). Mutually exclusive with CandidatesFile.
	DatabaseURL string
	// CandidatesFile points at a JSON candidate dataset (CANDIDATES_FILE).
	CandidatesFile string
	// ScoringTimeout is the per-request scoring budget (SCORING_TIMEOUT_MS).
	ScoringTimeout time.Duration
	// ScoringPoolSize bounds the scoring worker pool (SCORING_POOL_SIZE).
	// Zero means the number of CPUs.
	ScoringPoolSize int
	// MaxPageSize caps the limit a search query may request (MAX_PAGE_SIZE).
	MaxPageSize int
	// FilterCacheTTL bounds staleness of cached filter options
	// (FILTER_CACHE_TTL_MS).
	FilterCacheTTL time.Duration
	// RateLimitEnabled toggles search rate limiting (RATE_LIMIT_ENABLED).
	RateLimitEnabled bool
	// RateLimitRPS is the steady token refill rate (RATE_LIMIT_RPS).
	RateLimitRPS float64
	// RateLimitBurst is the bucket capacity (RATE_LIMIT_BURST).
	RateLimitBurst int
	// LogJSON switches the logger to JSON encoding (LOG_JSON).
	LogJSON bool
	// Debug lowers the log level to debug (DEBUG).
	Debug bool
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             DefaultPort,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		CandidatesFile:   os.Getenv("CANDIDATES_FILE"),
		ScoringTimeout:   DefaultScoringTimeout,
		MaxPageSize:      DefaultMaxPageSize,
		FilterCacheTTL:   DefaultFilterCacheTTL,
		RateLimitEnabled: envBool("RATE_LIMIT_ENABLED"),
		RateLimitRPS:     DefaultRateLimitRPS,
		RateLimitBurst:   DefaultRateLimitBurst,
		LogJSON:          envBool("LOG_JSON"),
		Debug:            envBool("DEBUG"),
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.ScoringPoolSize, err = envInt("SCORING_POOL_SIZE", 0); err != nil {
		return nil, err
	}
	if cfg.MaxPageSize, err = envInt("MAX_PAGE_SIZE", cfg.MaxPageSize); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if cfg.ScoringTimeout, err = envDurationMS("SCORING_TIMEOUT_MS", cfg.ScoringTimeout); err != nil {
		return nil, err
	}
	if cfg.FilterCacheTTL, err = envDurationMS("FILTER_CACHE_TTL_MS", cfg.FilterCacheTTL); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT must be in [1, 65535], got %d", c.Port)
	}
	if c.DatabaseURL != "" && c.CandidatesFile != "" {
		return fmt.Errorf("config error: DATABASE_URL and CANDIDATES_FILE are mutually exclusive")
	}
	if c.DatabaseURL == "" && c.CandidatesFile == "" {
		return fmt.Errorf("config error: one of DATABASE_URL or CANDIDATES_FILE is required")
	}
	if c.ScoringTimeout <= 0 {
		return fmt.Errorf("config error: SCORING_TIMEOUT_MS must be positive")
	}
	if c.ScoringPoolSize < 0 {
		return fmt.Errorf("config error: SCORING_POOL_SIZE must be non-negative")
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("config error: MAX_PAGE_SIZE must be at least 1")
	}
	if c.RateLimitEnabled {
		if c.RateLimitRPS <= 0 {
			return fmt.Errorf("config error: RATE_LIMIT_RPS must be positive")
		}
		if c.RateLimitBurst < 1 {
			return fmt.Errorf("config error: RATE_LIMIT_BURST must be at least 1")
		}
	}
	return nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be an integer, got %q", key, raw)
	}
	return v, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be a number, got %q", key, raw)
	}
	return v, nil
}

func envDurationMS(key string, fallback time.Duration) (time.Duration, error) {
	ms, err := envInt(key, int(fallback/time.Millisecond))
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, fmt.Errorf("config error: %s must be non-negative", key)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

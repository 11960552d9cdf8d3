package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "CANDIDATES_FILE", "SCORING_TIMEOUT_MS",
		"SCORING_POOL_SIZE", "MAX_PAGE_SIZE", "FILTER_CACHE_TTL_MS",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"LOG_JSON", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultScoringTimeout, cfg.ScoringTimeout)
	assert.Equal(t, 0, cfg.ScoringPoolSize)
	assert.Equal(t, DefaultMaxPageSize, cfg.MaxPageSize)
	assert.Equal(t, DefaultFilterCacheTTL, cfg.FilterCacheTTL)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, DefaultRateLimitRPS, cfg.RateLimitRPS)
	assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimitBurst)
	assert.False(t, cfg.LogJSON)
	assert.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CANDIDATES_FILE", "/data/candidates.json")
	t.Setenv("SCORING_TIMEOUT_MS", "2500")
	t.Setenv("SCORING_POOL_SIZE", "8")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("FILTER_CACHE_TTL_MS", "60000")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("DEBUG", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/data/candidates.json", cfg.CandidatesFile)
	assert.Equal(t, 2500*time.Millisecond, cfg.ScoringTimeout)
	assert.Equal(t, 8, cfg.ScoringPoolSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, time.Minute, cfg.FilterCacheTTL)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.True(t, cfg.LogJSON)
	assert.True(t, cfg.Debug)
}

func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PORT", "not-a-port"},
		{"SCORING_TIMEOUT_MS", "soon"},
		{"SCORING_TIMEOUT_MS", "-100"},
		{"RATE_LIMIT_RPS", "fast"},
		{"MAX_PAGE_SIZE", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func validConfig() *Config {
	return &Config{
		Port:           8080,
		CandidatesFile: "/data/candidates.json",
		ScoringTimeout: time.Second,
		MaxPageSize:    100,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Port = 0 }},
		{"both sources set", func(c *Config) { c.DatabaseURL = "postgres://localhost/talent" }},
		{"no source set", func(c *Config) { c.CandidatesFile = "" }},
		{"zero timeout", func(c *Config) { c.ScoringTimeout = 0 }},
		{"negative pool size", func(c *Config) { c.ScoringPoolSize = -1 }},
		{"zero page size", func(c *Config) { c.MaxPageSize = 0 }},
		{"rate limit on with zero rps", func(c *Config) {
			c.RateLimitEnabled = true
			c.RateLimitRPS = 0
		}},
		{"rate limit on with zero burst", func(c *Config) {
			c.RateLimitEnabled = true
			c.RateLimitBurst = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

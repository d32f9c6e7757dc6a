// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"CHRONICLE_DB_PATH" envDefault:"./data/chronicle.db"`
	SessionSecret string `env:"CHRONICLE_SESSION_SECRET,required"`
	ServerHost    string `env:"CHRONICLE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"CHRONICLE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"CHRONICLE_ENV" envDefault:"development"`
	LogLevel      string `env:"CHRONICLE_LOG_LEVEL" envDefault:"info"`
	SiteURL       string `env:"CHRONICLE_SITE_URL"` // Public base URL for canonical links and the sitemap

	// Cache configuration
	RedisURL     string `env:"CHRONICLE_REDIS_URL"`                           // Optional Redis URL for distributed caching
	CachePrefix  string `env:"CHRONICLE_CACHE_PREFIX" envDefault:"chronicle:"` // Redis key prefix
	CacheTTL     int    `env:"CHRONICLE_CACHE_TTL" envDefault:"300"`           // Catalog cache TTL in seconds
	CacheMaxSize int    `env:"CHRONICLE_CACHE_MAX_SIZE" envDefault:"1000"`     // Max memory cache entries

	// Soundtrack
	Soundtrack        string        `env:"CHRONICLE_SOUNDTRACK" envDefault:"/static/dist/audio/ambient.mp3"`
	AudioStartTimeout time.Duration `env:"CHRONICLE_AUDIO_START_TIMEOUT" envDefault:"5s"`
	AudioIdleTTL      time.Duration `env:"CHRONICLE_AUDIO_IDLE_TTL" envDefault:"30m"`

	// Hero slider
	SlideRotation string `env:"CHRONICLE_SLIDE_ROTATION" envDefault:"@every 1m"`

	// Catalog API
	CORSOrigins  []string `env:"CHRONICLE_CORS_ORIGINS" envSeparator:","`
	APIRateLimit float64  `env:"CHRONICLE_API_RATE_LIMIT" envDefault:"5"` // requests per second per IP
	APIRateBurst int      `env:"CHRONICLE_API_RATE_BURST" envDefault:"20"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// CacheTTLDuration returns CacheTTL as a time.Duration.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("CHRONICLE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("CHRONICLE_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if cfg.APIRateLimit <= 0 || cfg.APIRateBurst <= 0 {
		return nil, fmt.Errorf("CHRONICLE_API_RATE_LIMIT and CHRONICLE_API_RATE_BURST must be positive")
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("CHRONICLE_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}

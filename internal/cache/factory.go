// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// Backend types.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig holds configuration for cache creation.
type CacheConfig struct {
	// Type is the cache backend type: "memory" or "redis"
	Type string

	// RedisURL is the Redis connection URL (only for redis type)
	// Example: redis://localhost:6379/0
	RedisURL string

	// Prefix is the key prefix for Redis (only for redis type)
	Prefix string

	// DefaultTTL is the default TTL for cache entries
	DefaultTTL time.Duration

	// MaxSize is the maximum number of entries for memory cache (0 = unlimited)
	MaxSize int

	// CleanupInterval is the interval for expired entry cleanup
	CleanupInterval time.Duration

	// FallbackToMemory uses a memory cache when Redis is unreachable.
	FallbackToMemory bool
}

// CacheResult is a created cache plus how it was obtained.
type CacheResult struct {
	Cache       Cache
	BackendType string
	IsFallback  bool
	// RedisError is the connection error that caused a fallback.
	RedisError error
}

// DefaultCacheConfig returns default cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Type:             CacheBackendMemory,
		DefaultTTL:       5 * time.Minute,
		MaxSize:          1000,
		CleanupInterval:  time.Minute,
		FallbackToMemory: true,
	}
}

// NewCacheWithInfo creates a cache based on the provided configuration.
// A redis config with FallbackToMemory degrades to memory when Redis is down.
func NewCacheWithInfo(cfg CacheConfig) (*CacheResult, error) {
	if cfg.Type == CacheBackendRedis && cfg.RedisURL != "" {
		rc, err := NewRedisCacheFromURL(cfg.RedisURL, cfg.Prefix, cfg.DefaultTTL)
		if err == nil {
			return &CacheResult{Cache: rc, BackendType: CacheBackendRedis}, nil
		}

		if !cfg.FallbackToMemory {
			return nil, fmt.Errorf("connecting to redis at %s: %w", SanitizeRedisURL(cfg.RedisURL), err)
		}

		slog.Warn("redis cache unavailable, falling back to memory",
			"url", SanitizeRedisURL(cfg.RedisURL), "error", err)
		return &CacheResult{
			Cache:       newMemoryFromConfig(cfg),
			BackendType: CacheBackendMemory,
			IsFallback:  true,
			RedisError:  err,
		}, nil
	}

	return &CacheResult{Cache: newMemoryFromConfig(cfg), BackendType: CacheBackendMemory}, nil
}

func newMemoryFromConfig(cfg CacheConfig) *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cfg.CleanupInterval,
	})
}

// SanitizeRedisURL masks the password in a Redis URL for logging.
func SanitizeRedisURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[invalid URL]"
	}
	if u.User == nil {
		return u.String()
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "***")
	}
	return u.String()
}

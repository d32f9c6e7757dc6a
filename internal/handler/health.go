// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"
	"time"

	"github.com/olegiv/chronicle/internal/audio"
	"github.com/olegiv/chronicle/internal/cache"
	"github.com/olegiv/chronicle/internal/logging"
	"github.com/olegiv/chronicle/internal/scheduler"
	"github.com/olegiv/chronicle/internal/store"
	"github.com/olegiv/chronicle/internal/version"
)

// maxHealthWarnings caps the warnings listed in a health response.
const maxHealthWarnings = 10

// HealthHandler handles health check requests.
type HealthHandler struct {
	db        *sql.DB
	cache     cache.Cache
	logs      *logging.RecentHandler
	scheduler *scheduler.Scheduler
	audio     *audio.Registry
	version   version.Info
	startTime time.Time
}

// HealthDeps groups the optional components reported by HealthHandler.
type HealthDeps struct {
	Cache     cache.Cache
	Logs      *logging.RecentHandler
	Scheduler *scheduler.Scheduler
	Audio     *audio.Registry
	Version   version.Info
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *sql.DB, deps HealthDeps) *HealthHandler {
	return &HealthHandler{
		db:        db,
		cache:     deps.Cache,
		logs:      deps.Logs,
		scheduler: deps.Scheduler,
		audio:     deps.Audio,
		version:   deps.Version,
		startTime: time.Now(),
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string              `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
	Uptime    string              `json:"uptime"`
	Version   string              `json:"version"`
	Commit    string              `json:"commit,omitempty"`
	Checks    map[string]Check    `json:"checks"`
	Warnings  *WarningSummary     `json:"warnings,omitempty"`
	Jobs      []scheduler.JobInfo `json:"jobs,omitempty"`
	Listeners int                 `json:"listeners"`
	Cache     *cache.Stats        `json:"cache,omitempty"`
	System    *SystemInfo         `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// WarningSummary lists recent WARN and ERROR log records.
type WarningSummary struct {
	Total  uint64          `json:"total"`
	Recent []logging.Entry `json:"recent"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
}

// Health handles GET /health. It answers 503 when the session database is
// unreachable; a failing cache only degrades the report.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase(r.Context())
	checks := map[string]Check{"database": dbCheck}
	if h.cache != nil {
		checks["cache"] = h.checkCache(r.Context())
	}

	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.versionString(),
		Commit:    h.version.GitCommit,
		Checks:    checks,
	}
	for _, c := range checks {
		if c.Status != "healthy" {
			status.Status = "degraded"
		}
	}

	if h.logs != nil {
		recent := h.logs.Recent()
		if len(recent) > maxHealthWarnings {
			recent = recent[:maxHealthWarnings]
		}
		status.Warnings = &WarningSummary{Total: h.logs.Total(), Recent: recent}
	}
	if h.scheduler != nil {
		status.Jobs = h.scheduler.List()
	}
	if h.audio != nil {
		status.Listeners = h.audio.Len()
	}
	if sp, ok := h.cache.(cache.StatsProvider); ok {
		stats := sp.Stats()
		status.Cache = &stats
	}
	if r.URL.Query().Get("verbose") == "true" {
		status.System = systemInfo()
	}

	code := http.StatusOK
	if dbCheck.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

func (h *HealthHandler) versionString() string {
	if h.version.Version == "" {
		return "dev"
	}
	return h.version.Version
}

// checkDatabase verifies session database connectivity.
func (h *HealthHandler) checkDatabase(ctx context.Context) Check {
	start := time.Now()
	err := store.Ping(ctx, h.db)
	latency := time.Since(start)

	if err != nil {
		return Check{Status: "unhealthy", Message: err.Error(), Latency: latency.String()}
	}
	return Check{Status: "healthy", Message: "Connected", Latency: latency.String()}
}

// checkCache round-trips a probe key through the cache.
func (h *HealthHandler) checkCache(ctx context.Context) Check {
	const probeKey = "health:probe"

	start := time.Now()
	err := h.cache.Set(ctx, probeKey, []byte("ok"), time.Minute)
	if err == nil {
		_, err = h.cache.Get(ctx, probeKey)
	}
	latency := time.Since(start)

	if err != nil {
		return Check{Status: "unhealthy", Message: err.Error(), Latency: latency.String()}
	}
	return Check{Status: "healthy", Latency: latency.String()}
}

func systemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAllocMB:   m.Alloc / 1024 / 1024,
	}
}

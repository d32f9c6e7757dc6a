// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/olegiv/chronicle/internal/audio"
	"github.com/olegiv/chronicle/internal/cache"
	"github.com/olegiv/chronicle/internal/logging"
	"github.com/olegiv/chronicle/internal/scheduler"
	"github.com/olegiv/chronicle/internal/testutil"
	"github.com/olegiv/chronicle/internal/version"
)

// failingCache is a cache whose writes always fail.
type failingCache struct {
	cache.Cache
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return cache.ErrCacheClosed
}

func newTestHealthHandler(t *testing.T, db *sql.DB, deps HealthDeps) *HealthHandler {
	t.Helper()
	return NewHealthHandler(db, deps)
}

func getHealth(t *testing.T, h *HealthHandler, target string) (*httptest.ResponseRecorder, HealthStatus) {
	t.Helper()

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, target, nil))

	var status HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return w, status
}

func TestHealthHandler_Health(t *testing.T) {
	mc := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	defer func() { _ = mc.Close() }()

	logs := logging.NewRecentHandler(testutil.DiscardLogger().Handler(), 5)
	slog.New(logs).Warn("redis cache unavailable, falling back to memory")

	sched := scheduler.New(testutil.TestLogger())
	if err := sched.Add("slide-rotation", "Advance the featured slide", "@every 1m", func() {}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	h := newTestHealthHandler(t, testutil.TestDB(t), HealthDeps{
		Cache:     mc,
		Logs:      logs,
		Scheduler: sched,
		Audio:     audio.NewRegistry(okPlayer{}, time.Second, time.Hour),
		Version:   version.Info{Version: "v1.2.3", GitCommit: "abc1234"},
	})

	w, status := getHealth(t, h, "/health")
	assertStatus(t, w.Code, http.StatusOK)

	if status.Status != "healthy" {
		t.Errorf("status = %q; want healthy", status.Status)
	}
	if status.Version != "v1.2.3" || status.Commit != "abc1234" {
		t.Errorf("version = %q commit = %q", status.Version, status.Commit)
	}
	if c := status.Checks["database"]; c.Status != "healthy" {
		t.Errorf("database check = %+v", c)
	}
	if c := status.Checks["cache"]; c.Status != "healthy" {
		t.Errorf("cache check = %+v", c)
	}
	if status.Warnings == nil || status.Warnings.Total != 1 || len(status.Warnings.Recent) != 1 {
		t.Errorf("warnings = %+v; want one entry", status.Warnings)
	}
	if len(status.Jobs) != 1 || status.Jobs[0].Name != "slide-rotation" {
		t.Errorf("jobs = %+v", status.Jobs)
	}
	if status.Cache == nil {
		t.Error("memory cache stats should be reported")
	}
	if status.System != nil {
		t.Error("system info should only be reported with ?verbose=true")
	}
}

func TestHealthHandler_Verbose(t *testing.T) {
	h := newTestHealthHandler(t, testutil.TestDB(t), HealthDeps{})

	_, status := getHealth(t, h, "/health?verbose=true")
	if status.System == nil || status.System.GoVersion == "" {
		t.Errorf("system = %+v; want go version", status.System)
	}
	if status.Version != "dev" {
		t.Errorf("version = %q; want dev", status.Version)
	}
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	db := testutil.TestDB(t)
	_ = db.Close()

	h := newTestHealthHandler(t, db, HealthDeps{})

	w, status := getHealth(t, h, "/health")
	assertStatus(t, w.Code, http.StatusServiceUnavailable)
	if status.Checks["database"].Status != "unhealthy" {
		t.Errorf("database check = %+v", status.Checks["database"])
	}
}

func TestHealthHandler_CacheDegraded(t *testing.T) {
	mc := cache.NewMemoryCache(cache.MemoryCacheOptions{})
	defer func() { _ = mc.Close() }()

	h := newTestHealthHandler(t, testutil.TestDB(t), HealthDeps{Cache: failingCache{mc}})

	w, status := getHealth(t, h, "/health")
	assertStatus(t, w.Code, http.StatusOK)
	if status.Status != "degraded" {
		t.Errorf("status = %q; want degraded", status.Status)
	}
	if status.Checks["cache"].Status != "unhealthy" {
		t.Errorf("cache check = %+v", status.Checks["cache"])
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := newTestHealthHandler(t, testutil.TestDB(t), HealthDeps{})

	w := httptest.NewRecorder()
	h.Liveness(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assertStatus(t, w.Code, http.StatusOK)
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp["status"] != "alive" {
		t.Errorf("status = %q; want alive", resp["status"])
	}
}

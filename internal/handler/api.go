// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/olegiv/chronicle/internal/cache"
	"github.com/olegiv/chronicle/internal/middleware"
	"github.com/olegiv/chronicle/internal/service"
)

// catalogCacheKey is the cache key of the catalog snapshot.
const catalogCacheKey = "catalog:snapshot"

// CatalogResponse is the body of GET /api/v1/catalog.
type CatalogResponse struct {
	Data *service.CatalogSnapshot `json:"data"`
}

// APIHandler serves the read-only catalog API.
type APIHandler struct {
	catalog *service.CatalogService
	cache   *cache.TypedCache[service.CatalogSnapshot]
}

// NewAPIHandler creates a new APIHandler. Snapshots are cached in c.
func NewAPIHandler(catalog *service.CatalogService, c *cache.TypedCache[service.CatalogSnapshot]) *APIHandler {
	return &APIHandler{catalog: catalog, cache: c}
}

// Catalog handles GET /api/v1/catalog.
func (h *APIHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	snap, err := h.cache.GetOrSet(r.Context(), catalogCacheKey, func() (*service.CatalogSnapshot, error) {
		s := h.catalog.Snapshot()
		return &s, nil
	})
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		middleware.WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load catalog", nil)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, CatalogResponse{Data: snap})
}

// WarmCache stores a fresh snapshot, replacing any cached one.
func (h *APIHandler) WarmCache(ctx context.Context) error {
	s := h.catalog.Snapshot()
	return h.cache.Set(ctx, catalogCacheKey, &s)
}

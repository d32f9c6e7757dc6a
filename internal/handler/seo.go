// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"

	"github.com/olegiv/chronicle/internal/seo"
)

// SEOHandler serves robots.txt and the sitemap.
type SEOHandler struct {
	site seo.SiteConfig
}

// NewSEOHandler creates a new SEOHandler.
func NewSEOHandler(site seo.SiteConfig) *SEOHandler {
	return &SEOHandler{site: site}
}

// Robots handles GET /robots.txt. Sites marked NoIndex disallow everything.
func (h *SEOHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(seo.GenerateRobots(h.site.SiteURL, h.site.NoIndex)))
}

// Sitemap handles GET /sitemap.xml. Without a public site URL there is
// nothing absolute to list, so it answers 404.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := seo.GenerateSitemap(h.site.SiteURL, h.site.Languages)
	if errors.Is(err, seo.ErrNoSiteURL) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to build sitemap", "error", err)
		return
	}

	w.Header().Set(HeaderContentType, "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

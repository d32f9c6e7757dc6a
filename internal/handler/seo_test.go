// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/olegiv/chronicle/internal/seo"
)

func serveSEO(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSEOHandler_Robots(t *testing.T) {
	h := NewSEOHandler(seo.SiteConfig{SiteURL: "https://chronicle.example"})

	w := serveSEO(h.Robots, "/robots.txt")
	assertStatus(t, w.Code, http.StatusOK)
	if ct := w.Header().Get(HeaderContentType); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Disallow: /modals/") || !strings.Contains(body, "Sitemap: https://chronicle.example/sitemap.xml") {
		t.Errorf("unexpected robots.txt:\n%s", body)
	}

	h = NewSEOHandler(seo.SiteConfig{NoIndex: true})
	if body := serveSEO(h.Robots, "/robots.txt").Body.String(); !strings.Contains(body, "Disallow: /\n") {
		t.Errorf("NoIndex site should disallow everything:\n%s", body)
	}
}

func TestSEOHandler_Sitemap(t *testing.T) {
	h := NewSEOHandler(seo.SiteConfig{SiteURL: "https://chronicle.example", Languages: []string{"en", "ru"}})

	w := serveSEO(h.Sitemap, "/sitemap.xml")
	assertStatus(t, w.Code, http.StatusOK)
	if ct := w.Header().Get(HeaderContentType); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "<loc>https://chronicle.example/?lang=ru</loc>") {
		t.Error("sitemap should list the Russian page")
	}

	h = NewSEOHandler(seo.SiteConfig{})
	assertStatus(t, serveSEO(h.Sitemap, "/sitemap.xml").Code, http.StatusNotFound)
}

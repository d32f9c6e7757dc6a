// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/chronicle/internal/audio"
	"github.com/olegiv/chronicle/internal/cache"
	"github.com/olegiv/chronicle/internal/i18n"
	"github.com/olegiv/chronicle/internal/middleware"
	"github.com/olegiv/chronicle/internal/render"
	"github.com/olegiv/chronicle/internal/seo"
	"github.com/olegiv/chronicle/internal/service"
	"github.com/olegiv/chronicle/internal/showcase"
	"github.com/olegiv/chronicle/internal/slider"
	"github.com/olegiv/chronicle/web"
)

const testSoundtrack = "/static/dist/audio/ambient.mp3"

// okPlayer starts playback immediately.
type okPlayer struct{}

func (okPlayer) Play(context.Context) error { return nil }

// testApp wires the showcase handlers the way the server does, minus the
// outer security middleware, and keeps the visitor's session cookie between
// requests.
type testApp struct {
	t        *testing.T
	sm       *scs.SessionManager
	catalog  *service.CatalogService
	registry *audio.Registry
	cache    *cache.MemoryCache
	api      *APIHandler
	router   chi.Router
	cookies  map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}

	sm := scs.New()
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, SessionManager: sm, IsDev: true})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	catalog, err := service.NewCatalogService()
	if err != nil {
		t.Fatalf("NewCatalogService: %v", err)
	}

	sessions := showcase.NewSessionStore(sm, catalog)
	registry := audio.NewRegistry(okPlayer{}, time.Second, time.Hour)
	rotator := slider.NewRotator(len(catalog.Slides()))

	mc := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = mc.Close() })
	api := NewAPIHandler(catalog, cache.NewTypedCache[service.CatalogSnapshot](mc, time.Minute))

	site := seo.SiteConfig{SiteURL: "https://chronicle.example", Languages: i18n.SupportedLanguages}
	frontend := NewFrontendHandler(renderer, sessions, catalog, rotator, registry, testSoundtrack, site)
	modals := NewModalHandler(sessions)
	auth := NewAuthHandler(renderer, sessions, catalog, frontend)
	admin := NewAdminHandler(renderer, sessions)
	community := NewCommunityHandler(renderer)
	audioHandler := NewAudioHandler(sessions, registry, testSoundtrack)

	r := chi.NewRouter()
	r.Get(RouteAPICatalog, api.Catalog)
	r.Group(func(r chi.Router) {
		r.Use(sm.LoadAndSave)
		r.Use(middleware.Language)

		r.Get(RouteRoot, frontend.Home)
		r.Get(RouteScrollTo, frontend.ScrollTo)
		r.Post(RouteModalOpen, modals.Open)
		r.Post(RouteModalClose, modals.Close)
		r.Post(RouteAuthMode, auth.ToggleMode)
		r.Post(RouteAuthLogin, auth.Login)
		r.Post(RouteAdminStories, admin.SubmitStory)
		r.Post(RouteCommunityComments, community.PostComment)
		r.Get(RouteAudio, audioHandler.Status)
		r.Post(RouteAudioToggle, audioHandler.Toggle)
	})
	r.NotFound(frontend.NotFound)

	return &testApp{
		t:        t,
		sm:       sm,
		catalog:  catalog,
		registry: registry,
		cache:    mc,
		api:      api,
		router:   r,
		cookies:  make(map[string]*http.Cookie),
	}
}

// do sends a request carrying the cookies collected so far.
func (a *testApp) do(method, target string, form url.Values, header http.Header) *httptest.ResponseRecorder {
	a.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(HeaderContentType, "application/x-www-form-urlencoded")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		a.cookies[c.Name] = c
	}
	return w
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, nil, nil)
}

func (a *testApp) post(target string, form url.Values) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, target, form, nil)
}

// page fetches the showcase page and fails unless it renders.
func (a *testApp) page() string {
	a.t.Helper()

	w := a.get("/")
	assertStatus(a.t, w.Code, http.StatusOK)
	return w.Body.String()
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d; want %d", got, want)
	}
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	assertStatus(t, w.Code, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q; want %q", loc, want)
	}
}

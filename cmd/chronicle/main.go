// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/chronicle/internal/audio"
	"github.com/olegiv/chronicle/internal/cache"
	"github.com/olegiv/chronicle/internal/config"
	"github.com/olegiv/chronicle/internal/handler"
	"github.com/olegiv/chronicle/internal/i18n"
	"github.com/olegiv/chronicle/internal/logging"
	"github.com/olegiv/chronicle/internal/middleware"
	"github.com/olegiv/chronicle/internal/render"
	"github.com/olegiv/chronicle/internal/scheduler"
	"github.com/olegiv/chronicle/internal/seo"
	"github.com/olegiv/chronicle/internal/service"
	"github.com/olegiv/chronicle/internal/session"
	"github.com/olegiv/chronicle/internal/showcase"
	"github.com/olegiv/chronicle/internal/slider"
	"github.com/olegiv/chronicle/internal/store"
	"github.com/olegiv/chronicle/internal/util"
	"github.com/olegiv/chronicle/internal/version"
	"github.com/olegiv/chronicle/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// Scheduled job names.
const (
	jobSlideRotation = "slide-rotation"
	jobCatalogWarm   = "catalog-warm"
	jobAudioSweep    = "audio-sweep"
	jobLimiterReset  = "ratelimit-cleanup"
)

// soundtrackProbeTimeout bounds the HEAD request made for a remote soundtrack.
const soundtrackProbeTimeout = 5 * time.Second

// showcaseHandlers groups the handlers behind the session-backed page.
type showcaseHandlers struct {
	frontend  *handler.FrontendHandler
	modals    *handler.ModalHandler
	auth      *handler.AuthHandler
	admin     *handler.AdminHandler
	community *handler.CommunityHandler
	audio     *handler.AudioHandler
}

// registerShowcaseRoutes registers the page and every form it posts to.
func registerShowcaseRoutes(r chi.Router, h showcaseHandlers) {
	r.Get(handler.RouteRoot, h.frontend.Home)
	r.Get(handler.RouteScrollTo, h.frontend.ScrollTo)

	r.Post(handler.RouteModalOpen, h.modals.Open)
	r.Post(handler.RouteModalClose, h.modals.Close)

	r.Post(handler.RouteAuthMode, h.auth.ToggleMode)
	r.Post(handler.RouteAuthLogin, h.auth.Login)
	r.Post(handler.RouteAdminStories, h.admin.SubmitStory)
	r.Post(handler.RouteCommunityComments, h.community.PostComment)

	r.Get(handler.RouteAudio, h.audio.Status)
	r.Post(handler.RouteAudioToggle, h.audio.Toggle)
}

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Chronicle - stories, documentaries and articles\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHRONICLE_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHRONICLE_DB_PATH           SQLite session database path (default: ./data/chronicle.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHRONICLE_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHRONICLE_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHRONICLE_REDIS_URL         Redis URL for the catalog cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHRONICLE_SOUNDTRACK        Soundtrack path or https URL\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHRONICLE_SLIDE_ROTATION    Featured slide rotation schedule (default: @every 1m)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Println(versionInfo.String())
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo version.Info) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger; WARN and ERROR records are also kept for /health
	logLevel, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	recentLogs := logging.NewRecentHandler(textHandler, logging.DefaultCapacity)
	logger := slog.New(recentLogs)
	slog.SetDefault(logger)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing session database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	sessionManager := session.New(db, cfg.IsDevelopment())

	// Catalog and its cache
	catalog, err := service.NewCatalogService()
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	cacheConfig := cache.DefaultCacheConfig()
	cacheConfig.Prefix = cfg.CachePrefix
	cacheConfig.DefaultTTL = cfg.CacheTTLDuration()
	cacheConfig.MaxSize = cfg.CacheMaxSize
	if cfg.UseRedisCache() {
		cacheConfig.Type = cache.CacheBackendRedis
		cacheConfig.RedisURL = cfg.RedisURL
	}
	cacheResult, err := cache.NewCacheWithInfo(cacheConfig)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := cacheResult.Cache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	slog.Info("catalog cache initialized", "backend", cacheResult.BackendType, "fallback", cacheResult.IsFallback)

	snapshots := cache.NewTypedCache[service.CatalogSnapshot](cacheResult.Cache, cfg.CacheTTLDuration())
	apiHandler := handler.NewAPIHandler(catalog, snapshots)

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	// Page state, soundtrack and slider
	sessions := showcase.NewSessionStore(sessionManager, catalog)
	if strings.HasPrefix(cfg.Soundtrack, "http://") || strings.HasPrefix(cfg.Soundtrack, "https://") {
		if err := util.ValidateRemoteURL(cfg.Soundtrack); err != nil {
			return fmt.Errorf("soundtrack %q rejected: %w", cfg.Soundtrack, err)
		}
	}
	player := audio.NewSourcePlayer(cfg.Soundtrack, web.Static, util.NewSafeHTTPClient(soundtrackProbeTimeout))
	listeners := audio.NewRegistry(player, cfg.AudioStartTimeout, cfg.AudioIdleTTL)
	rotator := slider.NewRotator(len(catalog.Slides()))

	apiLimiter := middleware.NewRateLimiter(cfg.APIRateLimit, cfg.APIRateBurst)

	// Background jobs
	sched := scheduler.New(logger)
	jobs := []struct {
		name, description, schedule string
		fn                          func()
	}{
		{jobSlideRotation, "Advance the featured hero slide", cfg.SlideRotation, func() {
			slog.Debug("featured slide rotated", "slide", rotator.Advance())
		}},
		{jobCatalogWarm, "Refresh the cached catalog snapshot", "@every " + cfg.CacheTTLDuration().String(), func() {
			if err := apiHandler.WarmCache(context.Background()); err != nil {
				slog.Warn("failed to warm catalog cache", "error", err)
			}
		}},
		{jobAudioSweep, "Drop idle soundtrack listeners", "@every 5m", func() {
			if n := listeners.Sweep(); n > 0 {
				slog.Debug("idle audio listeners removed", "count", n)
			}
		}},
		{jobLimiterReset, "Reset the API rate limiter when it tracks too many clients", "@every 10m", func() {
			if apiLimiter.Cleanup() {
				slog.Info("api rate limiter reset")
			}
		}},
	}
	for _, job := range jobs {
		if err := sched.Add(job.name, job.description, job.schedule, job.fn); err != nil {
			return fmt.Errorf("scheduling %s: %w", job.name, err)
		}
	}
	if err := sched.TriggerNow(jobCatalogWarm); err != nil {
		return fmt.Errorf("warming catalog: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	healthHandler := handler.NewHealthHandler(db, handler.HealthDeps{
		Cache:     cacheResult.Cache,
		Logs:      recentLogs,
		Scheduler: sched,
		Audio:     listeners,
		Version:   versionInfo,
	})
	site := seo.SiteConfig{
		SiteURL:   cfg.SiteURL,
		Languages: i18n.SupportedLanguages,
		NoIndex:   cfg.IsDevelopment(),
	}
	if cfg.SiteURL == "" {
		slog.Warn("CHRONICLE_SITE_URL not set, canonical URLs stay relative and the sitemap is disabled")
	}
	seoHandler := handler.NewSEOHandler(site)
	frontendHandler := handler.NewFrontendHandler(renderer, sessions, catalog, rotator, listeners, cfg.Soundtrack, site)
	pages := showcaseHandlers{
		frontend:  frontendHandler,
		modals:    handler.NewModalHandler(sessions),
		auth:      handler.NewAuthHandler(renderer, sessions, catalog, frontendHandler),
		admin:     handler.NewAdminHandler(renderer, sessions),
		community: handler.NewCommunityHandler(renderer),
		audio:     handler.NewAudioHandler(sessions, listeners, cfg.Soundtrack),
	}

	// Create router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))                    // Gzip compression with level 5
	r.Use(chimw.GetHead)                        // Handle HEAD requests for uptime monitoring
	r.Use(middleware.Timeout(30 * time.Second)) // 30 second request timeout
	r.Use(middleware.StripTrailingSlash)        // Redirect /path/ to /path (301)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	securityConfig.ExcludePaths = []string{"/api/"}
	r.Use(middleware.SecurityHeaders(securityConfig))

	// Health check routes
	r.Get(handler.RouteHealth, healthHandler.Health)
	r.Get(handler.RouteHealth+"/live", healthHandler.Liveness)

	// Crawler endpoints
	r.Get(handler.RouteRobots, seoHandler.Robots)
	r.Get(handler.RouteSitemap, seoHandler.Sitemap)

	// Read-only catalog API (CORS, rate limited, no session)
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.CORSOrigins}))
		r.Use(apiLimiter.Middleware())
		r.Get(handler.RouteAPICatalog, apiHandler.Catalog)
		r.Options(handler.RouteAPICatalog, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	slog.Info("catalog API mounted", "path", handler.RouteAPICatalog, "cors_origins", len(cfg.CORSOrigins))

	// Showcase page and its forms (session state, language, CSRF)
	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerPort)
	r.Group(func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)
		r.Use(middleware.Language)
		r.Use(middleware.CSRF(csrfConfig))
		r.Use(middleware.NoStore)
		registerShowcaseRoutes(r, pages)
	})

	// Static file serving, cached for 1 year (31536000 seconds)
	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	staticHandler := middleware.StaticCache(31536000)(http.StripPrefix("/static/dist/", http.FileServer(http.FS(staticFS))))
	r.Handle("/static/dist/*", staticHandler)

	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

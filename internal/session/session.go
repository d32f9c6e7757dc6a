// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the visitor session manager.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Cookie names. The __Host- prefix requires Secure, so it is used in production only.
const (
	CookieNameDev  = "chronicle_session"
	CookieNameProd = "__Host-session"
)

// Lifetime is how long a visitor's page state survives without activity.
const Lifetime = 24 * time.Hour

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	// Use SQLite store
	sm.Store = sqlite3store.New(db)

	// Configure session
	sm.Lifetime = Lifetime
	sm.IdleTimeout = Lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	if isDev {
		sm.Cookie.Name = CookieNameDev
	} else {
		sm.Cookie.Name = CookieNameProd
	}

	return sm
}

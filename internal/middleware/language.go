// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/olegiv/chronicle/internal/i18n"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyLanguage holds the negotiated UI language code.
const ContextKeyLanguage ContextKey = "language"

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "chronicle_lang"

// Language negotiates the UI language and stores it in the request context.
// Priority order:
//  1. Query parameter ?lang=XX (explicit switch, updates the cookie)
//  2. Cookie preference
//  3. Accept-Language header
//  4. i18n.DefaultLanguage
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := negotiateLanguage(w, r)
		ctx := context.WithValue(r.Context(), ContextKeyLanguage, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func negotiateLanguage(w http.ResponseWriter, r *http.Request) string {
	if q := strings.ToLower(r.URL.Query().Get("lang")); q != "" && i18n.IsSupported(q) {
		SetLanguageCookie(w, q)
		return q
	}

	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		if code := strings.ToLower(cookie.Value); i18n.IsSupported(code) {
			return code
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.MatchLanguage(accept)
	}

	return i18n.DefaultLanguage
}

// GetLanguage returns the negotiated language, or the default outside the middleware.
func GetLanguage(r *http.Request) string {
	if lang, ok := r.Context().Value(ContextKeyLanguage).(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, langCode string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LanguageCookieName,
		Value:    langCode,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

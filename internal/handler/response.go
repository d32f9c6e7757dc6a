// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/olegiv/chronicle/internal/render"
	"github.com/olegiv/chronicle/internal/showcase"
)

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) for POST redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, messageKey, messageType string) {
	renderer.SetFlash(r, messageKey, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, messageKey string) {
	flashAndRedirect(w, r, renderer, url, messageKey, "success")
}

// flashInfo sets an informational flash message and redirects to the given URL.
func flashInfo(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, messageKey string) {
	flashAndRedirect(w, r, renderer, url, messageKey, "info")
}

// redirectHome answers a form post with 303 back to the page.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, homeURL(r), http.StatusSeeOther)
}

// homeURL rebuilds the page URL a form was posted from. Forms carry the
// slide index and a section anchor in their action's query string, so the
// body is never read here. Anything else is dropped and the redirect always
// stays on this site.
func homeURL(r *http.Request) string {
	target := RouteRoot
	q := r.URL.Query()

	if raw := q.Get(formSlide); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && i >= 0 {
			target += "?" + url.Values{formSlide: {strconv.Itoa(i)}}.Encode()
		}
	}
	if fragment, ok := showcase.ScrollTarget(q.Get(formAnchor)); ok {
		target += fragment
	}

	return target
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

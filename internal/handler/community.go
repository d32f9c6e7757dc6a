// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/chronicle/internal/render"
)

// CommunityHandler serves the comment composer.
type CommunityHandler struct {
	renderer *render.Renderer
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(renderer *render.Renderer) *CommunityHandler {
	return &CommunityHandler{renderer: renderer}
}

// PostComment handles POST /community/comments. Comments are not stored;
// the visitor is told so and the feed is left as it was.
func (h *CommunityHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	slog.Debug("comment composer submitted, not stored")
	flashInfo(w, r, h.renderer, homeURL(r), flashCommentNotSaved)
}

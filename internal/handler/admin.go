// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/olegiv/chronicle/internal/render"
	"github.com/olegiv/chronicle/internal/showcase"
)

// AdminHandler serves the story upload dashboard.
type AdminHandler struct {
	renderer *render.Renderer
	sessions *showcase.SessionStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(renderer *render.Renderer, sessions *showcase.SessionStore) *AdminHandler {
	return &AdminHandler{renderer: renderer, sessions: sessions}
}

// SubmitStory handles POST /admin/stories. It records that a submission
// happened and closes the dashboard. Nothing from the body is read or kept.
func (h *AdminHandler) SubmitStory(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Update(r.Context(), func(s *showcase.State) {
		s.CloseModal(showcase.ModalAdmin)
	})

	userID := ""
	if st.CurrentUser != nil {
		userID = st.CurrentUser.ID
	}
	slog.Info("new story submitted",
		"submission_id", uuid.NewString(),
		"user_id", userID,
		"content_length", r.ContentLength,
	)

	flashSuccess(w, r, h.renderer, homeURL(r), flashStorySubmitted)
}

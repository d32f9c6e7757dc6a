// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/chronicle/internal/forms"
	"github.com/olegiv/chronicle/internal/showcase"
)

// ModalHandler flips the two modal flags. Each route touches one flag only.
type ModalHandler struct {
	sessions *showcase.SessionStore
}

// NewModalHandler creates a new ModalHandler.
func NewModalHandler(sessions *showcase.SessionStore) *ModalHandler {
	return &ModalHandler{sessions: sessions}
}

// Open handles POST /modals/{modal}/open.
func (h *ModalHandler) Open(w http.ResponseWriter, r *http.Request) {
	m, ok := showcase.ParseModal(chi.URLParam(r, "modal"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.sessions.Update(r.Context(), func(st *showcase.State) {
		st.OpenModal(m)
	})
	redirectHome(w, r)
}

// Close handles POST /modals/{modal}/close. Closing the auth modal also
// resets the form: the next open starts empty in login mode.
func (h *ModalHandler) Close(w http.ResponseWriter, r *http.Request) {
	m, ok := showcase.ParseModal(chi.URLParam(r, "modal"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.sessions.Update(r.Context(), func(st *showcase.State) {
		st.CloseModal(m)
		if m == showcase.ModalAuth {
			st.AuthMode = forms.ModeLogin
		}
	})
	redirectHome(w, r)
}

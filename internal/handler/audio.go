// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/olegiv/chronicle/internal/audio"
	"github.com/olegiv/chronicle/internal/showcase"
)

// AudioStatus is the JSON body of the audio endpoints.
type AudioStatus struct {
	State  string `json:"state"`
	Icon   string `json:"icon"`
	On     bool   `json:"on"`
	Source string `json:"source"`
}

// AudioHandler serves the soundtrack toggle.
type AudioHandler struct {
	sessions   *showcase.SessionStore
	registry   *audio.Registry
	soundtrack string
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(sessions *showcase.SessionStore, registry *audio.Registry, soundtrack string) *AudioHandler {
	return &AudioHandler{sessions: sessions, registry: registry, soundtrack: soundtrack}
}

// Toggle handles POST /audio/toggle. The icon flips before playback is
// confirmed; JSON callers get the new state, forms are redirected back.
func (h *AudioHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.ListenerID(r.Context())
	st := h.registry.Get(id).Click()

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, h.status(st))
		return
	}
	redirectHome(w, r)
}

// Status handles GET /audio.
func (h *AudioHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.registry.Peek(h.sessions.ListenerID(r.Context()))
	writeJSON(w, http.StatusOK, h.status(st))
}

func (h *AudioHandler) status(st audio.State) AudioStatus {
	return AudioStatus{
		State:  st.String(),
		Icon:   st.Icon(),
		On:     st.On(),
		Source: h.soundtrack,
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

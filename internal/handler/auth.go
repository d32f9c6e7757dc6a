// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/chronicle/internal/forms"
	"github.com/olegiv/chronicle/internal/render"
	"github.com/olegiv/chronicle/internal/showcase"
)

// maxAuthFormBytes bounds the auth mode-switch body.
const maxAuthFormBytes = 16 << 10

// AuthFormPage renders the showcase page around a filled-in auth form.
type AuthFormPage interface {
	RenderPage(w http.ResponseWriter, r *http.Request, authForm *forms.AuthForm)
}

// AuthHandler serves the simulated login form.
type AuthHandler struct {
	renderer *render.Renderer
	sessions *showcase.SessionStore
	users    forms.FirstUserSource
	page     AuthFormPage
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(renderer *render.Renderer, sessions *showcase.SessionStore, users forms.FirstUserSource, page AuthFormPage) *AuthHandler {
	return &AuthHandler{
		renderer: renderer,
		sessions: sessions,
		users:    users,
		page:     page,
	}
}

// ToggleMode handles POST /auth/mode. It flips login/signup and renders the
// page in place with the entered values kept in the fields both modes
// share. Nothing entered is written to the session.
func (h *AuthHandler) ToggleMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxAuthFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	st := h.sessions.Load(ctx)
	form := forms.NewAuthForm(st.AuthMode)
	for _, f := range form.Fields() {
		form.Set(f.Name, r.PostFormValue(f.Name))
	}
	form.Toggle()

	h.sessions.Update(ctx, func(s *showcase.State) {
		s.AuthMode = form.Mode
		s.OpenModal(showcase.ModalAuth)
	})

	h.page.RenderPage(w, r, form)
}

// Login handles POST /auth/login. Whatever was entered, the visitor becomes
// the first mock user; the body is not read.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st := h.sessions.Load(ctx)
	user := forms.NewAuthForm(st.AuthMode).Submit(h.users)

	if _, err := h.sessions.Login(ctx, user); err != nil {
		logAndInternalError(w, "failed to store login", "error", err)
		return
	}
	h.sessions.Update(ctx, func(s *showcase.State) {
		s.AuthMode = forms.ModeLogin
	})

	slog.Info("simulated login", "user_id", user.ID, "username", user.Username, "mode", string(st.AuthMode))
	flashSuccess(w, r, h.renderer, homeURL(r), flashLoggedIn)
}

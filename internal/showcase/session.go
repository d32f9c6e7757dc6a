// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package showcase

import (
	"context"
	"fmt"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/olegiv/chronicle/internal/forms"
	"github.com/olegiv/chronicle/internal/model"
)

// Session keys for the page state.
const (
	SessionKeyLoggedIn   = "logged_in"
	SessionKeyUserID     = "user_id"
	SessionKeyAuthModal  = "modal_auth"
	SessionKeyAdminModal = "modal_admin"
	SessionKeyAuthMode   = "auth_mode"
	SessionKeyListenerID = "listener_id"
)

// UserLookup resolves stored user IDs back to mock users.
type UserLookup interface {
	UserByID(id string) (model.User, bool)
}

// SessionStore persists State in the visitor's scs session.
// The request must have passed through SessionManager.LoadAndSave.
type SessionStore struct {
	sm    *scs.SessionManager
	users UserLookup
}

// NewSessionStore creates a SessionStore.
func NewSessionStore(sm *scs.SessionManager, users UserLookup) *SessionStore {
	return &SessionStore{sm: sm, users: users}
}

// Load reads the visitor's state. A stored user ID that no longer resolves
// is treated as logged out.
func (s *SessionStore) Load(ctx context.Context) State {
	st := State{
		AuthModalOpen:  s.sm.GetBool(ctx, SessionKeyAuthModal),
		AdminModalOpen: s.sm.GetBool(ctx, SessionKeyAdminModal),
		AuthMode:       forms.ParseAuthMode(s.sm.GetString(ctx, SessionKeyAuthMode)),
	}

	if s.sm.GetBool(ctx, SessionKeyLoggedIn) {
		if u, ok := s.users.UserByID(s.sm.GetString(ctx, SessionKeyUserID)); ok {
			st.LoggedIn = true
			st.CurrentUser = &u
		}
	}

	return st
}

// Save writes the visitor's state.
func (s *SessionStore) Save(ctx context.Context, st State) {
	s.sm.Put(ctx, SessionKeyAuthModal, st.AuthModalOpen)
	s.sm.Put(ctx, SessionKeyAdminModal, st.AdminModalOpen)
	s.sm.Put(ctx, SessionKeyAuthMode, string(st.AuthMode))

	if st.LoggedIn && st.CurrentUser != nil {
		s.sm.Put(ctx, SessionKeyLoggedIn, true)
		s.sm.Put(ctx, SessionKeyUserID, st.CurrentUser.ID)
	}
}

// Login applies State.Login and persists it under a fresh session token.
func (s *SessionStore) Login(ctx context.Context, user model.User) (State, error) {
	// Regenerate session ID to prevent session fixation
	if err := s.sm.RenewToken(ctx); err != nil {
		return State{}, fmt.Errorf("renewing session token: %w", err)
	}

	st := s.Load(ctx)
	st.Login(user)
	s.Save(ctx, st)
	return st, nil
}

// Update loads the state, applies fn and saves the result.
func (s *SessionStore) Update(ctx context.Context, fn func(*State)) State {
	st := s.Load(ctx)
	fn(&st)
	s.Save(ctx, st)
	return st
}

// ListenerID returns the visitor's audio listener id, creating one on first use.
func (s *SessionStore) ListenerID(ctx context.Context) string {
	if id := s.sm.GetString(ctx, SessionKeyListenerID); id != "" {
		return id
	}
	id := uuid.NewString()
	s.sm.Put(ctx, SessionKeyListenerID, id)
	return id
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package showcase owns the per-visitor page state: the simulated session,
// the two modal flags and the in-page section anchors.
package showcase

import (
	"github.com/olegiv/chronicle/internal/forms"
	"github.com/olegiv/chronicle/internal/model"
)

// Modal identifies one of the page's overlays.
type Modal string

// Modals
const (
	ModalAuth  Modal = "auth"
	ModalAdmin Modal = "admin"
)

// ParseModal maps a route parameter to a Modal.
func ParseModal(s string) (Modal, bool) {
	switch Modal(s) {
	case ModalAuth, ModalAdmin:
		return Modal(s), true
	}
	return "", false
}

// State is the page state of one visitor. The zero value is a fresh visit:
// logged out, both modals closed, auth form in login mode.
type State struct {
	LoggedIn       bool
	CurrentUser    *model.User
	AuthModalOpen  bool
	AdminModalOpen bool
	AuthMode       forms.AuthMode
}

// Login records the simulated session and closes the auth modal.
// It never fails.
func (s *State) Login(user model.User) {
	s.LoggedIn = true
	s.CurrentUser = &user
	s.AuthModalOpen = false
}

// OpenModal sets the flag of m only.
func (s *State) OpenModal(m Modal) {
	s.setModal(m, true)
}

// CloseModal clears the flag of m only.
func (s *State) CloseModal(m Modal) {
	s.setModal(m, false)
}

// IsOpen reports the flag of m.
func (s *State) IsOpen(m Modal) bool {
	switch m {
	case ModalAuth:
		return s.AuthModalOpen
	case ModalAdmin:
		return s.AdminModalOpen
	}
	return false
}

func (s *State) setModal(m Modal, open bool) {
	switch m {
	case ModalAuth:
		s.AuthModalOpen = open
	case ModalAdmin:
		s.AdminModalOpen = open
	}
}

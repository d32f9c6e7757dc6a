// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the read-only records shown on the showcase page:
// users, comments, content items and hero slides.
package model

// User is a predefined community member. Users are never created at runtime.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Initial returns the first letter of the username for avatar fallbacks.
func (u *User) Initial() string {
	if u == nil || u.Username == "" {
		return "?"
	}
	for _, r := range u.Username {
		return string(r)
	}
	return "?"
}

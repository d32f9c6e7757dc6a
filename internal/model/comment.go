// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Comment is a community feed entry. User is a reference to a mock user,
// not an owned copy.
type Comment struct {
	ID        string `json:"id"`
	User      *User  `json:"user"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"` // Display string, e.g. "2 hours ago"
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package community builds the comment feed shown under the content grids.
package community

import "github.com/olegiv/chronicle/internal/model"

// Feed is the rendered community section.
type Feed struct {
	Comments     []model.Comment
	ShowComposer bool
	Author       *model.User // composer avatar; nil when logged out
}

// NewFeed keeps comments in their given order. The composer is shown only
// to a logged-in visitor.
func NewFeed(comments []model.Comment, loggedIn bool, current *model.User) Feed {
	f := Feed{
		Comments:     comments,
		ShowComposer: loggedIn,
	}
	if loggedIn {
		f.Author = current
	}
	return f
}

// Len returns the number of comments.
func (f Feed) Len() int {
	return len(f.Comments)
}

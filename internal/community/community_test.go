// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package community

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olegiv/chronicle/internal/mockdata"
	"github.com/olegiv/chronicle/internal/model"
)

func commentIDs(f Feed) []string {
	ids := make([]string, 0, f.Len())
	for _, c := range f.Comments {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestNewFeed_LoggedOut(t *testing.T) {
	f := NewFeed(mockdata.Comments(), false, nil)

	assert.False(t, f.ShowComposer)
	assert.Nil(t, f.Author)
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, commentIDs(f))
}

func TestNewFeed_LoggedIn(t *testing.T) {
	u := model.User{ID: "u1", Username: "amara_writes"}
	f := NewFeed(mockdata.Comments(), true, &u)

	assert.True(t, f.ShowComposer)
	assert.Equal(t, "u1", f.Author.ID)
}

func TestNewFeed_ComposerDoesNotChangeList(t *testing.T) {
	u := model.User{ID: "u1"}
	out := NewFeed(mockdata.Comments(), false, nil)
	in := NewFeed(mockdata.Comments(), true, &u)

	assert.Equal(t, commentIDs(out), commentIDs(in))
}

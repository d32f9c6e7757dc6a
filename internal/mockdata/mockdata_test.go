// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/chronicle/internal/model"
)

func TestUsers_FirstIsLoginIdentity(t *testing.T) {
	us := Users()
	require.NotEmpty(t, us)
	assert.Equal(t, "u1", us[0].ID)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Stories()
	s[0].Title = "changed"
	s[0].Tags[0] = "changed"

	fresh := Stories()
	assert.NotEqual(t, "changed", fresh[0].Title)
	assert.NotEqual(t, "changed", fresh[0].Tags[0])

	us := Users()
	us[0].Username = "changed"
	assert.NotEqual(t, "changed", Users()[0].Username)
}

func TestContentKinds(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ContentItem
		kind  model.ContentKind
	}{
		{"stories", Stories(), model.KindStory},
		{"documentaries", Documentaries(), model.KindDocumentary},
		{"articles", Articles(), model.KindArticle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEmpty(t, tt.items)
			for _, it := range tt.items {
				assert.Equal(t, tt.kind, it.Kind, "item %s", it.ID)
			}
		})
	}
}

func TestComments_ReferenceKnownUsers(t *testing.T) {
	known := make(map[string]bool)
	for _, u := range Users() {
		known[u.ID] = true
	}

	cs := Comments()
	require.Len(t, cs, 4)
	for _, c := range cs {
		require.NotNil(t, c.User, "comment %s", c.ID)
		assert.True(t, known[c.User.ID], "comment %s references unknown user %s", c.ID, c.User.ID)
	}

	// Fixed order
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids)
}

func TestSlides_LinkToSections(t *testing.T) {
	for _, s := range Slides() {
		assert.NotEmpty(t, s.Link, "slide %s", s.ID)
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// ContentKind identifies which section a content item belongs to.
type ContentKind string

// Content kinds
const (
	KindStory       ContentKind = "story"
	KindDocumentary ContentKind = "documentary"
	KindArticle     ContentKind = "article"
)

// ContentItem is a story, documentary or article card.
type ContentItem struct {
	ID        string      `json:"id"`
	Kind      ContentKind `json:"kind"`
	Title     string      `json:"title"`
	Summary   string      `json:"summary"`
	Meta      string      `json:"meta"` // Author, duration or read time depending on Kind
	Thumbnail string      `json:"thumbnail"`
	Tags      []string    `json:"tags"`
}

// HasTag reports whether the item carries the given tag.
func (c ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Slide is one hero slider frame.
type Slide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Link     string `json:"link"` // Section name the call-to-action scrolls to
}

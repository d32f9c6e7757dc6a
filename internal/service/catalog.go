// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the read paths the page handlers render from.
package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/olegiv/chronicle/internal/mockdata"
	"github.com/olegiv/chronicle/internal/model"
	"github.com/olegiv/chronicle/internal/util"
)

// htmlSanitizer strips anything unsafe from rendered Markdown before it is
// marked as template.HTML.
var htmlSanitizer = bluemonday.UGCPolicy()

// Section IDs for the three content grids.
const (
	SectionStories       = "stories"
	SectionDocumentaries = "documentaries"
	SectionArticles      = "articles"
)

// CardView is a content item with its in-page anchor.
type CardView struct {
	model.ContentItem
	Anchor string `json:"anchor"`
}

// SectionView is one content grid.
type SectionView struct {
	ID       string     `json:"id"`
	TitleKey string     `json:"title_key"` // i18n key, e.g. "section.stories"
	Items    []CardView `json:"items"`
}

// CatalogSnapshot is the full read-only catalog, as served by the JSON API.
type CatalogSnapshot struct {
	Sections []SectionView   `json:"sections"`
	Slides   []model.Slide   `json:"slides"`
	Comments []model.Comment `json:"comments"`
}

// CatalogService exposes the mock data in render-ready form.
type CatalogService struct {
	users    []model.User
	sections []SectionView
	about    template.HTML
	contact  template.HTML
}

// NewCatalogService builds the catalog and renders the Markdown copy once.
func NewCatalogService() (*CatalogService, error) {
	about, err := renderMarkdown(mockdata.About)
	if err != nil {
		return nil, fmt.Errorf("rendering about: %w", err)
	}
	contact, err := renderMarkdown(mockdata.Contact)
	if err != nil {
		return nil, fmt.Errorf("rendering contact: %w", err)
	}

	return &CatalogService{
		users: mockdata.Users(),
		sections: []SectionView{
			newSection(SectionStories, mockdata.Stories()),
			newSection(SectionDocumentaries, mockdata.Documentaries()),
			newSection(SectionArticles, mockdata.Articles()),
		},
		about:   about,
		contact: contact,
	}, nil
}

func newSection(id string, items []model.ContentItem) SectionView {
	cards := make([]CardView, 0, len(items))
	for _, it := range items {
		slug := util.Slugify(it.Title)
		if !util.IsValidSlug(slug) {
			// Titles made only of symbols slug to nothing.
			slug = util.Slugify(it.ID)
		}
		cards = append(cards, CardView{
			ContentItem: it,
			Anchor:      id + "-" + slug,
		})
	}
	return SectionView{ID: id, TitleKey: "section." + id, Items: cards}
}

// Sections returns the content grids in page order.
func (s *CatalogService) Sections() []SectionView {
	out := make([]SectionView, len(s.sections))
	for i, sec := range s.sections {
		sec.Items = append([]CardView(nil), sec.Items...)
		out[i] = sec
	}
	return out
}

// FirstUser returns the identity every simulated login resolves to.
func (s *CatalogService) FirstUser() model.User {
	return s.users[0]
}

// UserByID looks up a predefined user.
func (s *CatalogService) UserByID(id string) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Comments returns the community comments in mock order.
func (s *CatalogService) Comments() []model.Comment {
	return mockdata.Comments()
}

// Slides returns the hero slides.
func (s *CatalogService) Slides() []model.Slide {
	return mockdata.Slides()
}

// About returns the sanitized about block.
func (s *CatalogService) About() template.HTML {
	return s.about
}

// Contact returns the sanitized contact line for the footer.
func (s *CatalogService) Contact() template.HTML {
	return s.contact
}

// Snapshot assembles everything the JSON API serves.
func (s *CatalogService) Snapshot() CatalogSnapshot {
	return CatalogSnapshot{
		Sections: s.Sections(),
		Slides:   s.Slides(),
		Comments: s.Comments(),
	}
}

// renderMarkdown converts Markdown to sanitized HTML.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized above
}

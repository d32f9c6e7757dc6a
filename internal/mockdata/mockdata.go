// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mockdata holds the hardcoded records the showcase renders.
// Accessors return fresh copies so callers cannot mutate the shared arrays.
package mockdata

import (
	"slices"

	"github.com/olegiv/chronicle/internal/model"
)

var users = []model.User{
	{ID: "u1", Username: "amara_writes", Avatar: "https://i.pravatar.cc/150?u=amara"},
	{ID: "u2", Username: "lens_of_leo", Avatar: "https://i.pravatar.cc/150?u=leo"},
	{ID: "u3", Username: "night_reader", Avatar: "https://i.pravatar.cc/150?u=night"},
	{ID: "u4", Username: "Øyvind", Avatar: "https://i.pravatar.cc/150?u=oyvind"},
}

var stories = []model.ContentItem{
	{
		ID: "s1", Kind: model.KindStory,
		Title:     "The Lighthouse Keeper's Daughter",
		Summary:   "A coastal town, a storm that never ends, and a girl who keeps the light burning for a ship that vanished forty years ago.",
		Meta:      "by Amara Okafor",
		Thumbnail: "https://picsum.photos/seed/lighthouse/600/400",
		Tags:      []string{"drama", "ocean"},
	},
	{
		ID: "s2", Kind: model.KindStory,
		Title:     "Ashes of the Silk Road",
		Summary:   "Two merchants, one stolen map and a caravan crossing a desert that remembers every traveller.",
		Meta:      "by Leo Marchetti",
		Thumbnail: "https://picsum.photos/seed/silkroad/600/400",
		Tags:      []string{"history", "adventure"},
	},
	{
		ID: "s3", Kind: model.KindStory,
		Title:     "Café Émigré",
		Summary:   "Every night at 2 a.m. a Parisian café serves one guest who is not supposed to exist.",
		Meta:      "by Night Reader",
		Thumbnail: "https://picsum.photos/seed/cafe/600/400",
		Tags:      []string{"mystery"},
	},
}

var documentaries = []model.ContentItem{
	{
		ID: "d1", Kind: model.KindDocumentary,
		Title:     "Rivers of Gold",
		Summary:   "Following the last families who still pan for gold along the Yukon.",
		Meta:      "52 min",
		Thumbnail: "https://picsum.photos/seed/yukon/600/400",
		Tags:      []string{"nature", "people"},
	},
	{
		ID: "d2", Kind: model.KindDocumentary,
		Title:     "The Archive Beneath",
		Summary:   "Inside a flooded library where conservators race to save a century of letters.",
		Meta:      "38 min",
		Thumbnail: "https://picsum.photos/seed/archive/600/400",
		Tags:      []string{"history"},
	},
	{
		ID: "d3", Kind: model.KindDocumentary,
		Title:     "Night Shift",
		Summary:   "A city's story told by the people who keep it running after midnight.",
		Meta:      "45 min",
		Thumbnail: "https://picsum.photos/seed/nightshift/600/400",
		Tags:      []string{"people", "city"},
	},
}

var articles = []model.ContentItem{
	{
		ID: "a1", Kind: model.KindArticle,
		Title:     "Why We Still Tell Stories by the Fire",
		Summary:   "Oral storytelling survived the printing press, radio and the feed. Here is why.",
		Meta:      "6 min read",
		Thumbnail: "https://picsum.photos/seed/fire/600/400",
		Tags:      []string{"essay", "culture"},
	},
	{
		ID: "a2", Kind: model.KindArticle,
		Title:     "Shooting Documentaries on a Shoestring",
		Summary:   "Practical notes on sound, light and patience from three first-time filmmakers.",
		Meta:      "9 min read",
		Thumbnail: "https://picsum.photos/seed/camera/600/400",
		Tags:      []string{"craft"},
	},
	{
		ID: "a3", Kind: model.KindArticle,
		Title:     "The Editor's Desk: Cutting What You Love",
		Summary:   "A working editor on the hardest part of the job.",
		Meta:      "4 min read",
		Thumbnail: "https://picsum.photos/seed/desk/600/400",
		Tags:      []string{"craft", "essay"},
	},
}

// comments reference users by index so the User pointers share identity
// with the entries returned by Users.
var comments = []struct {
	id        string
	userIdx   int
	text      string
	timestamp string
}{
	{id: "c1", userIdx: 1, text: "The Lighthouse Keeper's Daughter had me in tears. That final chapter!", timestamp: "2 hours ago"},
	{id: "c2", userIdx: 2, text: "Rivers of Gold is the best thing I've watched this year.", timestamp: "5 hours ago"},
	{id: "c3", userIdx: 0, text: "Thank you all for reading. Part two is on its way.", timestamp: "1 day ago"},
	{id: "c4", userIdx: 3, text: "Could we get more documentaries about the north?", timestamp: "3 days ago"},
}

var slides = []model.Slide{
	{ID: "h1", Title: "Stories That Stay With You", Subtitle: "Fiction, film and essays from independent voices.", Image: "https://picsum.photos/seed/hero1/1600/900", Link: "stories"},
	{ID: "h2", Title: "Worlds Worth Documenting", Subtitle: "Short documentaries about people and places at the edge.", Image: "https://picsum.photos/seed/hero2/1600/900", Link: "documentaries"},
	{ID: "h3", Title: "Read Between the Lines", Subtitle: "Long reads on craft, culture and the art of telling.", Image: "https://picsum.photos/seed/hero3/1600/900", Link: "articles"},
}

// About is the Markdown copy of the about block.
const About = `## About Chronicle

Chronicle is a home for **stories**, *documentaries* and long-form articles.
We publish independent storytellers and keep the focus on the work.

- New stories every week
- Documentaries under an hour
- No ads, no autoplaying trailers
`

// Contact is the Markdown copy shown in the footer.
const Contact = `Write to us at [hello@chronicle.example](mailto:hello@chronicle.example).`

// Users returns the predefined users. The first entry is the simulated login identity.
func Users() []model.User {
	return slices.Clone(users)
}

// Stories returns the featured stories.
func Stories() []model.ContentItem {
	return cloneItems(stories)
}

// Documentaries returns the documentaries.
func Documentaries() []model.ContentItem {
	return cloneItems(documentaries)
}

// Articles returns the articles.
func Articles() []model.ContentItem {
	return cloneItems(articles)
}

// Slides returns the hero slides.
func Slides() []model.Slide {
	return slices.Clone(slides)
}

// Comments returns the community comments in their fixed order.
// Comments in one call share User pointers with each other, not with
// the package arrays.
func Comments() []model.Comment {
	us := Users()
	out := make([]model.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, model.Comment{
			ID:        c.id,
			User:      &us[c.userIdx],
			Text:      c.text,
			Timestamp: c.timestamp,
		})
	}
	return out
}

func cloneItems(items []model.ContentItem) []model.ContentItem {
	out := make([]model.ContentItem, len(items))
	for i, it := range items {
		it.Tags = slices.Clone(it.Tags)
		out[i] = it
	}
	return out
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package forms

// Story form field names.
const (
	FieldTitle     = "title"
	FieldSummary   = "summary"
	FieldThumbnail = "thumbnail"
	FieldTags      = "tags"
)

// StoryForm is the admin "upload story" form. Submissions are not stored.
type StoryForm struct{}

// Fields lists the story controls. Tags is the only optional one.
func (StoryForm) Fields() []Field {
	return []Field{
		{Name: FieldTitle, LabelKey: "admin.title", Type: "text", Required: true},
		{Name: FieldSummary, LabelKey: "admin.summary", Type: "textarea", Required: true, Rows: 4},
		{Name: FieldThumbnail, LabelKey: "admin.thumbnail", Type: "file", Required: true},
		{Name: FieldTags, LabelKey: "admin.tags", Type: "text"},
	}
}

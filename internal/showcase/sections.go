// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package showcase

// Section names the navbar can scroll to.
const (
	SectionHome          = "home"
	SectionStories       = "stories"
	SectionDocumentaries = "documentaries"
	SectionArticles      = "articles"
	SectionAbout         = "about"
	SectionContact       = "contact"
)

// sectionAnchors maps each recognised section to its element id.
var sectionAnchors = map[string]string{
	SectionHome:          "home",
	SectionStories:       "stories",
	SectionDocumentaries: "documentaries",
	SectionArticles:      "articles",
	SectionAbout:         "about",
	SectionContact:       "contact",
}

// Sections lists the recognised section names in navbar order.
func Sections() []string {
	return []string{
		SectionHome,
		SectionStories,
		SectionDocumentaries,
		SectionArticles,
		SectionAbout,
		SectionContact,
	}
}

// ScrollTarget resolves a section name to its fragment ("#stories").
// Unknown names return ok=false and the caller skips navigation.
func ScrollTarget(name string) (fragment string, ok bool) {
	anchor, ok := sectionAnchors[name]
	if !ok {
		return "", false
	}
	return "#" + anchor, true
}

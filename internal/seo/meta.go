// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the page meta tags, robots.txt and the sitemap.
package seo

import (
	"encoding/json"
	"html/template"
	"net/url"
	"strings"

	"github.com/olegiv/chronicle/internal/model"
)

// maxDescriptionLen is the longest meta description emitted.
const maxDescriptionLen = 160

// Meta holds all SEO meta tag data for a page.
type Meta struct {
	Title         string      // Page title (for <title> tag)
	Description   string      // Meta description
	Canonical     string      // Canonical URL
	OGTitle       string      // Open Graph title
	OGDescription string      // Open Graph description
	OGImage       string      // Open Graph image URL (absolute)
	OGType        string      // Open Graph type
	OGSiteName    string      // Open Graph site name
	OGURL         string      // Open Graph URL
	OGLocale      string      // Open Graph locale (en, ru)
	Robots        string      // Robots directive (index,follow / noindex,nofollow)
	TwitterCard   string      // Twitter card type
	Alternates    []Alternate // hreflang links, one per UI language
	JSONLD        template.JS // WebSite structured data
}

// Alternate is one hreflang link.
type Alternate struct {
	Lang string
	URL  string
}

// SiteConfig contains site-wide settings for SEO.
type SiteConfig struct {
	SiteName    string
	SiteURL     string // Public base URL; empty leaves URLs relative
	Description string
	Languages   []string
	NoIndex     bool
}

// BuildMeta creates the meta tags of the showcase page in lang. The
// featured slide provides the share image and, if the site has no
// description, the description.
func BuildMeta(site SiteConfig, lang string, featured model.Slide) *Meta {
	description := site.Description
	if description == "" {
		description = featured.Subtitle
	}
	description = truncateText(stripHTML(description), maxDescriptionLen)

	canonical := LanguageURL(site.SiteURL, lang)
	meta := &Meta{
		Title:         site.SiteName,
		Description:   description,
		Canonical:     canonical,
		OGTitle:       site.SiteName,
		OGDescription: description,
		OGImage:       makeAbsoluteURL(featured.Image, site.SiteURL),
		OGType:        "website",
		OGSiteName:    site.SiteName,
		OGURL:         canonical,
		OGLocale:      lang,
		Robots:        buildRobotsDirective(site.NoIndex, site.NoIndex),
		TwitterCard:   "summary_large_image",
	}

	for _, l := range site.Languages {
		meta.Alternates = append(meta.Alternates, Alternate{Lang: l, URL: LanguageURL(site.SiteURL, l)})
	}
	meta.JSONLD = BuildWebSiteSchema(site, lang, description)

	return meta
}

// LanguageURL is the page URL that selects lang.
func LanguageURL(siteURL, lang string) string {
	u := strings.TrimSuffix(siteURL, "/") + "/"
	if lang == "" {
		return u
	}
	return u + "?" + url.Values{"lang": {lang}}.Encode()
}

// buildRobotsDirective creates the robots meta content from noindex/nofollow flags.
func buildRobotsDirective(noIndex, noFollow bool) string {
	var parts []string

	if noIndex {
		parts = append(parts, "noindex")
	} else {
		parts = append(parts, "index")
	}

	if noFollow {
		parts = append(parts, "nofollow")
	} else {
		parts = append(parts, "follow")
	}

	return strings.Join(parts, ",")
}

// WebSiteSchema represents JSON-LD WebSite structured data.
type WebSiteSchema struct {
	Context     string     `json:"@context"`
	Type        string     `json:"@type"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	InLanguage  string     `json:"inLanguage,omitempty"`
	Publisher   *OrgSchema `json:"publisher,omitempty"`
}

// OrgSchema represents JSON-LD Organization structured data.
type OrgSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// BuildWebSiteSchema creates JSON-LD WebSite structured data for the page.
func BuildWebSiteSchema(site SiteConfig, lang, description string) template.JS {
	return marshalJSONLD(WebSiteSchema{
		Context:     "https://schema.org",
		Type:        "WebSite",
		Name:        site.SiteName,
		URL:         LanguageURL(site.SiteURL, ""),
		Description: description,
		InLanguage:  lang,
		Publisher:   &OrgSchema{Type: "Organization", Name: site.SiteName},
	})
}

// marshalJSONLD marshals structured data to JSON-LD script tag content.
func marshalJSONLD(v any) template.JS {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return template.JS(data)
}

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			result.WriteRune(' ') // Replace tags with space
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	// Collapse whitespace
	return strings.Join(strings.Fields(result.String()), " ")
}

// truncateText truncates text to maxLen runes at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	truncated := string(runes[:maxLen])
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}

// makeAbsoluteURL ensures a URL is absolute by prepending site URL if needed.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"errors"
)

// Sitemap XML namespaces.
const (
	XMLNamespace      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	XHTMLXMLNamespace = "http://www.w3.org/1999/xhtml"
)

// ErrNoSiteURL is returned when a sitemap is requested without a public URL.
var ErrNoSiteURL = errors.New("site URL not configured")

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Change frequencies used by the showcase.
const (
	ChangeFreqDaily  ChangeFreq = "daily"
	ChangeFreqWeekly ChangeFreq = "weekly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string          `xml:"loc"`
	ChangeFreq ChangeFreq      `xml:"changefreq,omitempty"`
	Priority   string          `xml:"priority,omitempty"`
	Alternates []AlternateLink `xml:"xhtml:link"`
}

// AlternateLink is an hreflang entry of a sitemap URL.
type AlternateLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSXHTML string       `xml:"xmlns:xhtml,attr"`
	URLs       []SitemapURL `xml:"url"`
}

// GenerateSitemap lists the showcase page once per language, each entry
// linking to its translations.
func GenerateSitemap(siteURL string, languages []string) ([]byte, error) {
	if siteURL == "" {
		return nil, ErrNoSiteURL
	}

	alternates := make([]AlternateLink, 0, len(languages)+1)
	for _, lang := range languages {
		alternates = append(alternates, AlternateLink{Rel: "alternate", HrefLang: lang, Href: LanguageURL(siteURL, lang)})
	}
	alternates = append(alternates, AlternateLink{Rel: "alternate", HrefLang: "x-default", Href: LanguageURL(siteURL, "")})

	sitemap := Sitemap{
		XMLNS:      XMLNamespace,
		XMLNSXHTML: XHTMLXMLNamespace,
		URLs: []SitemapURL{{
			Loc:        LanguageURL(siteURL, ""),
			ChangeFreq: ChangeFreqDaily,
			Priority:   "1.0",
			Alternates: alternates,
		}},
	}
	for _, lang := range languages {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        LanguageURL(siteURL, lang),
			ChangeFreq: ChangeFreqWeekly,
			Priority:   "0.8",
			Alternates: alternates,
		})
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// GenerateRobots is a convenience function to generate robots.txt content.
func GenerateRobots(siteURL string, disallowAll bool) string {
	return NewRobotsBuilder(RobotsConfig{
		SiteURL:     siteURL,
		DisallowAll: disallowAll,
	}).Build()
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"testing"
)

func TestRobotsBuilderBuildDefault(t *testing.T) {
	content := NewRobotsBuilder(RobotsConfig{SiteURL: "https://chronicle.example"}).Build()

	if !strings.HasPrefix(content, "User-agent: *\n") {
		t.Error("Build() should start with 'User-agent: *'")
	}
	for _, path := range DefaultDisallowPaths {
		if !strings.Contains(content, "Disallow: "+path+"\n") {
			t.Errorf("Build() should disallow %q", path)
		}
	}
	if !strings.Contains(content, "Allow: /\n") {
		t.Error("Build() should contain 'Allow: /'")
	}
	if !strings.Contains(content, "Sitemap: https://chronicle.example/sitemap.xml") {
		t.Error("Build() should contain sitemap reference")
	}
}

func TestRobotsBuilderBuildDisallowAll(t *testing.T) {
	content := NewRobotsBuilder(RobotsConfig{
		SiteURL:     "https://staging.chronicle.example",
		DisallowAll: true,
	}).Build()

	if !strings.Contains(content, "Disallow: /\n") {
		t.Error("Build() with DisallowAll should contain 'Disallow: /'")
	}
	if strings.Contains(content, "Allow: /") {
		t.Error("Build() with DisallowAll should not contain 'Allow: /'")
	}
	if strings.Contains(content, "Sitemap:") {
		t.Error("Build() with DisallowAll should not reference the sitemap")
	}
}

func TestRobotsBuilderBuildWithCustomDisallowPaths(t *testing.T) {
	content := NewRobotsBuilder(RobotsConfig{DisallowPaths: []string{"/preview"}}).Build()

	if !strings.Contains(content, "Disallow: /preview\n") {
		t.Error("Build() should include custom disallow path")
	}
	if !strings.Contains(content, "Disallow: /modals/\n") {
		t.Error("Build() should keep default disallow paths")
	}
	if len(DefaultDisallowPaths) != 7 {
		t.Errorf("custom paths must not modify DefaultDisallowPaths: %v", DefaultDisallowPaths)
	}
}

func TestRobotsBuilderBuildNoSiteURL(t *testing.T) {
	content := GenerateRobots("", false)
	if strings.Contains(content, "Sitemap:") {
		t.Error("Build() without SiteURL should not contain sitemap reference")
	}
}

func TestRobotsBuilderBuildSiteURLWithTrailingSlash(t *testing.T) {
	content := GenerateRobots("https://chronicle.example/", false)
	if !strings.Contains(content, "Sitemap: https://chronicle.example/sitemap.xml") {
		t.Errorf("trailing slash should be trimmed, got:\n%s", content)
	}
}

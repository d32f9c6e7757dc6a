// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package i18n

import (
	"encoding/json"
	"testing"
)

func TestInit(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if TranslationCount("en") == 0 {
		t.Error("Expected English translations to be loaded")
	}
	if TranslationCount("ru") == 0 {
		t.Error("Expected Russian translations to be loaded")
	}
}

func TestT(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		lang     string
		key      string
		args     []any
		expected string
	}{
		{"en", "auth.login", nil, "Login"},
		{"ru", "auth.login", nil, "Войти"},
		{"en", "auth.create_account", nil, "Create Account"},
		{"en", "community.heading", nil, "Reader Community"},
		{"en", "nav.greeting", []any{"amara_writes"}, "Hi, amara_writes"},
		{"ru", "hero.slide_of", []any{1, 3}, "Слайд 1 из 3"},
		// Fallback to English for unknown language
		{"de", "auth.login", nil, "Login"},
		// Return key if not found
		{"en", "nonexistent.key", nil, "nonexistent.key"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"_"+tt.key, func(t *testing.T) {
			result := T(tt.lang, tt.key, tt.args...)
			if result != tt.expected {
				t.Errorf("T(%q, %q, %v) = %q, want %q", tt.lang, tt.key, tt.args, result, tt.expected)
			}
		})
	}
}

func TestMatchLanguage(t *testing.T) {
	if err := Init(nil); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"ru", "ru"},
		{"en-US", "en"},
		{"ru-RU", "ru"},
		{"de", "en"},
		{"invalid", "en"},
		{"", "en"},
		{"en-US, ru;q=0.9, de;q=0.8", "en"},
		{"ru-RU, en;q=0.9", "ru"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchLanguage(tt.input); got != tt.expected {
				t.Errorf("MatchLanguage(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range []string{"en", "ru", "EN"} {
		if !IsSupported(lang) {
			t.Errorf("IsSupported(%q) = false", lang)
		}
	}
	if IsSupported("de") {
		t.Error("IsSupported(de) = true")
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != len(SupportedLanguages) {
		t.Fatalf("Languages() returned %d entries", len(langs))
	}
	if langs[0].Code != "en" || langs[0].Name != "English" {
		t.Errorf("Languages()[0] = %+v", langs[0])
	}
	if langs[1].Name != "русский" {
		t.Errorf("Languages()[1].Name = %q, want русский", langs[1].Name)
	}
}

// Every key must exist in every locale.
func TestLocalesHaveSameKeys(t *testing.T) {
	load := func(lang string) map[string]string {
		data, err := localesFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			t.Fatalf("reading %s: %v", lang, err)
		}
		var f MessageFile
		if err := json.Unmarshal(data, &f); err != nil {
			t.Fatalf("parsing %s: %v", lang, err)
		}
		return f.Messages
	}

	base := load(DefaultLanguage)
	for _, lang := range SupportedLanguages[1:] {
		other := load(lang)
		for key := range base {
			if _, ok := other[key]; !ok {
				t.Errorf("%s is missing %q", lang, key)
			}
		}
		for key := range other {
			if _, ok := base[key]; !ok {
				t.Errorf("%s has extra key %q", lang, key)
			}
		}
	}
}

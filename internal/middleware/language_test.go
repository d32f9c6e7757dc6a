// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/chronicle/internal/i18n"
)

func TestLanguageNegotiation(t *testing.T) {
	if err := i18n.Init(nil); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}

	tests := []struct {
		name       string
		target     string
		cookie     string
		accept     string
		want       string
		wantCookie bool
	}{
		{name: "default", target: "/", want: "en"},
		{name: "query switch", target: "/?lang=ru", want: "ru", wantCookie: true},
		{name: "query uppercase", target: "/?lang=RU", want: "ru", wantCookie: true},
		{name: "unsupported query ignored", target: "/?lang=xx", accept: "ru", want: "ru"},
		{name: "cookie", target: "/", cookie: "ru", want: "ru"},
		{name: "query beats cookie", target: "/?lang=en", cookie: "ru", want: "en", wantCookie: true},
		{name: "cookie beats header", target: "/", cookie: "en", accept: "ru-RU", want: "en"},
		{name: "bad cookie falls through", target: "/", cookie: "de", accept: "ru-RU,ru;q=0.9", want: "ru"},
		{name: "accept-language", target: "/", accept: "ru-RU,ru;q=0.9,en;q=0.8", want: "ru"},
		{name: "unmatched header", target: "/", accept: "ja-JP", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetLanguage(r)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got != tt.want {
				t.Errorf("GetLanguage() = %q, want %q", got, tt.want)
			}

			setCookie := rec.Header().Get("Set-Cookie")
			if tt.wantCookie && setCookie == "" {
				t.Error("expected language cookie to be set")
			}
			if !tt.wantCookie && setCookie != "" {
				t.Errorf("unexpected Set-Cookie: %s", setCookie)
			}
		})
	}
}

func TestGetLanguageOutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetLanguage(req); got != i18n.DefaultLanguage {
		t.Errorf("GetLanguage() = %q, want %q", got, i18n.DefaultLanguage)
	}
}

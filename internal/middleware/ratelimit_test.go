// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	handler := rl.Middleware()(okHandler())

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			var body APIError
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if body.Error.Code != "rate_limit_exceeded" {
				t.Errorf("error code = %q", body.Error.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		}
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	handler := rl.Middleware()(okHandler())

	for _, addr := range []string{"192.0.2.1:1", "192.0.2.2:1"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", addr, rec.Code)
		}
	}
	if rl.Tracked() != 2 {
		t.Errorf("Tracked() = %d, want 2", rl.Tracked())
	}
}

func TestLimiterCacheClearIfExceeds(t *testing.T) {
	lc := newLimiterCache[string](1, 1)
	for i := range 5 {
		lc.get(fmt.Sprintf("k%d", i))
	}

	if lc.clearIfExceeds(10) {
		t.Error("clearIfExceeds(10) should not clear 5 entries")
	}
	if !lc.clearIfExceeds(3) {
		t.Error("clearIfExceeds(3) should clear 5 entries")
	}
	if lc.len() != 0 {
		t.Errorf("len() = %d after clear", lc.len())
	}
}

func TestLimiterCacheReturnsSameLimiter(t *testing.T) {
	lc := newLimiterCache[int](1, 1)
	if lc.get(7) != lc.get(7) {
		t.Error("get should return the cached limiter")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "real ip", headers: map[string]string{"X-Real-IP": "203.0.113.5"}, remote: "10.0.0.1:80", want: "203.0.113.5"},
		{name: "forwarded first hop", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, remote: "10.0.0.1:80", want: "203.0.113.7"},
		{name: "remote addr port stripped", remote: "198.51.100.4:4321", want: "198.51.100.4"},
		{name: "ipv6 remote", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "remote without port", remote: "198.51.100.9", want: "198.51.100.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

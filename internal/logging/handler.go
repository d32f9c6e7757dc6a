// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that remembers recent warnings.
// Records at WARN and above are kept in a fixed-size ring so the health
// endpoint can report them without an external log store.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Event categories.
const (
	CategoryAudio   = "audio"
	CategoryAuth    = "auth"
	CategorySession = "session"
	CategoryCache   = "cache"
	CategoryConfig  = "config"
	CategorySystem  = "system"
)

// DefaultCapacity is the number of records kept by NewRecentHandler.
const DefaultCapacity = 100

// Entry is one remembered record.
type Entry struct {
	Time     time.Time         `json:"time"`
	Level    string            `json:"level"`
	Category string            `json:"category"`
	Message  string            `json:"message"`
	Attrs    map[string]string `json:"attrs,omitempty"`
}

type ring struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	total   uint64
}

func (r *ring) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	r.total++
}

// RecentHandler is a slog.Handler that wraps another handler and also keeps
// WARN and ERROR records in memory.
type RecentHandler struct {
	inner slog.Handler
	ring  *ring
	level slog.Level
	attrs []slog.Attr
}

// NewRecentHandler creates a RecentHandler keeping the last capacity records.
func NewRecentHandler(inner slog.Handler, capacity int) *RecentHandler {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RecentHandler{
		inner: inner,
		ring:  &ring{entries: make([]Entry, capacity)},
		level: slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *RecentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *RecentHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.ring.add(h.entry(r))
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *RecentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RecentHandler{
		inner: h.inner.WithAttrs(attrs),
		ring:  h.ring,
		level: h.level,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

// WithGroup implements slog.Handler.
func (h *RecentHandler) WithGroup(name string) slog.Handler {
	return &RecentHandler{
		inner: h.inner.WithGroup(name),
		ring:  h.ring,
		level: h.level,
		attrs: h.attrs,
	}
}

// Recent returns the remembered records, newest first.
func (h *RecentHandler) Recent() []Entry {
	r := h.ring
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.next
	if r.full {
		n = len(r.entries)
	}

	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.entries)) % len(r.entries)
		out = append(out, r.entries[idx])
	}
	return out
}

// Total returns how many records have been remembered since start,
// including ones already dropped from the ring.
func (h *RecentHandler) Total() uint64 {
	h.ring.mu.Lock()
	defer h.ring.mu.Unlock()
	return h.ring.total
}

func (h *RecentHandler) entry(r slog.Record) Entry {
	attrs := make(map[string]string, len(h.attrs)+r.NumAttrs())
	var category string

	collect := func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return true
		}
		attrs[a.Key] = a.Value.String()
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	if category == "" {
		category = inferCategory(r.Message)
	}
	if len(attrs) == 0 {
		attrs = nil
	}

	return Entry{
		Time:     r.Time,
		Level:    levelName(r.Level),
		Category: category,
		Message:  r.Message,
		Attrs:    attrs,
	}
}

// inferCategory guesses a category from the message text.
func inferCategory(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "audio") || strings.Contains(msg, "playback"):
		return CategoryAudio
	case strings.Contains(msg, "auth") || strings.Contains(msg, "login"):
		return CategoryAuth
	case strings.Contains(msg, "session"):
		return CategorySession
	case strings.Contains(msg, "cache") || strings.Contains(msg, "redis"):
		return CategoryCache
	case strings.Contains(msg, "config") || strings.Contains(msg, "setting"):
		return CategoryConfig
	default:
		return CategorySystem
	}
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warn"
	default:
		return "info"
	}
}

// ParseLevel maps a config value (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package audio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_GetIsPerListener(t *testing.T) {
	r := NewRegistry(funcPlayer(func(context.Context) error { return nil }), time.Second, time.Hour)

	a := r.Get("a")
	assert.Same(t, a, r.Get("a"))
	assert.NotSame(t, a, r.Get("b"))
	assert.Equal(t, 2, r.Len())

	a.Click()
	waitSettled(t, a)
	assert.Equal(t, Playing, r.Peek("a"))
	assert.Equal(t, Paused, r.Peek("b"))
	assert.Equal(t, Paused, r.Peek("unknown"))
	assert.Equal(t, 2, r.Len(), "Peek must not create entries")
}

func TestRegistry_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(funcPlayer(func(context.Context) error { return nil }), time.Second, 10*time.Minute)
	r.now = func() time.Time { return now }

	r.Get("old")
	now = now.Add(8 * time.Minute)
	r.Get("fresh")
	now = now.Add(5 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 0, r.Sweep())
}

func TestRegistry_PeekKeepsListenerAlive(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(funcPlayer(func(context.Context) error { return nil }), time.Second, 10*time.Minute)
	r.now = func() time.Time { return now }

	tg := r.Get("listening")
	tg.Click()
	waitSettled(t, tg)

	// Only page reloads from here on.
	for i := 0; i < 3; i++ {
		now = now.Add(8 * time.Minute)
		assert.Equal(t, Playing, r.Peek("listening"))
		assert.Equal(t, 0, r.Sweep())
	}

	now = now.Add(11 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, Paused, r.Peek("listening"))
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package audio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedPlayer blocks Play until release receives the result.
type gatedPlayer struct {
	release chan error
}

func newGatedPlayer() *gatedPlayer {
	return &gatedPlayer{release: make(chan error, 1)}
}

func (p *gatedPlayer) Play(ctx context.Context) error {
	select {
	case err := <-p.release:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// waitSettled waits until no start is in flight.
func waitSettled(t *testing.T, tg *Toggle) {
	t.Helper()
	require.Eventually(t, tg.Settled, time.Second, 5*time.Millisecond)
}

type funcPlayer func(ctx context.Context) error

func (f funcPlayer) Play(ctx context.Context) error { return f(ctx) }

func TestState_Icon(t *testing.T) {
	assert.Equal(t, "volume-off", Paused.Icon())
	assert.Equal(t, "volume-on", Starting.Icon())
	assert.Equal(t, "volume-on", Playing.Icon())
	assert.Equal(t, "starting", Starting.String())
}

func TestToggle_ClickFlipsSynchronously(t *testing.T) {
	p := newGatedPlayer()
	tg := NewToggle(p, time.Second)

	assert.Equal(t, Paused, tg.State())

	got := tg.Click()
	assert.Equal(t, Starting, got)
	assert.True(t, got.On(), "icon must flip before playback resolves")

	p.release <- nil
	require.Eventually(t, func() bool { return tg.State() == Playing }, time.Second, 5*time.Millisecond)

	assert.Equal(t, Paused, tg.Click())
	waitSettled(t, tg)
}

func TestToggle_RejectionRevertsToPaused(t *testing.T) {
	tg := NewToggle(funcPlayer(func(context.Context) error {
		return errors.New("autoplay blocked")
	}), time.Second)

	assert.True(t, tg.Click().On())
	waitSettled(t, tg)
	assert.Equal(t, Paused, tg.State())
}

func TestToggle_PauseWhileStartingDiscardsResult(t *testing.T) {
	p := newGatedPlayer()
	tg := NewToggle(p, time.Second)

	require.Equal(t, Starting, tg.Click())
	require.Equal(t, Paused, tg.Click())

	p.release <- nil
	waitSettled(t, tg)
	assert.Equal(t, Paused, tg.State(), "stale start must not resume playback")
}

func TestToggle_EachClickFlipsOnce(t *testing.T) {
	tg := NewToggle(funcPlayer(func(context.Context) error { return nil }), time.Second)

	prev := tg.State().On()
	for i := 0; i < 6; i++ {
		got := tg.Click().On()
		assert.NotEqual(t, prev, got, "click %d did not flip the icon", i)
		prev = got
		waitSettled(t, tg)
	}
}

func TestToggle_StartTimeout(t *testing.T) {
	tg := NewToggle(newGatedPlayer(), 20*time.Millisecond)

	tg.Click()
	waitSettled(t, tg)
	assert.Equal(t, Paused, tg.State())
}

func TestToggle_SettledWhileClicking(t *testing.T) {
	tg := NewToggle(funcPlayer(func(context.Context) error { return nil }), time.Second)
	assert.True(t, tg.Settled())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			tg.Click()
		}
	}()
	for i := 0; i < 50; i++ {
		_ = tg.Settled()
	}
	<-done

	waitSettled(t, tg)
	assert.Equal(t, Paused, tg.State(), "an even number of clicks ends paused")
}

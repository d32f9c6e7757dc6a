// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package audio implements the background soundtrack toggle.
//
// A click flips the displayed state synchronously. Starting playback is
// asynchronous: the toggle sits in Starting until the player resolves, then
// moves to Playing, or back to Paused if playback was rejected.
package audio

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is the toggle's playback state.
type State int

// Toggle states
const (
	Paused State = iota
	Starting
	Playing
)

// String returns the state name used in JSON responses.
func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Playing:
		return "playing"
	default:
		return "paused"
	}
}

// On reports whether the "sound on" icon is shown.
func (s State) On() bool {
	return s != Paused
}

// Icon returns the icon name for the state.
func (s State) Icon() string {
	if s.On() {
		return "volume-on"
	}
	return "volume-off"
}

// Player starts playback of the soundtrack.
type Player interface {
	Play(ctx context.Context) error
}

// DefaultStartTimeout bounds a single Play call.
const DefaultStartTimeout = 5 * time.Second

// Toggle is one listener's play/pause control.
type Toggle struct {
	mu      sync.Mutex
	state   State
	gen     uint64
	player  Player
	timeout time.Duration
	pending int // starts still waiting on the player
}

// NewToggle creates a paused toggle bound to player.
func NewToggle(player Player, startTimeout time.Duration) *Toggle {
	if startTimeout <= 0 {
		startTimeout = DefaultStartTimeout
	}
	return &Toggle{player: player, timeout: startTimeout}
}

// State returns the current state.
func (t *Toggle) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Click flips the toggle and returns the new state. From Paused it moves to
// Starting and launches playback in the background; otherwise it pauses and
// discards any in-flight start.
func (t *Toggle) Click() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.state != Paused {
		t.state = Paused
		return t.state
	}

	t.state = Starting
	gen := t.gen
	t.pending++
	go t.start(gen)
	return t.state
}

// Settled reports whether every launched start has finished, stale ones
// included. Safe to call concurrently with Click.
func (t *Toggle) Settled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending == 0
}

func (t *Toggle) start(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	err := t.player.Play(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending--
	if t.gen != gen {
		// paused (or paused and restarted) while starting
		return
	}
	if err != nil {
		slog.Warn("audio playback rejected", "error", err)
		t.state = Paused
		return
	}
	t.state = Playing
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package audio

import (
	"sync"
	"time"
)

type entry struct {
	toggle   *Toggle
	lastSeen time.Time
}

// Registry holds one Toggle per listener.
type Registry struct {
	mu           sync.Mutex
	entries      map[string]*entry
	player       Player
	startTimeout time.Duration
	idleTTL      time.Duration
	now          func() time.Time
}

// NewRegistry creates a registry whose toggles share player. Entries not
// touched for idleTTL are removed by Sweep.
func NewRegistry(player Player, startTimeout, idleTTL time.Duration) *Registry {
	return &Registry{
		entries:      make(map[string]*entry),
		player:       player,
		startTimeout: startTimeout,
		idleTTL:      idleTTL,
		now:          time.Now,
	}
}

// Get returns the listener's toggle, creating a paused one if needed.
func (r *Registry) Get(listenerID string) *Toggle {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[listenerID]
	if !ok {
		e = &entry{toggle: NewToggle(r.player, r.startTimeout)}
		r.entries[listenerID] = e
	}
	e.lastSeen = r.now()
	return e.toggle
}

// Peek returns the listener's current state without creating a toggle. An
// existing toggle counts as seen.
func (r *Registry) Peek(listenerID string) State {
	r.mu.Lock()
	e, ok := r.entries[listenerID]
	if ok {
		e.lastSeen = r.now()
	}
	r.mu.Unlock()

	if !ok {
		return Paused
	}
	return e.toggle.State()
}

// Sweep removes idle toggles and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTTL)
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked listeners.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

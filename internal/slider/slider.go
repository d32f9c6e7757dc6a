// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package slider holds the hero slider's index arithmetic.
package slider

import (
	"strconv"
	"sync/atomic"
)

// Wrap maps any index into [0, n). It returns 0 when n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the slide after i.
func Next(i, n int) int { return Wrap(i+1, n) }

// Prev returns the slide before i.
func Prev(i, n int) int { return Wrap(i-1, n) }

// ParseIndex reads a ?slide= value. Empty or malformed input yields fallback.
func ParseIndex(raw string, n, fallback int) int {
	if raw == "" {
		return Wrap(fallback, n)
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return Wrap(fallback, n)
	}
	return Wrap(i, n)
}

// View is what the template needs to draw the slider.
type View struct {
	Current int
	Prev    int
	Next    int
	Count   int
}

// NewView computes the view for slide i of n.
func NewView(i, n int) View {
	i = Wrap(i, n)
	return View{Current: i, Prev: Prev(i, n), Next: Next(i, n), Count: n}
}

// Rotator tracks the featured slide shown when a visitor has not chosen one.
type Rotator struct {
	count   int
	current atomic.Int64
}

// NewRotator creates a rotator over count slides, starting at 0.
func NewRotator(count int) *Rotator {
	return &Rotator{count: count}
}

// Current returns the featured slide.
func (r *Rotator) Current() int {
	return int(r.current.Load())
}

// Advance moves to the next slide and returns it.
func (r *Rotator) Advance() int {
	for {
		cur := r.current.Load()
		next := int64(Next(int(cur), r.count))
		if r.current.CompareAndSwap(cur, next) {
			return int(next)
		}
	}
}

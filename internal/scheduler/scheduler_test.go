// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"log/slog"
	"testing"
)

func TestNew(t *testing.T) {
	logger := slog.Default()

	s := New(logger)
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cron == nil {
		t.Error("New() scheduler has nil cron")
	}
	if s.logger != logger {
		t.Error("New() scheduler has wrong logger")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(slog.Default())
	if err := s.Add("noop", "does nothing", "@every 1h", func() {}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	s.Start()
	s.Stop()
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"* * * * *", false},
		{"*/5 * * * *", false},
		{"@every 1m", false},
		{"@hourly", false},
		{"", true},
		{"every minute", true},
		{"* * * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			err := ValidateSchedule(tt.schedule)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSchedule(%q) error = %v, wantErr %v", tt.schedule, err, tt.wantErr)
			}
		})
	}
}

func TestScheduler_Add(t *testing.T) {
	s := New(slog.Default())

	if err := s.Add("rotate", "rotate slides", "@every 1m", func() {}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("rotate", "again", "@every 1m", func() {}); err == nil {
		t.Error("expected error for duplicate job name")
	}
	if err := s.Add("bad", "bad schedule", "nope", func() {}); err == nil {
		t.Error("expected error for invalid schedule")
	}

	jobs := s.List()
	if len(jobs) != 1 {
		t.Fatalf("List() returned %d jobs, want 1", len(jobs))
	}
	if jobs[0].Name != "rotate" || jobs[0].Schedule != "@every 1m" {
		t.Errorf("List()[0] = %+v", jobs[0])
	}
}

func TestScheduler_ListSorted(t *testing.T) {
	s := New(slog.Default())
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Add(name, "", "@hourly", func() {}); err != nil {
			t.Fatalf("Add(%s) error = %v", name, err)
		}
	}

	jobs := s.List()
	if jobs[0].Name != "alpha" || jobs[1].Name != "mid" || jobs[2].Name != "zeta" {
		t.Errorf("List() not sorted: %v", jobs)
	}
}

func TestScheduler_TriggerNow(t *testing.T) {
	s := New(slog.Default())

	calls := 0
	if err := s.Add("count", "", "@hourly", func() { calls++ }); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.TriggerNow("count"); err != nil {
		t.Fatalf("TriggerNow() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	if err := s.TriggerNow("missing"); err == nil {
		t.Error("expected error for unknown job")
	}
}

func TestScheduler_PanicRecovered(t *testing.T) {
	s := New(slog.Default())
	if err := s.Add("boom", "", "@hourly", func() { panic("boom") }); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.TriggerNow("boom"); err != nil {
		t.Fatalf("TriggerNow() error = %v", err)
	}
}

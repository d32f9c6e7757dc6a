// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	// Create temp file for test database
	f, err := os.CreateTemp("", "chronicle-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}

	return db, cleanup
}

func TestMigrate_CreatesSessionsTable(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'sessions'`).Scan(&name)
	if err != nil {
		t.Fatalf("sessions table missing: %v", err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestSessionsTable_ReadWrite(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	expiry := float64(time.Now().Add(time.Hour).Unix())
	if _, err := db.Exec(`INSERT INTO sessions (token, data, expiry) VALUES (?, ?, ?)`, "tok", []byte("data"), expiry); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var data []byte
	if err := db.QueryRow(`SELECT data FROM sessions WHERE token = ?`, "tok").Scan(&data); err != nil {
		t.Fatalf("select: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("data = %q, want %q", data, "data")
	}
}

func TestPing(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	if err := Ping(context.Background(), db); err != nil {
		t.Errorf("Ping: %v", err)
	}

	_ = db.Close()
	if err := Ping(context.Background(), db); err == nil {
		t.Error("Ping on closed db should fail")
	}
}

func TestDefaultDBConfig(t *testing.T) {
	cfg := DefaultDBConfig()
	if cfg.MaxOpenConns <= 0 || cfg.MaxIdleConns <= 0 {
		t.Errorf("DefaultDBConfig() = %+v", cfg)
	}
	if cfg.MaxIdleConns > cfg.MaxOpenConns {
		t.Error("MaxIdleConns should not exceed MaxOpenConns")
	}
}

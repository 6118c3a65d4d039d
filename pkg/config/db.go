package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// MustInitDB opens the local SQLite database holding the persisted state
// slots and creates the schema if it is missing.
func MustInitDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single interactive session at a time; one connection keeps the
	// read-modify-write slot updates single-writer.
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema := `
        CREATE TABLE IF NOT EXISTS slots (
            key   TEXT PRIMARY KEY,
            value TEXT NOT NULL
        )
    `
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Persisted slot keys. Tasks and teams live in canonical collections;
// per-user session slots are suffixed with ":<user_id>".
const (
	SlotSharedTasks  = "shared-tasks"
	SlotAllTeams     = "all-teams"
	SlotAuthState    = "auth-state"
	SlotPaymentState = "payment-state"
)

// SlotStore persists named JSON slots in the local SQLite database.
type SlotStore struct {
	db *sql.DB
}

func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Get unmarshals the slot value into dest. It reports false and leaves
// dest untouched when the slot has never been written.
func (s *SlotStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	query := `SELECT value FROM slots WHERE key = ?`
	var raw string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to decode slot %s: %w", key, err)
	}
	return true, nil
}

func (s *SlotStore) Put(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}

	query := `
        INSERT INTO slots (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value
    `
	if _, err := s.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func userSlot(base, userID string) string {
	return base + ":" + userID
}

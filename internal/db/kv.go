package db

import (
	"context"
	"database/sql"
	"time"
)

// GetValue returns the value stored under key.
// The bool is false when the key has never been set or was deleted.
func GetValue(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetValue stores value under key, replacing any previous value.
func SetValue(ctx context.Context, db *sql.DB, key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	_, err := db.ExecContext(ctx, query, key, value, time.Now().Unix())
	return err
}

// DeleteValue removes key. Deleting a missing key is not an error.
func DeleteValue(ctx context.Context, db *sql.DB, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// KV adapts the kv table to a string-valued key-value store.
type KV struct {
	db *sql.DB
}

// NewKV wraps an initialized database.
func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the value for key and whether it exists.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	return GetValue(ctx, k.db, key)
}

// Set stores value under key.
func (k *KV) Set(ctx context.Context, key, value string) error {
	return SetValue(ctx, k.db, key, value)
}

// Delete removes key.
func (k *KV) Delete(ctx context.Context, key string) error {
	return DeleteValue(ctx, k.db, key)
}

// Package store provides record-store backends for intakebot.
//
// This file implements an SQLite-backed store.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/admbot/intakebot/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the default permissions for database directories.
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

// SQLiteStore persists records in a local SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store with the given DSN.
// The DSN should be a file path to the SQLite database file.
// If the directory doesn't exist, it will be created.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}

	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLite migrations applied successfully")

	return &SQLiteStore{db: db}, nil
}

// Append persists one completed flow record as an ordered value list.
func (s *SQLiteStore) Append(collection models.Collection, values []string) error {
	payload, err := json.Marshal(values)
	if err != nil {
		slog.Error("SQLiteStore Append marshal failed", "error", err, "collection", collection)
		return fmt.Errorf("failed to marshal record values: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO records (collection, field_values) VALUES (?, ?)`, string(collection), string(payload))
	if err != nil {
		slog.Error("SQLiteStore Append failed", "error", err, "collection", collection)
		return fmt.Errorf("failed to insert record into %s: %w", collection, err)
	}
	slog.Debug("SQLiteStore Append succeeded", "collection", collection, "value_count", len(values))
	return nil
}

// Count returns the number of records in a collection.
func (s *SQLiteStore) Count(collection models.Collection) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records WHERE collection = ?`, string(collection)).Scan(&count)
	if err != nil {
		slog.Error("SQLiteStore Count failed", "error", err, "collection", collection)
		return 0, fmt.Errorf("failed to count records in %s: %w", collection, err)
	}
	return count, nil
}

// FindDailyMessage returns the broadcast row for the given date, or nil.
func (s *SQLiteStore) FindDailyMessage(date string) (*models.DailyMessage, error) {
	var msg models.DailyMessage
	err := s.db.QueryRow(`SELECT date, scripture, message FROM daily_messages WHERE date = ?`, date).
		Scan(&msg.Date, &msg.Scripture, &msg.Message)
	if err == sql.ErrNoRows {
		slog.Debug("SQLiteStore FindDailyMessage not found", "date", date)
		return nil, nil
	}
	if err != nil {
		slog.Error("SQLiteStore FindDailyMessage failed", "error", err, "date", date)
		return nil, fmt.Errorf("failed to query daily message for %s: %w", date, err)
	}
	return &msg, nil
}

// SeedDailyMessage inserts or replaces a daily broadcast row.
func (s *SQLiteStore) SeedDailyMessage(msg models.DailyMessage) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO daily_messages (date, scripture, message) VALUES (?, ?, ?)`,
		msg.Date, msg.Scripture, msg.Message)
	if err != nil {
		slog.Error("SQLiteStore SeedDailyMessage failed", "error", err, "date", msg.Date)
		return fmt.Errorf("failed to upsert daily message for %s: %w", msg.Date, err)
	}
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close SQLite database", "error", err)
	}
	return err
}

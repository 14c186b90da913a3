// Package store provides record-store backends for intakebot.
//
// This file implements a PostgreSQL-backed store.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "embed"

	"github.com/admbot/intakebot/internal/models"
	_ "github.com/lib/pq"
)

// Database connection pool configuration constants
const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database
	DefaultMaxOpenConns = 25
	// DefaultMaxIdleConns is the default maximum number of idle connections in the pool
	DefaultMaxIdleConns = 25
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused
	DefaultConnMaxLifetime = 5 * time.Minute
)

//go:embed migrations_postgres.sql
var postgresMigrations string

// PostgresStore persists records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store based on provided options.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewPostgresStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}

	db.SetMaxOpenConns(DefaultMaxOpenConns)
	db.SetMaxIdleConns(DefaultMaxIdleConns)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		return nil, err
	}

	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("Postgres migrations applied successfully")

	return &PostgresStore{db: db}, nil
}

// Append persists one completed flow record as an ordered value list.
func (s *PostgresStore) Append(collection models.Collection, values []string) error {
	payload, err := json.Marshal(values)
	if err != nil {
		slog.Error("PostgresStore Append marshal failed", "error", err, "collection", collection)
		return fmt.Errorf("failed to marshal record values: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO records (collection, field_values) VALUES ($1, $2)`, string(collection), string(payload))
	if err != nil {
		slog.Error("PostgresStore Append failed", "error", err, "collection", collection)
		return fmt.Errorf("failed to insert record into %s: %w", collection, err)
	}
	slog.Debug("PostgresStore Append succeeded", "collection", collection, "value_count", len(values))
	return nil
}

// Count returns the number of records in a collection.
func (s *PostgresStore) Count(collection models.Collection) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records WHERE collection = $1`, string(collection)).Scan(&count)
	if err != nil {
		slog.Error("PostgresStore Count failed", "error", err, "collection", collection)
		return 0, fmt.Errorf("failed to count records in %s: %w", collection, err)
	}
	return count, nil
}

// FindDailyMessage returns the broadcast row for the given date, or nil.
func (s *PostgresStore) FindDailyMessage(date string) (*models.DailyMessage, error) {
	var msg models.DailyMessage
	err := s.db.QueryRow(`SELECT date, scripture, message FROM daily_messages WHERE date = $1`, date).
		Scan(&msg.Date, &msg.Scripture, &msg.Message)
	if err == sql.ErrNoRows {
		slog.Debug("PostgresStore FindDailyMessage not found", "date", date)
		return nil, nil
	}
	if err != nil {
		slog.Error("PostgresStore FindDailyMessage failed", "error", err, "date", date)
		return nil, fmt.Errorf("failed to query daily message for %s: %w", date, err)
	}
	return &msg, nil
}

// SeedDailyMessage inserts or replaces a daily broadcast row.
func (s *PostgresStore) SeedDailyMessage(msg models.DailyMessage) error {
	_, err := s.db.Exec(`INSERT INTO daily_messages (date, scripture, message) VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET scripture = EXCLUDED.scripture, message = EXCLUDED.message`,
		msg.Date, msg.Scripture, msg.Message)
	if err != nil {
		slog.Error("PostgresStore SeedDailyMessage failed", "error", err, "date", msg.Date)
		return fmt.Errorf("failed to upsert daily message for %s: %w", msg.Date, err)
	}
	return nil
}

// Close closes the Postgres database connection.
func (s *PostgresStore) Close() error {
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close Postgres database", "error", err)
	}
	return err
}

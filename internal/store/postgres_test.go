package store

import (
	"os"
	"testing"

	"github.com/admbot/intakebot/internal/models"
)

// newTestPostgresStore connects to the database named by
// INTAKEBOT_TEST_POSTGRES_DSN, skipping the test when the variable is unset.
func newTestPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("INTAKEBOT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("INTAKEBOT_TEST_POSTGRES_DSN not set, skipping PostgreSQL integration test")
	}
	s, err := NewPostgresStore(WithPostgresDSN(dsn))
	if err != nil {
		t.Fatalf("failed to create PostgreSQL store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPostgresRequiresDSN(t *testing.T) {
	if _, err := NewPostgresStore(); err == nil {
		t.Error("expected error when DSN is not set")
	}
}

func TestPostgresAppendAndCount(t *testing.T) {
	s := newTestPostgresStore(t)

	before, err := s.Count(models.CollectionPrayers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Append(models.CollectionPrayers, []string{"+15551230000", "John Doe", "Please pray for my family", "2025-03-14 10:30:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := s.Count(models.CollectionPrayers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after != before+1 {
		t.Errorf("expected count to grow by one, got %d -> %d", before, after)
	}
}

func TestPostgresDailyMessageUpsert(t *testing.T) {
	s := newTestPostgresStore(t)

	if err := s.SeedDailyMessage(models.DailyMessage{Date: "2025-03-14", Scripture: "Psalm 50:5", Message: "Good morning"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SeedDailyMessage(models.DailyMessage{Date: "2025-03-14", Scripture: "Psalm 50:5", Message: "Updated"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, err := s.FindDailyMessage("2025-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg == nil || msg.Message != "Updated" {
		t.Errorf("expected upserted message, got %+v", msg)
	}
}

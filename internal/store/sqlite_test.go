package store

import (
	"path/filepath"
	"testing"

	"github.com/admbot/intakebot/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "intakebot_test.db")
	s, err := NewSQLiteStore(WithSQLiteDSN(dsn))
	if err != nil {
		t.Fatalf("failed to create SQLite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRequiresDSN(t *testing.T) {
	if _, err := NewSQLiteStore(); err == nil {
		t.Error("expected error when DSN is not set")
	}
}

func TestSQLiteAppendAndCount(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Append(models.CollectionPartners, []string{"+15551230000", "Tithe (Malachi 3:10)", "John Doe", "+233592289243", "Ghana", "150.00", "proof-ref-1", "2025-03-14 10:30:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Append(models.CollectionPartners, []string{"+15551230001", "Offering (2 Corinthians 9:7)", "Jane Doe", "+27111222333", "South Africa", "50.00", "proof-ref-2", "2025-03-14 11:00:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := s.Count(models.CollectionPartners)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 partner records, got %d", count)
	}

	count, err = s.Count(models.CollectionMembers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty members collection, got %d", count)
	}
}

func TestSQLiteDailyMessageUpsert(t *testing.T) {
	s := newTestSQLiteStore(t)

	msg, err := s.FindDailyMessage("2025-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != nil {
		t.Errorf("expected nil for missing date, got %+v", msg)
	}

	if err := s.SeedDailyMessage(models.DailyMessage{Date: "2025-03-14", Scripture: "Psalm 50:5", Message: "Good morning"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SeedDailyMessage(models.DailyMessage{Date: "2025-03-14", Scripture: "Psalm 50:5", Message: "Updated"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, err = s.FindDailyMessage("2025-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg == nil || msg.Message != "Updated" {
		t.Errorf("expected upserted message, got %+v", msg)
	}
}

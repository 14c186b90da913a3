// Package store provides record-store backends for intakebot.
//
// Completed flow records are append-only; the store also serves the daily
// broadcast lookup and per-collection counts for the admin dashboard.
package store

import (
	"sync"

	"github.com/admbot/intakebot/internal/models"
)

// Store is the durable record store consumed by the dialog engine.
type Store interface {
	// Append persists one completed flow record as an ordered value list.
	Append(collection models.Collection, values []string) error

	// Count returns the number of records in a collection.
	Count(collection models.Collection) (int, error)

	// FindDailyMessage returns the broadcast row for the given YYYY-MM-DD
	// date, or nil if none exists.
	FindDailyMessage(date string) (*models.DailyMessage, error)

	// Close releases any underlying resources.
	Close() error
}

// InMemoryStore keeps records in process memory. Used for tests and for
// running without a database DSN.
type InMemoryStore struct {
	mu      sync.Mutex
	records map[models.Collection][][]string
	daily   map[string]models.DailyMessage
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[models.Collection][][]string),
		daily:   make(map[string]models.DailyMessage),
	}
}

// Append persists one record.
func (s *InMemoryStore) Append(collection models.Collection, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]string, len(values))
	copy(copied, values)
	s.records[collection] = append(s.records[collection], copied)
	return nil
}

// Count returns the number of records in a collection.
func (s *InMemoryStore) Count(collection models.Collection) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[collection]), nil
}

// FindDailyMessage returns the broadcast row for the given date, or nil.
func (s *InMemoryStore) FindDailyMessage(date string) (*models.DailyMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg, ok := s.daily[date]; ok {
		return &msg, nil
	}
	return nil, nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryStore) Close() error {
	return nil
}

// Records returns a copy of a collection's records, for tests.
func (s *InMemoryStore) Records(collection models.Collection) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.records[collection]))
	copy(out, s.records[collection])
	return out
}

// SeedDailyMessage inserts or replaces a daily broadcast row, for tests and
// operator tooling.
func (s *InMemoryStore) SeedDailyMessage(msg models.DailyMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.daily[msg.Date] = msg
}

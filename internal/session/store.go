// Package session provides the in-process store of per-participant dialog
// sessions.
//
// Sessions are created lazily on first inbound event and persist for the
// life of the process. The store guarantees atomic get-or-create per
// participant; mutation of one session's fields is serialized by the dialog
// engine, not here.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/admbot/intakebot/internal/models"
)

// Store is a keyed store of per-participant session state.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*models.Session)}
}

// GetOrCreate returns the session for the given participant, creating one in
// the language-selection entry state if none exists yet.
func (s *Store) GetOrCreate(participantID string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[participantID]; ok {
		return sess
	}

	now := time.Now()
	sess := &models.Session{
		ParticipantID: participantID,
		State:         models.StateLanguageSelect,
		Fields:        make(map[models.DataKey]string),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.sessions[participantID] = sess
	slog.Debug("session created", "participantID", participantID)
	return sess
}

// Reset clears the session's collected fields, active flow and category, and
// returns its state to the menu. The selected language survives a reset.
// Resetting is idempotent.
func (s *Store) Reset(participantID string) {
	sess := s.GetOrCreate(participantID)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.Fields = make(map[models.DataKey]string)
	sess.ActiveFlow = ""
	sess.ActiveCategory = ""
	sess.State = models.StateMenu
	sess.UpdatedAt = time.Now()
	slog.Debug("session reset", "participantID", participantID)
}

// SetLanguage records the participant's selected language.
func (s *Store) SetLanguage(participantID string, lang models.Language) {
	sess := s.GetOrCreate(participantID)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.Language = lang
	sess.UpdatedAt = time.Now()
	slog.Debug("session language set", "participantID", participantID, "language", lang)
}

// Participants returns the IDs of every known participant, for broadcasts.
func (s *Store) Participants() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of sessions currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

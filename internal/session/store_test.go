package session

import (
	"testing"

	"github.com/admbot/intakebot/internal/models"
)

func TestGetOrCreateStartsInLanguageSelect(t *testing.T) {
	s := NewStore()

	sess := s.GetOrCreate("+15551230000")
	if sess.State != models.StateLanguageSelect {
		t.Errorf("expected new session in language select, got %s", sess.State)
	}
	if sess.Fields == nil {
		t.Fatal("expected initialized fields map")
	}

	again := s.GetOrCreate("+15551230000")
	if again != sess {
		t.Error("expected same session instance on second lookup")
	}
	if s.Len() != 1 {
		t.Errorf("expected one session, got %d", s.Len())
	}
}

func TestResetClearsProgressButKeepsLanguage(t *testing.T) {
	s := NewStore()
	sess := s.GetOrCreate("+15551230000")
	s.SetLanguage("+15551230000", models.LanguageFrench)
	sess.State = models.StateMemberPhone
	sess.ActiveFlow = models.FlowTypeMember
	sess.Fields[models.DataKeyName] = "John Doe"

	s.Reset("+15551230000")

	if sess.State != models.StateMenu {
		t.Errorf("expected menu state after reset, got %s", sess.State)
	}
	if sess.ActiveFlow != "" {
		t.Errorf("expected active flow cleared, got %s", sess.ActiveFlow)
	}
	if len(sess.Fields) != 0 {
		t.Errorf("expected fields cleared, got %v", sess.Fields)
	}
	if sess.Language != models.LanguageFrench {
		t.Errorf("expected language to survive reset, got %s", sess.Language)
	}

	// Reset is idempotent.
	s.Reset("+15551230000")
	if sess.State != models.StateMenu {
		t.Errorf("expected menu state after second reset, got %s", sess.State)
	}
}

func TestResetOfUnknownParticipantCreatesMenuSession(t *testing.T) {
	s := NewStore()
	s.Reset("+15559990000")
	sess := s.GetOrCreate("+15559990000")
	if sess.State != models.StateMenu {
		t.Errorf("expected menu state, got %s", sess.State)
	}
}

func TestLangFallback(t *testing.T) {
	s := NewStore()
	sess := s.GetOrCreate("+15551230000")
	if sess.Lang() != models.DefaultLanguage {
		t.Errorf("expected default language before selection, got %s", sess.Lang())
	}
	s.SetLanguage("+15551230000", models.LanguagePortuguese)
	if sess.Lang() != models.LanguagePortuguese {
		t.Errorf("expected selected language, got %s", sess.Lang())
	}
}

func TestParticipants(t *testing.T) {
	s := NewStore()
	s.GetOrCreate("+15551230000")
	s.GetOrCreate("+15551230001")

	ids := s.Participants()
	if len(ids) != 2 {
		t.Fatalf("expected two participants, got %d", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen["+15551230000"] || !seen["+15551230001"] {
		t.Errorf("unexpected participant set: %v", ids)
	}
}

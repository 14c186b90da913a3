package scheduler

import "testing"

func TestAddJobValidatesExpression(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	if err := s.AddJob("0 8 * * *", func() {}); err != nil {
		t.Errorf("unexpected error for daily expression: %v", err)
	}
	if err := s.AddJob("not a cron expression", func() {}); err == nil {
		t.Error("expected error for malformed expression")
	}
	if err := s.AddJob("* * * * * *", func() {}); err == nil {
		t.Error("expected error for six-field expression")
	}
}

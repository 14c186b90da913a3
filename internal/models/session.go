// Package models defines session state structures for intakebot dialogs.
package models

import "time"

// Session is the per-participant record of current dialog position and
// accumulated field values. It lives for the duration of one or more
// sequential flows and is reset to the menu after every commit, restart or
// validation-exhaustion fallback.
type Session struct {
	ParticipantID  string             `json:"participant_id"`
	Language       Language           `json:"language,omitempty"`
	State          StateType          `json:"state"`
	Fields         map[DataKey]string `json:"fields,omitempty"`
	ActiveFlow     FlowType           `json:"active_flow,omitempty"`
	ActiveCategory string             `json:"active_category,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// Lang returns the session's language, falling back to the default when the
// participant has not selected one yet.
func (s *Session) Lang() Language {
	if IsValidLanguage(s.Language) {
		return s.Language
	}
	return DefaultLanguage
}

// DailyMessage is one row of the daily broadcast collection.
type DailyMessage struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Scripture string `json:"scripture,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Package models defines the core data structures for intakebot.
//
// It includes the tagged inbound event variants, session state, and the
// validation error taxonomy shared across modules.
package models

import "errors"

// EventKind defines the closed set of inbound event variants a transport
// may deliver. Transports parse raw payloads into one of these before the
// event reaches the dialog engine.
type EventKind string

const (
	// EventMenuSelection carries the payload of a tapped or numbered menu option.
	EventMenuSelection EventKind = "menu_selection"
	// EventText carries free-form text content.
	EventText EventKind = "text"
	// EventMedia carries an image or document reference.
	EventMedia EventKind = "media"
)

// IsValidEventKind checks if the given event kind is supported.
func IsValidEventKind(k EventKind) bool {
	switch k {
	case EventMenuSelection, EventText, EventMedia:
		return true
	default:
		return false
	}
}

// MediaKind distinguishes the supported media reference types.
type MediaKind string

const (
	// MediaKindImage is a photo attachment.
	MediaKindImage MediaKind = "image"
	// MediaKindDocument is a generic document attachment.
	MediaKindDocument MediaKind = "document"
)

// MediaRef is an opaque reference to an uploaded attachment. The transport
// owns resolution of the reference; the engine only stores it.
type MediaRef struct {
	Kind MediaKind `json:"kind"`
	ID   string    `json:"id"`
}

// Event represents one inbound participant event from the messaging transport.
type Event struct {
	From    string    `json:"from"`              // canonical participant identifier
	Kind    EventKind `json:"kind"`              // which variant the payload fields follow
	Payload string    `json:"payload,omitempty"` // menu option payload for EventMenuSelection
	Body    string    `json:"body,omitempty"`    // text content for EventText
	Media   *MediaRef `json:"media,omitempty"`   // attachment reference for EventMedia
	Time    int64     `json:"time"`
}

// MenuOption represents one selectable option in an outbound menu message.
type MenuOption struct {
	Label   string `json:"label"`   // localized text shown to the participant
	Payload string `json:"payload"` // stable payload returned on selection
}

// Validation error taxonomy. These are recovered locally by the dialog
// engine (re-prompt, state unchanged) and never surfaced as system failures.
var (
	ErrEmptyInput     = errors.New("input cannot be empty")
	ErrBadPhoneFormat = errors.New("phone number must start with '+' followed by digits only")
	ErrNotNumeric     = errors.New("amount is not a decimal number")
	ErrNotPositive    = errors.New("amount must be greater than zero")
	ErrMissingMedia   = errors.New("event carries no image or document reference")
)

// Language is a supported localization code.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
	LanguagePortuguese Language = "pt"

	// DefaultLanguage is the mandatory catalog fallback.
	DefaultLanguage = LanguageEnglish
)

// IsValidLanguage checks if the given language code is supported.
func IsValidLanguage(l Language) bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguagePortuguese:
		return true
	default:
		return false
	}
}

// SupportedLanguages lists every supported code in display order.
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageSpanish, LanguageFrench, LanguagePortuguese}
}

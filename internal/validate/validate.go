// Package validate provides pure field validation and normalization for
// dialog steps. Every function here is a pure function of its arguments.
package validate

import (
	"strconv"
	"strings"

	"github.com/admbot/intakebot/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind selects the validation rule applied to a dialog step's input.
type Kind string

const (
	// KindFreeText accepts any non-empty string after trimming.
	KindFreeText Kind = "free_text"
	// KindPhone requires '+' followed by one or more decimal digits.
	KindPhone Kind = "phone"
	// KindCountry accepts non-empty text and normalizes it to title case.
	KindCountry Kind = "country"
	// KindAmount requires a decimal number strictly greater than zero.
	KindAmount Kind = "amount"
	// KindMedia requires the event to carry an image or document reference.
	KindMedia Kind = "media"
)

var titleCaser = cases.Title(language.Und)

// Field validates raw text input against the given kind and returns the
// normalized value. The returned error is one of the models validation
// sentinels.
func Field(kind Kind, raw string) (string, error) {
	switch kind {
	case KindPhone:
		return phone(raw)
	case KindCountry:
		return country(raw)
	case KindAmount:
		return amount(raw)
	default:
		return freeText(raw)
	}
}

// Media selects the attachment reference from an inbound event: the image
// variant when present, otherwise the document reference.
func Media(ev models.Event) (string, error) {
	if ev.Media == nil || ev.Media.ID == "" {
		return "", models.ErrMissingMedia
	}
	return ev.Media.ID, nil
}

func freeText(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", models.ErrEmptyInput
	}
	return trimmed, nil
}

func phone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 2 || !strings.HasPrefix(trimmed, "+") {
		return "", models.ErrBadPhoneFormat
	}
	for _, r := range trimmed[1:] {
		if r < '0' || r > '9' {
			return "", models.ErrBadPhoneFormat
		}
	}
	return trimmed, nil
}

func country(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", models.ErrEmptyInput
	}
	return titleCaser.String(strings.ToLower(trimmed)), nil
}

func amount(raw string) (string, error) {
	// The empty string fails to parse, so a blank amount is not numeric.
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", models.ErrNotNumeric
	}
	if value <= 0 {
		return "", models.ErrNotPositive
	}
	return strconv.FormatFloat(value, 'f', 2, 64), nil
}

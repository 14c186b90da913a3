package validate

import (
	"errors"
	"testing"

	"github.com/admbot/intakebot/internal/models"
)

func TestFieldFreeText(t *testing.T) {
	got, err := Field(KindFreeText, "  John Doe  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "John Doe" {
		t.Errorf("expected trimmed value, got %q", got)
	}

	if _, err := Field(KindFreeText, "   "); !errors.Is(err, models.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for blank input, got %v", err)
	}
}

func TestFieldPhone(t *testing.T) {
	got, err := Field(KindPhone, "+27677979198")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "+27677979198" {
		t.Errorf("expected phone preserved, got %q", got)
	}

	invalid := []string{"12345", "+", "+12a34", "phone", "+12 34", ""}
	for _, input := range invalid {
		if _, err := Field(KindPhone, input); !errors.Is(err, models.ErrBadPhoneFormat) {
			t.Errorf("expected ErrBadPhoneFormat for %q, got %v", input, err)
		}
	}
}

func TestFieldCountryTitleCase(t *testing.T) {
	cases := map[string]string{
		"south africa": "South Africa",
		"GHANA":        "Ghana",
		"  uSa  ":      "Usa",
	}
	for input, want := range cases {
		got, err := Field(KindCountry, input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if got != want {
			t.Errorf("country %q: expected %q, got %q", input, want, got)
		}
	}

	if _, err := Field(KindCountry, " "); !errors.Is(err, models.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for blank country, got %v", err)
	}
}

func TestFieldAmount(t *testing.T) {
	got, err := Field(KindAmount, "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "100.00" {
		t.Errorf("expected two-decimal formatting, got %q", got)
	}

	got, err = Field(KindAmount, "0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0.50" {
		t.Errorf("expected 0.50, got %q", got)
	}

	if _, err := Field(KindAmount, "abc"); !errors.Is(err, models.ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric, got %v", err)
	}
	if _, err := Field(KindAmount, "0"); !errors.Is(err, models.ErrNotPositive) {
		t.Errorf("expected ErrNotPositive for zero, got %v", err)
	}
	if _, err := Field(KindAmount, "-5"); !errors.Is(err, models.ErrNotPositive) {
		t.Errorf("expected ErrNotPositive for negative, got %v", err)
	}
	if _, err := Field(KindAmount, ""); !errors.Is(err, models.ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric for blank amount, got %v", err)
	}
	if _, err := Field(KindAmount, "  "); !errors.Is(err, models.ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric for whitespace amount, got %v", err)
	}
}

func TestMedia(t *testing.T) {
	ev := models.Event{
		Kind:  models.EventMedia,
		Media: &models.MediaRef{Kind: models.MediaKindImage, ID: "media-123"},
	}
	got, err := Media(ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "media-123" {
		t.Errorf("expected media reference, got %q", got)
	}

	if _, err := Media(models.Event{Kind: models.EventText, Body: "hello"}); !errors.Is(err, models.ErrMissingMedia) {
		t.Errorf("expected ErrMissingMedia for text event, got %v", err)
	}
	if _, err := Media(models.Event{Kind: models.EventMedia, Media: &models.MediaRef{}}); !errors.Is(err, models.ErrMissingMedia) {
		t.Errorf("expected ErrMissingMedia for empty reference, got %v", err)
	}
}

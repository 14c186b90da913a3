// Package i18n resolves message keys into localized display text.
//
// The catalog is static and build-time; lookups fall back to the default
// language and never fail.
package i18n

import (
	"log/slog"
	"strings"

	"github.com/admbot/intakebot/internal/models"
)

// Render resolves a message key for the given language. Entries missing for
// the requested language fall back to the default language; a key missing
// from the catalog entirely renders as the key itself so the participant is
// never left without text.
func Render(key string, lang models.Language) string {
	entry, ok := catalog[key]
	if !ok {
		slog.Warn("i18n unknown message key", "key", key)
		return key
	}
	if text, ok := entry[lang]; ok {
		return text
	}
	if text, ok := entry[models.DefaultLanguage]; ok {
		return text
	}
	slog.Warn("i18n entry missing default language", "key", key)
	return key
}

// RenderWith resolves a message key and interpolates named placeholders of
// the form {name}. The catalog uses a single placeholder per template.
func RenderWith(key string, lang models.Language, args map[string]string) string {
	text := Render(key, lang)
	for name, value := range args {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

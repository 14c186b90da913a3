package i18n

import (
	"strings"
	"testing"

	"github.com/admbot/intakebot/internal/models"
)

func TestRenderLocalized(t *testing.T) {
	got := Render("menu", models.LanguageSpanish)
	if got != "Por favor elija una opción:" {
		t.Errorf("expected Spanish menu prompt, got %q", got)
	}
}

func TestRenderFallsBackToDefaultLanguage(t *testing.T) {
	// give_options_prompt only carries the default language entry.
	got := Render("give_options_prompt", models.LanguageFrench)
	if got != "Please select a giving option:" {
		t.Errorf("expected default-language fallback, got %q", got)
	}
}

func TestRenderUnknownKeyReturnsKey(t *testing.T) {
	got := Render("no_such_key", models.LanguageEnglish)
	if got != "no_such_key" {
		t.Errorf("expected key itself for unknown key, got %q", got)
	}
}

func TestRenderWithInterpolation(t *testing.T) {
	got := RenderWith("admin_contact_info", models.LanguageEnglish, map[string]string{"admin_id": "+15550001111"})
	if !strings.Contains(got, "+15550001111") {
		t.Errorf("expected interpolated admin ID, got %q", got)
	}
	if strings.Contains(got, "{admin_id}") {
		t.Errorf("placeholder not replaced: %q", got)
	}
}

func TestCatalogCoversAllLanguagesForCoreKeys(t *testing.T) {
	core := []string{"welcome", "menu", "prompt_name", "prompt_phone", "prompt_country", "invalid_input"}
	for _, key := range core {
		for _, lang := range models.SupportedLanguages() {
			if _, ok := catalog[key][lang]; !ok {
				t.Errorf("key %q missing language %q", key, lang)
			}
		}
	}
}

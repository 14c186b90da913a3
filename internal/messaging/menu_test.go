package messaging

import (
	"testing"

	"github.com/admbot/intakebot/internal/models"
)

var sampleOptions = []models.MenuOption{
	{Label: "👤 Member Sign-Up", Payload: "member"},
	{Label: "🙏 Prayer Request", Payload: "prayer"},
	{Label: "💰 Give or Partner", Payload: "partner"},
}

func TestRenderMenu(t *testing.T) {
	got := RenderMenu("Please choose an option:", sampleOptions)
	want := "Please choose an option:\n\n1. 👤 Member Sign-Up\n2. 🙏 Prayer Request\n3. 💰 Give or Partner"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMenuTrackerResolveByNumber(t *testing.T) {
	tracker := newMenuTracker()
	tracker.Remember("+15551230000", sampleOptions)

	payload, ok := tracker.Resolve("+15551230000", "2")
	if !ok || payload != "prayer" {
		t.Errorf("expected prayer payload, got %q ok=%v", payload, ok)
	}

	tracker.Remember("+15551230000", sampleOptions)
	payload, ok = tracker.Resolve("+15551230000", " 1 ")
	if !ok || payload != "member" {
		t.Errorf("expected member payload for padded reply, got %q ok=%v", payload, ok)
	}

	tracker.Remember("+15551230000", sampleOptions)
	if _, ok := tracker.Resolve("+15551230000", "9"); ok {
		t.Error("expected no resolution for out-of-range number")
	}
}

func TestMenuTrackerResolveConsumesMenu(t *testing.T) {
	tracker := newMenuTracker()
	tracker.Remember("+15551230000", sampleOptions)

	if payload, ok := tracker.Resolve("+15551230000", "2"); !ok || payload != "prayer" {
		t.Fatalf("expected prayer payload, got %q ok=%v", payload, ok)
	}

	// A digit typed after the menu was used is data, not a selection.
	if payload, ok := tracker.Resolve("+15551230000", "2"); ok {
		t.Errorf("expected consumed menu to stop resolving, got %q", payload)
	}
	if payload, ok := tracker.Resolve("+15551230000", "🙏 Prayer Request"); ok {
		t.Errorf("expected consumed menu to stop resolving labels, got %q", payload)
	}
}

func TestMenuTrackerFailedResolveKeepsMenu(t *testing.T) {
	tracker := newMenuTracker()
	tracker.Remember("+15551230000", sampleOptions)

	if _, ok := tracker.Resolve("+15551230000", "not an option"); ok {
		t.Fatal("expected free text to pass through unresolved")
	}
	if payload, ok := tracker.Resolve("+15551230000", "3"); !ok || payload != "partner" {
		t.Errorf("expected menu to survive an unresolved reply, got %q ok=%v", payload, ok)
	}
}

func TestMenuTrackerResolveByLabel(t *testing.T) {
	tracker := newMenuTracker()
	tracker.Remember("+15551230000", sampleOptions)

	payload, ok := tracker.Resolve("+15551230000", "🙏 prayer request")
	if !ok || payload != "prayer" {
		t.Errorf("expected case-insensitive label match, got %q ok=%v", payload, ok)
	}

	if _, ok := tracker.Resolve("+15551230000", "something else"); ok {
		t.Error("expected free text to pass through unresolved")
	}
}

func TestMenuTrackerUnknownRecipient(t *testing.T) {
	tracker := newMenuTracker()
	if _, ok := tracker.Resolve("+15559990000", "1"); ok {
		t.Error("expected no resolution without a remembered menu")
	}
}

func TestMenuTrackerRememberReplaces(t *testing.T) {
	tracker := newMenuTracker()
	tracker.Remember("+15551230000", sampleOptions)
	tracker.Remember("+15551230000", []models.MenuOption{{Label: "📞 Contact Admin", Payload: "contact_admin"}})

	payload, ok := tracker.Resolve("+15551230000", "1")
	if !ok || payload != "contact_admin" {
		t.Errorf("expected latest menu to win, got %q ok=%v", payload, ok)
	}
	if _, ok := tracker.Resolve("+15551230000", "2"); ok {
		t.Error("expected old menu forgotten")
	}
}

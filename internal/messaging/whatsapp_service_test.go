package messaging

import (
	"context"
	"testing"

	"github.com/admbot/intakebot/internal/models"
	"github.com/admbot/intakebot/internal/whatsapp"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"google.golang.org/protobuf/proto"
)

func TestWhatsAppValidateAndCanonicalizeRecipient(t *testing.T) {
	service := NewWhatsAppService(whatsapp.NewMockClient())

	got, err := service.ValidateAndCanonicalizeRecipient("+1 (555) 123-0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "+15551230000" {
		t.Errorf("expected canonical form, got %q", got)
	}

	if _, err := service.ValidateAndCanonicalizeRecipient(""); err == nil {
		t.Error("expected error for empty recipient")
	}
	if _, err := service.ValidateAndCanonicalizeRecipient("abc"); err == nil {
		t.Error("expected error for recipient without digits")
	}
	if _, err := service.ValidateAndCanonicalizeRecipient("123"); err == nil {
		t.Error("expected error for too-short number")
	}
}

func TestWhatsAppSendMenuRemembersOptions(t *testing.T) {
	service := NewWhatsAppService(whatsapp.NewMockClient())

	options := []models.MenuOption{
		{Label: "👤 Member Sign-Up", Payload: "member"},
		{Label: "🙏 Prayer Request", Payload: "prayer"},
	}
	if err := service.SendMenu(context.Background(), "+15551230000", "Please choose an option:", options); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload, ok := service.menus.Resolve("+15551230000", "2")
	if !ok || payload != "prayer" {
		t.Errorf("expected menu remembered for reply resolution, got %q ok=%v", payload, ok)
	}
}

func TestWhatsAppStartWithMockClient(t *testing.T) {
	service := NewWhatsAppService(whatsapp.NewMockClient())
	if err := service.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseMessageVariants(t *testing.T) {
	ev, ok := parseMessage(&waE2E.Message{Conversation: proto.String("hello")})
	if !ok || ev.Kind != models.EventText || ev.Body != "hello" {
		t.Errorf("expected text event, got %+v ok=%v", ev, ok)
	}

	ev, ok = parseMessage(&waE2E.Message{
		ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("extended")},
	})
	if !ok || ev.Kind != models.EventText || ev.Body != "extended" {
		t.Errorf("expected extended text event, got %+v ok=%v", ev, ok)
	}

	ev, ok = parseMessage(&waE2E.Message{
		ImageMessage: &waE2E.ImageMessage{DirectPath: proto.String("/v/image-1")},
	})
	if !ok || ev.Kind != models.EventMedia || ev.Media == nil || ev.Media.Kind != models.MediaKindImage || ev.Media.ID != "/v/image-1" {
		t.Errorf("expected image media event, got %+v ok=%v", ev, ok)
	}

	ev, ok = parseMessage(&waE2E.Message{
		DocumentMessage: &waE2E.DocumentMessage{DirectPath: proto.String("/v/doc-1")},
	})
	if !ok || ev.Kind != models.EventMedia || ev.Media == nil || ev.Media.Kind != models.MediaKindDocument {
		t.Errorf("expected document media event, got %+v ok=%v", ev, ok)
	}

	if _, ok := parseMessage(&waE2E.Message{}); ok {
		t.Error("expected unsupported message to be ignored")
	}
}

package messaging

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/admbot/intakebot/internal/models"
	"github.com/admbot/intakebot/internal/twilio"
)

func postWebhook(t *testing.T, service *TwilioService, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/webhook/twilio", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	service.WebhookHandler(w, req)
	return w
}

func TestTwilioWebhookTextEvent(t *testing.T) {
	service := NewTwilioService(twilio.NewMockClient())

	w := postWebhook(t, service, url.Values{
		"From": {"whatsapp:+15551230000"},
		"Body": {"hello"},
	})
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	select {
	case ev := <-service.Events():
		if ev.Kind != models.EventText || ev.Body != "hello" {
			t.Errorf("expected text event, got %+v", ev)
		}
		if ev.From != "+15551230000" {
			t.Errorf("expected canonical sender, got %q", ev.From)
		}
	default:
		t.Fatal("expected event emitted")
	}
}

func TestTwilioWebhookResolvesMenuReply(t *testing.T) {
	service := NewTwilioService(twilio.NewMockClient())

	options := []models.MenuOption{
		{Label: "👤 Member Sign-Up", Payload: "member"},
		{Label: "🙏 Prayer Request", Payload: "prayer"},
	}
	if err := service.SendMenu(context.Background(), "+15551230000", "Please choose an option:", options); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	postWebhook(t, service, url.Values{
		"From": {"whatsapp:+15551230000"},
		"Body": {"2"},
	})

	select {
	case ev := <-service.Events():
		if ev.Kind != models.EventMenuSelection || ev.Payload != "prayer" {
			t.Errorf("expected menu selection, got %+v", ev)
		}
	default:
		t.Fatal("expected event emitted")
	}
}

func TestTwilioWebhookMenuReplyOnlyResolvesOnce(t *testing.T) {
	service := NewTwilioService(twilio.NewMockClient())

	options := []models.MenuOption{
		{Label: "👤 Member Sign-Up", Payload: "member"},
		{Label: "🙏 Prayer Request", Payload: "prayer"},
	}
	if err := service.SendMenu(context.Background(), "+15551230000", "Please choose an option:", options); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	postWebhook(t, service, url.Values{
		"From": {"whatsapp:+15551230000"},
		"Body": {"2"},
	})
	if ev := <-service.Events(); ev.Kind != models.EventMenuSelection {
		t.Fatalf("expected first reply to select, got %+v", ev)
	}

	// Once selected, the same digit is ordinary input for the next step,
	// such as a prayer request that is literally "2".
	postWebhook(t, service, url.Values{
		"From": {"whatsapp:+15551230000"},
		"Body": {"2"},
	})
	select {
	case ev := <-service.Events():
		if ev.Kind != models.EventText || ev.Body != "2" {
			t.Errorf("expected plain text after menu was used, got %+v", ev)
		}
	default:
		t.Fatal("expected event emitted")
	}
}

func TestTwilioWebhookMediaEvent(t *testing.T) {
	service := NewTwilioService(twilio.NewMockClient())

	postWebhook(t, service, url.Values{
		"From":              {"whatsapp:+15551230000"},
		"NumMedia":          {"1"},
		"MediaUrl0":         {"https://api.twilio.com/media/ME123"},
		"MediaContentType0": {"image/jpeg"},
	})

	select {
	case ev := <-service.Events():
		if ev.Kind != models.EventMedia || ev.Media == nil {
			t.Fatalf("expected media event, got %+v", ev)
		}
		if ev.Media.Kind != models.MediaKindImage || ev.Media.ID != "https://api.twilio.com/media/ME123" {
			t.Errorf("unexpected media reference: %+v", ev.Media)
		}
	default:
		t.Fatal("expected event emitted")
	}
}

func TestTwilioWebhookRejectsMissingFields(t *testing.T) {
	service := NewTwilioService(twilio.NewMockClient())

	w := postWebhook(t, service, url.Values{"Body": {"hello"}})
	if w.Code != 400 {
		t.Errorf("expected 400 for missing sender, got %d", w.Code)
	}

	w = postWebhook(t, service, url.Values{"From": {"whatsapp:+15551230000"}})
	if w.Code != 400 {
		t.Errorf("expected 400 for missing body and media, got %d", w.Code)
	}
}

func TestTwilioSendMessageCanonicalizes(t *testing.T) {
	client := twilio.NewMockClient()
	service := NewTwilioService(client)

	if err := service.SendMessage(context.Background(), "+1 (555) 123-0000", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.SentMessages) != 1 {
		t.Fatalf("expected one sent message, got %d", len(client.SentMessages))
	}
	if client.SentMessages[0].To != "+15551230000" {
		t.Errorf("expected canonical recipient, got %q", client.SentMessages[0].To)
	}
}

func TestTwilioStoppedServiceRejectsSends(t *testing.T) {
	service := NewTwilioService(twilio.NewMockClient())
	if err := service.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.SendMessage(context.Background(), "+15551230000", "hello"); err != ErrServiceStopped {
		t.Errorf("expected ErrServiceStopped, got %v", err)
	}
}

package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/admbot/intakebot/internal/models"
	"github.com/admbot/intakebot/internal/twilio"
)

// TwilioService implements the Service interface using the Twilio API.
// Inbound traffic arrives through the webhook handler instead of a live
// connection, so Start is a no-op.
type TwilioService struct {
	client  twilio.Sender
	events  chan models.Event
	menus   *menuTracker
	done    chan struct{}
	mu      sync.RWMutex
	stopped bool
}

// NewTwilioService creates a new TwilioService wrapping the given sender.
func NewTwilioService(client twilio.Sender) *TwilioService {
	return &TwilioService{
		client: client,
		events: make(chan models.Event, DefaultChannelBufferSize),
		menus:  newMenuTracker(),
		done:   make(chan struct{}),
	}
}

// ValidateAndCanonicalizeRecipient canonicalizes a WhatsApp phone number to
// the "+<digits>" form.
func (s *TwilioService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	if recipient == "" {
		return "", fmt.Errorf("recipient cannot be empty")
	}
	digits := phoneNumberRegex.ReplaceAllString(recipient, "")
	if digits == "" {
		return "", fmt.Errorf("invalid phone number: no digits found in recipient %q", recipient)
	}
	if len(digits) < 6 {
		return "", fmt.Errorf("invalid phone number: %q is too short (minimum 6 digits required)", digits)
	}
	return "+" + digits, nil
}

// Start is a no-op for Twilio (inbound traffic arrives via webhook).
func (s *TwilioService) Start(ctx context.Context) error {
	return nil
}

// Stop closes channels and stops the service.
func (s *TwilioService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true
	close(s.done)

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(s.events)
	}()

	return nil
}

// SendMessage sends a plain text message via Twilio.
func (s *TwilioService) SendMessage(ctx context.Context, to string, body string) error {
	s.mu.RLock()
	if s.stopped {
		s.mu.RUnlock()
		return ErrServiceStopped
	}
	s.mu.RUnlock()

	canonicalTo, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		slog.Error("TwilioService SendMessage validation error", "error", err, "to", to)
		return err
	}

	return s.client.SendMessage(ctx, canonicalTo, body)
}

// SendMenu renders the options as a numbered list and remembers them for the
// webhook to resolve numeric replies into menu selections.
func (s *TwilioService) SendMenu(ctx context.Context, to string, body string, options []models.MenuOption) error {
	canonicalTo, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		slog.Error("TwilioService SendMenu validation error", "error", err, "to", to)
		return err
	}
	if err := s.SendMessage(ctx, canonicalTo, RenderMenu(body, options)); err != nil {
		return err
	}
	s.menus.Remember(canonicalTo, options)
	return nil
}

// Events returns the channel of inbound participant events.
func (s *TwilioService) Events() <-chan models.Event {
	return s.events
}

// WebhookHandler handles inbound Twilio webhook requests, converting each
// form post into a tagged dialog event.
func (s *TwilioService) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	slog.Info("Twilio webhook received")

	if err := r.ParseForm(); err != nil {
		slog.Error("Failed to parse Twilio webhook form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	from := strings.TrimPrefix(r.FormValue("From"), "whatsapp:")
	body := r.FormValue("Body")
	numMedia := r.FormValue("NumMedia")

	if from == "" {
		slog.Warn("Twilio webhook missing sender")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	canonicalFrom, err := s.ValidateAndCanonicalizeRecipient(from)
	if err != nil {
		slog.Warn("Twilio webhook invalid sender", "from", from, "error", err)
		http.Error(w, "Invalid sender", http.StatusBadRequest)
		return
	}

	event := models.Event{From: canonicalFrom, Time: time.Now().Unix()}
	switch {
	case numMedia != "" && numMedia != "0":
		kind := models.MediaKindImage
		if strings.HasPrefix(r.FormValue("MediaContentType0"), "application/") {
			kind = models.MediaKindDocument
		}
		event.Kind = models.EventMedia
		event.Media = &models.MediaRef{Kind: kind, ID: r.FormValue("MediaUrl0")}
	case body != "":
		event.Kind = models.EventText
		event.Body = body
		if payload, ok := s.menus.Resolve(canonicalFrom, body); ok {
			event = models.Event{Kind: models.EventMenuSelection, Payload: payload, From: canonicalFrom, Time: event.Time}
		}
	default:
		slog.Warn("Twilio webhook without body or media", "from", canonicalFrom)
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	slog.Info("Inbound WhatsApp message from Twilio", "from", canonicalFrom, "kind", event.Kind)
	s.safeEmit(event)

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// safeEmit pushes an event into the events channel unless the service has
// stopped or the channel stays blocked past the timeout.
func (s *TwilioService) safeEmit(event models.Event) {
	s.mu.RLock()
	stopped := s.stopped
	s.mu.RUnlock()
	if stopped {
		slog.Warn("TwilioService dropping inbound event (service stopped)", "from", event.From)
		return
	}

	select {
	case s.events <- event:
		slog.Debug("TwilioService emitted inbound event", "from", event.From)
	case <-time.After(DefaultChannelTimeout):
		slog.Warn("TwilioService events channel blocked, dropping message", "from", event.From)
	}
}

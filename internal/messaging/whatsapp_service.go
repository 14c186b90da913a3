package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/admbot/intakebot/internal/models"
	"github.com/admbot/intakebot/internal/whatsapp"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types/events"
)

// WhatsAppService implements Service using the Whatsmeow-based whatsapp client.
// WhatsApp has no inline buttons here, so menus are rendered as numbered
// lists and numeric replies are resolved back into menu-selection events.
type WhatsAppService struct {
	client   whatsapp.Sender
	waClient *whatsapp.Client // full client for event handling, nil for mocks
	events   chan models.Event
	menus    *menuTracker
}

// NewWhatsAppService creates a new WhatsAppService wrapping the given sender.
func NewWhatsAppService(client whatsapp.Sender) *WhatsAppService {
	service := &WhatsAppService{
		client: client,
		events: make(chan models.Event, DefaultChannelBufferSize),
		menus:  newMenuTracker(),
	}

	if waClient, ok := client.(*whatsapp.Client); ok {
		service.waClient = waClient
		slog.Debug("WhatsAppService created with full client for event handling")
	} else {
		slog.Debug("WhatsAppService created with interface client (likely mock)")
	}

	return service
}

// ValidateAndCanonicalizeRecipient canonicalizes a WhatsApp phone number to
// the "+<digits>" form.
func (s *WhatsAppService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
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

// Start begins processing WhatsApp events.
func (s *WhatsAppService) Start(ctx context.Context) error {
	slog.Debug("WhatsAppService Start invoked")
	if s.waClient == nil {
		slog.Debug("WhatsAppService no full client available, skipping event handling (likely mock)")
		return nil
	}
	go s.handleEvents(ctx)
	return nil
}

// Stop stops background processing.
func (s *WhatsAppService) Stop() error {
	slog.Info("WhatsAppService Stop invoked")
	close(s.events)
	return nil
}

// SendMessage sends a plain text message.
func (s *WhatsAppService) SendMessage(ctx context.Context, to string, body string) error {
	canonicalTo, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		slog.Error("WhatsAppService SendMessage validation error", "error", err, "to", to)
		return err
	}
	if err := s.client.SendMessage(ctx, strings.TrimPrefix(canonicalTo, "+"), body); err != nil {
		slog.Error("WhatsAppService SendMessage error", "error", err, "to", canonicalTo)
		return err
	}
	slog.Debug("WhatsAppService message sent", "to", canonicalTo, "body_length", len(body))
	return nil
}

// SendMenu renders the options as a numbered list and remembers them so the
// next numeric reply can be resolved into a menu-selection event.
func (s *WhatsAppService) SendMenu(ctx context.Context, to string, body string, options []models.MenuOption) error {
	canonicalTo, err := s.ValidateAndCanonicalizeRecipient(to)
	if err != nil {
		slog.Error("WhatsAppService SendMenu validation error", "error", err, "to", to)
		return err
	}
	if err := s.SendMessage(ctx, canonicalTo, RenderMenu(body, options)); err != nil {
		return err
	}
	s.menus.Remember(canonicalTo, options)
	return nil
}

// Events returns the channel of inbound participant events.
func (s *WhatsAppService) Events() <-chan models.Event {
	return s.events
}

// handleEvents registers a whatsmeow event handler and feeds parsed events
// into the event channel until the context is cancelled.
func (s *WhatsAppService) handleEvents(ctx context.Context) {
	if s.waClient == nil || s.waClient.GetClient() == nil {
		slog.Error("WhatsAppService handleEvents: no client available")
		return
	}

	s.waClient.GetClient().AddEventHandler(func(evt interface{}) {
		if msg, ok := evt.(*events.Message); ok {
			s.handleIncomingMessage(msg)
		}
	})

	slog.Debug("WhatsAppService event handler registered")
	<-ctx.Done()
	slog.Debug("WhatsAppService handleEvents stopping due to context cancellation")
}

// handleIncomingMessage parses one inbound WhatsApp message into a tagged
// dialog event.
func (s *WhatsAppService) handleIncomingMessage(evt *events.Message) {
	if evt.Message == nil {
		return
	}

	from := evt.Info.Sender.User
	if !strings.HasPrefix(from, "+") {
		from = "+" + from
	}

	event, ok := parseMessage(evt.Message)
	if !ok {
		slog.Debug("WhatsAppService ignoring unsupported message type", "from", from)
		return
	}
	event.From = from
	event.Time = evt.Info.Timestamp.Unix()

	// Text replies to a remembered menu become menu selections.
	if event.Kind == models.EventText {
		if payload, ok := s.menus.Resolve(from, event.Body); ok {
			event = models.Event{Kind: models.EventMenuSelection, Payload: payload, From: from, Time: event.Time}
		}
	}

	select {
	case s.events <- event:
		slog.Info("WhatsAppService inbound event forwarded", "from", from, "kind", event.Kind)
	case <-time.After(DefaultChannelTimeout):
		slog.Warn("WhatsAppService event channel blocked, dropping event", "from", from, "timeout", DefaultChannelTimeout)
	}
}

// parseMessage extracts a text or media event from a raw WhatsApp message.
func parseMessage(msg *waE2E.Message) (models.Event, bool) {
	if msg.Conversation != nil {
		return models.Event{Kind: models.EventText, Body: *msg.Conversation}, true
	}
	if msg.ExtendedTextMessage != nil && msg.ExtendedTextMessage.Text != nil {
		return models.Event{Kind: models.EventText, Body: *msg.ExtendedTextMessage.Text}, true
	}
	if img := msg.GetImageMessage(); img != nil {
		return models.Event{
			Kind:  models.EventMedia,
			Media: &models.MediaRef{Kind: models.MediaKindImage, ID: img.GetDirectPath()},
		}, true
	}
	if doc := msg.GetDocumentMessage(); doc != nil {
		return models.Event{
			Kind:  models.EventMedia,
			Media: &models.MediaRef{Kind: models.MediaKindDocument, ID: doc.GetDirectPath()},
		}, true
	}
	return models.Event{}, false
}

// Package messaging provides pluggable transports that deliver inbound
// dialog events and send outbound prompts and menus.
package messaging

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/admbot/intakebot/internal/models"
)

// Constants for transport configuration
const (
	// DefaultChannelBufferSize defines the default buffer size for the event channel
	DefaultChannelBufferSize = 100
	// DefaultChannelTimeout defines the default timeout for non-blocking channel operations
	DefaultChannelTimeout = 1 * time.Second
)

// ErrServiceStopped is returned when a send is attempted on a stopped service.
var ErrServiceStopped = errors.New("messaging service is stopped")

// phoneNumberRegex matches every non-digit character, for canonicalization.
var phoneNumberRegex = regexp.MustCompile(`[^0-9]`)

// Service defines a pluggable transport abstraction. A transport parses raw
// inbound traffic into tagged models.Event variants before the dialog engine
// sees it, and renders outbound menus in whatever form the channel supports.
type Service interface {
	// ValidateAndCanonicalizeRecipient validates and canonicalizes a recipient
	// identifier. This allows each transport to implement its own rules.
	ValidateAndCanonicalizeRecipient(recipient string) (string, error)

	// SendMessage sends a plain text message to a recipient.
	SendMessage(ctx context.Context, to string, body string) error

	// SendMenu sends a message with selectable options. Selecting an option
	// later yields a menu-selection event carrying the option's payload.
	SendMenu(ctx context.Context, to string, body string, options []models.MenuOption) error

	// Start begins any background processing (e.g., polling for events).
	Start(ctx context.Context) error

	// Stop stops background processing and cleans up resources.
	Stop() error

	// Events returns a channel of inbound participant events.
	Events() <-chan models.Event
}

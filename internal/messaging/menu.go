package messaging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/admbot/intakebot/internal/models"
)

// MenuOptionFormat is the format string for one rendered menu option.
const MenuOptionFormat = "\n%d. %s"

// RenderMenu formats a message body with a numbered option list for channels
// without native buttons.
func RenderMenu(body string, options []models.MenuOption) string {
	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\n")
	for i, opt := range options {
		sb.WriteString(fmt.Sprintf(MenuOptionFormat, i+1, opt.Label))
	}
	return sb.String()
}

// menuTracker remembers the last menu sent to each recipient so that a
// numbered reply can be mapped back to the selected option's payload.
type menuTracker struct {
	mu   sync.Mutex
	last map[string][]models.MenuOption
}

func newMenuTracker() *menuTracker {
	return &menuTracker{last: make(map[string][]models.MenuOption)}
}

// Remember records the menu last shown to a recipient, replacing any prior one.
func (t *menuTracker) Remember(to string, options []models.MenuOption) {
	t.mu.Lock()
	defer t.mu.Unlock()
	copied := make([]models.MenuOption, len(options))
	copy(copied, options)
	t.last[to] = copied
}

// Resolve maps a reply body to a remembered option payload. A reply selects
// an option when it is the option's number or an exact label match. A menu is
// consumed by its first successful resolution, so later free-text replies
// that happen to look like a number or label stay plain text.
func (t *menuTracker) Resolve(from, body string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	options, ok := t.last[from]
	if !ok || len(options) == 0 {
		return "", false
	}

	trimmed := strings.TrimSpace(body)
	if len(trimmed) == 1 && trimmed >= "1" && trimmed <= "9" {
		index := int(trimmed[0] - '1')
		if index < len(options) {
			delete(t.last, from)
			return options[index].Payload, true
		}
		return "", false
	}

	for _, opt := range options {
		if strings.EqualFold(trimmed, opt.Label) {
			delete(t.last, from)
			return opt.Payload, true
		}
	}
	return "", false
}

package flow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/admbot/intakebot/internal/i18n"
	"github.com/admbot/intakebot/internal/messaging"
	"github.com/admbot/intakebot/internal/models"
	"github.com/admbot/intakebot/internal/session"
	"github.com/admbot/intakebot/internal/store"
	"github.com/admbot/intakebot/internal/validate"
)

// TimestampLayout is the layout used for the trailing timestamp column of
// every committed record.
const TimestampLayout = "2006-01-02 15:04:05"

// restartWords are inbound text bodies that restart the dialog from the
// language selection, regardless of current state.
var restartWords = map[string]bool{
	"start":   true,
	"/start":  true,
	"restart": true,
	"hi":      true,
	"hello":   true,
}

// Opts holds configuration options for the dialog engine.
type Opts struct {
	AdminID string
}

// Option defines a configuration option for the dialog engine.
type Option func(*Opts)

// WithAdminID sets the participant ID allowed to view the admin dashboard.
func WithAdminID(id string) Option {
	return func(o *Opts) { o.AdminID = id }
}

// participantQueueSize bounds the per-participant backlog; events beyond it
// are dropped rather than blocking the transport loop.
const participantQueueSize = 16

// Engine consumes inbound events from the messaging transport and drives
// each participant's session through the registered flows. Each participant
// gets a serial queue fed in arrival order, so their events are handled
// strictly FIFO while different participants proceed concurrently.
type Engine struct {
	sessions *session.Store
	msg      messaging.Service
	store    store.Store
	adminID  string

	mu     sync.Mutex
	queues map[string]chan models.Event

	now func() time.Time
}

// NewEngine creates a dialog engine wired to the given transport and stores.
func NewEngine(sessions *session.Store, msg messaging.Service, st store.Store, opts ...Option) *Engine {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		sessions: sessions,
		msg:      msg,
		store:    st,
		adminID:  cfg.AdminID,
		queues:   make(map[string]chan models.Event),
		now:      time.Now,
	}
}

// Run consumes the transport's event channel until the context is cancelled
// or the channel closes.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("Engine started")
	events := e.msg.Events()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Engine stopping due to context cancellation")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				slog.Info("Engine stopping, event channel closed")
				return nil
			}
			if ev.From == "" || !models.IsValidEventKind(ev.Kind) {
				slog.Warn("Engine dropping malformed event", "from", ev.From, "kind", ev.Kind)
				continue
			}
			e.enqueue(ctx, ev)
		}
	}
}

// enqueue hands the event to its participant's serial queue, starting the
// queue worker on first contact. Because events enter the queue in the order
// Run read them, a participant never has a later event processed before an
// earlier one.
func (e *Engine) enqueue(ctx context.Context, ev models.Event) {
	e.mu.Lock()
	q, ok := e.queues[ev.From]
	if !ok {
		q = make(chan models.Event, participantQueueSize)
		e.queues[ev.From] = q
		go e.drainQueue(ctx, q)
	}
	e.mu.Unlock()

	select {
	case q <- ev:
	default:
		slog.Warn("Engine participant queue full, dropping event", "from", ev.From, "kind", ev.Kind)
	}
}

// drainQueue processes one participant's events to completion, one at a time.
func (e *Engine) drainQueue(ctx context.Context, q <-chan models.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-q:
			e.HandleEvent(ctx, ev)
		}
	}
}

// HandleEvent processes one inbound event against the sender's session.
// Callers must not interleave events for the same participant; Run's
// per-participant queues take care of that.
func (e *Engine) HandleEvent(ctx context.Context, ev models.Event) {
	if ev.From == "" || !models.IsValidEventKind(ev.Kind) {
		slog.Warn("Engine dropping malformed event", "from", ev.From, "kind", ev.Kind)
		return
	}

	sess := e.sessions.GetOrCreate(ev.From)
	slog.Debug("Engine handling event", "from", ev.From, "kind", ev.Kind, "state", sess.State)

	if ev.Kind == models.EventText && restartWords[strings.ToLower(strings.TrimSpace(ev.Body))] {
		e.restart(ctx, sess)
		return
	}

	switch sess.State {
	case models.StateLanguageSelect:
		e.handleLanguageSelect(ctx, sess, ev)
	case models.StateMenu:
		e.handleMenu(ctx, sess, ev)
	case models.StatePartnerCategoryMenu:
		e.handleCategoryMenu(ctx, sess, ev)
	case models.StateGiveSubmenu, models.StatePartnerSubmenu:
		e.handleCategorySubmenu(ctx, sess, ev)
	default:
		e.handleStep(ctx, sess, ev)
	}
}

// restart returns the session to language selection, sending the daily
// broadcast first when one exists for today.
func (e *Engine) restart(ctx context.Context, sess *models.Session) {
	slog.Info("Engine restart", "participantID", sess.ParticipantID)
	e.sessions.Reset(sess.ParticipantID)
	sess.State = models.StateLanguageSelect

	if daily, err := e.store.FindDailyMessage(e.now().Format("2006-01-02")); err != nil {
		slog.Error("Engine daily message lookup failed", "error", err, "participantID", sess.ParticipantID)
	} else if daily != nil {
		body := strings.TrimSpace(daily.Scripture + "\n\n" + daily.Message)
		if err := e.msg.SendMessage(ctx, sess.ParticipantID, body); err != nil {
			slog.Error("Engine daily message send failed", "error", err, "participantID", sess.ParticipantID)
		}
	}

	e.sendLanguageMenu(ctx, sess)
}

func (e *Engine) sendLanguageMenu(ctx context.Context, sess *models.Session) {
	options := []models.MenuOption{
		{Label: "English", Payload: string(models.LanguageEnglish)},
		{Label: "Español", Payload: string(models.LanguageSpanish)},
		{Label: "Français", Payload: string(models.LanguageFrench)},
		{Label: "Português", Payload: string(models.LanguagePortuguese)},
	}
	if err := e.msg.SendMenu(ctx, sess.ParticipantID, i18n.Render("lang_prompt", sess.Lang()), options); err != nil {
		slog.Error("Engine language menu send failed", "error", err, "participantID", sess.ParticipantID)
	}
}

func (e *Engine) handleLanguageSelect(ctx context.Context, sess *models.Session, ev models.Event) {
	if ev.Kind != models.EventMenuSelection || !models.IsValidLanguage(models.Language(ev.Payload)) {
		slog.Debug("Engine unroutable input in language select", "participantID", sess.ParticipantID, "kind", ev.Kind)
		e.sendLanguageMenu(ctx, sess)
		return
	}

	lang := models.Language(ev.Payload)
	e.sessions.SetLanguage(sess.ParticipantID, lang)
	sess.State = models.StateMenu
	slog.Info("Engine language selected", "participantID", sess.ParticipantID, "language", lang)

	if err := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render("welcome", lang)); err != nil {
		slog.Error("Engine welcome send failed", "error", err, "participantID", sess.ParticipantID)
	}
	e.sendMainMenu(ctx, sess)
}

func (e *Engine) sendMainMenu(ctx context.Context, sess *models.Session) {
	lang := sess.Lang()
	options := []models.MenuOption{
		{Label: i18n.Render("button_member", lang), Payload: PayloadMember},
		{Label: i18n.Render("button_prayer", lang), Payload: PayloadPrayer},
		{Label: i18n.Render("button_school", lang), Payload: PayloadSchool},
		{Label: i18n.Render("button_masterclass", lang), Payload: PayloadMasterClass},
		{Label: i18n.Render("button_partner", lang), Payload: PayloadPartner},
		{Label: i18n.Render("button_admin", lang), Payload: PayloadAdminStats},
	}
	if err := e.msg.SendMenu(ctx, sess.ParticipantID, i18n.Render("menu", lang), options); err != nil {
		slog.Error("Engine main menu send failed", "error", err, "participantID", sess.ParticipantID)
	}
}

func (e *Engine) handleMenu(ctx context.Context, sess *models.Session, ev models.Event) {
	if ev.Kind != models.EventMenuSelection {
		e.sendUnknownOption(ctx, sess)
		return
	}

	switch ev.Payload {
	case PayloadMember:
		e.startFlow(ctx, sess, models.FlowTypeMember)
	case PayloadPrayer:
		e.startFlow(ctx, sess, models.FlowTypePrayer)
	case PayloadSchool:
		e.startFlow(ctx, sess, models.FlowTypeSchool)
	case PayloadMasterClass:
		e.startFlow(ctx, sess, models.FlowTypeMasterClass)
	case PayloadPartner:
		sess.State = models.StatePartnerCategoryMenu
		e.sendCategoryMenu(ctx, sess)
	case PayloadAdminStats:
		e.handleAdminStats(ctx, sess)
	default:
		slog.Debug("Engine unknown menu payload", "participantID", sess.ParticipantID, "payload", ev.Payload)
		e.sendUnknownOption(ctx, sess)
	}
}

func (e *Engine) sendUnknownOption(ctx context.Context, sess *models.Session) {
	if err := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render("unknown_option", sess.Lang())); err != nil {
		slog.Error("Engine unknown-option send failed", "error", err, "participantID", sess.ParticipantID)
	}
	e.sendMainMenu(ctx, sess)
}

// startFlow begins a simple (non-partner) flow at its entry step.
func (e *Engine) startFlow(ctx context.Context, sess *models.Session, ft models.FlowType) {
	f, ok := Flows[ft]
	if !ok {
		slog.Error("Engine unknown flow type", "flowType", ft, "participantID", sess.ParticipantID)
		e.sendUnknownOption(ctx, sess)
		return
	}

	sess.ActiveFlow = ft
	sess.State = f.Entry
	slog.Info("Engine flow started", "participantID", sess.ParticipantID, "flowType", ft)

	lang := sess.Lang()
	for _, key := range f.IntroKeys {
		if err := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render(key, lang)); err != nil {
			slog.Error("Engine intro send failed", "error", err, "participantID", sess.ParticipantID, "key", key)
		}
	}
	e.enterState(ctx, sess)
}

func (e *Engine) sendCategoryMenu(ctx context.Context, sess *models.Session) {
	lang := sess.Lang()
	options := []models.MenuOption{
		{Label: i18n.Render("button_give_options", lang), Payload: PayloadShowGiveOptions},
		{Label: i18n.Render("button_partner_options", lang), Payload: PayloadShowPartnerOptions},
		{Label: i18n.Render("back", lang), Payload: PayloadBackToMenu},
	}
	if err := e.msg.SendMenu(ctx, sess.ParticipantID, i18n.Render("partner_categories_prompt", lang), options); err != nil {
		slog.Error("Engine category menu send failed", "error", err, "participantID", sess.ParticipantID)
	}
}

func (e *Engine) handleCategoryMenu(ctx context.Context, sess *models.Session, ev models.Event) {
	if ev.Kind != models.EventMenuSelection {
		e.sendCategoryMenu(ctx, sess)
		return
	}

	switch ev.Payload {
	case PayloadShowGiveOptions:
		sess.State = models.StateGiveSubmenu
		e.sendCategorySubmenu(ctx, sess, "give_options_prompt", GiveCategories)
	case PayloadShowPartnerOptions:
		sess.State = models.StatePartnerSubmenu
		e.sendCategorySubmenu(ctx, sess, "partner_options_prompt", PartnerCategories)
	case PayloadBackToMenu:
		e.sessions.Reset(sess.ParticipantID)
		e.sendMainMenu(ctx, sess)
	default:
		slog.Debug("Engine unknown category payload", "participantID", sess.ParticipantID, "payload", ev.Payload)
		e.sendCategoryMenu(ctx, sess)
	}
}

func (e *Engine) sendCategorySubmenu(ctx context.Context, sess *models.Session, promptKey string, categories []Category) {
	lang := sess.Lang()
	options := make([]models.MenuOption, 0, len(categories)+1)
	for _, c := range categories {
		options = append(options, models.MenuOption{Label: i18n.Render(c.LabelKey, lang), Payload: c.Payload})
	}
	options = append(options, models.MenuOption{Label: i18n.Render("back_to_categories", lang), Payload: PayloadBackToCategories})
	if err := e.msg.SendMenu(ctx, sess.ParticipantID, i18n.Render(promptKey, lang), options); err != nil {
		slog.Error("Engine category submenu send failed", "error", err, "participantID", sess.ParticipantID)
	}
}

func (e *Engine) handleCategorySubmenu(ctx context.Context, sess *models.Session, ev models.Event) {
	resend := func() {
		if sess.State == models.StateGiveSubmenu {
			e.sendCategorySubmenu(ctx, sess, "give_options_prompt", GiveCategories)
		} else {
			e.sendCategorySubmenu(ctx, sess, "partner_options_prompt", PartnerCategories)
		}
	}

	if ev.Kind != models.EventMenuSelection {
		resend()
		return
	}

	if ev.Payload == PayloadBackToCategories {
		sess.State = models.StatePartnerCategoryMenu
		e.sendCategoryMenu(ctx, sess)
		return
	}

	category, ok := CategoryByPayload(ev.Payload)
	if !ok {
		slog.Debug("Engine unknown submenu payload", "participantID", sess.ParticipantID, "payload", ev.Payload)
		resend()
		return
	}

	ft := models.FlowTypePartnerGive
	if sess.State == models.StatePartnerSubmenu {
		ft = models.FlowTypePartnerPartner
	}
	sess.ActiveFlow = ft
	sess.ActiveCategory = category.Payload
	// The stored category column is always the English label.
	sess.Fields[models.DataKeyCategory] = i18n.Render(category.LabelKey, models.DefaultLanguage)
	sess.State = Flows[ft].Entry
	slog.Info("Engine partner flow started", "participantID", sess.ParticipantID, "flowType", ft, "category", category.Payload)

	e.enterState(ctx, sess)
}

// enterState sends whatever the session's current step shows on entry: the
// payment-branch details when entering the amount step of a partner flow,
// then the step's own prompt.
func (e *Engine) enterState(ctx context.Context, sess *models.Session) {
	f, step, ok := StepFor(sess.State, sess.ActiveFlow)
	if !ok {
		slog.Error("Engine enterState without step definition", "state", sess.State, "participantID", sess.ParticipantID)
		return
	}

	lang := sess.Lang()
	if step.State == models.StatePartnerAmount && (f.Type == models.FlowTypePartnerGive || f.Type == models.FlowTypePartnerPartner) {
		e.sendPaymentDetails(ctx, sess)
	}

	if err := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render(step.PromptKey, lang)); err != nil {
		slog.Error("Engine step prompt send failed", "error", err, "participantID", sess.ParticipantID, "state", sess.State)
	}
}

// sendPaymentDetails routes on the collected country: South Africa gets the
// domestic mobile-money details, everyone else the international options
// with a contact-admin shortcut.
func (e *Engine) sendPaymentDetails(ctx context.Context, sess *models.Session) {
	lang := sess.Lang()
	country := sess.Fields[models.DataKeyCountry]
	if strings.EqualFold(country, "South Africa") {
		if err := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render("payment_sa", lang)); err != nil {
			slog.Error("Engine payment details send failed", "error", err, "participantID", sess.ParticipantID)
		}
		return
	}

	options := []models.MenuOption{
		{Label: i18n.Render("button_contact_admin", lang), Payload: PayloadContactAdmin},
	}
	if err := e.msg.SendMenu(ctx, sess.ParticipantID, i18n.Render("payment_international", lang), options); err != nil {
		slog.Error("Engine payment details send failed", "error", err, "participantID", sess.ParticipantID)
	}
}

// handleStep validates the event against the current data-collection step,
// re-prompting on validation failure and advancing (or committing) on
// success.
func (e *Engine) handleStep(ctx context.Context, sess *models.Session, ev models.Event) {
	f, step, ok := StepFor(sess.State, sess.ActiveFlow)
	if !ok {
		slog.Warn("Engine event in unknown state, restarting", "state", sess.State, "participantID", sess.ParticipantID)
		e.restart(ctx, sess)
		return
	}

	if ev.Kind == models.EventMenuSelection {
		if ev.Payload == PayloadContactAdmin {
			e.handleContactAdmin(ctx, sess)
			return
		}
		slog.Debug("Engine menu payload in step state, restarting", "payload", ev.Payload, "participantID", sess.ParticipantID)
		e.restart(ctx, sess)
		return
	}

	value, err := e.stepValue(step, ev)
	if err != nil {
		slog.Debug("Engine step validation failed", "participantID", sess.ParticipantID, "state", sess.State, "error", err)
		e.rePrompt(ctx, sess, step, err)
		return
	}

	sess.Fields[step.Field] = value
	slog.Debug("Engine step accepted", "participantID", sess.ParticipantID, "state", sess.State, "field", step.Field)

	if step.Success == models.StateCommit {
		e.commit(ctx, sess, f)
		return
	}
	sess.State = step.Success
	e.enterState(ctx, sess)
}

// stepValue extracts and validates the step's value from the event.
func (e *Engine) stepValue(step Step, ev models.Event) (string, error) {
	if step.Kind == validate.KindMedia {
		if ev.Kind != models.EventMedia {
			return "", models.ErrMissingMedia
		}
		return validate.Media(ev)
	}
	if ev.Kind != models.EventText {
		return "", models.ErrEmptyInput
	}
	return validate.Field(step.Kind, ev.Body)
}

// rePrompt tells the participant the input was rejected and repeats the
// step's prompt. The session state does not change.
func (e *Engine) rePrompt(ctx context.Context, sess *models.Session, step Step, cause error) {
	lang := sess.Lang()
	errorKey := "invalid_input"
	if step.Kind == validate.KindMedia {
		errorKey = "upload_proof_error"
	}
	body := i18n.Render(errorKey, lang) + "\n\n" + i18n.Render(step.PromptKey, lang)
	if err := e.msg.SendMessage(ctx, sess.ParticipantID, body); err != nil {
		slog.Error("Engine re-prompt send failed", "error", err, "participantID", sess.ParticipantID, "cause", cause)
	}
}

// commit appends the completed flow's record to the store and returns the
// session to the menu. The session is reset whether or not the append
// succeeds; a failed append loses the record but never wedges the dialog.
func (e *Engine) commit(ctx context.Context, sess *models.Session, f Flow) {
	values := make([]string, 0, len(f.Terminal.FieldOrder)+2)
	values = append(values, sess.ParticipantID)
	for _, key := range f.Terminal.FieldOrder {
		values = append(values, sess.Fields[key])
	}
	values = append(values, e.now().Format(TimestampLayout))

	lang := sess.Lang()
	if err := e.store.Append(f.Terminal.Collection, values); err != nil {
		slog.Error("Engine commit failed", "error", err, "participantID", sess.ParticipantID, "collection", f.Terminal.Collection)
		if sendErr := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render("error_general", lang)); sendErr != nil {
			slog.Error("Engine commit error notice send failed", "error", sendErr, "participantID", sess.ParticipantID)
		}
	} else {
		slog.Info("Engine flow committed", "participantID", sess.ParticipantID, "flowType", f.Type, "collection", f.Terminal.Collection)
		if err := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render(f.Terminal.SuccessKey, lang)); err != nil {
			slog.Error("Engine commit success send failed", "error", err, "participantID", sess.ParticipantID)
		}
	}

	e.sessions.Reset(sess.ParticipantID)
	e.sendMainMenu(ctx, sess)
}

// handleContactAdmin answers the contact-admin shortcut of the international
// payment details and returns the session to the menu, discarding any
// partially collected partner fields.
func (e *Engine) handleContactAdmin(ctx context.Context, sess *models.Session) {
	lang := sess.Lang()
	body := i18n.RenderWith("admin_contact_info", lang, map[string]string{"admin_id": e.adminID})
	if err := e.msg.SendMessage(ctx, sess.ParticipantID, body); err != nil {
		slog.Error("Engine contact-admin send failed", "error", err, "participantID", sess.ParticipantID)
	}
	e.sessions.Reset(sess.ParticipantID)
	e.sendMainMenu(ctx, sess)
}

// BroadcastDaily sends today's daily message, when one exists, to every
// known participant. Intended to be driven by the scheduler.
func (e *Engine) BroadcastDaily(ctx context.Context) {
	daily, err := e.store.FindDailyMessage(e.now().Format("2006-01-02"))
	if err != nil {
		slog.Error("Engine daily broadcast lookup failed", "error", err)
		return
	}
	if daily == nil {
		slog.Debug("Engine daily broadcast skipped, no message for today")
		return
	}

	body := strings.TrimSpace(daily.Scripture + "\n\n" + daily.Message)
	participants := e.sessions.Participants()
	slog.Info("Engine daily broadcast starting", "recipients", len(participants))
	for _, id := range participants {
		if err := e.msg.SendMessage(ctx, id, body); err != nil {
			slog.Error("Engine daily broadcast send failed", "error", err, "participantID", id)
		}
	}
}

// handleAdminStats renders per-collection record counts for the configured
// admin; everyone else is denied.
func (e *Engine) handleAdminStats(ctx context.Context, sess *models.Session) {
	lang := sess.Lang()
	if e.adminID == "" || sess.ParticipantID != e.adminID {
		slog.Warn("Engine admin stats denied", "participantID", sess.ParticipantID)
		if err := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render("access_denied", lang)); err != nil {
			slog.Error("Engine access-denied send failed", "error", err, "participantID", sess.ParticipantID)
		}
		e.sendMainMenu(ctx, sess)
		return
	}

	rows := []struct {
		label      string
		collection models.Collection
	}{
		{"Members", models.CollectionMembers},
		{"Prayer Requests", models.CollectionPrayers},
		{"School of Discipleship", models.CollectionSchool},
		{"Master Class", models.CollectionMasterClass},
		{"Partners", models.CollectionPartners},
	}

	var b strings.Builder
	b.WriteString("📊 Admin Dashboard Stats:\n")
	for _, row := range rows {
		count, err := e.store.Count(row.collection)
		if err != nil {
			slog.Error("Engine admin stats count failed", "error", err, "collection", row.collection)
			if sendErr := e.msg.SendMessage(ctx, sess.ParticipantID, i18n.Render("error_general", lang)); sendErr != nil {
				slog.Error("Engine admin stats error notice send failed", "error", sendErr, "participantID", sess.ParticipantID)
			}
			e.sendMainMenu(ctx, sess)
			return
		}
		fmt.Fprintf(&b, "• %s: %d\n", row.label, count)
	}

	if err := e.msg.SendMessage(ctx, sess.ParticipantID, b.String()); err != nil {
		slog.Error("Engine admin stats send failed", "error", err, "participantID", sess.ParticipantID)
	}
	e.sendMainMenu(ctx, sess)
}

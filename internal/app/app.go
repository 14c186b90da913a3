// Package app wires the configured modules together and runs the bot: the
// record store, the messaging transport and the dialog engine, plus the
// Twilio webhook server when that transport is selected.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/admbot/intakebot/internal/flow"
	"github.com/admbot/intakebot/internal/messaging"
	"github.com/admbot/intakebot/internal/scheduler"
	"github.com/admbot/intakebot/internal/session"
	"github.com/admbot/intakebot/internal/store"
	"github.com/admbot/intakebot/internal/twilio"
	"github.com/admbot/intakebot/internal/whatsapp"
)

// Transport names selectable via configuration.
const (
	TransportWhatsmeow = "whatsmeow"
	TransportTwilio    = "twilio"
)

// DefaultWebhookAddr is the default listen address for the Twilio webhook
// server.
const DefaultWebhookAddr = ":8080"

// DefaultBroadcastCron is the default schedule for the daily broadcast.
const DefaultBroadcastCron = "0 8 * * *"

// Opts holds application-level configuration options.
type Opts struct {
	Transport     string
	AdminID       string
	WebhookAddr   string
	BroadcastCron string
}

// Option defines an application-level configuration option.
type Option func(*Opts)

// WithTransport selects the messaging transport ("whatsmeow" or "twilio").
func WithTransport(name string) Option {
	return func(o *Opts) { o.Transport = name }
}

// WithAdminID sets the participant ID allowed to view the admin dashboard.
func WithAdminID(id string) Option {
	return func(o *Opts) { o.AdminID = id }
}

// WithWebhookAddr sets the Twilio webhook listen address.
func WithWebhookAddr(addr string) Option {
	return func(o *Opts) { o.WebhookAddr = addr }
}

// WithBroadcastCron sets the cron expression for the daily broadcast.
func WithBroadcastCron(expr string) Option {
	return func(o *Opts) { o.BroadcastCron = expr }
}

// Run bootstraps the configured modules and blocks until shutdown.
func Run(waOpts []whatsapp.Option, storeOpts []store.Option, twilioOpts []twilio.Option, opts ...Option) error {
	cfg := Opts{
		Transport:     TransportWhatsmeow,
		WebhookAddr:   DefaultWebhookAddr,
		BroadcastCron: DefaultBroadcastCron,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recordStore, err := buildStore(storeOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}
	defer func() {
		if err := recordStore.Close(); err != nil {
			slog.Error("Record store close failed", "error", err)
		}
	}()

	msgService, webhookSrv, err := buildTransport(cfg, waOpts, twilioOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging transport: %w", err)
	}

	if err := msgService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start messaging transport: %w", err)
	}
	defer func() {
		if err := msgService.Stop(); err != nil {
			slog.Error("Messaging transport stop failed", "error", err)
		}
	}()

	if webhookSrv != nil {
		go func() {
			slog.Info("Twilio webhook server listening", "addr", webhookSrv.Addr)
			if err := webhookSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Twilio webhook server failed", "error", err)
				stop()
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := webhookSrv.Shutdown(shutdownCtx); err != nil {
				slog.Error("Twilio webhook server shutdown failed", "error", err)
			}
		}()
	}

	engine := flow.NewEngine(session.NewStore(), msgService, recordStore, flow.WithAdminID(cfg.AdminID))

	sched := scheduler.NewScheduler()
	defer sched.Stop()
	if err := sched.AddJob(cfg.BroadcastCron, func() {
		engine.BroadcastDaily(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule daily broadcast: %w", err)
	}
	slog.Info("intakebot running", "transport", cfg.Transport, "admin_set", cfg.AdminID != "", "broadcast_cron", cfg.BroadcastCron)

	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// buildStore selects the record store backend from the configured DSN,
// falling back to the in-memory store when none is set.
func buildStore(storeOpts []store.Option) (store.Store, error) {
	var cfg store.Opts
	for _, opt := range storeOpts {
		opt(&cfg)
	}

	if cfg.DSN == "" {
		slog.Info("No record store DSN configured, using in-memory store")
		return store.NewInMemoryStore(), nil
	}
	if store.DetectDSNType(cfg.DSN) == "postgres" {
		slog.Info("Using PostgreSQL record store")
		return store.NewPostgresStore(storeOpts...)
	}
	slog.Info("Using SQLite record store", "path", cfg.DSN)
	return store.NewSQLiteStore(storeOpts...)
}

// buildTransport constructs the selected messaging transport. The Twilio
// transport also returns an HTTP server carrying its inbound webhook.
func buildTransport(cfg Opts, waOpts []whatsapp.Option, twilioOpts []twilio.Option) (messaging.Service, *http.Server, error) {
	switch cfg.Transport {
	case TransportTwilio:
		client, err := twilio.NewClient(twilioOpts...)
		if err != nil {
			return nil, nil, err
		}
		service := messaging.NewTwilioService(client)

		mux := http.NewServeMux()
		mux.HandleFunc("/webhook/twilio", service.WebhookHandler)
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		srv := &http.Server{Addr: cfg.WebhookAddr, Handler: mux}
		return service, srv, nil
	case TransportWhatsmeow:
		client, err := whatsapp.NewClient(waOpts...)
		if err != nil {
			return nil, nil, err
		}
		return messaging.NewWhatsAppService(client), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}

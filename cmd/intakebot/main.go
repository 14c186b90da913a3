package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/admbot/intakebot/internal/app"
	"github.com/admbot/intakebot/internal/lockfile"
	"github.com/admbot/intakebot/internal/store"
	"github.com/admbot/intakebot/internal/twilio"
	"github.com/admbot/intakebot/internal/util"
	"github.com/admbot/intakebot/internal/whatsapp"
	"github.com/joho/godotenv"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for intakebot state data
	DefaultStateDir = "/var/lib/intakebot"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "intakebot.db"
)

func main() {
	// Initialize structured logger
	initializeLogger()

	// Load environment configuration
	config := loadEnvironmentConfig()

	// Parse command line flags
	flags := parseCommandLineFlags(config)

	// Ensure required directories exist
	if err := ensureDirectoriesExist(flags); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	// Hold an exclusive lock on the state directory for the life of the process
	lock, err := lockfile.AcquireLock(*flags.stateDir)
	if err != nil {
		slog.Error("Failed to acquire state directory lock", "error", err)
		os.Exit(1)
	}
	defer lock.Release()

	// Build module options
	waOpts := buildWhatsAppOptions(flags)
	storeOpts := buildStoreOptions(flags)
	twilioOpts := buildTwilioOptions(flags)
	appOpts := buildAppOptions(flags)

	slog.Info("Bootstrapping intakebot with configured modules")
	slog.Debug("Module options counts", "whatsapp", len(waOpts), "store", len(storeOpts), "twilio", len(twilioOpts), "app", len(appOpts))
	slog.Debug("Final configuration", "state_dir", *flags.stateDir, "dsn_set", *flags.dbDSN != "", "transport", *flags.transport)
	if err := app.Run(waOpts, storeOpts, twilioOpts, appOpts...); err != nil {
		slog.Error("intakebot failed to run", "error", err)
		os.Exit(1)
	}
	slog.Info("intakebot exited successfully")
}

// Config holds environment configuration
type Config struct {
	DatabaseURL   string
	StateDir      string
	AdminID       string
	Transport     string
	WebhookAddr   string
	BroadcastCron string
	NumericCode   bool
	TwilioSID     string
	TwilioToken   string
	TwilioFromNum string
}

// Flags holds command line flag values
type Flags struct {
	qrOutput      *string
	numeric       *bool
	stateDir      *string
	dbDSN         *string
	adminID       *string
	transport     *string
	webhookAddr   *string
	broadcastCron *string
	twilioSID     *string
	twilioToken   *string
	twilioFrom    *string
}

// initializeLogger sets up structured logging with debug level
func initializeLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	} else {
		slog.Debug("successfully loaded .env file")
	}

	config := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		StateDir:      os.Getenv("INTAKEBOT_STATE_DIR"),
		AdminID:       os.Getenv("ADMIN_ID"),
		Transport:     os.Getenv("INTAKEBOT_TRANSPORT"),
		WebhookAddr:   os.Getenv("WEBHOOK_ADDR"),
		BroadcastCron: os.Getenv("DAILY_BROADCAST_CRON"),
		NumericCode:   util.ParseBoolEnv("INTAKEBOT_NUMERIC_CODE", false),
		TwilioSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNum: os.Getenv("TWILIO_FROM_NUMBER"),
	}

	// Set default state directory if not specified
	if config.StateDir == "" {
		config.StateDir = DefaultStateDir
		slog.Debug("No INTAKEBOT_STATE_DIR set, using default", "default_state_dir", config.StateDir)
	} else {
		slog.Debug("INTAKEBOT_STATE_DIR found in environment", "state_dir", config.StateDir)
	}

	// If no database URL is provided, default to SQLite in the state directory
	if config.DatabaseURL == "" {
		config.DatabaseURL = filepath.Join(config.StateDir, DefaultDBFileName)
		slog.Debug("No database DSN provided, defaulting to SQLite", "sqlite_path", config.DatabaseURL)
	}

	slog.Debug("environment variables loaded",
		"DATABASE_URL_SET", config.DatabaseURL != "",
		"INTAKEBOT_STATE_DIR", config.StateDir,
		"ADMIN_ID_SET", config.AdminID != "",
		"INTAKEBOT_TRANSPORT", config.Transport,
		"WEBHOOK_ADDR", config.WebhookAddr,
		"DAILY_BROADCAST_CRON", config.BroadcastCron,
		"INTAKEBOT_NUMERIC_CODE", config.NumericCode,
		"TWILIO_ACCOUNT_SID_SET", config.TwilioSID != "",
		"TWILIO_AUTH_TOKEN_SET", config.TwilioToken != "",
		"TWILIO_FROM_NUMBER_SET", config.TwilioFromNum != "")

	return config
}

// parseCommandLineFlags parses command line arguments with environment defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		qrOutput:      flag.String("qr-output", "", "path to write login QR code"),
		numeric:       flag.Bool("numeric-code", config.NumericCode, "use numeric login code instead of QR code (overrides $INTAKEBOT_NUMERIC_CODE)"),
		stateDir:      flag.String("state-dir", config.StateDir, "state directory for intakebot data (overrides $INTAKEBOT_STATE_DIR)"),
		dbDSN:         flag.String("db-dsn", config.DatabaseURL, "database DSN for the record store and WhatsApp session (overrides $DATABASE_URL)"),
		adminID:       flag.String("admin-id", config.AdminID, "participant ID granted admin dashboard access (overrides $ADMIN_ID)"),
		transport:     flag.String("transport", config.Transport, "messaging transport: whatsmeow or twilio (overrides $INTAKEBOT_TRANSPORT)"),
		webhookAddr:   flag.String("webhook-addr", config.WebhookAddr, "Twilio webhook listen address (overrides $WEBHOOK_ADDR)"),
		broadcastCron: flag.String("broadcast-cron", config.BroadcastCron, "cron schedule for the daily broadcast (overrides $DAILY_BROADCAST_CRON)"),
		twilioSID:     flag.String("twilio-account-sid", config.TwilioSID, "Twilio account SID (overrides $TWILIO_ACCOUNT_SID)"),
		twilioToken:   flag.String("twilio-auth-token", config.TwilioToken, "Twilio auth token (overrides $TWILIO_AUTH_TOKEN)"),
		twilioFrom:    flag.String("twilio-from", config.TwilioFromNum, "Twilio WhatsApp sender number (overrides $TWILIO_FROM_NUMBER)"),
	}

	flag.Parse()

	slog.Debug("flags parsed",
		"qrOutput", *flags.qrOutput,
		"numeric", *flags.numeric,
		"stateDir", *flags.stateDir,
		"dbDSN_set", *flags.dbDSN != "",
		"adminID_set", *flags.adminID != "",
		"transport", *flags.transport,
		"webhookAddr", *flags.webhookAddr)

	// Update database DSN if not explicitly set but state directory is provided
	if *flags.dbDSN == config.DatabaseURL && config.DatabaseURL == filepath.Join(config.StateDir, DefaultDBFileName) && *flags.stateDir != config.StateDir {
		*flags.dbDSN = filepath.Join(*flags.stateDir, DefaultDBFileName)
		slog.Debug("Updated dbDSN based on state directory", "dsn_updated", true, "old_state_dir", config.StateDir, "new_state_dir", *flags.stateDir)
	}

	return flags
}

// ensureDirectoriesExist creates necessary directories for file-based storage
func ensureDirectoriesExist(flags Flags) error {
	// Ensure state directory exists if we're using a file-based DSN
	if !strings.Contains(*flags.dbDSN, "postgres://") && !strings.Contains(*flags.dbDSN, "host=") {
		stateDir := filepath.Dir(*flags.dbDSN)
		slog.Debug("Creating state directory for file-based database", "state_dir", stateDir)
		if err := os.MkdirAll(stateDir, 0755); err != nil {
			slog.Error("Failed to create state directory", "error", err, "state_dir", stateDir)
			return err
		}
		slog.Debug("State directory created successfully", "state_dir", stateDir)
	}
	return nil
}

// buildWhatsAppOptions constructs WhatsApp configuration options
func buildWhatsAppOptions(flags Flags) []whatsapp.Option {
	var waOpts []whatsapp.Option
	if *flags.qrOutput != "" {
		waOpts = append(waOpts, whatsapp.WithQRCodeOutput(*flags.qrOutput))
	}
	if *flags.numeric {
		waOpts = append(waOpts, whatsapp.WithNumericCode())
	}
	if *flags.dbDSN != "" {
		waOpts = append(waOpts, whatsapp.WithDBDSN(*flags.dbDSN))
	}
	return waOpts
}

// buildStoreOptions constructs record store configuration options
func buildStoreOptions(flags Flags) []store.Option {
	var storeOpts []store.Option
	if *flags.dbDSN != "" {
		if store.DetectDSNType(*flags.dbDSN) == "postgres" {
			slog.Debug("Detected PostgreSQL DSN, configuring PostgreSQL store", "dsn_type", "postgresql", "dsn_set", true)
			storeOpts = append(storeOpts, store.WithPostgresDSN(*flags.dbDSN))
		} else {
			slog.Debug("Detected SQLite DSN, configuring SQLite store", "dsn_type", "sqlite", "db_path", *flags.dbDSN)
			storeOpts = append(storeOpts, store.WithSQLiteDSN(*flags.dbDSN))
		}
	} else {
		slog.Debug("No database DSN provided, will use in-memory store")
	}
	return storeOpts
}

// buildTwilioOptions constructs Twilio configuration options
func buildTwilioOptions(flags Flags) []twilio.Option {
	var twilioOpts []twilio.Option
	if *flags.twilioSID != "" {
		twilioOpts = append(twilioOpts, twilio.WithAccountSID(*flags.twilioSID))
	}
	if *flags.twilioToken != "" {
		twilioOpts = append(twilioOpts, twilio.WithAuthToken(*flags.twilioToken))
	}
	if *flags.twilioFrom != "" {
		twilioOpts = append(twilioOpts, twilio.WithFromWhats(*flags.twilioFrom))
	}
	return twilioOpts
}

// buildAppOptions constructs application-level configuration options
func buildAppOptions(flags Flags) []app.Option {
	var appOpts []app.Option
	if *flags.transport != "" {
		appOpts = append(appOpts, app.WithTransport(*flags.transport))
	}
	if *flags.adminID != "" {
		appOpts = append(appOpts, app.WithAdminID(*flags.adminID))
	}
	if *flags.webhookAddr != "" {
		appOpts = append(appOpts, app.WithWebhookAddr(*flags.webhookAddr))
	}
	if *flags.broadcastCron != "" {
		appOpts = append(appOpts, app.WithBroadcastCron(*flags.broadcastCron))
	}
	return appOpts
}

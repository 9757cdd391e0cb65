package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	httpapi "github.com/aussiebroadwan/wedding/internal/wedding/http"
	"github.com/aussiebroadwan/wedding/internal/wedding/mail"
	"github.com/aussiebroadwan/wedding/internal/wedding/service"
	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/memory"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/redis"
	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/sqlite"
	"github.com/aussiebroadwan/wedding/pkg/cryptox"
	"github.com/aussiebroadwan/wedding/pkg/jwtx"
	"github.com/aussiebroadwan/wedding/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	serviceName = "wedding-rsvp"
)

// Application wires the RSVP service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	counters store.Counters
	rdb      *goredis.Client // nil unless WEDDING_REDIS_URL is set
	mailer   mail.Mailer
	tokens   *jwtx.HS256
	hasher   *cryptox.PasswordHasher

	// Services
	rsvpService         *service.RSVPService
	inviteService       *service.InviteService
	emailService        *service.EmailService
	adminService        *service.AdminService
	catalogService      *service.CatalogService
	settingsService     *service.SettingsService
	templateService     *service.TemplateService
	reportService       *service.ReportService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: serviceName,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates an Application with all dependencies initialized.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{cfg: cfg, logger: logger}

	tokens, err := jwtx.NewHS256([]byte(cfg.SessionSecret), jwtx.VerifyOptions{Issuer: cfg.Issuer})
	if err != nil {
		return nil, fmt.Errorf("session signer: %w", err)
	}
	app.tokens = tokens

	pepper, err := cryptox.LoadPepper(cfg.PepperFile)
	if err != nil {
		return nil, err
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	db, err := OpenDatabase(cfg.DatabaseFile)
	if err != nil {
		return nil, err
	}
	app.db = db
	logger.Info("database migrations applied successfully")

	if err := app.initCounters(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// OpenDatabase opens the SQLite file at path and applies pending
// migrations.
func OpenDatabase(path string) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Housekeeping exposes the cleanup job for one-off runs.
func (app *Application) Housekeeping() *service.HousekeepingService { return app.housekeepingService }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("wedding service starting", "addr", app.cfg.Addr, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server, stops housekeeping and closes
// connections.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down wedding service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.Close(); err != nil {
		return err
	}
	app.logger.Info("wedding service stopped")
	return nil
}

// Close releases the database and Redis connections without touching
// the HTTP server.
func (app *Application) Close() error {
	if app.rdb != nil {
		if err := app.rdb.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

func (app *Application) initCounters(ctx context.Context) error {
	if app.cfg.RedisURL == "" {
		app.counters = memory.NewCounters()
		app.logger.Info("login attempt counters kept in memory")
		return nil
	}

	rdb, err := redis.Open(ctx, app.cfg.RedisURL)
	if err != nil {
		return err
	}
	app.rdb = rdb
	app.counters = redis.NewCounters(rdb, redis.DefaultKeyPrefix)
	app.logger.Info("login attempt counters kept in redis")
	return nil
}

func (app *Application) initMailer() {
	if app.cfg.ResendAPIKey == "" {
		app.mailer = mail.LogMailer{}
		app.logger.Warn("WEDDING_RESEND_API_KEY not set, emails will only be logged")
		return
	}
	app.mailer = mail.NewResend(app.cfg.ResendAPIKey, app.cfg.MailFrom)
}

func (app *Application) initServices() {
	app.inviteService = &service.InviteService{Store: app.db}
	app.rsvpService = &service.RSVPService{Store: app.db}
	app.catalogService = &service.CatalogService{Store: app.db}
	app.settingsService = &service.SettingsService{Store: app.db}
	app.templateService = &service.TemplateService{Store: app.db}
	app.reportService = &service.ReportService{Store: app.db}
	app.emailService = &service.EmailService{
		Store:   app.db,
		Mailer:  app.mailer,
		BaseURL: app.cfg.BaseURL,
	}
	app.adminService = &service.AdminService{
		Store:      app.db,
		Hasher:     app.hasher,
		Signer:     app.tokens,
		Verifier:   app.tokens,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
		Limiter: &service.LoginLimiter{
			Counters:    app.counters,
			MaxAttempts: app.cfg.LoginMaxAttempts,
			Window:      app.cfg.LoginWindow,
		},
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	// Redis expires its own keys; only the in-memory counters need a sweep.
	if sweeper, ok := app.counters.(service.Sweeper); ok {
		app.housekeepingService.Counters = sweeper
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.RSVPService = app.rsvpService
	router.InviteService = app.inviteService
	router.EmailService = app.emailService
	router.AdminService = app.adminService
	router.CatalogService = app.catalogService
	router.SettingsService = app.settingsService
	router.TemplateService = app.templateService
	router.ReportService = app.reportService
	if pinger, ok := app.counters.(httpapi.Pinger); ok {
		router.Counters = pinger
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              app.cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

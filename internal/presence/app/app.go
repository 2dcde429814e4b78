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

	"github.com/aussiebroadwan/rollcall/internal/presence/authz"
	"github.com/aussiebroadwan/rollcall/internal/presence/events"
	"github.com/aussiebroadwan/rollcall/internal/presence/geo"
	httpapi "github.com/aussiebroadwan/rollcall/internal/presence/http"
	"github.com/aussiebroadwan/rollcall/internal/presence/service"
	"github.com/aussiebroadwan/rollcall/internal/presence/store/drivers/sqlite"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/jwtx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the presence service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         *sqlite.Store
	keyManager *jwtx.KeyManager
	table      *authz.Table
	publisher  events.Publisher
	geoDB      *geo.CityDB // nil without GEOIP_CITY_DB

	// Services
	presenceService  *service.PresenceService
	auditService     *service.AuditService
	locationService  *service.LocationService
	userService      *service.UserService
	sessionService   *service.SessionService
	mfaService       *service.MFAService
	bootstrapService *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "rollcall",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	policy, err := service.ParseCheckInPolicy(cfg.CheckInPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid PRESENCE_CHECKIN_POLICY: %w", err)
	}

	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keyManager = keyManager

	app.table, err = authz.Compile(authz.DefaultConfig())
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to compile access rules: %w", err)
	}

	if err := app.initIntegrations(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices(policy)

	if err := app.bootstrap(); err != nil {
		_ = app.closeResources()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Run starts the HTTP server and blocks until a shutdown signal or a
// server error.
func (app *Application) Run() error {
	app.logger.Info("starting rollcall", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.closeResources()
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down rollcall...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.closeResources(); err != nil {
		return err
	}

	app.logger.Info("rollcall stopped")
	return nil
}

// closeResources releases everything opened by New. The publisher is
// flushed before the database closes.
func (app *Application) closeResources() error {
	if err := app.publisher.Close(); err != nil {
		app.logger.Error("error closing event publisher", "error", err)
	}
	if app.geoDB != nil {
		if err := app.geoDB.Close(); err != nil {
			app.logger.Error("error closing geoip database", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initIntegrations sets up the optional GeoIP lookup and event publisher.
func (app *Application) initIntegrations() error {
	if app.cfg.GeoIPCityDB != "" {
		cityDB, err := geo.OpenCityDB(app.cfg.GeoIPCityDB)
		if err != nil {
			return fmt.Errorf("failed to open geoip database: %w", err)
		}
		app.geoDB = cityDB
		app.logger.Info("geoip enrichment enabled", "file", app.cfg.GeoIPCityDB)
	}

	if app.cfg.KafkaBroker != "" {
		app.publisher = events.NewKafkaPublisher(events.KafkaConfig{
			Broker:   app.cfg.KafkaBroker,
			Topic:    app.cfg.KafkaTopic,
			Username: app.cfg.KafkaUsername,
			Password: app.cfg.KafkaPassword,
		})
		app.logger.Info("presence events enabled", "broker", app.cfg.KafkaBroker, "topic", app.cfg.KafkaTopic)
	} else {
		app.publisher = events.Nop{}
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices(policy service.CheckInPolicy) {
	var resolver geo.Resolver = geo.Nop{}
	if app.geoDB != nil {
		resolver = app.geoDB
	}

	app.presenceService = &service.PresenceService{
		Store:  app.db,
		Policy: policy,
		Events: app.publisher,
		Geo:    resolver,
	}
	app.auditService = &service.AuditService{Store: app.db}
	app.locationService = &service.LocationService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.sessionService = &service.SessionService{
		Store:  app.db,
		Signer: app.keyManager,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}
	app.mfaService = &service.MFAService{Store: app.db, Issuer: "Rollcall"}
	app.bootstrapService = &service.BootstrapService{Store: app.db, Users: app.userService}
}

// bootstrap creates the first administrator when BOOTSTRAP_ADMIN_EMAIL is
// set and the database has no users.
func (app *Application) bootstrap() error {
	if app.cfg.BootstrapAdminEmail == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = slogx.WithContext(ctx, app.logger)

	if _, err := app.bootstrapService.EnsureAdmin(ctx, service.BootstrapAdmin{
		Name:     app.cfg.BootstrapAdminName,
		Email:    app.cfg.BootstrapAdminEmail,
		Password: app.cfg.BootstrapAdminPassword,
	}); err != nil {
		return fmt.Errorf("failed to bootstrap administrator: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		app.table,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.PresenceService = app.presenceService
	router.AuditService = app.auditService
	router.LocationService = app.locationService
	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.MFAService = app.mfaService
	router.Cookie.Secure = app.cfg.CookieSecure
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

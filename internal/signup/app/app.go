package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/filestore"
	httpapi "github.com/aussiebroadwan/signup/internal/signup/http"
	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/internal/signup/store"
	"github.com/aussiebroadwan/signup/internal/signup/store/drivers/mongodb"
	"github.com/aussiebroadwan/signup/internal/signup/store/drivers/postgres"
	"github.com/aussiebroadwan/signup/internal/signup/store/drivers/sqlite"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	startupTimeout = 30 * time.Second
)

// Application encapsulates the signup service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db    store.Store
	files filestore.Store
	namer filestore.Namer

	// Services
	registrationService *service.RegistrationService
	fileService         *service.FileService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "signup-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initFileStore(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.files.Close()
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("signup service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
		"storage", app.cfg.StorageBackend,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down signup service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.files.Close(); err != nil {
		app.logger.Error("error closing file store", "error", err)
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("signup service stopped")
	return nil
}

// initDatabase opens the configured record store and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case DriverSQLite:
		dsn := app.cfg.DatabaseURL
		if !strings.HasPrefix(dsn, "file:") {
			dsn = sqlite.DSN(dsn)
		}
		db, err = sqlite.NewStore(dsn)
	case DriverPostgres:
		db, err = openPostgres(ctx, app.cfg.DatabaseURL)
	case DriverMongo:
		db, err = mongodb.NewStore(ctx, app.cfg.DatabaseURL)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", app.cfg.DatabaseDriver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// openPostgres opens the pool and checks the server answers, sql.Open alone
// never dials.
func openPostgres(ctx context.Context, dsn string) (*postgres.Store, error) {
	pg, err := postgres.NewStore(dsn)
	if err != nil {
		return nil, err
	}
	if err := pg.Ping(ctx); err != nil {
		_ = pg.Close()
		return nil, err
	}
	return pg, nil
}

// initFileStore opens the configured file store backend
func (app *Application) initFileStore(ctx context.Context) error {
	switch app.cfg.StorageBackend {
	case StorageS3:
		s3store, err := filestore.NewS3Store(ctx, app.cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize s3 file store: %w", err)
		}
		if err := s3store.Ping(ctx); err != nil {
			return fmt.Errorf("s3 bucket %q is not reachable: %w", app.cfg.S3.Bucket, err)
		}
		app.files = s3store
		app.logger.Info("using s3 file store", "bucket", app.cfg.S3.Bucket)

	default:
		local, err := filestore.NewLocalStore(app.cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to initialize upload directory: %w", err)
		}
		app.files = local
		app.logger.Info("using local file store", "dir", local.Dir())
	}

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	namer, err := filestore.NewNamer(app.cfg.Naming)
	if err != nil {
		return err
	}
	app.namer = namer

	app.registrationService = &service.RegistrationService{
		Store:          app.db,
		Files:          app.files,
		Namer:          app.namer,
		CleanupOrphans: app.cfg.CleanupOrphans,
	}
	app.fileService = &service.FileService{Files: app.files}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.files,
		app.logger,
	)

	// Wire services to router
	router.RegistrationService = app.registrationService
	router.FileService = app.fileService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

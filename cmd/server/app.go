package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory backend
	db *sql.DB

	taskStore store.TaskStore
	userStore store.UserStore
}

// newApplication creates the stores for the configured backend.
// The postgres backend connects, migrates the schema, and only then returns.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		app.taskStore = memory.NewTaskStore()
		app.userStore = memory.NewUserStore()

	case config.BackendPostgres:
		db, err := setupAppDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		app.db = db

		if err := postgres.Migrate(ctx, db, postgres.MigrateUp, logger); err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}

		app.taskStore = postgres.NewPostgresTaskStore(db, logger)
		app.userStore = postgres.NewPostgresUserStore(db, logger)

	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}

	logger.Info("Application initialized successfully",
		slog.String("store_backend", cfg.Store.Backend))
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("Application shutdown completed")
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
)

// runMigrations executes a single goose command against the configured database.
// It is called from run() when the -migrate flag is set.
func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("database URL is empty: set TASKBOARD_DATABASE_URL")
	}

	// Correlate every log line of this migration run
	migrationLogger := logger.With(slog.String("correlation_id", uuid.NewString()))

	db, err := setupAppDatabase(ctx, cfg.Database, migrationLogger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			migrationLogger.Error("Error closing database connection",
				slog.String("error", closeErr.Error()))
		}
	}()

	migrationLogger.Info("Starting migration operation", slog.String("command", command))
	if err := postgres.Migrate(ctx, db, command, migrationLogger); err != nil {
		return err
	}
	migrationLogger.Info("Migration operation completed", slog.String("command", command))

	return nil
}

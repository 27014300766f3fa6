// Package main implements the entry point for the Taskboard API server,
// a JSON REST service for tasks and users backed by memory or PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
)

// main is the entry point for the taskboard-api server.
// It loads configuration, sets up logging, and then either runs a migration
// command (with -migrate) or serves HTTP until interrupted.
func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("taskboard-api exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run holds main's logic so it can return errors instead of exiting.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("store_backend", cfg.Store.Backend))

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, log, migrateCmd)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

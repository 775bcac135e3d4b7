// Package main implements the entry point for the job tracker API server,
// which manages user accounts and their job-application records.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/config"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run loads configuration, wires dependencies and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				appLogger.Error("Failed to close database connection", "error", closeErr)
			}
		}()
		return runMigrations(db, migrateCmd, appLogger)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	router := app.setupRouter()
	return app.startHTTPServer(context.Background(), router)
}

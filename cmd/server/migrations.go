package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/platform/postgres"
)

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

// Printf implements the goose.Logger Printf method by forwarding messages
// to slog.Info.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "component", "migrations")
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error
// messages to slog.Error. It does not exit; the caller handles the
// returned error.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "migrations")
}

// runMigrations executes the given migration command ("up", "down" or
// "status") against the connected database using the embedded migration
// files.
func runMigrations(db *sql.DB, command string, logger *slog.Logger) error {
	migrationLogger := logger.With(
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation")

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(postgres.MigrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(db, postgres.MigrationsDir)
	case "down":
		err = goose.Down(db, postgres.MigrationsDir)
	case "status":
		err = goose.Status(db, postgres.MigrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	migrationLogger.Info("Migration operation completed",
		"duration", time.Since(startTime).String())
	return nil
}

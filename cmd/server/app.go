package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/config"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/platform/postgres"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/service/auth"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	jobStore  store.JobStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.jobStore = postgres.NewPostgresJobStore(db, logger)

	return app, nil
}

// cleanup releases resources held by the application.
// It is called during graceful shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		} else {
			app.logger.Info("Database connection closed")
		}
	}
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/api"
	apiMiddleware "github.com/Sharvani-123/Job-Application-Tracker/internal/api/middleware"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		&app.config.Auth,
		app.logger,
	)
	jobHandler := api.NewJobHandler(app.jobStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/profile", authHandler.Profile)

			// Job application endpoints. The stats route must be
			// registered before the {id} routes so "stats" is not
			// parsed as a job ID.
			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", jobHandler.List)
				r.Post("/", jobHandler.Create)
				r.Get("/stats", jobHandler.Stats)
				r.Get("/{id}", jobHandler.Get)
				r.Put("/{id}", jobHandler.Update)
				r.Delete("/{id}", jobHandler.Delete)
			})
		})
	})

	// Prometheus metrics endpoint
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

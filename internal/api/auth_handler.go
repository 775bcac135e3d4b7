package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/api/shared"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/config"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/platform/logger"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/service/auth"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	authConfig       *config.AuthConfig
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	authConfig *config.AuthConfig,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		authConfig:       authConfig,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles the POST /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Error("failed to create user", "error", err, "user_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles the POST /auth/login endpoint.
// An unknown email and a wrong password produce the same response so the
// two cases cannot be told apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("failed to get user by email", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	expiresAt := time.Now().
		Add(time.Duration(h.authConfig.TokenLifetimeMinutes) * time.Minute).
		UTC().
		Format(time.RFC3339)

	log.Info("user logged in", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userToResponse(user),
	})
}

// Profile handles the GET /auth/profile endpoint.
// The account is resolved from the bearer token validated by the auth
// middleware.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// The token was valid but the account no longer exists.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		log.Error("failed to get user by ID", "error", err, "user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

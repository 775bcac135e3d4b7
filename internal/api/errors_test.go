package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/service/auth"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, expected: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, expected: http.StatusUnauthorized},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "user not found", err: store.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "job not found", err: store.ErrJobNotFound, expected: http.StatusNotFound},
		{name: "duplicate email", err: store.ErrEmailExists, expected: http.StatusBadRequest},
		{name: "domain validation", err: domain.ErrJobCompanyEmpty, expected: http.StatusBadRequest},
		{name: "invalid ID", err: domain.ErrInvalidID, expected: http.StatusBadRequest},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("loading job: %w", store.ErrJobNotFound),
			expected: http.StatusNotFound,
		},
		{
			name: "validation error struct",
			err:  domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID),
			// ValidationError unwraps to its underlying sentinel
			expected: http.StatusBadRequest,
		},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
		{name: "nil error", err: nil, expected: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "expired token", err: auth.ErrExpiredToken, expected: "Token expired"},
		{name: "invalid token", err: auth.ErrInvalidToken, expected: "Invalid token"},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expected: "Invalid credentials"},
		{name: "job not found", err: store.ErrJobNotFound, expected: "Job not found"},
		{
			name:     "wrapped job not found",
			err:      fmt.Errorf("loading job: %w", store.ErrJobNotFound),
			expected: "Job not found",
		},
		{name: "duplicate email", err: store.ErrEmailExists, expected: "Email already registered"},
		{name: "unknown error", err: errors.New("pq: connection reset"), expected: "An unexpected error occurred"},
		{name: "nil error", err: nil, expected: "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}

	t.Run("domain validation messages are returned to the user", func(t *testing.T) {
		t.Parallel()
		msg := GetSafeErrorMessage(domain.ErrPasswordTooShort)
		assert.Contains(t, msg, "6 characters")
	})

	t.Run("never leaks internal detail", func(t *testing.T) {
		t.Parallel()
		err := errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)
		msg := GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "pq:")
		assert.NotContains(t, msg, "users_email_key")
	})
}

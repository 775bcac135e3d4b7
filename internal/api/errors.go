package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/service/auth"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors (missing and not-owned are the same case)
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate registration
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrJobNotFound):
		return "Job not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrInvalidEntity), isDomainValidationError(err):
		// Domain validation messages are written for users and carry no
		// internal detail, so they can be returned as-is.
		return validationMessage(err)

	default:
		return "An unexpected error occurred"
	}
}

// isDomainValidationError reports whether the error is one of the domain's
// field validation sentinels.
func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyName,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrEmptyPassword,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrJobCompanyEmpty,
		domain.ErrJobRoleEmpty,
		domain.ErrJobStatusInvalid,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// validationMessage extracts the innermost user-facing validation message.
func validationMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrEmptyName,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrEmptyPassword,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrJobCompanyEmpty,
		domain.ErrJobRoleEmpty,
		domain.ErrJobStatusInvalid,
	} {
		if errors.Is(err, sentinel) {
			return capitalize(sentinel.Error())
		}
	}
	return "Invalid request data"
}

// capitalize uppercases the first byte of an ASCII message.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SanitizeValidationError removes sensitive details from validator errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

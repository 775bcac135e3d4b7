package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length bounds. The upper bound is bcrypt's practical input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// User represents a registered account in the job tracker.
// It contains essential profile information and authentication details.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with the given name, email and password.
// It generates a new UUID for the user ID, normalizes the email, and sets
// the creation/update timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail lowercases and trims an email address so that lookups and
// the uniqueness constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// During registration we validate the provided plaintext password.
	// Users loaded from the database carry only the hash.
	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else {
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
// It checks for a non-empty local part and a domain containing a dot,
// which covers the malformed inputs the API needs to reject.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	if strings.IndexByte(email[atIndex+1:], '@') != -1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	if dotIndex <= 0 || dotIndex == len(domainPart)-1 {
		return false
	}

	return true
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller, and the bcrypt cost to use when
// hashing passwords. A cost of 0 selects bcrypt.DefaultCost.
func NewPostgresUserStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create.
// It validates the user, hashes the plaintext password with bcrypt, and
// inserts the row. The plaintext is cleared from the struct on success and
// is never written to the database or the logs.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if user.Password == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hashed)

	query := `
		INSERT INTO users (id, name, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.HashedPassword, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		s.logger.Error("failed to insert user", "error", err, "user_id", user.ID)
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.Password = ""
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, name, email, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail.
// The lookup is performed against the normalized form of the email so that
// it matches the case-insensitive uniqueness guarantee.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, hashed_password, created_at, updated_at
		FROM users
		WHERE email = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)))
}

// scanUser maps a single user row into a domain.User.
func (s *PostgresUserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}

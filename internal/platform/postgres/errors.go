package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const uniqueViolationCode = "23505" // PostgreSQL unique violation error code

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation. This is used to detect when an operation fails due
// to a unique constraint, such as duplicate email addresses.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

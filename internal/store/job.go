package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
)

// JobStore defines the interface for job-application persistence.
//
// Every read and write takes the owning user's ID as an explicit argument
// and is scoped to that user; there is no unscoped variant a caller could
// reach for by mistake. A record that exists but belongs to a different
// user behaves exactly like a record that does not exist.
type JobStore interface {
	// Create saves a new job application to the store.
	// The job's UserID must already be set to the owning user.
	Create(ctx context.Context, job *domain.JobApplication) error

	// List returns all job applications owned by userID, newest-created
	// first. When status is non-empty the result is narrowed to that
	// status. Returns an empty slice when the user owns no matching jobs.
	List(ctx context.Context, userID uuid.UUID, status domain.JobStatus) ([]*domain.JobApplication, error)

	// GetByID retrieves the job application with the given ID, but only if
	// it is owned by userID. Returns ErrJobNotFound otherwise.
	GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.JobApplication, error)

	// Update persists the given job application, but only if a record with
	// its ID owned by userID exists. Returns ErrJobNotFound otherwise.
	Update(ctx context.Context, userID uuid.UUID, job *domain.JobApplication) error

	// Delete removes the job application with the given ID, but only if it
	// is owned by userID. Returns ErrJobNotFound otherwise.
	Delete(ctx context.Context, userID, jobID uuid.UUID) error

	// CountByStatus returns the number of jobs owned by userID for each
	// status. Statuses with no jobs are present in the map with a zero
	// count.
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.JobStatus]int, error)
}

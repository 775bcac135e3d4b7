package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// PostgresJobStore implements the store.JobStore interface
// using a PostgreSQL database as the storage backend.
//
// Every query includes the owning user's ID in its WHERE clause, so a job
// belonging to a different user is indistinguishable from one that does
// not exist.
type PostgresJobStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresJobStore creates a new PostgreSQL implementation of the JobStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewPostgresJobStore(db store.DBTX, logger *slog.Logger) *PostgresJobStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresJobStore{
		db:     db,
		logger: logger.With(slog.String("component", "job_store")),
	}
}

// Ensure PostgresJobStore implements store.JobStore interface
var _ store.JobStore = (*PostgresJobStore)(nil)

const jobColumns = `id, user_id, company, role, status, applied_date, interview_date, notes, created_at, updated_at`

// Create implements store.JobStore.Create.
func (s *PostgresJobStore) Create(ctx context.Context, job *domain.JobApplication) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.db.ExecContext(ctx, query,
		job.ID, job.UserID, job.Company, job.Role, string(job.Status),
		job.AppliedDate, job.InterviewDate, nullableString(job.Notes),
		job.CreatedAt, job.UpdatedAt)
	if err != nil {
		s.logger.Error("failed to insert job", "error", err, "job_id", job.ID, "user_id", job.UserID)
		return fmt.Errorf("failed to insert job: %w", err)
	}

	return nil
}

// List implements store.JobStore.List.
// Results are ordered newest-created first. A non-empty status narrows the
// result to that status.
func (s *PostgresJobStore) List(
	ctx context.Context,
	userID uuid.UUID,
	status domain.JobStatus,
) ([]*domain.JobApplication, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE user_id = $1`
	args := []any{userID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, string(status))
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	jobs := make([]*domain.JobApplication, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// GetByID implements store.JobStore.GetByID.
func (s *PostgresJobStore) GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.JobApplication, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1 AND user_id = $2`

	job, err := scanJob(s.db.QueryRowContext(ctx, query, jobID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// Update implements store.JobStore.Update.
// The full record is written; callers are expected to have loaded the job
// through GetByID and applied a validated partial update to it.
func (s *PostgresJobStore) Update(ctx context.Context, userID uuid.UUID, job *domain.JobApplication) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE jobs
		SET company = $1, role = $2, status = $3, applied_date = $4,
		    interview_date = $5, notes = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9`

	result, err := s.db.ExecContext(ctx, query,
		job.Company, job.Role, string(job.Status), job.AppliedDate,
		job.InterviewDate, nullableString(job.Notes), job.UpdatedAt,
		job.ID, userID)
	if err != nil {
		s.logger.Error("failed to update job", "error", err, "job_id", job.ID, "user_id", userID)
		return fmt.Errorf("failed to update job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return store.ErrJobNotFound
	}

	return nil
}

// Delete implements store.JobStore.Delete.
func (s *PostgresJobStore) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	query := `DELETE FROM jobs WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, jobID, userID)
	if err != nil {
		s.logger.Error("failed to delete job", "error", err, "job_id", jobID, "user_id", userID)
		return fmt.Errorf("failed to delete job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrJobNotFound
	}

	return nil
}

// CountByStatus implements store.JobStore.CountByStatus.
// Every known status is present in the result, zero-valued when the user
// has no jobs with that status.
func (s *PostgresJobStore) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.JobStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM jobs
		WHERE user_id = $1
		GROUP BY status`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	counts := make(map[domain.JobStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan job count: %w", err)
		}
		counts[domain.JobStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job counts: %w", err)
	}

	return counts, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning logic.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanJob maps a single job row into a domain.JobApplication.
func scanJob(row rowScanner) (*domain.JobApplication, error) {
	var job domain.JobApplication
	var status string
	var interviewDate sql.NullTime
	var notes sql.NullString

	err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.Company,
		&job.Role,
		&status,
		&job.AppliedDate,
		&interviewDate,
		&notes,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	job.Status = domain.JobStatus(status)
	if interviewDate.Valid {
		t := interviewDate.Time
		job.InterviewDate = &t
	}
	if notes.Valid {
		job.Notes = notes.String
	}

	return &job, nil
}

// nullableString converts an empty string to a SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

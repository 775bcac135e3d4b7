package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job-specific validation errors
var (
	// ErrJobIDEmpty is returned when a job ID is empty or nil.
	ErrJobIDEmpty = errors.New("job ID cannot be empty")

	// ErrJobUserIDEmpty is returned when a job's owning user ID is empty or nil.
	ErrJobUserIDEmpty = errors.New("job user ID cannot be empty")

	// ErrJobCompanyEmpty is returned when a job's company is empty.
	ErrJobCompanyEmpty = errors.New("company cannot be empty")

	// ErrJobRoleEmpty is returned when a job's role is empty.
	ErrJobRoleEmpty = errors.New("role cannot be empty")

	// ErrJobStatusInvalid is returned when a job's status is not one of the
	// known status values.
	ErrJobStatusInvalid = errors.New("invalid job status")
)

// JobStatus is the closed set of states a tracked application can be in.
// The field is descriptive rather than a guarded workflow: any status may
// be set to any other status at any time.
type JobStatus string

// Valid job statuses.
const (
	StatusApplied   JobStatus = "applied"
	StatusInterview JobStatus = "interview"
	StatusOffer     JobStatus = "offer"
	StatusRejected  JobStatus = "rejected"
)

// AllStatuses lists every valid status, in display order.
var AllStatuses = []JobStatus{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// IsValid reports whether the status is one of the known values.
func (s JobStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// JobApplication represents one tracked job-search record owned by exactly
// one user. The owning user is referenced by ID only; a job has no meaning
// outside that relationship.
type JobApplication struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	Company       string     `json:"company"`
	Role          string     `json:"role"`
	Status        JobStatus  `json:"status"`
	AppliedDate   time.Time  `json:"appliedDate"`
	InterviewDate *time.Time `json:"interviewDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// NewJobApplication creates a new JobApplication owned by the given user.
// Status defaults to "applied" and the applied date to the current time
// when not provided. Returns an error if validation fails.
func NewJobApplication(
	userID uuid.UUID,
	company, role string,
	status JobStatus,
	appliedDate *time.Time,
	interviewDate *time.Time,
	notes string,
) (*JobApplication, error) {
	now := time.Now().UTC()

	if status == "" {
		status = StatusApplied
	}

	applied := now
	if appliedDate != nil {
		applied = appliedDate.UTC()
	}

	job := &JobApplication{
		ID:            uuid.New(),
		UserID:        userID,
		Company:       strings.TrimSpace(company),
		Role:          strings.TrimSpace(role),
		Status:        status,
		AppliedDate:   applied,
		InterviewDate: interviewDate,
		Notes:         strings.TrimSpace(notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate checks if the JobApplication has valid data.
// Returns an error if any field fails validation.
func (j *JobApplication) Validate() error {
	if j.ID == uuid.Nil {
		return ErrJobIDEmpty
	}

	if j.UserID == uuid.Nil {
		return ErrJobUserIDEmpty
	}

	if j.Company == "" {
		return ErrJobCompanyEmpty
	}

	if j.Role == "" {
		return ErrJobRoleEmpty
	}

	if !j.Status.IsValid() {
		return ErrJobStatusInvalid
	}

	return nil
}

// JobApplicationUpdate describes a partial update to a JobApplication.
// Nil fields are left unchanged. ClearInterviewDate and ClearNotes allow
// the optional fields to be removed rather than merely replaced.
type JobApplicationUpdate struct {
	Company            *string
	Role               *string
	Status             *JobStatus
	AppliedDate        *time.Time
	InterviewDate      *time.Time
	ClearInterviewDate bool
	Notes              *string
	ClearNotes         bool
}

// Apply merges the update into the job, re-validating the result against
// the same constraints as creation. The receiver is only modified when the
// merged record is valid. The UpdatedAt timestamp is refreshed on success.
func (j *JobApplication) Apply(u JobApplicationUpdate) error {
	updated := *j

	if u.Company != nil {
		updated.Company = strings.TrimSpace(*u.Company)
	}
	if u.Role != nil {
		updated.Role = strings.TrimSpace(*u.Role)
	}
	if u.Status != nil {
		updated.Status = *u.Status
	}
	if u.AppliedDate != nil {
		updated.AppliedDate = u.AppliedDate.UTC()
	}
	if u.ClearInterviewDate {
		updated.InterviewDate = nil
	} else if u.InterviewDate != nil {
		updated.InterviewDate = u.InterviewDate
	}
	if u.ClearNotes {
		updated.Notes = ""
	} else if u.Notes != nil {
		updated.Notes = strings.TrimSpace(*u.Notes)
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*j = updated
	return nil
}

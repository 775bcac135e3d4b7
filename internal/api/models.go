package api

import (
	"encoding/json"
	"time"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the public profile of an account.
// It never carries the password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	// Token is the signed JWT used as the bearer credential
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires
	ExpiresAt string `json:"expiresAt,omitempty"`

	User UserResponse `json:"user"`
}

// CreateJobRequest defines the payload for creating a job application.
type CreateJobRequest struct {
	Company       string     `json:"company"       validate:"required"`
	Role          string     `json:"role"          validate:"required"`
	Status        string     `json:"status"        validate:"omitempty,oneof=applied interview offer rejected"`
	AppliedDate   *time.Time `json:"appliedDate"`
	InterviewDate *time.Time `json:"interviewDate"`
	Notes         string     `json:"notes"`
}

// UpdateJobRequest defines the payload for partially updating a job
// application. Absent fields are left unchanged; an explicit JSON null for
// interviewDate or notes clears the field.
type UpdateJobRequest struct {
	Company       *string    `validate:"omitempty,min=1"`
	Role          *string    `validate:"omitempty,min=1"`
	Status        *string    `validate:"omitempty,oneof=applied interview offer rejected"`
	AppliedDate   *time.Time `validate:"-"`
	InterviewDate *time.Time `validate:"-"`
	Notes         *string    `validate:"-"`

	// Presence flags distinguishing "absent" from "null" in the payload.
	interviewDateSet bool
	notesSet         bool
}

// UnmarshalJSON records which keys were present in the payload so that an
// explicit null can clear an optional field while an absent key leaves it
// unchanged.
func (r *UpdateJobRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["company"]; ok {
		if err := json.Unmarshal(v, &r.Company); err != nil {
			return err
		}
	}
	if v, ok := raw["role"]; ok {
		if err := json.Unmarshal(v, &r.Role); err != nil {
			return err
		}
	}
	if v, ok := raw["status"]; ok {
		if err := json.Unmarshal(v, &r.Status); err != nil {
			return err
		}
	}
	if v, ok := raw["appliedDate"]; ok {
		if err := json.Unmarshal(v, &r.AppliedDate); err != nil {
			return err
		}
	}
	if v, ok := raw["interviewDate"]; ok {
		r.interviewDateSet = true
		if err := json.Unmarshal(v, &r.InterviewDate); err != nil {
			return err
		}
	}
	if v, ok := raw["notes"]; ok {
		r.notesSet = true
		if err := json.Unmarshal(v, &r.Notes); err != nil {
			return err
		}
	}

	return nil
}

// toUpdate converts the request into a domain partial update.
func (r *UpdateJobRequest) toUpdate() domain.JobApplicationUpdate {
	update := domain.JobApplicationUpdate{
		Company:     r.Company,
		Role:        r.Role,
		AppliedDate: r.AppliedDate,
	}

	if r.Status != nil {
		status := domain.JobStatus(*r.Status)
		update.Status = &status
	}

	if r.interviewDateSet {
		if r.InterviewDate == nil {
			update.ClearInterviewDate = true
		} else {
			update.InterviewDate = r.InterviewDate
		}
	}

	if r.notesSet {
		if r.Notes == nil {
			update.ClearNotes = true
		} else {
			update.Notes = r.Notes
		}
	}

	return update
}

// JobResponse represents the response data for a job application.
type JobResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Company       string     `json:"company"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	AppliedDate   time.Time  `json:"appliedDate"`
	InterviewDate *time.Time `json:"interviewDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// JobStatsResponse represents per-status counts for the requesting account.
type JobStatsResponse struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// DeleteResponse confirms a successful deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

// userToResponse converts a domain.User to its public profile.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

// jobToResponse converts a domain.JobApplication to a JobResponse.
func jobToResponse(job *domain.JobApplication) JobResponse {
	return JobResponse{
		ID:            job.ID.String(),
		UserID:        job.UserID.String(),
		Company:       job.Company,
		Role:          job.Role,
		Status:        string(job.Status),
		AppliedDate:   job.AppliedDate,
		InterviewDate: job.InterviewDate,
		Notes:         job.Notes,
		CreatedAt:     job.CreatedAt,
		UpdatedAt:     job.UpdatedAt,
	}
}

// jobsToResponse converts a slice of jobs, preserving order.
func jobsToResponse(jobs []*domain.JobApplication) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, jobToResponse(job))
	}
	return out
}

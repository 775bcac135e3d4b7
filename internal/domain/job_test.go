package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewJobApplicationDefaults(t *testing.T) {
	userID := uuid.New()

	job, err := NewJobApplication(userID, "Acme", "Engineer", "", nil, nil, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if job.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if job.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, job.UserID)
	}

	if job.Status != StatusApplied {
		t.Errorf("Expected default status %q, got %q", StatusApplied, job.Status)
	}

	if job.AppliedDate.IsZero() {
		t.Error("Expected applied date to default to creation time")
	}

	if job.InterviewDate != nil {
		t.Error("Expected no interview date by default")
	}
}

func TestNewJobApplicationValidation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		userID  uuid.UUID
		company string
		role    string
		status  JobStatus
		wantErr error
	}{
		{"missing user", uuid.Nil, "Acme", "Engineer", "", ErrJobUserIDEmpty},
		{"empty company", userID, "", "Engineer", "", ErrJobCompanyEmpty},
		{"whitespace company", userID, "   ", "Engineer", "", ErrJobCompanyEmpty},
		{"empty role", userID, "Acme", "", "", ErrJobRoleEmpty},
		{"unknown status", userID, "Acme", "Engineer", "ghosted", ErrJobStatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJobApplication(tt.userID, tt.company, tt.role, tt.status, nil, nil, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestJobStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.IsValid() {
			t.Errorf("Expected status %q to be valid", s)
		}
	}

	for _, s := range []JobStatus{"", "ghosted", "Applied", "APPLIED"} {
		if s.IsValid() {
			t.Errorf("Expected status %q to be invalid", s)
		}
	}
}

func TestJobApplicationApply(t *testing.T) {
	userID := uuid.New()
	job, err := NewJobApplication(userID, "Acme", "Engineer", "", nil, nil, "initial notes")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newStatus := StatusInterview
	interview := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)

	err = job.Apply(JobApplicationUpdate{
		Status:        &newStatus,
		InterviewDate: &interview,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if job.Status != StatusInterview {
		t.Errorf("Expected status %q, got %q", StatusInterview, job.Status)
	}

	if job.InterviewDate == nil || !job.InterviewDate.Equal(interview) {
		t.Errorf("Expected interview date %v, got %v", interview, job.InterviewDate)
	}

	// Unchanged fields are preserved.
	if job.Company != "Acme" || job.Role != "Engineer" || job.Notes != "initial notes" {
		t.Error("Expected untouched fields to be preserved")
	}
}

func TestJobApplicationApplyInvalidLeavesJobUnchanged(t *testing.T) {
	userID := uuid.New()
	job, err := NewJobApplication(userID, "Acme", "Engineer", "", nil, nil, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	empty := ""
	badStatus := JobStatus("ghosted")

	err = job.Apply(JobApplicationUpdate{Company: &empty, Status: &badStatus})
	if !errors.Is(err, ErrJobCompanyEmpty) {
		t.Fatalf("Expected error %v, got %v", ErrJobCompanyEmpty, err)
	}

	if job.Company != "Acme" || job.Status != StatusApplied {
		t.Error("Expected job to be unchanged after failed update")
	}
}

func TestJobApplicationApplyClearsOptionalFields(t *testing.T) {
	userID := uuid.New()
	interview := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	job, err := NewJobApplication(userID, "Acme", "Engineer", StatusInterview, nil, &interview, "call at 10")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err = job.Apply(JobApplicationUpdate{ClearInterviewDate: true, ClearNotes: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if job.InterviewDate != nil {
		t.Errorf("Expected interview date to be cleared, got %v", job.InterviewDate)
	}

	if job.Notes != "" {
		t.Errorf("Expected notes to be cleared, got %q", job.Notes)
	}
}

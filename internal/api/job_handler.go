// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/api/shared"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/platform/logger"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// JobHandler handles job-application HTTP requests.
// Every operation resolves the authenticated user from the request context
// and passes it to the store as the mandatory ownership scope.
type JobHandler struct {
	jobStore store.JobStore
	logger   *slog.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobStore store.JobStore, logger *slog.Logger) *JobHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for JobHandler")
	}

	return &JobHandler{
		jobStore: jobStore,
		logger:   logger.With(slog.String("component", "job_handler")),
	}
}

// Create handles POST /jobs requests.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateJobRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	job, err := domain.NewJobApplication(
		userID,
		req.Company,
		req.Role,
		domain.JobStatus(req.Status),
		req.AppliedDate,
		req.InterviewDate,
		req.Notes,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.jobStore.Create(r.Context(), job); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("job created",
		slog.String("job_id", job.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, jobToResponse(job))
}

// List handles GET /jobs requests.
// An optional ?status= query parameter narrows the result to one status.
// Results are ordered newest-created first.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	status := domain.JobStatus(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
		return
	}

	jobs, err := h.jobStore.List(r.Context(), userID, status)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list jobs", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, jobsToResponse(jobs))
}

// Get handles GET /jobs/{id} requests.
// A record that exists but belongs to another account is reported as not
// found, identically to one that does not exist.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	jobID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Invalid job ID", err)
		return
	}

	job, err := h.jobStore.GetByID(r.Context(), userID, jobID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, jobToResponse(job))
}

// Update handles PUT /jobs/{id} requests.
// Any subset of the mutable fields may be supplied; changed fields are
// re-validated against the same constraints as creation.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	jobID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Invalid job ID", err)
		return
	}

	var req UpdateJobRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	job, err := h.jobStore.GetByID(r.Context(), userID, jobID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := job.Apply(req.toUpdate()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.jobStore.Update(r.Context(), userID, job); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("job updated",
		slog.String("job_id", job.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, jobToResponse(job))
}

// Delete handles DELETE /jobs/{id} requests.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	jobID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Invalid job ID", err)
		return
	}

	if err := h.jobStore.Delete(r.Context(), userID, jobID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("job deleted",
		slog.String("job_id", jobID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Message: "Job deleted"})
}

// Stats handles GET /jobs/stats requests.
// It returns the number of jobs the account holds in each status.
func (h *JobHandler) Stats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	counts, err := h.jobStore.CountByStatus(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to load job stats", err)
		return
	}

	resp := JobStatsResponse{Counts: make(map[string]int, len(counts))}
	for status, count := range counts {
		resp.Counts[string(status)] = count
		resp.Total += count
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

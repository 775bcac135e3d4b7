package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
)

func TestUpdateJobRequestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("absent keys produce no change", func(t *testing.T) {
		t.Parallel()

		var req UpdateJobRequest
		require.NoError(t, json.Unmarshal([]byte(`{"status":"offer"}`), &req))

		update := req.toUpdate()
		require.NotNil(t, update.Status)
		assert.Equal(t, domain.StatusOffer, *update.Status)
		assert.Nil(t, update.Company)
		assert.Nil(t, update.Notes)
		assert.False(t, update.ClearNotes)
		assert.False(t, update.ClearInterviewDate)
	})

	t.Run("explicit null requests a clear", func(t *testing.T) {
		t.Parallel()

		var req UpdateJobRequest
		require.NoError(t, json.Unmarshal([]byte(`{"interviewDate":null,"notes":null}`), &req))

		update := req.toUpdate()
		assert.True(t, update.ClearInterviewDate)
		assert.True(t, update.ClearNotes)
		assert.Nil(t, update.InterviewDate)
		assert.Nil(t, update.Notes)
	})

	t.Run("provided values are set", func(t *testing.T) {
		t.Parallel()

		var req UpdateJobRequest
		payload := `{"company":"Globex","notes":"sent follow-up","interviewDate":"2026-08-20T14:00:00Z"}`
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		update := req.toUpdate()
		require.NotNil(t, update.Company)
		assert.Equal(t, "Globex", *update.Company)
		require.NotNil(t, update.Notes)
		assert.Equal(t, "sent follow-up", *update.Notes)
		require.NotNil(t, update.InterviewDate)
		assert.False(t, update.ClearInterviewDate)
		assert.False(t, update.ClearNotes)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		var req UpdateJobRequest
		assert.Error(t, json.Unmarshal([]byte(`{"appliedDate":"yesterday"}`), &req))
	})
}

//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/platform/postgres"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// openTestDB connects to the database named by JOBTRACK_TEST_DATABASE_URL.
// Tests are skipped when the variable is unset so the suite can run without
// a database. Each test runs inside a transaction that is rolled back.
func openTestDB(t *testing.T) *sql.Tx {
	t.Helper()

	url := os.Getenv("JOBTRACK_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("JOBTRACK_TEST_DATABASE_URL not set; skipping integration test")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tx, err := db.Begin()
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	return tx
}

func createTestUser(t *testing.T, tx *sql.Tx, email string) *domain.User {
	t.Helper()

	userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)
	user, err := domain.NewUser("Test User", email, "secret1")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func TestUserStoreCreateAndGet(t *testing.T) {
	tx := openTestDB(t)
	ctx := context.Background()
	userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)

	user, err := domain.NewUser("Ana", "Ana@X.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(ctx, user))

	// Plaintext must be cleared after create and the hash must verify.
	assert.Empty(t, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret1")))

	// Lookup is case-insensitive because the email is stored normalized.
	got, err := userStore.GetByEmail(ctx, "ANA@x.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "ana@x.com", got.Email)

	byID, err := userStore.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	tx := openTestDB(t)
	ctx := context.Background()
	userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)

	first, err := domain.NewUser("Ana", "ana@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(ctx, first))

	second, err := domain.NewUser("Other Ana", "ANA@X.COM", "secret2")
	require.NoError(t, err)
	err = userStore.Create(ctx, second)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestJobStoreOwnershipScoping(t *testing.T) {
	tx := openTestDB(t)
	ctx := context.Background()
	jobStore := postgres.NewPostgresJobStore(tx, nil)

	owner := createTestUser(t, tx, "owner@x.com")
	other := createTestUser(t, tx, "other@x.com")

	job, err := domain.NewJobApplication(owner.ID, "Acme", "Engineer", "", nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, jobStore.Create(ctx, job))

	// The owner sees the record.
	got, err := jobStore.GetByID(ctx, owner.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)

	// A different account gets NotFound for every operation.
	_, err = jobStore.GetByID(ctx, other.ID, job.ID)
	assert.ErrorIs(t, err, store.ErrJobNotFound)

	err = jobStore.Update(ctx, other.ID, got)
	assert.ErrorIs(t, err, store.ErrJobNotFound)

	err = jobStore.Delete(ctx, other.ID, job.ID)
	assert.ErrorIs(t, err, store.ErrJobNotFound)

	// The record is still there for the owner afterwards.
	_, err = jobStore.GetByID(ctx, owner.ID, job.ID)
	assert.NoError(t, err)
}

func TestJobStoreListOrderAndFilter(t *testing.T) {
	tx := openTestDB(t)
	ctx := context.Background()
	jobStore := postgres.NewPostgresJobStore(tx, nil)

	owner := createTestUser(t, tx, "owner@x.com")

	companies := []string{"First", "Second", "Third"}
	statuses := []domain.JobStatus{domain.StatusApplied, domain.StatusInterview, domain.StatusApplied}
	for i, company := range companies {
		job, err := domain.NewJobApplication(owner.ID, company, "Engineer", statuses[i], nil, nil, "")
		require.NoError(t, err)
		// Spread creation times so ordering is deterministic.
		job.CreatedAt = job.CreatedAt.Add(time.Duration(i) * time.Second)
		require.NoError(t, jobStore.Create(ctx, job))
	}

	all, err := jobStore.List(ctx, owner.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Third", all[0].Company)
	assert.Equal(t, "First", all[2].Company)

	applied, err := jobStore.List(ctx, owner.ID, domain.StatusApplied)
	require.NoError(t, err)
	require.Len(t, applied, 2)
	for _, job := range applied {
		assert.Equal(t, domain.StatusApplied, job.Status)
	}

	counts, err := jobStore.CountByStatus(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.StatusApplied])
	assert.Equal(t, 1, counts[domain.StatusInterview])
	assert.Equal(t, 0, counts[domain.StatusOffer])
	assert.Equal(t, 0, counts[domain.StatusRejected])
}

func TestJobStoreUpdateRoundTrip(t *testing.T) {
	tx := openTestDB(t)
	ctx := context.Background()
	jobStore := postgres.NewPostgresJobStore(tx, nil)

	owner := createTestUser(t, tx, "owner@x.com")

	job, err := domain.NewJobApplication(owner.ID, "Acme", "Engineer", "", nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, jobStore.Create(ctx, job))

	status := domain.StatusInterview
	interview := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	require.NoError(t, job.Apply(domain.JobApplicationUpdate{
		Status:        &status,
		InterviewDate: &interview,
	}))
	require.NoError(t, jobStore.Update(ctx, owner.ID, job))

	got, err := jobStore.GetByID(ctx, owner.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInterview, got.Status)
	require.NotNil(t, got.InterviewDate)
	assert.Equal(t, interview.Unix(), got.InterviewDate.Unix())
}

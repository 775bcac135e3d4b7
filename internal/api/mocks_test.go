package api

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sharvani-123/Job-Application-Tracker/internal/domain"
	"github.com/Sharvani-123/Job-Application-Tracker/internal/store"
)

// mockUserStore is an in-memory implementation of store.UserStore for
// handler tests. Hashing uses bcrypt.MinCost to keep tests fast.
type mockUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	// CreateFn, when set, overrides Create. Used to simulate store failures.
	CreateFn func(ctx context.Context, user *domain.User) error
}

var _ store.UserStore = (*mockUserStore)(nil)

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, user)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := user.Validate(); err != nil {
		return err
	}

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.HashedPassword = string(hash)
	user.Password = ""

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = domain.NormalizeEmail(email)
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// delete removes a user, simulating an account that no longer exists.
func (s *mockUserStore) delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// mockJobStore is an in-memory implementation of store.JobStore for handler
// tests. It enforces the same ownership scoping as the real store.
type mockJobStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*domain.JobApplication

	// ListFn, when set, overrides List. Used to simulate store failures.
	ListFn func(ctx context.Context, userID uuid.UUID, status domain.JobStatus) ([]*domain.JobApplication, error)
}

var _ store.JobStore = (*mockJobStore)(nil)

func newMockJobStore() *mockJobStore {
	return &mockJobStore{jobs: make(map[uuid.UUID]*domain.JobApplication)}
}

func (s *mockJobStore) Create(ctx context.Context, job *domain.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := job.Validate(); err != nil {
		return err
	}

	stored := *job
	s.jobs[job.ID] = &stored
	return nil
}

func (s *mockJobStore) List(
	ctx context.Context,
	userID uuid.UUID,
	status domain.JobStatus,
) ([]*domain.JobApplication, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]*domain.JobApplication, 0)
	for _, job := range s.jobs {
		if job.UserID != userID {
			continue
		}
		if status != "" && job.Status != status {
			continue
		}
		copied := *job
		jobs = append(jobs, &copied)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (s *mockJobStore) GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok || job.UserID != userID {
		return nil, store.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (s *mockJobStore) Update(ctx context.Context, userID uuid.UUID, job *domain.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.jobs[job.ID]
	if !ok || existing.UserID != userID {
		return store.ErrJobNotFound
	}

	if err := job.Validate(); err != nil {
		return err
	}

	stored := *job
	s.jobs[job.ID] = &stored
	return nil
}

func (s *mockJobStore) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok || job.UserID != userID {
		return store.ErrJobNotFound
	}
	delete(s.jobs, jobID)
	return nil
}

func (s *mockJobStore) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.JobStatus]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.JobStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}
	for _, job := range s.jobs {
		if job.UserID == userID {
			counts[job.Status]++
		}
	}
	return counts, nil
}

// seed inserts a job directly, bypassing Create, so tests can control
// timestamps for ordering assertions.
func (s *mockJobStore) seed(job *domain.JobApplication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *job
	s.jobs[job.ID] = &stored
}

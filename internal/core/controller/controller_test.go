package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/storage"
)

// ---------------------------------------------------------------------------
// Shared stubs
// ---------------------------------------------------------------------------

var nopLogger = zerolog.Nop()

func newMemoryStore() ports.KeyValueStore {
	return storage.NewFileStore("", nopLogger)
}

type stubAuthService struct {
	mu         sync.Mutex
	loginErr   error
	logoutErr  error
	refreshErr error
	logins     int
	logouts    int
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logins++
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &domain.Session{
		User:  domain.AuthUser{ID: "op-1", Email: email, Role: "admin"},
		Token: "tok-1",
	}, nil
}

func (s *stubAuthService) Logout(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logouts++
	return s.logoutErr
}

func (s *stubAuthService) CurrentUser(_ context.Context, token string) (*domain.AuthUser, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}
	return &domain.AuthUser{ID: "op-1"}, nil
}

func (s *stubAuthService) Refresh(_ context.Context, token string) (*domain.Session, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return &domain.Session{User: domain.AuthUser{ID: "op-1"}, Token: token + "-r"}, nil
}

// stubUserService answers from a fixed map. A non-nil gate channel makes
// ListUsers block until the channel is closed, for sequencing tests.
type stubUserService struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	stats     domain.UserStats
	listErr   error
	statsErr  error
	gate      chan struct{} // if set, next ListUsers blocks until closed
	getGate   chan struct{} // same, for the next GetUser
	listCalls int
	getCalls  int
}

func newStubUserService() *stubUserService {
	return &stubUserService{users: make(map[string]*domain.User)}
}

func (s *stubUserService) add(id string, status domain.UserStatus) {
	s.users[id] = &domain.User{ID: id, Username: "u" + id, Status: status}
}

func (s *stubUserService) ListUsers(_ context.Context, _ ports.UserFilters, page ports.PageParams) (*ports.UserPage, error) {
	s.mu.Lock()
	s.listCalls++
	gate := s.gate
	s.gate = nil
	err := s.listErr
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	page = page.Normalized()
	return &ports.UserPage{
		Users:      users,
		Total:      len(users),
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: ports.PageCount(len(users), page.Limit),
	}, nil
}

func (s *stubUserService) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	s.getCalls++
	gate := s.getGate
	s.getGate = nil
	u, ok := s.users[id]
	var clone domain.User
	if ok {
		clone = *u // snapshot before blocking
	}
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &clone, nil
}

func (s *stubUserService) UpdateUserStatus(_ context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Status = status
	clone := *u
	return &clone, nil
}

func (s *stubUserService) BlacklistUser(ctx context.Context, id string) (*domain.User, error) {
	return s.UpdateUserStatus(ctx, id, domain.StatusBlacklisted)
}

func (s *stubUserService) ActivateUser(ctx context.Context, id string) (*domain.User, error) {
	return s.UpdateUserStatus(ctx, id, domain.StatusActive)
}

func (s *stubUserService) UserStats(_ context.Context) (*domain.UserStats, error) {
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	stats := s.stats
	return &stats, nil
}

func (s *stubUserService) UserEvents(_ context.Context, _ string) ([]domain.StatusChange, error) {
	return nil, nil
}

var errBackendDown = errors.New("backend unavailable")

// waitUntil polls cond until it holds or the deadline passes.
func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

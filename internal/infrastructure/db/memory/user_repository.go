// Package memory implements the repository ports over a seeded in-memory
// dataset. It is the storage half of the simulated backend: one shared
// mutable collection, mutex-guarded, last-write-wins on status updates.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/dataset"
)

// UserRepository serves the seeded borrower dataset. Insertion order is
// preserved so pagination is stable across calls.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
	index map[string]int // id -> position in users
	stats domain.UserStats
}

// NewUserRepository wraps the seeded dataset. Stats are frozen at seed
// time and keep being served unchanged after mutations; a real backend
// recomputes them (see the Mongo repository).
func NewUserRepository(ds *dataset.Dataset) *UserRepository {
	r := &UserRepository{
		users: make([]domain.User, len(ds.Users)),
		index: make(map[string]int, len(ds.Users)),
		stats: ds.Stats,
	}
	copy(r.users, ds.Users)
	for i, u := range r.users {
		r.index[u.ID] = i
	}
	return r
}

// List returns the page of users matching every supplied filter, plus the
// total post-filter count. Text filters are case-insensitive substring
// matches; status is exact.
func (r *UserRepository) List(_ context.Context, filters ports.UserFilters, page ports.PageParams) ([]domain.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.User
	for _, u := range r.users {
		if matches(u, filters) {
			matched = append(matched, cloneUser(u))
		}
	}

	total := len(matched)
	page = page.Normalized()

	start := (page.Page - 1) * page.Limit
	if start >= total {
		return []domain.User{}, total, nil
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// FindByID returns a copy of the identified user.
func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := cloneUser(r.users[i])
	return &u, nil
}

// UpdateStatus mutates the shared record in place and returns the updated
// copy. Concurrent callers race last-write-wins; there is no version check.
func (r *UserRepository) UpdateStatus(_ context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[i].Status = status
	u := cloneUser(r.users[i])
	return &u, nil
}

// Stats returns the counts precomputed at seed time.
func (r *UserRepository) Stats(_ context.Context) (*domain.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.stats
	return &s, nil
}

func matches(u domain.User, f ports.UserFilters) bool {
	if f.Organization != "" && !containsFold(u.Organization, f.Organization) {
		return false
	}
	if f.Username != "" && !containsFold(u.Username, f.Username) {
		return false
	}
	if f.Email != "" && !containsFold(u.Email, f.Email) {
		return false
	}
	if f.PhoneNumber != "" && !strings.Contains(u.PhoneNumber, f.PhoneNumber) {
		return false
	}
	if f.Status != "" && string(u.Status) != f.Status {
		return false
	}
	if f.DateJoined != "" && !containsFold(u.DateJoined, f.DateJoined) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// cloneUser deep-copies u so callers never share the profile sections with
// the stored record.
func cloneUser(u domain.User) domain.User {
	if u.PersonalInfo != nil {
		pi := *u.PersonalInfo
		u.PersonalInfo = &pi
	}
	if u.EducationAndEmployment != nil {
		ee := *u.EducationAndEmployment
		u.EducationAndEmployment = &ee
	}
	if u.Socials != nil {
		s := *u.Socials
		u.Socials = &s
	}
	if u.Guarantor != nil {
		g := *u.Guarantor
		u.Guarantor = &g
	}
	return u
}

package ports

import (
	"context"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

// UserRepository defines persistence operations over the borrower dataset.
// Implementations: an in-memory seeded dataset (the simulated backend) and
// MongoDB (a real one).
type UserRepository interface {
	// List returns the page of users matching filter plus the total
	// post-filter count.
	List(ctx context.Context, filters UserFilters, page PageParams) ([]domain.User, int, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateStatus sets the status of the identified user and returns the
	// updated record. Concurrent updates are last-write-wins; there is no
	// version check.
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error)
	Stats(ctx context.Context) (*domain.UserStats, error)
}

// CredentialRepository looks up back-office operator credentials.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
}

// AuditRepository persists the append-only trail of status changes.
type AuditRepository interface {
	Insert(ctx context.Context, change domain.StatusChange) error
	ListByUser(ctx context.Context, userID string) ([]domain.StatusChange, error)
}

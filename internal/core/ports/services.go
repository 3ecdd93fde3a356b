package ports

import (
	"context"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

// AuthService defines the authentication use-cases consumed by controllers
// and HTTP handlers.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context, token string) (*domain.AuthUser, error)
	Refresh(ctx context.Context, token string) (*domain.Session, error)
}

// UserService defines the borrower-administration use-cases.
// BlacklistUser and ActivateUser are convenience wrappers over
// UpdateUserStatus and never diverge from it.
type UserService interface {
	ListUsers(ctx context.Context, filters UserFilters, page PageParams) (*UserPage, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error)
	BlacklistUser(ctx context.Context, id string) (*domain.User, error)
	ActivateUser(ctx context.Context, id string) (*domain.User, error)
	UserStats(ctx context.Context) (*domain.UserStats, error)
	UserEvents(ctx context.Context, id string) ([]domain.StatusChange, error)
}

// AuditRecorder persists a single status change. The queue dispatcher
// calls it from its workers.
type AuditRecorder interface {
	Record(ctx context.Context, change domain.StatusChange) error
}

// AuditEnqueuer accepts status changes for asynchronous recording.
// Enqueue must not block the mutation path.
type AuditEnqueuer interface {
	Enqueue(change domain.StatusChange)
}

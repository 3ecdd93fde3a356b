package ports

import (
	"context"
	"math"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

const (
	// DefaultPage is the first page of any listing.
	DefaultPage = 1
	// DefaultListLimit is the page size applied by transports when the
	// caller does not supply one.
	DefaultListLimit = 100
	// DefaultUILimit is the page size the dashboard list view starts with.
	DefaultUILimit = 10
)

// UserFilters carries the optional list constraints. Empty fields mean
// "no constraint"; all supplied fields must match (AND semantics).
// Matching is a case-insensitive substring test, except Status which is
// an exact match against one of the four enumerated values.
type UserFilters struct {
	Organization string
	Username     string
	Email        string
	PhoneNumber  string
	Status       string
	DateJoined   string
}

// Empty reports whether no constraint is set.
func (f UserFilters) Empty() bool {
	return f == UserFilters{}
}

// PageParams carries pagination for list requests. Page is 1-based.
// SortBy/SortOrder are accepted and carried through but transports are not
// required to order results by them.
type PageParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalized returns a copy with defaults applied for out-of-range values.
func (p PageParams) Normalized() PageParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultListLimit
	}
	return p
}

// UserPage is one page of a filtered user listing. Total counts every
// record matching the filters, not just the returned slice.
type UserPage struct {
	Users      []domain.User `json:"users"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

// PageCount returns ceil(total/limit), the TotalPages value for a listing.
func PageCount(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// Transport is the single seam between the data-access services and
// wherever the data actually lives. The in-memory transport simulates a
// backend; the HTTP client transport talks to a real one. Both satisfy the
// same contract, so swapping them requires no change above this interface.
//
// CurrentUser and RefreshToken take the bearer token explicitly; the
// remaining session-bound calls leave token handling to the transport.
type Transport interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context, token string) (*domain.AuthUser, error)
	RefreshToken(ctx context.Context, token string) (*domain.Session, error)

	ListUsers(ctx context.Context, filters UserFilters, page PageParams) (*UserPage, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error)
	GetUserStats(ctx context.Context) (*domain.UserStats, error)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// UserService implements the borrower-administration use-cases over a
// Transport. Blacklist and Activate are wrappers over UpdateUserStatus so
// the three can never disagree on validation or side effects.
type UserService struct {
	transport ports.Transport
	audit     ports.AuditRepository // optional, nil disables UserEvents
	logger    zerolog.Logger
}

func NewUserService(transport ports.Transport, audit ports.AuditRepository, logger zerolog.Logger) *UserService {
	return &UserService{transport: transport, audit: audit, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context, filters ports.UserFilters, page ports.PageParams) (*ports.UserPage, error) {
	result, err := s.transport.ListUsers(ctx, filters, page)
	if err != nil {
		s.logger.Error().Err(err).Msg("list users failed")
		return nil, err
	}
	return result, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.transport.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	user, err := s.transport.UpdateUserStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Str("status", string(status)).Msg("status update failed")
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Str("status", string(status)).Msg("user status updated")
	return user, nil
}

func (s *UserService) BlacklistUser(ctx context.Context, id string) (*domain.User, error) {
	return s.UpdateUserStatus(ctx, id, domain.StatusBlacklisted)
}

func (s *UserService) ActivateUser(ctx context.Context, id string) (*domain.User, error) {
	return s.UpdateUserStatus(ctx, id, domain.StatusActive)
}

func (s *UserService) UserStats(ctx context.Context) (*domain.UserStats, error) {
	return s.transport.GetUserStats(ctx)
}

// UserEvents returns the recorded status changes for id, oldest first.
// Without an audit repository it returns an empty trail.
func (s *UserService) UserEvents(ctx context.Context, id string) ([]domain.StatusChange, error) {
	if s.audit == nil {
		return nil, nil
	}
	return s.audit.ListByUser(ctx, id)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// AuthService implements the authentication use-cases over a Transport.
// It adds logging around the transport calls but never changes their
// error semantics: callers can still match domain errors directly.
type AuthService struct {
	transport ports.Transport
	logger    zerolog.Logger
}

func NewAuthService(transport ports.Transport, logger zerolog.Logger) *AuthService {
	return &AuthService{transport: transport, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	sess, err := s.transport.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn().Str("email", email).Msg("login rejected")
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("role", sess.User.Role).Msg("operator logged in")
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.transport.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("logout call failed")
		return err
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.AuthUser, error) {
	return s.transport.CurrentUser(ctx, token)
}

func (s *AuthService) Refresh(ctx context.Context, token string) (*domain.Session, error) {
	sess, err := s.transport.RefreshToken(ctx, token)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("email", sess.User.Email).Msg("session refreshed")
	return sess, nil
}

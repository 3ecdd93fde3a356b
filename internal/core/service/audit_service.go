package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
)

// AuditService persists status changes handed over by the queue workers.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Record(ctx context.Context, change domain.StatusChange) error {
	if err := s.repo.Insert(ctx, change); err != nil {
		return err
	}
	s.logger.Debug().
		Str("user_id", change.UserID).
		Str("from", string(change.From)).
		Str("to", string(change.To)).
		Msg("status change recorded")
	return nil
}

package memory

import (
	"context"
	"sync"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

// AuditRepository is the append-only in-memory status-change trail.
type AuditRepository struct {
	mu      sync.RWMutex
	changes []domain.StatusChange
}

// NewAuditRepository returns an empty trail.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Insert appends change to the trail.
func (r *AuditRepository) Insert(_ context.Context, change domain.StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
	return nil
}

// ListByUser returns the changes recorded for userID in insertion order.
func (r *AuditRepository) ListByUser(_ context.Context, userID string) ([]domain.StatusChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.StatusChange
	for _, c := range r.changes {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

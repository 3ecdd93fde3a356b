package memory

import (
	"context"
	"strings"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

// CredentialRepository holds the seeded operator accounts. Read-only after
// construction, so no locking is needed.
type CredentialRepository struct {
	byEmail map[string]domain.Credential
}

// NewCredentialRepository indexes creds by lowercased email.
func NewCredentialRepository(creds []domain.Credential) *CredentialRepository {
	r := &CredentialRepository{byEmail: make(map[string]domain.Credential, len(creds))}
	for _, c := range creds {
		r.byEmail[strings.ToLower(c.User.Email)] = c
	}
	return r
}

// FindByEmail looks up an operator account. A missing account reads as
// invalid credentials so login cannot be used to probe which emails exist.
func (r *CredentialRepository) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	c, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &c, nil
}

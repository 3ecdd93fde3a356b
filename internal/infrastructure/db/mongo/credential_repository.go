package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

const collectionOperators = "operators"

// CredentialRepository implements ports.CredentialRepository over the
// operators collection.
type CredentialRepository struct {
	col *mongo.Collection
}

// NewCredentialRepository binds to the operators collection of db.
func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection(collectionOperators)}
}

type operatorDoc struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"` // stored lowercased
	FirstName    string `bson:"first_name"`
	LastName     string `bson:"last_name"`
	Role         string `bson:"role"`
	Avatar       string `bson:"avatar,omitempty"`
	PasswordHash string `bson:"password_hash"`
}

// FindByEmail looks up an operator account by lowercased email. A missing
// account surfaces as invalid credentials, not as a distinct error.
func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc operatorDoc
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find operator: %w", err)
	}

	return &domain.Credential{
		User: domain.AuthUser{
			ID:        doc.ID,
			Email:     doc.Email,
			FirstName: doc.FirstName,
			LastName:  doc.LastName,
			Role:      doc.Role,
			Avatar:    doc.Avatar,
		},
		PasswordHash: doc.PasswordHash,
	}, nil
}

// Seed inserts creds into an empty operators collection.
func (r *CredentialRepository) Seed(ctx context.Context, creds []domain.Credential) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	docs := make([]any, 0, len(creds))
	for _, c := range creds {
		docs = append(docs, operatorDoc{
			ID:           c.User.ID,
			Email:        strings.ToLower(c.User.Email),
			FirstName:    c.User.FirstName,
			LastName:     c.User.LastName,
			Role:         c.User.Role,
			Avatar:       c.User.Avatar,
			PasswordHash: c.PasswordHash,
		})
	}
	_, err = r.col.InsertMany(ctx, docs)
	return err
}

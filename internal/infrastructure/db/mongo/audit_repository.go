package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

const collectionStatusChanges = "status_changes"

// AuditRepository persists the status-change trail to its own collection.
type AuditRepository struct {
	col *mongo.Collection
}

// NewAuditRepository binds to the status_changes collection of db.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionStatusChanges)}
}

// Insert appends a change to the trail.
func (r *AuditRepository) Insert(ctx context.Context, change domain.StatusChange) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"user_id":     change.UserID,
		"from":        string(change.From),
		"to":          string(change.To),
		"occurred_at": change.OccurredAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if change.Actor != "" {
		doc["actor"] = change.Actor
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// ListByUser returns the recorded changes for userID, oldest first.
func (r *AuditRepository) ListByUser(ctx context.Context, userID string) ([]domain.StatusChange, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var changes []domain.StatusChange
	if err := cur.All(ctx, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

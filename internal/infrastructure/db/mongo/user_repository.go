package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/dataset"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository over the users collection.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository binds to the users collection of db.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// List applies the dashboard filters as case-insensitive regex matches
// (exact match for status), counts the filtered set, and returns one page.
func (r *UserRepository) List(ctx context.Context, filters ports.UserFilters, page ports.PageParams) ([]domain.User, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := listFilter(filters)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page = page.Normalized()
	opts := options.Find().
		SetSkip(int64((page.Page - 1) * page.Limit)).
		SetLimit(int64(page.Limit))
	if sort := sortSpec(page); sort != nil {
		opts.SetSort(sort)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, int(total), nil
}

// FindByID retrieves a single user with all profile sections.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateStatus sets the status field and returns the updated document.
func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
		opts,
	)

	var u domain.User
	if err := res.Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Stats recomputes the dashboard aggregates on demand, which is what the
// simulated backend deliberately does not do.
func (r *UserRepository) Stats(ctx context.Context) (*domain.UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	active, err := r.col.CountDocuments(ctx, bson.M{"status": string(domain.StatusActive)})
	if err != nil {
		return nil, err
	}
	withLoans, err := r.col.CountDocuments(ctx, bson.M{
		"education_and_employment.loan_repayment": bson.M{"$ne": "₦0"},
	})
	if err != nil {
		return nil, err
	}

	// TODO: count real savings accounts once the savings collection exists;
	// until then mirror the seeded dataset's 70% assumption.
	return &domain.UserStats{
		TotalUsers:       int(total),
		ActiveUsers:      int(active),
		UsersWithLoans:   int(withLoans),
		UsersWithSavings: int(total) * 7 / 10,
	}, nil
}

// EnsureIndexes creates the indexes the list filters rely on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "organization", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// Seed populates an empty users collection from the generated dataset.
// A non-empty collection is left untouched.
func (r *UserRepository) Seed(ctx context.Context, ds *dataset.Dataset) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	docs := make([]any, 0, len(ds.Users))
	for _, u := range ds.Users {
		docs = append(docs, u)
	}
	_, err = r.col.InsertMany(ctx, docs)
	return err
}

func listFilter(f ports.UserFilters) bson.M {
	filter := bson.M{}
	sub := func(field, value string) {
		if value != "" {
			filter[field] = bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
		}
	}
	sub("organization", f.Organization)
	sub("username", f.Username)
	sub("email", f.Email)
	sub("phone_number", f.PhoneNumber)
	sub("date_joined", f.DateJoined)
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// sortSpec maps the accepted sort fields to a Mongo sort document. Unknown
// fields are ignored rather than rejected.
func sortSpec(p ports.PageParams) bson.D {
	allowed := map[string]string{
		"organization": "organization",
		"username":     "username",
		"email":        "email",
		"dateJoined":   "date_joined",
		"status":       "status",
	}
	field, ok := allowed[p.SortBy]
	if !ok {
		return nil
	}
	order := 1
	if p.SortOrder == "desc" {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

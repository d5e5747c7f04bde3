package mongodb

import (
	"context"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServiceDayRepository implements the repositories.ServiceDayRepository interface.
// A unique index on the date field keeps the merge-by-date invariant even
// under concurrent upserts.
type ServiceDayRepository struct {
	collection *mongo.Collection
}

// NewServiceDayRepository creates a new ServiceDayRepository
func NewServiceDayRepository(db *mongo.Database) repositories.ServiceDayRepository {
	return &ServiceDayRepository{
		collection: db.Collection("service_days"),
	}
}

// EnsureIndexes creates the unique date index backing upsert-by-date
func (r *ServiceDayRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"date": 1},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// UpsertByDate merges a service day by calendar date
func (r *ServiceDayRepository) UpsertByDate(ctx context.Context, date time.Time) (*models.ServiceDay, error) {
	return r.upsert(ctx, date, bson.M{})
}

// MarkSwell merges a service day by calendar date and flags it as swell
func (r *ServiceDayRepository) MarkSwell(ctx context.Context, date time.Time) (*models.ServiceDay, error) {
	return r.upsert(ctx, date, bson.M{"swell": true})
}

func (r *ServiceDayRepository) upsert(ctx context.Context, date time.Time, set bson.M) (*models.ServiceDay, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	day := models.NormalizeServiceDate(date)
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":       uuid.NewString(),
			"date":      day,
			"createdAt": time.Now(),
		},
	}
	if len(set) > 0 {
		update["$set"] = set
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var serviceDay models.ServiceDay
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"date": day}, update, opts).Decode(&serviceDay)
	if err != nil {
		return nil, err
	}
	return &serviceDay, nil
}

// FindByID finds a service day by ID
func (r *ServiceDayRepository) FindByID(ctx context.Context, id string) (*models.ServiceDay, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var serviceDay models.ServiceDay
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&serviceDay)
	if err != nil {
		return nil, err
	}
	return &serviceDay, nil
}

// FindByDate finds a service day by calendar date
func (r *ServiceDayRepository) FindByDate(ctx context.Context, date time.Time) (*models.ServiceDay, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var serviceDay models.ServiceDay
	err := r.collection.FindOne(ctx, bson.M{"date": models.NormalizeServiceDate(date)}).Decode(&serviceDay)
	if err != nil {
		return nil, err
	}
	return &serviceDay, nil
}

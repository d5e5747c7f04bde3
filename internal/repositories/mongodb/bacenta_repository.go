package mongodb

import (
	"context"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BacentaRepository implements the repositories.BacentaRepository interface
type BacentaRepository struct {
	collection *mongo.Collection
}

// NewBacentaRepository creates a new BacentaRepository
func NewBacentaRepository(db *mongo.Database) repositories.BacentaRepository {
	return &BacentaRepository{
		collection: db.Collection("bacentas"),
	}
}

// Create creates a new bacenta
func (r *BacentaRepository) Create(ctx context.Context, bacenta *models.Bacenta) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	bacenta.CreatedAt = time.Now()
	bacenta.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, bacenta)
	return err
}

// FindByID finds a bacenta by ID
func (r *BacentaRepository) FindByID(ctx context.Context, id string) (*models.Bacenta, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var bacenta models.Bacenta
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bacenta)
	if err != nil {
		return nil, err
	}
	return &bacenta, nil
}

// Update replaces a bacenta
func (r *BacentaRepository) Update(ctx context.Context, bacenta *models.Bacenta) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	bacenta.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": bacenta.ID}, bacenta)
	return err
}

// FindAll finds all bacentas with pagination
func (r *BacentaRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Bacenta, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"name": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bacentas []*models.Bacenta
	if err := cursor.All(ctx, &bacentas); err != nil {
		return nil, err
	}
	return bacentas, nil
}

// Count counts all bacentas
func (r *BacentaRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}

package mongodb

import (
	"context"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceLogRepository implements the repositories.ServiceLogRepository interface
type ServiceLogRepository struct {
	collection *mongo.Collection
}

// NewServiceLogRepository creates a new ServiceLogRepository
func NewServiceLogRepository(db *mongo.Database) repositories.ServiceLogRepository {
	return &ServiceLogRepository{
		collection: db.Collection("service_logs"),
	}
}

// Create creates a new service log
func (r *ServiceLogRepository) Create(ctx context.Context, log *models.ServiceLog) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	log.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, log)
	return err
}

// FindByID finds a service log by ID
func (r *ServiceLogRepository) FindByID(ctx context.Context, id string) (*models.ServiceLog, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var log models.ServiceLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

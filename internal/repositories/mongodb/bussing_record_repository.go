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

// BussingRecordRepository implements the repositories.BussingRecordRepository interface
type BussingRecordRepository struct {
	collection *mongo.Collection
}

// NewBussingRecordRepository creates a new BussingRecordRepository
func NewBussingRecordRepository(db *mongo.Database) repositories.BussingRecordRepository {
	return &BussingRecordRepository{
		collection: db.Collection("bussing_records"),
	}
}

// Create creates a new bussing record
func (r *BussingRecordRepository) Create(ctx context.Context, record *models.BussingRecord) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindByID finds a bussing record by ID
func (r *BussingRecordRepository) FindByID(ctx context.Context, id string) (*models.BussingRecord, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var record models.BussingRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByTransactionReference finds the record carrying a gateway reference
func (r *BussingRecordRepository) FindByTransactionReference(ctx context.Context, reference string) (*models.BussingRecord, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var record models.BussingRecord
	err := r.collection.FindOne(ctx, bson.M{"transactionReference": reference}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces a bussing record
func (r *BussingRecordRepository) Update(ctx context.Context, record *models.BussingRecord) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	record.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	return err
}

// FindByBacenta finds bussing records for a bacenta with pagination
func (r *BussingRecordRepository) FindByBacenta(ctx context.Context, bacentaID string, page, limit int) ([]*models.BussingRecord, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"serviceDate": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"bacentaId": bacentaID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.BussingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindByDateRange finds bussing records by service date range with pagination
func (r *BussingRecordRepository) FindByDateRange(ctx context.Context, start, end time.Time, page, limit int) ([]*models.BussingRecord, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"serviceDate": -1})

	// end is exclusive; callers widen it to cover the last day
	cursor, err := r.collection.Find(ctx, bson.M{
		"serviceDate": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.BussingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindPendingWithReference finds records awaiting gateway confirmation.
// Used by the scheduled payment poll.
func (r *BussingRecordRepository) FindPendingWithReference(ctx context.Context) ([]*models.BussingRecord, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	filter := bson.M{
		"transactionStatus":    models.TransactionPending,
		"transactionReference": bson.M{"$exists": true, "$ne": ""},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.BussingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ClearTransactionID unsets the transactionId field. Clearing an already
// clear record is a no-op.
func (r *BussingRecordRepository) ClearTransactionID(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{
		"$unset": bson.M{"transactionId": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateStatusByReference sets transactionStatus on the record matching the
// gateway reference and reports how many records matched, so callers can
// tell a reconciled update from an unmatched reference.
func (r *BussingRecordRepository) UpdateStatusByReference(ctx context.Context, reference, status string) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"transactionStatus": status,
			"updatedAt":         time.Now(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"transactionReference": reference}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Count counts all bussing records
func (r *BussingRecordRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}

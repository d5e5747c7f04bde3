package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// allocateRetries bounds transaction retries on write conflict. Allocation
// fails after the last attempt rather than spinning.
const allocateRetries = 3

// CounterRepository implements the repositories.CounterRepository interface.
// The counter increment and the record stamp execute inside one session
// transaction, so two racing allocations can never read the same value: the
// server's conflict detection aborts one of them and the loop retries it.
type CounterRepository struct {
	counters *mongo.Collection
	records  *mongo.Collection
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(db *mongo.Database) repositories.CounterRepository {
	return &CounterRepository{
		counters: db.Collection("counters"),
		records:  db.Collection("bussing_records"),
	}
}

// Allocate assigns the next transaction id to the given record and returns it
func (r *CounterRepository) Allocate(ctx context.Context, recordID string) (int64, error) {
	client := r.counters.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return 0, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var allocated int64
	txnFn := func(sc mongo.SessionContext) error {
		opts := options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After)

		var counter models.TransactionCounter
		err := r.counters.FindOneAndUpdate(sc,
			bson.M{"_id": models.TransactionCounterID},
			bson.M{"$inc": bson.M{"lastId": 1}},
			opts,
		).Decode(&counter)
		if err != nil {
			return fmt.Errorf("increment transaction counter failed: %w", err)
		}

		update := bson.M{"$set": bson.M{
			"transactionId": counter.LastID,
			"updatedAt":     time.Now(),
		}}
		res, err := r.records.UpdateOne(sc, bson.M{"_id": recordID}, update)
		if err != nil {
			return fmt.Errorf("stamp transaction id failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}

		allocated = counter.LastID
		return nil
	}

	for attempt := 1; ; attempt++ {
		err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
			if err := sc.StartTransaction(); err != nil {
				return err
			}
			if err := txnFn(sc); err != nil {
				_ = sc.AbortTransaction(sc)
				return err
			}
			return sc.CommitTransaction(sc)
		})
		if err == nil {
			return allocated, nil
		}
		if attempt >= allocateRetries || !isTransientTxnError(err) {
			return 0, fmt.Errorf("transaction id allocation failed: %w", err)
		}
	}
}

// Current reads the counter without moving it
func (r *CounterRepository) Current(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var counter models.TransactionCounter
	err := r.counters.FindOne(ctx, bson.M{"_id": models.TransactionCounterID}).Decode(&counter)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.LastID, nil
}

// isTransientTxnError reports whether err carries the TransientTransactionError
// label anywhere in its chain. txnFn wraps driver errors before the retry loop
// sees them, so this must unwrap rather than type-assert.
func isTransientTxnError(err error) bool {
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}

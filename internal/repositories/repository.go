package repositories

import (
	"context"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
)

// BussingRecordRepository defines the interface for bussing record data operations
type BussingRecordRepository interface {
	Create(ctx context.Context, record *models.BussingRecord) error
	FindByID(ctx context.Context, id string) (*models.BussingRecord, error)
	FindByTransactionReference(ctx context.Context, reference string) (*models.BussingRecord, error)
	Update(ctx context.Context, record *models.BussingRecord) error
	FindByBacenta(ctx context.Context, bacentaID string, page, limit int) ([]*models.BussingRecord, error)
	FindByDateRange(ctx context.Context, start, end time.Time, page, limit int) ([]*models.BussingRecord, error)
	FindPendingWithReference(ctx context.Context) ([]*models.BussingRecord, error)
	ClearTransactionID(ctx context.Context, id string) error
	UpdateStatusByReference(ctx context.Context, reference, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// BacentaRepository defines the interface for bacenta data operations
type BacentaRepository interface {
	Create(ctx context.Context, bacenta *models.Bacenta) error
	FindByID(ctx context.Context, id string) (*models.Bacenta, error)
	Update(ctx context.Context, bacenta *models.Bacenta) error
	FindAll(ctx context.Context, page, limit int) ([]*models.Bacenta, error)
	Count(ctx context.Context) (int64, error)
}

// ServiceDayRepository defines the interface for service day operations.
// Both upserts merge by calendar date: at most one document per date.
type ServiceDayRepository interface {
	EnsureIndexes(ctx context.Context) error
	UpsertByDate(ctx context.Context, date time.Time) (*models.ServiceDay, error)
	MarkSwell(ctx context.Context, date time.Time) (*models.ServiceDay, error)
	FindByID(ctx context.Context, id string) (*models.ServiceDay, error)
	FindByDate(ctx context.Context, date time.Time) (*models.ServiceDay, error)
}

// CounterRepository defines the interface for transaction id allocation.
// Allocate must atomically increment the singleton counter and stamp the
// record's transactionId with the post-increment value, so concurrent
// allocations never observe the same counter value.
type CounterRepository interface {
	Allocate(ctx context.Context, recordID string) (int64, error)
	Current(ctx context.Context) (int64, error)
}

// ServiceLogRepository defines the interface for service log data operations
type ServiceLogRepository interface {
	Create(ctx context.Context, log *models.ServiceLog) error
	FindByID(ctx context.Context, id string) (*models.ServiceLog, error)
}

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	FindByID(ctx context.Context, id string) (*models.Member, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id string) (*models.AdminUser, error)
}

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	UpdateStatus(ctx context.Context, id, status, messageID string) error
	FindByStatus(ctx context.Context, status string, page, limit int) ([]*models.Notification, error)
	Count(ctx context.Context) (int64, error)
}

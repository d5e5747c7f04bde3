package services

import (
	"context"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
)

// BussingService defines the interface for bussing record operations
type BussingService interface {
	// CreateFromMobilisationPicture creates a record for the bacenta's current
	// service log, merged onto the service day for the given date
	CreateFromMobilisationPicture(ctx context.Context, req *CreateBussingRecordRequest) (*models.BussingRecord, error)

	// GetRecordWithDate is a pure read: the record plus its day's swell flag
	GetRecordWithDate(ctx context.Context, recordID string) (*models.BussingRecordWithDate, error)

	// RefreshTargetSnapshot copies the bacenta's current target onto the record
	RefreshTargetSnapshot(ctx context.Context, recordID string) (*models.BussingRecord, error)

	// RecordAttendance sets the reported bus attendance on a record
	RecordAttendance(ctx context.Context, recordID string, attendance int) (*models.BussingRecord, error)

	// ConfirmRecord marks a record as confirmed by an admin
	ConfirmRecord(ctx context.Context, recordID, adminID string) (*models.BussingRecord, error)

	// ComputeSwellTopUp computes and stores the swell-date subsidy
	ComputeSwellTopUp(ctx context.Context, recordID string) (*models.BussingRecord, error)

	// ComputeNormalTopUp computes and stores the normal-date subsidy
	ComputeNormalTopUp(ctx context.Context, recordID string) (*models.BussingRecord, error)

	// SetSwellDate marks a calendar date as swell; idempotent
	SetSwellDate(ctx context.Context, date time.Time) (*models.ServiceDay, error)

	// GetRecordsByBacenta lists a bacenta's records with pagination
	GetRecordsByBacenta(ctx context.Context, bacentaID string, page, limit int) ([]*models.BussingRecord, error)

	// GetRecordsByDateRange lists records by service date range with pagination
	GetRecordsByDateRange(ctx context.Context, start, end time.Time, page, limit int) ([]*models.BussingRecord, error)
}

// CreateBussingRecordRequest carries the leader's mobilisation submission.
// Either PictureURL (already hosted) or PictureData (base64 data URI, pushed
// to the image store) must be set.
type CreateBussingRecordRequest struct {
	BacentaID   string    `json:"bacentaId" binding:"required"`
	ServiceDate time.Time `json:"serviceDate" binding:"required"`
	PictureURL  string    `json:"pictureUrl"`
	PictureData string    `json:"pictureData"`
	SubmittedBy string    `json:"submittedBy" binding:"required"`
}

// TransactionService defines the interface for transaction id operations
type TransactionService interface {
	// AllocateTransactionID assigns the next payout transaction id
	AllocateTransactionID(ctx context.Context, recordID string) (*models.TransactionReceipt, error)

	// RemoveTransactionID clears an erroneously allocated id; idempotent
	RemoveTransactionID(ctx context.Context, recordID string) (*models.BussingRecord, error)

	// CheckTransactionID returns the record only if an admin has confirmed it
	CheckTransactionID(ctx context.Context, recordID string) (*models.BussingRecord, error)
}

// PaymentService defines the interface for payment reconciliation
type PaymentService interface {
	// ReconcilePayment maps a gateway status onto the record holding the
	// reference. Returns ErrUnreconciledPayment when nothing matches.
	ReconcilePayment(ctx context.Context, reference, status string) (*models.BussingRecord, error)

	// PollPendingPayments re-checks records stuck in pending against the
	// gateway. Returns the number of records reconciled.
	PollPendingPayments(ctx context.Context) (int, error)
}

// NotificationService defines the interface for SMS notifications
type NotificationService interface {
	SendSMS(ctx context.Context, phoneNumber, content, notificationType, recordID string) (*models.Notification, error)
	SendTopUpSMS(ctx context.Context, record *models.BussingRecord) (*models.Notification, error)
}

// ReportService defines the interface for report exports
type ReportService interface {
	// ExportWeeklySummary appends the week's per-bacenta bussing summary to
	// the configured spreadsheet. Returns the number of rows exported.
	ExportWeeklySummary(ctx context.Context, weekStart time.Time) (int, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
}

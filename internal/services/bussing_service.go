package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure BussingServiceImpl implements BussingService
var _ BussingService = (*BussingServiceImpl)(nil)

// ImageUploader is the slice of the image store the service needs
type ImageUploader interface {
	UploadMobilisationPicture(ctx context.Context, file interface{}, publicID string) (string, error)
}

// BussingServiceImpl handles bussing record business logic
type BussingServiceImpl struct {
	recordRepo     repositories.BussingRecordRepository
	bacentaRepo    repositories.BacentaRepository
	serviceDayRepo repositories.ServiceDayRepository
	serviceLogRepo repositories.ServiceLogRepository
	memberRepo     repositories.MemberRepository
	notifier       NotificationService // optional; nil disables top-up SMS
	uploader       ImageUploader       // optional; nil requires pre-hosted picture URLs
}

// NewBussingService creates a new BussingServiceImpl
func NewBussingService(
	recordRepo repositories.BussingRecordRepository,
	bacentaRepo repositories.BacentaRepository,
	serviceDayRepo repositories.ServiceDayRepository,
	serviceLogRepo repositories.ServiceLogRepository,
	memberRepo repositories.MemberRepository,
	notifier NotificationService,
	uploader ImageUploader,
) *BussingServiceImpl {
	return &BussingServiceImpl{
		recordRepo:     recordRepo,
		bacentaRepo:    bacentaRepo,
		serviceDayRepo: serviceDayRepo,
		serviceLogRepo: serviceLogRepo,
		memberRepo:     memberRepo,
		notifier:       notifier,
		uploader:       uploader,
	}
}

// CreateFromMobilisationPicture creates a bussing record when a leader
// uploads the mobilisation picture for a service date.
func (s *BussingServiceImpl) CreateFromMobilisationPicture(ctx context.Context, req *CreateBussingRecordRequest) (*models.BussingRecord, error) {
	bacenta, err := s.bacentaRepo.FindByID(ctx, req.BacentaID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBacentaNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bacenta: %w", err)
	}

	if bacenta.ServiceLogID == "" {
		return nil, ErrServiceLogNotFound
	}
	if _, err := s.serviceLogRepo.FindByID(ctx, bacenta.ServiceLogID); err != nil {
		if isNotFound(err) {
			return nil, ErrServiceLogNotFound
		}
		return nil, fmt.Errorf("failed to retrieve service log: %w", err)
	}

	if _, err := s.memberRepo.FindByID(ctx, req.SubmittedBy); err != nil {
		if isNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to retrieve member: %w", err)
	}

	pictureURL := req.PictureURL
	if pictureURL == "" {
		if req.PictureData == "" {
			return nil, ErrMissingPicture
		}
		if s.uploader == nil {
			return nil, fmt.Errorf("picture upload not configured: %w", ErrMissingPicture)
		}
		pictureURL, err = s.uploader.UploadMobilisationPicture(ctx, req.PictureData, uuid.NewString())
		if err != nil {
			return nil, fmt.Errorf("failed to upload mobilisation picture: %w", err)
		}
	}

	day, err := s.serviceDayRepo.UpsertByDate(ctx, req.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("failed to merge service day: %w", err)
	}

	record := &models.BussingRecord{
		ID:                  uuid.NewString(),
		BacentaID:           bacenta.ID,
		ServiceLogID:        bacenta.ServiceLogID,
		ServiceDayID:        day.ID,
		ServiceDate:         day.Date,
		Target:              bacenta.Target,
		MobilisationPicture: pictureURL,
		TransactionStatus:   models.TransactionPending,
		LoggedByID:          req.SubmittedBy,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create bussing record: %w", err)
	}

	slog.Info("Bussing record created",
		"recordId", record.ID, "bacentaId", bacenta.ID, "serviceDate", day.Date)
	return record, nil
}

// GetRecordWithDate returns the record plus the swell flag of its service
// day. Pure read: nothing on the record changes.
func (s *BussingServiceImpl) GetRecordWithDate(ctx context.Context, recordID string) (*models.BussingRecordWithDate, error) {
	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	day, err := s.serviceDayRepo.FindByID(ctx, record.ServiceDayID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service day: %w", err)
	}

	return &models.BussingRecordWithDate{Record: record, Swell: day.Swell}, nil
}

// RefreshTargetSnapshot re-copies the bacenta's current target onto the
// record. This is the explicit write that used to hide inside the read.
func (s *BussingServiceImpl) RefreshTargetSnapshot(ctx context.Context, recordID string) (*models.BussingRecord, error) {
	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	bacenta, err := s.bacentaRepo.FindByID(ctx, record.BacentaID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBacentaNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bacenta: %w", err)
	}

	record.Target = bacenta.Target
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update bussing record: %w", err)
	}
	return record, nil
}

// RecordAttendance sets the reported bus attendance
func (s *BussingServiceImpl) RecordAttendance(ctx context.Context, recordID string, attendance int) (*models.BussingRecord, error) {
	if attendance < 0 {
		return nil, ErrInvalidAttendance
	}

	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	record.Attendance = attendance
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update bussing record: %w", err)
	}

	slog.Info("Attendance recorded", "recordId", recordID, "attendance", attendance)
	return record, nil
}

// ConfirmRecord marks the record as confirmed by an admin. Confirmation is
// the human step that CheckTransactionID guards on.
func (s *BussingServiceImpl) ConfirmRecord(ctx context.Context, recordID, adminID string) (*models.BussingRecord, error) {
	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	record.ConfirmedByID = adminID
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update bussing record: %w", err)
	}

	slog.Info("Bussing record confirmed", "recordId", recordID, "adminId", adminID)
	return record, nil
}

// ComputeSwellTopUp computes and stores the swell-date subsidy
func (s *BussingServiceImpl) ComputeSwellTopUp(ctx context.Context, recordID string) (*models.BussingRecord, error) {
	return s.computeTopUp(ctx, recordID, true)
}

// ComputeNormalTopUp computes and stores the normal-date subsidy
func (s *BussingServiceImpl) ComputeNormalTopUp(ctx context.Context, recordID string) (*models.BussingRecord, error) {
	return s.computeTopUp(ctx, recordID, false)
}

func (s *BussingServiceImpl) computeTopUp(ctx context.Context, recordID string, swell bool) (*models.BussingRecord, error) {
	record, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	day, err := s.serviceDayRepo.FindByID(ctx, record.ServiceDayID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service day: %w", err)
	}
	if swell && !day.Swell {
		return nil, ErrNotSwellDate
	}
	if !swell && day.Swell {
		return nil, ErrSwellDate
	}

	bacenta, err := s.bacentaRepo.FindByID(ctx, record.BacentaID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBacentaNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bacenta: %w", err)
	}

	applyTopUp(record, swell, bacenta)
	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update bussing record: %w", err)
	}

	slog.Info("Bussing top-up computed",
		"recordId", record.ID, "bacentaId", bacenta.ID,
		"attendance", record.Attendance, "swell", swell, "topUp", record.BussingTopUp)

	if s.notifier != nil && record.BussingTopUp > 0 {
		if _, err := s.notifier.SendTopUpSMS(ctx, record); err != nil {
			// Notification failure must not roll back the computed top-up
			slog.Error("Failed to send top-up SMS",
				"error", err, "recordId", record.ID, "momoNumber", record.MomoNumber)
		}
	}
	return record, nil
}

// SetSwellDate marks a date as swell. Merging by date keeps this idempotent:
// at most one service day per calendar date, swell once set stays set.
func (s *BussingServiceImpl) SetSwellDate(ctx context.Context, date time.Time) (*models.ServiceDay, error) {
	day, err := s.serviceDayRepo.MarkSwell(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to mark swell date: %w", err)
	}
	slog.Info("Swell date set", "date", day.Date)
	return day, nil
}

// GetRecordsByBacenta lists a bacenta's records with pagination
func (s *BussingServiceImpl) GetRecordsByBacenta(ctx context.Context, bacentaID string, page, limit int) ([]*models.BussingRecord, error) {
	return s.recordRepo.FindByBacenta(ctx, bacentaID, page, limit)
}

// GetRecordsByDateRange lists records by service date range with pagination
func (s *BussingServiceImpl) GetRecordsByDateRange(ctx context.Context, start, end time.Time, page, limit int) ([]*models.BussingRecord, error) {
	return s.recordRepo.FindByDateRange(ctx, start, end, page, limit)
}

func (s *BussingServiceImpl) getRecord(ctx context.Context, recordID string) (*models.BussingRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bussing record: %w", err)
	}
	return record, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

package services

import (
	"context"
	"fmt"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure TransactionServiceImpl implements TransactionService
var _ TransactionService = (*TransactionServiceImpl)(nil)

// TransactionServiceImpl assigns payout transaction ids to bussing records
type TransactionServiceImpl struct {
	counterRepo repositories.CounterRepository
	recordRepo  repositories.BussingRecordRepository
	bacentaRepo repositories.BacentaRepository
}

// NewTransactionService creates a new TransactionServiceImpl
func NewTransactionService(
	counterRepo repositories.CounterRepository,
	recordRepo repositories.BussingRecordRepository,
	bacentaRepo repositories.BacentaRepository,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		counterRepo: counterRepo,
		recordRepo:  recordRepo,
		bacentaRepo: bacentaRepo,
	}
}

// AllocateTransactionID assigns the next monotonically increasing id to the
// record and returns it with the bacenta name and service date for the
// receipt. The counter repo runs the increment and the stamp atomically.
// A record that already carries an id is rejected; corrections go through
// RemoveTransactionID first.
func (s *TransactionServiceImpl) AllocateTransactionID(ctx context.Context, recordID string) (*models.TransactionReceipt, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bussing record: %w", err)
	}
	if record.TransactionID != nil {
		return nil, ErrAlreadyAllocated
	}

	allocated, err := s.counterRepo.Allocate(ctx, recordID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to allocate transaction id: %w", err)
	}

	record, err = s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bussing record: %w", err)
	}

	bacenta, err := s.bacentaRepo.FindByID(ctx, record.BacentaID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBacentaNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bacenta: %w", err)
	}

	slog.Info("Transaction id allocated",
		"recordId", recordID, "transactionId", allocated, "bacenta", bacenta.Name)

	return &models.TransactionReceipt{
		Record:      record,
		BacentaName: bacenta.Name,
		ServiceDate: record.ServiceDate,
	}, nil
}

// RemoveTransactionID clears the transaction id after an erroneous
// allocation. Idempotent: clearing a clear record changes nothing.
func (s *TransactionServiceImpl) RemoveTransactionID(ctx context.Context, recordID string) (*models.BussingRecord, error) {
	if err := s.recordRepo.ClearTransactionID(ctx, recordID); err != nil {
		if isNotFound(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to clear transaction id: %w", err)
	}

	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bussing record: %w", err)
	}

	slog.Info("Transaction id removed", "recordId", recordID)
	return record, nil
}

// CheckTransactionID returns the record only if an admin has confirmed it,
// so an id is never trusted for payout without the human step.
func (s *TransactionServiceImpl) CheckTransactionID(ctx context.Context, recordID string) (*models.BussingRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bussing record: %w", err)
	}

	if record.ConfirmedByID == "" {
		return nil, ErrNotConfirmed
	}
	return record, nil
}

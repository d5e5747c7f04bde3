package services

import (
	"context"
	"fmt"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"github.com/firstlovecenter/fl-admin-backend/pkg/paystack"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PaymentServiceImpl implements PaymentService
var _ PaymentService = (*PaymentServiceImpl)(nil)

// PaymentGateway is the slice of the Paystack client the service needs
type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*paystack.TransactionData, error)
}

// PaymentServiceImpl reconciles gateway payment statuses onto bussing records
type PaymentServiceImpl struct {
	recordRepo repositories.BussingRecordRepository
	gateway    PaymentGateway
}

// NewPaymentService creates a new PaymentServiceImpl
func NewPaymentService(recordRepo repositories.BussingRecordRepository, gateway PaymentGateway) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		recordRepo: recordRepo,
		gateway:    gateway,
	}
}

// mapGatewayStatus folds gateway statuses onto the three stored values.
// Anything unrecognized stays pending until a later notification settles it.
func mapGatewayStatus(status string) string {
	switch status {
	case paystack.StatusSuccess:
		return models.TransactionSuccess
	case paystack.StatusFailed:
		return models.TransactionFailed
	default:
		return models.TransactionPending
	}
}

// ReconcilePayment applies a webhook notification to the record holding the
// reference. Only transactionStatus changes. An unmatched reference is an
// error, not a silent no-op, so the gateway's retry machinery can react.
func (s *PaymentServiceImpl) ReconcilePayment(ctx context.Context, reference, status string) (*models.BussingRecord, error) {
	mapped := mapGatewayStatus(status)

	matched, err := s.recordRepo.UpdateStatusByReference(ctx, reference, mapped)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}
	if matched == 0 {
		slog.Warn("Unreconciled payment notification", "reference", reference, "status", status)
		return nil, ErrUnreconciledPayment
	}

	record, err := s.recordRepo.FindByTransactionReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bussing record: %w", err)
	}

	slog.Info("Payment reconciled",
		"reference", reference, "gatewayStatus", status, "status", mapped,
		"recordId", record.ID, "bacentaId", record.BacentaID)
	return record, nil
}

// PollPendingPayments re-verifies every pending record that already carries a
// gateway reference. Failures are logged with enough context for manual
// reconciliation and do not stop the sweep.
func (s *PaymentServiceImpl) PollPendingPayments(ctx context.Context) (int, error) {
	records, err := s.recordRepo.FindPendingWithReference(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending records: %w", err)
	}

	reconciled := 0
	for _, record := range records {
		tx, err := s.gateway.VerifyTransaction(ctx, record.TransactionReference)
		if err != nil {
			slog.Error("Gateway verification failed",
				"error", err, "recordId", record.ID, "bacentaId", record.BacentaID,
				"serviceDate", record.ServiceDate, "reference", record.TransactionReference)
			continue
		}

		mapped := mapGatewayStatus(tx.Status)
		if mapped == models.TransactionPending {
			continue
		}

		record.TransactionStatus = mapped
		// Gateway amount is stored for manual reconciliation only; it is not
		// validated against bussingTopUp here. Paystack reports pesewas;
		// the record holds GHS like bussingTopUp does.
		record.GatewayAmount = tx.Amount / 100
		if err := s.recordRepo.Update(ctx, record); err != nil {
			slog.Error("Failed to store reconciled status",
				"error", err, "recordId", record.ID, "bacentaId", record.BacentaID)
			continue
		}
		reconciled++
	}

	slog.Info("Pending payment sweep finished", "checked", len(records), "reconciled", reconciled)
	return reconciled, nil
}

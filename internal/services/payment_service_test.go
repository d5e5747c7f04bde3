package services

import (
	"context"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/pkg/paystack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPendingRecord(t *testing.T, repo *fakeRecordRepo, id, reference string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &models.BussingRecord{
		ID:                   id,
		BacentaID:            "bacenta-1",
		ServiceDate:          time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		Attendance:           12,
		BussingTopUp:         400,
		TransactionReference: reference,
		TransactionStatus:    models.TransactionPending,
		MomoNumber:           "0241234567",
	}))
}

func TestReconcilePayment_Success(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewPaymentService(repo, newFakePaymentGateway())
	seedPendingRecord(t, repo, "record-1", "ref-1")

	record, err := svc.ReconcilePayment(context.Background(), "ref-1", paystack.StatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSuccess, record.TransactionStatus)

	// Reconciliation touches nothing but the status
	assert.Equal(t, 400.0, record.BussingTopUp)
	assert.Equal(t, 12, record.Attendance)
	assert.Equal(t, "0241234567", record.MomoNumber)
}

func TestReconcilePayment_Failed(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewPaymentService(repo, newFakePaymentGateway())
	seedPendingRecord(t, repo, "record-1", "ref-1")

	record, err := svc.ReconcilePayment(context.Background(), "ref-1", paystack.StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionFailed, record.TransactionStatus)
}

func TestReconcilePayment_UnknownStatusStaysPending(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewPaymentService(repo, newFakePaymentGateway())
	seedPendingRecord(t, repo, "record-1", "ref-1")

	record, err := svc.ReconcilePayment(context.Background(), "ref-1", "reversal-requested")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionPending, record.TransactionStatus)
}

func TestReconcilePayment_UnmatchedReference(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewPaymentService(repo, newFakePaymentGateway())

	_, err := svc.ReconcilePayment(context.Background(), "ref-unknown", paystack.StatusSuccess)
	assert.ErrorIs(t, err, ErrUnreconciledPayment)
}

// Pins the guard-free state machine: a replayed webhook can move a settled
// record back to pending. If a terminal-status guard is ever added, this test
// is the one to flip.
func TestReconcilePayment_ReplayFlipsTerminalStatus(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewPaymentService(repo, newFakePaymentGateway())
	seedPendingRecord(t, repo, "record-1", "ref-1")

	_, err := svc.ReconcilePayment(context.Background(), "ref-1", paystack.StatusSuccess)
	require.NoError(t, err)

	record, err := svc.ReconcilePayment(context.Background(), "ref-1", "reversal-requested")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionPending, record.TransactionStatus)
}

func TestPollPendingPayments(t *testing.T) {
	repo := newFakeRecordRepo()
	gateway := newFakePaymentGateway()
	svc := NewPaymentService(repo, gateway)

	seedPendingRecord(t, repo, "record-1", "ref-1")
	seedPendingRecord(t, repo, "record-2", "ref-2")
	seedPendingRecord(t, repo, "record-3", "ref-3")
	// No reference yet, must be skipped entirely
	require.NoError(t, repo.Create(context.Background(), &models.BussingRecord{
		ID:                "record-4",
		TransactionStatus: models.TransactionPending,
	}))

	gateway.stub("ref-1", paystack.StatusSuccess, 40000)
	gateway.stub("ref-2", paystack.StatusAbandoned, 0)
	// ref-3 not stubbed: gateway verification fails, sweep continues

	reconciled, err := svc.PollPendingPayments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reconciled)

	first, err := repo.FindByID(context.Background(), "record-1")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionSuccess, first.TransactionStatus)
	// Gateway reports pesewas; the record stores GHS alongside bussingTopUp
	assert.Equal(t, 400.0, first.GatewayAmount)

	second, err := repo.FindByID(context.Background(), "record-2")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionPending, second.TransactionStatus, "abandoned is not terminal")

	third, err := repo.FindByID(context.Background(), "record-3")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionPending, third.TransactionStatus)
}

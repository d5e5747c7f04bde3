package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transactionFixture struct {
	svc        *TransactionServiceImpl
	recordRepo *fakeRecordRepo
	counter    *fakeCounterRepo
	bacentas   *fakeBacentaRepo
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	t.Helper()
	recordRepo := newFakeRecordRepo()
	counter := newFakeCounterRepo(recordRepo)
	bacentas := newFakeBacentaRepo()
	require.NoError(t, bacentas.Create(context.Background(), testBacenta()))

	return &transactionFixture{
		svc:        NewTransactionService(counter, recordRepo, bacentas),
		recordRepo: recordRepo,
		counter:    counter,
		bacentas:   bacentas,
	}
}

func (f *transactionFixture) seedRecord(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, f.recordRepo.Create(context.Background(), &models.BussingRecord{
		ID:                id,
		BacentaID:         "bacenta-1",
		ServiceDate:       time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		TransactionStatus: models.TransactionPending,
	}))
}

func TestAllocateTransactionID(t *testing.T) {
	f := newTransactionFixture(t)
	f.seedRecord(t, "record-1")

	receipt, err := f.svc.AllocateTransactionID(context.Background(), "record-1")
	require.NoError(t, err)

	require.NotNil(t, receipt.Record.TransactionID)
	assert.Equal(t, int64(1), *receipt.Record.TransactionID)
	assert.Equal(t, "Accra Central", receipt.BacentaName)
	assert.Equal(t, receipt.Record.ServiceDate, receipt.ServiceDate)
}

func TestAllocateTransactionID_UnknownRecord(t *testing.T) {
	f := newTransactionFixture(t)

	_, err := f.svc.AllocateTransactionID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// A failed allocation must not burn a counter value a later success skips
	current, err := f.counter.Current(context.Background())
	require.NoError(t, err)
	assert.Zero(t, current)
}

func TestAllocateTransactionID_RejectsSecondAllocation(t *testing.T) {
	f := newTransactionFixture(t)
	f.seedRecord(t, "record-1")

	_, err := f.svc.AllocateTransactionID(context.Background(), "record-1")
	require.NoError(t, err)

	// Corrections go through RemoveTransactionID; a straight re-allocation
	// must not overwrite the id or burn a counter value
	_, err = f.svc.AllocateTransactionID(context.Background(), "record-1")
	assert.ErrorIs(t, err, ErrAlreadyAllocated)

	record, err := f.recordRepo.FindByID(context.Background(), "record-1")
	require.NoError(t, err)
	require.NotNil(t, record.TransactionID)
	assert.Equal(t, int64(1), *record.TransactionID)

	current, err := f.counter.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), current)
}

func TestAllocateTransactionID_ConcurrentAllocationsAreUnique(t *testing.T) {
	f := newTransactionFixture(t)
	const n = 64
	for i := 0; i < n; i++ {
		f.seedRecord(t, fmt.Sprintf("record-%d", i))
	}

	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			receipt, err := f.svc.AllocateTransactionID(context.Background(), fmt.Sprintf("record-%d", i))
			if assert.NoError(t, err) {
				ids[i] = *receipt.Record.TransactionID
			}
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	for i := 0; i < n; i++ {
		assert.Equal(t, int64(i+1), ids[i], "ids must be exactly 1..n with no gaps or duplicates")
	}
}

func TestRemoveTransactionID(t *testing.T) {
	f := newTransactionFixture(t)
	f.seedRecord(t, "record-1")
	_, err := f.svc.AllocateTransactionID(context.Background(), "record-1")
	require.NoError(t, err)

	record, err := f.svc.RemoveTransactionID(context.Background(), "record-1")
	require.NoError(t, err)
	assert.Nil(t, record.TransactionID)

	// Removing again is a no-op, not an error
	record, err = f.svc.RemoveTransactionID(context.Background(), "record-1")
	require.NoError(t, err)
	assert.Nil(t, record.TransactionID)
}

func TestRemoveTransactionID_UnknownRecord(t *testing.T) {
	f := newTransactionFixture(t)

	_, err := f.svc.RemoveTransactionID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCheckTransactionID_RequiresConfirmation(t *testing.T) {
	f := newTransactionFixture(t)
	f.seedRecord(t, "record-1")

	_, err := f.svc.CheckTransactionID(context.Background(), "record-1")
	assert.ErrorIs(t, err, ErrNotConfirmed)

	stored, err := f.recordRepo.FindByID(context.Background(), "record-1")
	require.NoError(t, err)
	stored.ConfirmedByID = "admin-1"
	require.NoError(t, f.recordRepo.Update(context.Background(), stored))

	record, err := f.svc.CheckTransactionID(context.Background(), "record-1")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", record.ConfirmedByID)
}

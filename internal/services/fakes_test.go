package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/pkg/paystack"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes. They mirror the mongodb implementations'
// contract: not-found surfaces as mongo.ErrNoDocuments, reads return copies
// the way a decode into a fresh struct would.

type fakeRecordRepo struct {
	mu      sync.Mutex
	records map[string]*models.BussingRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]*models.BussingRecord)}
}

func copyRecord(r *models.BussingRecord) *models.BussingRecord {
	cp := *r
	if r.TransactionID != nil {
		id := *r.TransactionID
		cp.TransactionID = &id
	}
	return &cp
}

func (f *fakeRecordRepo) Create(_ context.Context, record *models.BussingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[record.ID] = copyRecord(record)
	return nil
}

func (f *fakeRecordRepo) FindByID(_ context.Context, id string) (*models.BussingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return copyRecord(record), nil
}

func (f *fakeRecordRepo) FindByTransactionReference(_ context.Context, reference string) (*models.BussingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, record := range f.records {
		if record.TransactionReference == reference {
			return copyRecord(record), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRecordRepo) Update(_ context.Context, record *models.BussingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[record.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.records[record.ID] = copyRecord(record)
	return nil
}

func (f *fakeRecordRepo) FindByBacenta(_ context.Context, bacentaID string, _, _ int) ([]*models.BussingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.BussingRecord
	for _, record := range f.records {
		if record.BacentaID == bacentaID {
			out = append(out, copyRecord(record))
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) FindByDateRange(_ context.Context, start, end time.Time, page, limit int) ([]*models.BussingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*models.BussingRecord
	for _, record := range f.records {
		if !record.ServiceDate.Before(start) && record.ServiceDate.Before(end) {
			all = append(all, copyRecord(record))
		}
	}
	lo := (page - 1) * limit
	if lo >= len(all) {
		return nil, nil
	}
	hi := lo + limit
	if hi > len(all) {
		hi = len(all)
	}
	return all[lo:hi], nil
}

func (f *fakeRecordRepo) FindPendingWithReference(_ context.Context) ([]*models.BussingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.BussingRecord
	for _, record := range f.records {
		if record.TransactionStatus == models.TransactionPending && record.TransactionReference != "" {
			out = append(out, copyRecord(record))
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ClearTransactionID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	record.TransactionID = nil
	return nil
}

func (f *fakeRecordRepo) UpdateStatusByReference(_ context.Context, reference, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched int64
	for _, record := range f.records {
		if record.TransactionReference == reference {
			record.TransactionStatus = status
			matched++
		}
	}
	return matched, nil
}

func (f *fakeRecordRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.records)), nil
}

type fakeBacentaRepo struct {
	mu       sync.Mutex
	bacentas map[string]*models.Bacenta
}

func newFakeBacentaRepo() *fakeBacentaRepo {
	return &fakeBacentaRepo{bacentas: make(map[string]*models.Bacenta)}
}

func (f *fakeBacentaRepo) Create(_ context.Context, bacenta *models.Bacenta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *bacenta
	f.bacentas[bacenta.ID] = &cp
	return nil
}

func (f *fakeBacentaRepo) FindByID(_ context.Context, id string) (*models.Bacenta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bacenta, ok := f.bacentas[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *bacenta
	return &cp, nil
}

func (f *fakeBacentaRepo) Update(_ context.Context, bacenta *models.Bacenta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bacentas[bacenta.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *bacenta
	f.bacentas[bacenta.ID] = &cp
	return nil
}

func (f *fakeBacentaRepo) FindAll(_ context.Context, _, _ int) ([]*models.Bacenta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Bacenta
	for _, bacenta := range f.bacentas {
		cp := *bacenta
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeBacentaRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bacentas)), nil
}

type fakeServiceDayRepo struct {
	mu   sync.Mutex
	days map[string]*models.ServiceDay // keyed by normalized date
}

func newFakeServiceDayRepo() *fakeServiceDayRepo {
	return &fakeServiceDayRepo{days: make(map[string]*models.ServiceDay)}
}

func dayKey(date time.Time) string {
	return models.NormalizeServiceDate(date).Format("2006-01-02")
}

func (f *fakeServiceDayRepo) EnsureIndexes(_ context.Context) error { return nil }

func (f *fakeServiceDayRepo) UpsertByDate(_ context.Context, date time.Time) (*models.ServiceDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upsertLocked(date, false), nil
}

func (f *fakeServiceDayRepo) MarkSwell(_ context.Context, date time.Time) (*models.ServiceDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upsertLocked(date, true), nil
}

func (f *fakeServiceDayRepo) upsertLocked(date time.Time, swell bool) *models.ServiceDay {
	key := dayKey(date)
	day, ok := f.days[key]
	if !ok {
		day = &models.ServiceDay{
			ID:   uuid.NewString(),
			Date: models.NormalizeServiceDate(date),
		}
		f.days[key] = day
	}
	if swell {
		day.Swell = true
	}
	cp := *day
	return &cp
}

func (f *fakeServiceDayRepo) FindByID(_ context.Context, id string) (*models.ServiceDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, day := range f.days {
		if day.ID == id {
			cp := *day
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeServiceDayRepo) FindByDate(_ context.Context, date time.Time) (*models.ServiceDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day, ok := f.days[dayKey(date)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *day
	return &cp, nil
}

type fakeServiceLogRepo struct {
	mu   sync.Mutex
	logs map[string]*models.ServiceLog
}

func newFakeServiceLogRepo() *fakeServiceLogRepo {
	return &fakeServiceLogRepo{logs: make(map[string]*models.ServiceLog)}
}

func (f *fakeServiceLogRepo) Create(_ context.Context, log *models.ServiceLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *log
	f.logs[log.ID] = &cp
	return nil
}

func (f *fakeServiceLogRepo) FindByID(_ context.Context, id string) (*models.ServiceLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log, ok := f.logs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *log
	return &cp, nil
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[string]*models.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*models.Member)}
}

func (f *fakeMemberRepo) Create(_ context.Context, member *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *member
	f.members[member.ID] = &cp
	return nil
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id string) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *member
	return &cp, nil
}

// fakeCounterRepo honors the CounterRepository contract: the increment and
// the record stamp happen under one lock, like the mongo transaction.
type fakeCounterRepo struct {
	mu      sync.Mutex
	lastID  int64
	records *fakeRecordRepo
}

func newFakeCounterRepo(records *fakeRecordRepo) *fakeCounterRepo {
	return &fakeCounterRepo{records: records}
}

func (f *fakeCounterRepo) Allocate(_ context.Context, recordID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records.mu.Lock()
	defer f.records.mu.Unlock()
	record, ok := f.records.records[recordID]
	if !ok {
		return 0, mongo.ErrNoDocuments
	}
	f.lastID++
	id := f.lastID
	record.TransactionID = &id
	return id, nil
}

func (f *fakeCounterRepo) Current(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastID, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *notification
	f.notifications[notification.ID] = &cp
	return nil
}

func (f *fakeNotificationRepo) UpdateStatus(_ context.Context, id, status, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	notification, ok := f.notifications[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	notification.Status = status
	notification.MessageID = messageID
	return nil
}

func (f *fakeNotificationRepo) FindByStatus(_ context.Context, status string, _, _ int) ([]*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Notification
	for _, notification := range f.notifications {
		if notification.Status == status {
			cp := *notification
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.notifications)), nil
}

// fakePaymentGateway serves canned verification results by reference
type fakePaymentGateway struct {
	mu           sync.Mutex
	transactions map[string]*paystack.TransactionData
}

func newFakePaymentGateway() *fakePaymentGateway {
	return &fakePaymentGateway{transactions: make(map[string]*paystack.TransactionData)}
}

func (f *fakePaymentGateway) stub(reference, status string, amount float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions[reference] = &paystack.TransactionData{
		Reference: reference,
		Status:    status,
		Amount:    amount,
		Currency:  "GHS",
	}
}

func (f *fakePaymentGateway) VerifyTransaction(_ context.Context, reference string) (*paystack.TransactionData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.transactions[reference]
	if !ok {
		return nil, fmt.Errorf("transaction %s not found", reference)
	}
	cp := *tx
	return &cp, nil
}

// fakeSMSGateway records every send
type fakeSMSGateway struct {
	mu    sync.Mutex
	sent  []string
	fail  bool
	calls int
}

func (f *fakeSMSGateway) SendSMS(phoneNumber, message string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return "", fmt.Errorf("gateway unavailable")
	}
	f.sent = append(f.sent, phoneNumber+": "+message)
	return fmt.Sprintf("msg-%d", f.calls), nil
}

func (f *fakeSMSGateway) GetDeliveryStatus(messageID string) (string, error) {
	return "delivered", nil
}

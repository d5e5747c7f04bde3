package services

import (
	"context"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSMS(t *testing.T) {
	repo := newFakeNotificationRepo()
	gateway := &fakeSMSGateway{}
	svc := NewNotificationService(repo, gateway, "mock")

	notification, err := svc.SendSMS(context.Background(), "0241234567", "hello", models.NotificationTypeAdhoc, "")
	require.NoError(t, err)

	assert.Equal(t, models.NotificationSent, notification.Status)
	assert.Equal(t, "msg-1", notification.MessageID)
	assert.Equal(t, "mock", notification.Gateway)

	sent, err := repo.FindByStatus(context.Background(), models.NotificationSent, 1, 10)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, notification.ID, sent[0].ID)
}

func TestSendSMS_GatewayFailureLeavesAudit(t *testing.T) {
	repo := newFakeNotificationRepo()
	gateway := &fakeSMSGateway{fail: true}
	svc := NewNotificationService(repo, gateway, "mock")

	notification, err := svc.SendSMS(context.Background(), "0241234567", "hello", models.NotificationTypeAdhoc, "")
	require.Error(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, models.NotificationFailed, notification.Status)

	failed, err := repo.FindByStatus(context.Background(), models.NotificationFailed, 1, 10)
	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestSendTopUpSMS(t *testing.T) {
	repo := newFakeNotificationRepo()
	gateway := &fakeSMSGateway{}
	svc := NewNotificationService(repo, gateway, "mock")

	record := &models.BussingRecord{
		ID:           "record-1",
		BussingTopUp: 400,
		ServiceDate:  time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		MomoNumber:   "0241234567",
		MomoName:     "Ama Mensah",
	}

	notification, err := svc.SendTopUpSMS(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationTypeTopUp, notification.Type)
	assert.Equal(t, "record-1", notification.RecordID)
	assert.Contains(t, notification.Content, "GHS 400.00")
	assert.Contains(t, notification.Content, "Ama Mensah")
}

func TestSendTopUpSMS_NoMomoNumber(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo(), &fakeSMSGateway{}, "mock")

	_, err := svc.SendTopUpSMS(context.Background(), &models.BussingRecord{ID: "record-1"})
	assert.Error(t, err)
}

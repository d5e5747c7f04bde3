package services

import (
	"context"
	"fmt"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"github.com/firstlovecenter/fl-admin-backend/pkg/smsgateway"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure NotificationServiceImpl implements NotificationService
var _ NotificationService = (*NotificationServiceImpl)(nil)

// NotificationServiceImpl sends SMS notifications and persists their outcome
type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	gateway          smsgateway.Gateway
	gatewayName      string
}

// NewNotificationService creates a new NotificationServiceImpl
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	gateway smsgateway.Gateway,
	gatewayName string,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		gateway:          gateway,
		gatewayName:      gatewayName,
	}
}

// SendSMS sends an SMS and records it. The notification document is created
// as PENDING first so a crashed send still leaves an audit entry.
func (s *NotificationServiceImpl) SendSMS(ctx context.Context, phoneNumber, content, notificationType, recordID string) (*models.Notification, error) {
	notification := &models.Notification{
		ID:          uuid.NewString(),
		PhoneNumber: phoneNumber,
		Content:     content,
		Type:        notificationType,
		Status:      models.NotificationPending,
		RecordID:    recordID,
		Gateway:     s.gatewayName,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	messageID, err := s.gateway.SendSMS(phoneNumber, content)
	if err != nil {
		notification.Status = models.NotificationFailed
		if updErr := s.notificationRepo.UpdateStatus(ctx, notification.ID, models.NotificationFailed, ""); updErr != nil {
			slog.Error("Failed to record SMS failure", "error", updErr, "notificationId", notification.ID)
		}
		return notification, fmt.Errorf("failed to send SMS: %w", err)
	}

	notification.Status = models.NotificationSent
	notification.MessageID = messageID
	if err := s.notificationRepo.UpdateStatus(ctx, notification.ID, models.NotificationSent, messageID); err != nil {
		slog.Error("Failed to record SMS delivery", "error", err, "notificationId", notification.ID)
	}

	slog.Info("SMS sent", "phoneNumber", phoneNumber, "type", notificationType, "messageId", messageID)
	return notification, nil
}

// SendTopUpSMS notifies the bacenta's momo holder that a top-up has been
// computed for their record.
func (s *NotificationServiceImpl) SendTopUpSMS(ctx context.Context, record *models.BussingRecord) (*models.Notification, error) {
	if record.MomoNumber == "" {
		return nil, fmt.Errorf("record %s has no momo number", record.ID)
	}

	content := fmt.Sprintf(
		"Hi %s, a bussing top-up of GHS %.2f for %s has been approved and will be paid to this number.",
		record.MomoName, record.BussingTopUp, record.ServiceDate.Format("Mon, 2 Jan 2006"),
	)
	return s.SendSMS(ctx, record.MomoNumber, content, models.NotificationTypeTopUp, record.ID)
}

package models

import (
	"time"
)

// Notification statuses
const (
	NotificationPending = "PENDING"
	NotificationSent    = "SENT"
	NotificationFailed  = "FAILED"
)

// Notification types
const (
	NotificationTypeTopUp    = "TOPUP"
	NotificationTypeReminder = "REMINDER"
	NotificationTypeAdhoc    = "ADHOC"
)

// Notification represents an SMS sent to a bacenta's momo holder or leader
type Notification struct {
	ID          string    `bson:"_id" json:"id"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Content     string    `bson:"content" json:"content"`
	Type        string    `bson:"type" json:"type"`
	Status      string    `bson:"status" json:"status"`
	RecordID    string    `bson:"recordId,omitempty" json:"recordId,omitempty"`
	Gateway     string    `bson:"gateway" json:"gateway"`
	MessageID   string    `bson:"messageId,omitempty" json:"messageId,omitempty"`
	SentDate    time.Time `bson:"sentDate,omitempty" json:"sentDate,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"
)

// Member represents a church member who interacts with bussing records,
// either as the bacenta leader who logs them or the admin who confirms them.
type Member struct {
	ID          string    `bson:"_id" json:"id"`
	FirstName   string    `bson:"firstName" json:"firstName"`
	LastName    string    `bson:"lastName" json:"lastName"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Roles       []string  `bson:"roles" json:"roles"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

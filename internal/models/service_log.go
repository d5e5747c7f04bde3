package models

import (
	"time"
)

// ServiceLog is the per-bacenta container of service records for the current
// period. A bussing record is always attached to the log that was current
// when it was created.
type ServiceLog struct {
	ID        string    `bson:"_id" json:"id"`
	BacentaID string    `bson:"bacentaId" json:"bacentaId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

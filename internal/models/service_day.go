package models

import (
	"time"
)

// ServiceDay represents a calendar date on which services run. At most one
// document exists per date value; swell marks specially-priced dates.
type ServiceDay struct {
	ID        string    `bson:"_id" json:"id"`
	Date      time.Time `bson:"date" json:"date"`
	Swell     bool      `bson:"swell" json:"swell"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// NormalizeServiceDate truncates a timestamp to its UTC calendar date so the
// upsert-by-date merge always hits the same document.
func NormalizeServiceDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

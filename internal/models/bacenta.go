package models

import (
	"time"
)

// Bacenta represents a local sub-congregation unit and its bussing cost
// configuration. The momo fields are the payout destination for top-ups.
type Bacenta struct {
	ID                         string    `bson:"_id" json:"id"`
	Name                       string    `bson:"name" json:"name"`
	LeaderID                   string    `bson:"leaderId" json:"leaderId"`
	ServiceLogID               string    `bson:"serviceLogId,omitempty" json:"serviceLogId,omitempty"`
	Target                     int       `bson:"target" json:"target"`
	SwellBussingCost           float64   `bson:"swellBussingCost" json:"swellBussingCost"`
	SwellPersonalContribution  float64   `bson:"swellPersonalContribution" json:"swellPersonalContribution"`
	NormalBussingCost          float64   `bson:"normalBussingCost" json:"normalBussingCost"`
	NormalPersonalContribution float64   `bson:"normalPersonalContribution" json:"normalPersonalContribution"`
	MomoNumber                 string    `bson:"momoNumber,omitempty" json:"momoNumber,omitempty"`
	MobileNetwork              string    `bson:"mobileNetwork,omitempty" json:"mobileNetwork,omitempty"`
	MomoName                   string    `bson:"momoName,omitempty" json:"momoName,omitempty"`
	CreatedAt                  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt                  time.Time `bson:"updatedAt" json:"updatedAt"`
}

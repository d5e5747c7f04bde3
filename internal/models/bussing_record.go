package models

import (
	"time"
)

// Transaction status values reported by the payment gateway
const (
	TransactionPending = "pending"
	TransactionSuccess = "success"
	TransactionFailed  = "failed"
)

// BussingRecord represents one bacenta's bussing report for a service day.
// Records are never deleted; they form the payout audit trail.
type BussingRecord struct {
	ID                   string    `bson:"_id" json:"id"`
	BacentaID            string    `bson:"bacentaId" json:"bacentaId"`
	ServiceLogID         string    `bson:"serviceLogId" json:"serviceLogId"`
	ServiceDayID         string    `bson:"serviceDayId" json:"serviceDayId"`
	ServiceDate          time.Time `bson:"serviceDate" json:"serviceDate"`
	Attendance           int       `bson:"attendance" json:"attendance"`
	Target               int       `bson:"target" json:"target"`
	MobilisationPicture  string    `bson:"mobilisationPicture" json:"mobilisationPicture"`
	BussingTopUp         float64   `bson:"bussingTopUp" json:"bussingTopUp"`
	TransactionID        *int64    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	TransactionReference string    `bson:"transactionReference,omitempty" json:"transactionReference,omitempty"`
	TransactionStatus    string    `bson:"transactionStatus" json:"transactionStatus"`
	GatewayAmount        float64   `bson:"gatewayAmount,omitempty" json:"gatewayAmount,omitempty"`
	MomoNumber           string    `bson:"momoNumber,omitempty" json:"momoNumber,omitempty"`
	MobileNetwork        string    `bson:"mobileNetwork,omitempty" json:"mobileNetwork,omitempty"`
	MomoName             string    `bson:"momoName,omitempty" json:"momoName,omitempty"`
	LoggedByID           string    `bson:"loggedBy" json:"loggedBy"`
	ConfirmedByID        string    `bson:"confirmedBy,omitempty" json:"confirmedBy,omitempty"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BussingRecordWithDate pairs a record with the swell flag of its service day
type BussingRecordWithDate struct {
	Record *BussingRecord `json:"record"`
	Swell  bool           `json:"swell"`
}

// TransactionReceipt is returned when a transaction id is assigned, for
// display on the payout receipt
type TransactionReceipt struct {
	Record      *BussingRecord `json:"record"`
	BacentaName string         `json:"bacentaName"`
	ServiceDate time.Time      `json:"serviceDate"`
}

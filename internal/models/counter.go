package models

// TransactionCounterID is the fixed _id of the singleton counter document
const TransactionCounterID = "paySwitchTransactionId"

// TransactionCounter is the singleton sequence document backing transaction
// id allocation. LastID always equals the highest transaction id ever
// allocated; it is only ever moved inside the allocation transaction.
type TransactionCounter struct {
	ID     string `bson:"_id" json:"id"`
	LastID int64  `bson:"lastId" json:"lastId"`
}

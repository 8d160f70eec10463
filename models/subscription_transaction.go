package models

import (
	"time"
)

const PaymentStatusPaid = "paid"

// SubscriptionTransaction is the append-only payment ledger. Rows are never
// updated after insert.
type SubscriptionTransaction struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SubscriptionsID int64     `json:"subscriptions_id" gorm:"index"`
	UserID          int64     `json:"user_id"`
	Amount          float64   `json:"amount"`
	PaymentType     string    `json:"payment_type"`
	PaymentStatus   string    `json:"payment_status"`
	TransactionID   string    `json:"transaction_id"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SubscriptionTransaction) TableName() string {
	return "subscriptions_transactions"
}

package models

import (
	"time"
)

const (
	PaymentMethodStripe = "stripe"
	PaymentMethodSentoo = "sentoo"
)

// PaymentMethod holds per-provider credentials as an opaque JSON blob.
// It is re-read on every payment call so providers can be reconfigured
// without a restart.
type PaymentMethod struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Code       string    `json:"code" gorm:"uniqueIndex"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	ConfigJSON string    `json:"-" gorm:"column:config_json"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

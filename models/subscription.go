package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription snapshots the plan's name, price and duration at activation
// time so later plan edits never rewrite what a user actually bought.
type Subscription struct {
	ID         int64              `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64              `json:"user_id" gorm:"index"`
	PlanID     int64              `json:"plan_id"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	FinalPrice float64            `json:"final_price"`
	Duration   int                `json:"duration"`
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
	Status     SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionWithPlan is the listing row joined with current plan display
// fields.
type SubscriptionWithPlan struct {
	Subscription
	PlanName        string  `json:"plan_name"`
	PlanPrice       float64 `json:"plan_price"`
	PlanDuration    int     `json:"plan_duration"`
	PlanDescription string  `json:"plan_description"`
}

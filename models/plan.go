package models

import (
	"time"
)

type Plan struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}

package models

import (
	"time"
)

type Radio struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID  int64     `json:"category_id"`
	LanguageID  int64     `json:"language_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	StreamURL   string    `json:"stream_url"`
	Ordering    int       `json:"ordering"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Radio) TableName() string {
	return "radios"
}

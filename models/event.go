package models

import (
	"time"
)

type Event struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Thumbnail    string    `json:"thumbnail"`
	Banner       string    `json:"banner"`
	CategoryID   int64     `json:"category_id"`
	LanguageID   int64     `json:"language_id"`
	VideoURL     string    `json:"video_url"`
	StartAt      string    `json:"start_at"`
	EndAt        string    `json:"end_at"`
	Ordering     int       `json:"ordering"`
	Downloadable int       `json:"downloadable"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

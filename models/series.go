package models

import (
	"time"
)

type Series struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title"`
	Poster       string    `json:"poster"`
	Banner       string    `json:"banner"`
	Description  string    `json:"description"`
	Genres       IDList    `json:"genres" gorm:"type:jsonb"`
	VideoURL     string    `json:"video_url"`
	ImdbRating   float64   `json:"imdb_rating"`
	Downloadable int       `json:"downloadable"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Series) TableName() string {
	return "series"
}

package models

import (
	"time"
)

// Movie rows use an integer status flag (1 = active), kept as-is for parity
// with the existing schema.
const MovieActive = 1

type Movie struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Thumbnail     string    `json:"thumbnail"`
	Poster        string    `json:"poster"`
	PosterTV      string    `json:"poster_tv"`
	VideoURL      string    `json:"video_url"`
	Description   string    `json:"description"`
	Genres        IDList    `json:"genres" gorm:"type:jsonb"`
	Actors        IDList    `json:"actors" gorm:"type:jsonb"`
	Directors     IDList    `json:"directors" gorm:"type:jsonb"`
	LanguageID    int64     `json:"language_id"`
	ImdbRating    float64   `json:"imdb_rating"`
	ReleaseDate   string    `json:"release_date"`
	AgeRestricted int       `json:"age_restricted"`
	Downloadable  int       `json:"downloadable"`
	Status        int       `json:"status" gorm:"default:1"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

package models

import (
	"time"
)

// Category is the movie/series/event genre reference table. The table is
// still named movie_categories even though series and events point into it.
type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "movie_categories"
}

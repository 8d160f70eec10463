package models

import (
	"time"
)

const PagePublished = "published"

type Page struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	Content   string    `json:"content"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'published'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Page) TableName() string {
	return "pages"
}

type FAQ struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	SortOrder int       `json:"sort_order"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}

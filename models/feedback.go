package models

import (
	"time"
)

type Feedback struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedbackCreate is the feedback payload; rating is a 1..5 star value.
type FeedbackCreate struct {
	Name    string `json:"name" binding:"required,max=150"`
	Email   string `json:"email" binding:"required,email,max=150"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message"`
}

func (Feedback) TableName() string {
	return "feedback"
}

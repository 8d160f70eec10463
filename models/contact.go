package models

import (
	"time"
)

type Contact struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactCreate is the contact-us payload
type ContactCreate struct {
	Name    string `json:"name" binding:"required,max=150"`
	Email   string `json:"email" binding:"required,email,max=150"`
	Message string `json:"message" binding:"required"`
}

func (Contact) TableName() string {
	return "contacts"
}

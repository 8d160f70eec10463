package models

import (
	"time"
)

type UserType string

const (
	AdminUser   UserType = "admin"
	RegularUser UserType = "user"
)

type User struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name"`
	Email         string    `json:"email" gorm:"uniqueIndex"`
	Phone         string    `json:"phone"`
	Password      string    `json:"-"`
	Country       string    `json:"country"`
	DateOfBirth   string    `json:"date_of_birth"`
	ProfilePhoto  string    `json:"profile_photo"`
	UserType      UserType  `json:"user_type" gorm:"type:varchar(20);default:'user'"`
	RememberToken string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserCreate is the register payload
type UserCreate struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email"`
	Phone                string `json:"phone" binding:"required,max=30"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the subset of user fields exposed on account endpoints
type UserProfile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Country      string `json:"country"`
	DateOfBirth  string `json:"date_of_birth"`
	ProfilePhoto string `json:"profile_photo"`
}

func (User) TableName() string {
	return "users"
}

package models

import (
	"time"
)

// Channel statuses are plain strings ("active" / "inactive") in the live TV
// tables, unlike movies which use an integer flag.
const StatusActive = "active"

type LiveTV struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID      int64     `json:"category_id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Logo            string    `json:"logo"`
	Description     string    `json:"description"`
	StreamType      string    `json:"stream_type"`
	StreamURL       string    `json:"stream_url"`
	BackupStreamURL string    `json:"backup_stream_url"`
	ScheduleTime    string    `json:"schedule_time"`
	Ordering        int       `json:"ordering"`
	Status          string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (LiveTV) TableName() string {
	return "live_tvs"
}

type LiveTVCategory struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon"`
	Ordering  int       `json:"ordering"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LiveTVCategory) TableName() string {
	return "live_tv_categories"
}

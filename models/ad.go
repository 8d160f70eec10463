package models

import (
	"time"
)

// Ad rows are keyed by the page they appear on (ad_page), e.g. "home-page".
type Ad struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AdTitle   string    `json:"ad_title"`
	AdImg     string    `json:"ad_img"`
	AdLink    string    `json:"ad_link"`
	AdPage    string    `json:"ad_page"`
	AdStatus  int       `json:"ad_status" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Ad) TableName() string {
	return "ad_manager"
}

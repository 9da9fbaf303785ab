package models

import "time"

// VideoResource is a teaching video in the resources section.
// At most domain.MaxActiveVideos may be active at once.
type VideoResource struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ThumbnailURL string    `gorm:"size:512;not null" json:"thumbnail_url"`
	VideoURL     string    `gorm:"size:512;not null" json:"video_url"`
	Duration     string    `gorm:"size:16" json:"duration"`
	Views        int64     `gorm:"default:0" json:"views"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

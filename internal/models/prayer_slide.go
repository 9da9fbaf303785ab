package models

import "time"

// PrayerSlide is a slide on the app's prayer schedule.
// EventTime is a wall-clock HH:MM string; Frequency is one of
// domain.Frequencies.
type PrayerSlide struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	EventTime string    `gorm:"size:5;not null" json:"event_time"`
	Frequency string    `gorm:"size:32;not null" json:"frequency"`
	SortOrder int       `gorm:"default:1;index" json:"sort_order"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

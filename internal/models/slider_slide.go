package models

import "time"

// SliderSlide is one image in the home-screen slider. Four slots are
// conventional; sort_order is neither unique nor contiguous, the list
// endpoint just orders by it.
type SliderSlide struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	ButtonURL string    `gorm:"size:512" json:"button_url"`
	SortOrder int       `gorm:"default:1;index" json:"sort_order"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

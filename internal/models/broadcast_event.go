package models

import "time"

// BroadcastEvent is a scheduled live broadcast shown in the app.
// At most domain.MaxActiveBroadcasts may be active at once.
type BroadcastEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:512;not null" json:"image_url"`
	EventTime   time.Time `gorm:"not null;index" json:"event_time"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

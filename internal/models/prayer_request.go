package models

import "time"

// PrayerRequest is submitted from the app and handled in the console.
// Status reaches "Responded" only through the respond action, which also
// stamps RespondedAt.
type PrayerRequest struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserName      string     `gorm:"size:128;not null" json:"user_name"`
	UserEmail     string     `gorm:"size:255;not null" json:"user_email"`
	UserAvatar    string     `gorm:"size:512" json:"user_avatar"`
	Subject       string     `gorm:"size:255;not null" json:"subject"`
	Body          string     `gorm:"type:text;not null" json:"body"`
	Category      string     `gorm:"size:32;not null;index" json:"category"`
	Priority      string     `gorm:"size:16;not null;index" json:"priority"`
	Status        string     `gorm:"size:16;not null;default:Pending;index" json:"status"`
	SubmittedAt   time.Time  `gorm:"not null" json:"submitted_at"`
	AdminResponse string     `gorm:"type:text" json:"admin_response,omitempty"`
	AdminName     string     `gorm:"size:128" json:"admin_name,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

package models

import "time"

// AppUser is a registered mobile-app user as shown on the console's
// users screen. GGPStatus is one of domain.GGPStatuses.
type AppUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:64;not null" json:"first_name"`
	LastName     string    `gorm:"size:64;not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	ProfileImage string    `gorm:"size:512" json:"profile_image"`
	GGPStatus    string    `gorm:"size:16;not null;default:Pending;index" json:"ggp_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package models

import "time"

// MusicTrack is an entry in the app's music library. Both URLs must
// point at the media host before a track is accepted.
type MusicTrack struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Artist    string    `gorm:"size:255;not null" json:"artist"`
	Genre     string    `gorm:"size:64" json:"genre"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	AudioURL  string    `gorm:"size:512;not null" json:"audio_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

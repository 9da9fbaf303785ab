package models

import "time"

// PrayerResource is a downloadable PDF (guide, prayer points, book).
type PrayerResource struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Author        string    `gorm:"size:128" json:"author,omitempty"`
	PDFURL        string    `gorm:"size:512;not null" json:"pdf_url"`
	FileName      string    `gorm:"size:255" json:"file_name"`
	FileSize      string    `gorm:"size:32" json:"file_size"`
	Category      string    `gorm:"size:32;not null" json:"category"`
	DownloadCount int64     `gorm:"default:0" json:"download_count"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

package models

import "time"

// QuizQuestion is one question in the sword-drill Bible game.
// Options holds 2-4 answers; CorrectOption indexes into it.
type QuizQuestion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	Options       []string  `gorm:"serializer:json;type:json" json:"options"`
	CorrectOption int       `gorm:"not null" json:"correct_option"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the table the app already reads from.
func (QuizQuestion) TableName() string { return "game_sword" }

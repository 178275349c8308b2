package model

import "time"

// ProgressRecord tracks per-note study activity. MasteryLevel is 0-100.
type ProgressRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_progress_user_note,unique" json:"user_id"`
	NoteID       uint      `gorm:"not null;index:idx_progress_user_note,unique" json:"note_id"`
	AccessCount  int       `gorm:"not null;default:0" json:"access_count"`
	MasteryLevel int       `gorm:"not null;default:0" json:"mastery_level"`
	LastAccessed time.Time `json:"last_accessed"`
}

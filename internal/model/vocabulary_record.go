package model

import "time"

type VocabularyRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_vocab_user_word,unique" json:"user_id"`
	Word      string    `gorm:"size:100;not null;index:idx_vocab_user_word,unique" json:"word"`
	Known     bool      `json:"known"`
	CreatedAt time.Time `json:"created_at"`
}

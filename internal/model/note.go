package model

import "time"

type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	FilePath  string    `gorm:"size:500" json:"file_path"`
	FileType  string    `gorm:"size:50" json:"file_type"`
	Category  string    `gorm:"size:100" json:"category"`
	Keywords  string    `gorm:"type:text" json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

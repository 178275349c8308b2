package model

import "time"

// EnhancedContent is the durable record of one AI enhancement: the original
// input (or a placeholder when the input was an image), the generated text,
// and the path of the Markdown rendering on disk. Rows are create-only.
type EnhancedContent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	ContentType string    `gorm:"size:50;not null;index" json:"content_type"`
	Original    string    `gorm:"type:text" json:"original"`
	Enhanced    string    `gorm:"type:text" json:"enhanced"`
	IsImage     bool      `json:"is_image"`
	FilePath    string    `gorm:"size:500" json:"file_path"`
	CreatedAt   time.Time `json:"created_at"`
}

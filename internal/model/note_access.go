package model

import "time"

// NoteAccess is the queue payload emitted when a user opens a note. It is
// consumed asynchronously to update ProgressRecord rows; it is not a table.
type NoteAccess struct {
	UserID     uint      `json:"user_id"`
	NoteID     uint      `json:"note_id"`
	AccessedAt time.Time `json:"accessed_at"`
}

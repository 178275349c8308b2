package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jasonren05/learning-agent/internal/model"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// RecordAccess bumps the access count for the note, creating the progress
// row on first access.
func (r *ProgressRepository) RecordAccess(userID, noteID uint, accessedAt time.Time) error {
	var existing model.ProgressRecord
	err := r.db.Where("user_id = ? AND note_id = ?", userID, noteID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("query progress record failed: %w", err)
		}
		record := model.ProgressRecord{
			UserID:       userID,
			NoteID:       noteID,
			AccessCount:  1,
			LastAccessed: accessedAt,
		}
		if err := r.db.Create(&record).Error; err != nil {
			return fmt.Errorf("create progress record failed: %w", err)
		}
		return nil
	}

	updates := map[string]interface{}{
		"access_count":  gorm.Expr("access_count + 1"),
		"last_accessed": accessedAt,
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("update progress record failed: %w", err)
	}
	return nil
}

func (r *ProgressRepository) TotalAccessByUserID(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&model.ProgressRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(access_count), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum access counts failed: %w", err)
	}
	return total, nil
}

func (r *ProgressRepository) AverageMasteryByUserID(userID uint) (float64, error) {
	var avg float64
	err := r.db.Model(&model.ProgressRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(mastery_level), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("average mastery failed: %w", err)
	}
	return avg, nil
}

// RecentNote pairs a note with its progress row for recent-activity listings.
type RecentNote struct {
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	AccessCount  int       `json:"access_count"`
	LastAccessed time.Time `json:"last_accessed"`
}

func (r *ProgressRepository) RecentNotesByUserID(userID uint, limit int) ([]RecentNote, error) {
	if limit <= 0 {
		limit = 5
	}

	var recent []RecentNote
	err := r.db.Model(&model.ProgressRecord{}).
		Select("notes.title, notes.category, progress_records.access_count, progress_records.last_accessed").
		Joins("JOIN notes ON notes.id = progress_records.note_id").
		Where("progress_records.user_id = ?", userID).
		Order("progress_records.last_accessed DESC").
		Limit(limit).
		Scan(&recent).Error
	if err != nil {
		return nil, fmt.Errorf("list recent notes failed: %w", err)
	}
	return recent, nil
}

package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jasonren05/learning-agent/internal/model"
)

type EnhancedContentRepository struct {
	db *gorm.DB
}

func NewEnhancedContentRepository(db *gorm.DB) *EnhancedContentRepository {
	return &EnhancedContentRepository{db: db}
}

func (r *EnhancedContentRepository) Create(record *model.EnhancedContent) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("create enhanced content failed: %w", err)
	}
	return nil
}

func (r *EnhancedContentRepository) GetByIDAndUserID(id, userID uint) (*model.EnhancedContent, error) {
	var record model.EnhancedContent
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enhanced content failed: %w", err)
	}
	return &record, nil
}

func (r *EnhancedContentRepository) ListByUserID(userID uint, limit int) ([]model.EnhancedContent, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var records []model.EnhancedContent
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list enhanced contents failed: %w", err)
	}
	return records, nil
}

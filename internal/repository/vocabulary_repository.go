package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jasonren05/learning-agent/internal/model"
)

type VocabularyRepository struct {
	db *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

// Upsert records whether the user knows the word, updating the existing
// row if one exists.
func (r *VocabularyRepository) Upsert(userID uint, word string, known bool) error {
	var existing model.VocabularyRecord
	err := r.db.Where("user_id = ? AND word = ?", userID, word).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("query vocabulary record failed: %w", err)
		}
		record := model.VocabularyRecord{UserID: userID, Word: word, Known: known}
		if err := r.db.Create(&record).Error; err != nil {
			return fmt.Errorf("create vocabulary record failed: %w", err)
		}
		return nil
	}

	if err := r.db.Model(&existing).Update("known", known).Error; err != nil {
		return fmt.Errorf("update vocabulary record failed: %w", err)
	}
	return nil
}

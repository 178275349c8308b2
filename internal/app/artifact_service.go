package app

import (
	"errors"

	"github.com/jasonren05/learning-agent/internal/model"
	"github.com/jasonren05/learning-agent/internal/repository"
)

var ErrArtifactNotFound = errors.New("enhanced content not found")

// ArtifactService reads back previously archived enhancement results.
type ArtifactService struct {
	contentRepo *repository.EnhancedContentRepository
}

func NewArtifactService(contentRepo *repository.EnhancedContentRepository) *ArtifactService {
	return &ArtifactService{contentRepo: contentRepo}
}

func (s *ArtifactService) List(userID uint, limit int) ([]model.EnhancedContent, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.contentRepo.ListByUserID(userID, limit)
}

func (s *ArtifactService) Get(userID, artifactID uint) (*model.EnhancedContent, error) {
	if userID == 0 || artifactID == 0 {
		return nil, ErrInvalidInput
	}

	record, err := s.contentRepo.GetByIDAndUserID(artifactID, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrArtifactNotFound
	}
	return record, nil
}

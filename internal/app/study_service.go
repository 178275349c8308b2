package app

import (
	"math"
	"strings"

	"github.com/jasonren05/learning-agent/internal/repository"
)

// StudyService covers vocabulary bookkeeping and progress aggregation.
type StudyService struct {
	vocabRepo    *repository.VocabularyRepository
	progressRepo *repository.ProgressRepository
	noteRepo     *repository.NoteRepository
}

type ProgressSummary struct {
	TotalNotes     int64                   `json:"total_notes"`
	TotalAccess    int64                   `json:"total_access"`
	AverageMastery float64                 `json:"average_mastery"`
	RecentNotes    []repository.RecentNote `json:"recent_notes"`
}

func NewStudyService(
	vocabRepo *repository.VocabularyRepository,
	progressRepo *repository.ProgressRepository,
	noteRepo *repository.NoteRepository,
) *StudyService {
	return &StudyService{
		vocabRepo:    vocabRepo,
		progressRepo: progressRepo,
		noteRepo:     noteRepo,
	}
}

func (s *StudyService) RecordVocabulary(userID uint, word string, known bool) error {
	word = strings.TrimSpace(word)
	if userID == 0 || word == "" {
		return ErrInvalidInput
	}
	return s.vocabRepo.Upsert(userID, word, known)
}

func (s *StudyService) Progress(userID uint) (*ProgressSummary, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	totalNotes, err := s.noteRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	totalAccess, err := s.progressRepo.TotalAccessByUserID(userID)
	if err != nil {
		return nil, err
	}
	avgMastery, err := s.progressRepo.AverageMasteryByUserID(userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.progressRepo.RecentNotesByUserID(userID, 5)
	if err != nil {
		return nil, err
	}

	return &ProgressSummary{
		TotalNotes:     totalNotes,
		TotalAccess:    totalAccess,
		AverageMastery: math.Round(avgMastery*10) / 10,
		RecentNotes:    recent,
	}, nil
}

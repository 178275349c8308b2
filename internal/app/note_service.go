package app

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jasonren05/learning-agent/internal/extract"
	"github.com/jasonren05/learning-agent/internal/model"
	"github.com/jasonren05/learning-agent/internal/repository"
)

var ErrNoteNotFound = errors.New("note not found")

// AccessEventPublisher emits note-access events for asynchronous progress
// tracking.
type AccessEventPublisher interface {
	Publish(ctx context.Context, event model.NoteAccess) error
}

type NoteService struct {
	noteRepo  *repository.NoteRepository
	publisher AccessEventPublisher
}

type CreateNoteInput struct {
	UserID   uint
	Title    string
	Category string
	FilePath string
	FileType string
}

type CreateNoteResult struct {
	Note     *model.Note `json:"note"`
	IsImage  bool        `json:"is_image"`
	FileType string      `json:"file_type"`
}

func NewNoteService(noteRepo *repository.NoteRepository, publisher AccessEventPublisher) *NoteService {
	return &NoteService{
		noteRepo:  noteRepo,
		publisher: publisher,
	}
}

// CreateFromUpload extracts the uploaded file's content and records it as a
// note. Unsupported file types yield a note with empty content; only an
// invalid plain-text encoding aborts the upload.
func (s *NoteService) CreateFromUpload(input CreateNoteInput) (*CreateNoteResult, error) {
	if input.UserID == 0 || strings.TrimSpace(input.FilePath) == "" {
		return nil, ErrInvalidInput
	}

	fileType, _ := extract.ParseFileType(input.FileType)
	content, err := extract.File(input.FilePath, fileType)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Untitled"
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "未分类"
	}

	note := &model.Note{
		UserID:   input.UserID,
		Title:    title,
		Content:  content.Payload(),
		FilePath: input.FilePath,
		FileType: string(fileType),
		Category: category,
	}
	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}

	return &CreateNoteResult{
		Note:     note,
		IsImage:  fileType.IsImage(),
		FileType: string(fileType),
	}, nil
}

func (s *NoteService) List(userID uint) ([]model.Note, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.noteRepo.ListByUserID(userID)
}

// Get returns the note and emits an access event for progress tracking.
// Access tracking is best-effort; a publish failure never fails the read.
func (s *NoteService) Get(ctx context.Context, userID, noteID uint) (*model.Note, error) {
	if userID == 0 || noteID == 0 {
		return nil, ErrInvalidInput
	}

	note, err := s.noteRepo.GetByIDAndUserID(noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	if s.publisher != nil {
		event := model.NoteAccess{
			UserID:     userID,
			NoteID:     noteID,
			AccessedAt: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("publish note access event failed: %v", err)
		}
	}

	return note, nil
}

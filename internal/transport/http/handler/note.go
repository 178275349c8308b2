package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jasonren05/learning-agent/internal/app"
	"github.com/jasonren05/learning-agent/internal/extract"
	"github.com/jasonren05/learning-agent/internal/transport/http/response"
)

const maxUploadSize = 20 << 20 // 20 MB

type NoteHandler struct {
	noteService *app.NoteService
	uploadDir   string
}

func NewNoteHandler(noteService *app.NoteService, uploadDir string) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		uploadDir:   uploadDir,
	}
}

// Upload saves the file, extracts its content, and records it as a note.
func (h *NoteHandler) Upload(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "file too large")
		return
	}

	filename := filepath.Base(fileHeader.Filename)
	if filename == "." || filename == string(filepath.Separator) {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid filename")
		return
	}

	savePath := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "save uploaded file failed")
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = filename
	}

	result, err := h.noteService.CreateFromUpload(app.CreateNoteInput{
		UserID:   userID,
		Title:    title,
		Category: c.PostForm("category"),
		FilePath: savePath,
		FileType: filepath.Ext(filename),
	})
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrInvalidEncoding):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidEncoding, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "upload failed")
		}
		return
	}

	response.OK(c, gin.H{
		"note_id":   result.Note.ID,
		"is_image":  result.IsImage,
		"file_type": result.FileType,
	})
}

func (h *NoteHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	notes, err := h.noteService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list notes failed")
		return
	}

	items := make([]gin.H, 0, len(notes))
	for _, note := range notes {
		items = append(items, gin.H{
			"id":         note.ID,
			"title":      note.Title,
			"category":   note.Category,
			"file_type":  note.FileType,
			"created_at": note.CreatedAt,
		})
	}
	response.OK(c, items)
}

func (h *NoteHandler) Get(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	noteID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || noteID64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid note id")
		return
	}

	note, err := h.noteService.Get(c.Request.Context(), userID, uint(noteID64))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoteNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNoteNotFound, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get note failed")
		}
		return
	}

	response.OK(c, note)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jasonren05/learning-agent/internal/app"
	"github.com/jasonren05/learning-agent/internal/transport/http/response"
)

type StudyHandler struct {
	studyService *app.StudyService
}

type VocabularyRequest struct {
	Word  string `json:"word" binding:"required,max=100"`
	Known bool   `json:"known"`
}

func NewStudyHandler(studyService *app.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

func (h *StudyHandler) RecordVocabulary(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req VocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	if err := h.studyService.RecordVocabulary(userID, req.Word, req.Known); err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		} else {
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "record vocabulary failed")
		}
		return
	}

	response.OK(c, gin.H{"recorded": req.Word})
}

func (h *StudyHandler) Progress(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	summary, err := h.studyService.Progress(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get progress failed")
		return
	}

	response.OK(c, summary)
}

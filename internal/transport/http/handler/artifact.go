package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jasonren05/learning-agent/internal/app"
	"github.com/jasonren05/learning-agent/internal/transport/http/response"
)

type ArtifactHandler struct {
	artifactService *app.ArtifactService
}

func NewArtifactHandler(artifactService *app.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{artifactService: artifactService}
}

func (h *ArtifactHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	records, err := h.artifactService.List(userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list enhanced contents failed")
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		items = append(items, gin.H{
			"id":           record.ID,
			"content_type": record.ContentType,
			"is_image":     record.IsImage,
			"created_at":   record.CreatedAt,
		})
	}
	response.OK(c, items)
}

func (h *ArtifactHandler) Get(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	artifactID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || artifactID64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid content id")
		return
	}

	record, err := h.artifactService.Get(userID, uint(artifactID64))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrArtifactNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNoteNotFound, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "get enhanced content failed")
		}
		return
	}

	response.OK(c, record)
}

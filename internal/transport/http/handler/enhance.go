package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jasonren05/learning-agent/internal/app"
	"github.com/jasonren05/learning-agent/internal/prompt"
	"github.com/jasonren05/learning-agent/internal/transport/http/middleware"
	"github.com/jasonren05/learning-agent/internal/transport/http/response"
)

type EnhanceHandler struct {
	enhanceService *app.EnhanceService
	authService    *app.AuthService
}

type EnhanceNotesRequest struct {
	Content string `json:"content"`
	IsImage bool   `json:"is_image"`
}

type AnalyzeProblemsRequest struct {
	Problems string `json:"problems"`
	IsImage  bool   `json:"is_image"`
}

type EnglishStudyRequest struct {
	Text    string `json:"text"`
	IsImage bool   `json:"is_image"`
}

func NewEnhanceHandler(enhanceService *app.EnhanceService, authService *app.AuthService) *EnhanceHandler {
	return &EnhanceHandler{
		enhanceService: enhanceService,
		authService:    authService,
	}
}

func (h *EnhanceHandler) EnhanceNotes(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req EnhanceNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.enhanceService.EnhanceNote(c.Request.Context(), userID, req.Content, req.IsImage)
	if err != nil {
		writeEnhanceError(c, err)
		return
	}

	response.OK(c, gin.H{
		"enhanced_content": result.Content,
		"save_id":          saveID(result),
	})
}

func (h *EnhanceHandler) AnalyzeProblems(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req AnalyzeProblemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.enhanceService.AnalyzeProblem(c.Request.Context(), userID, req.Problems, req.IsImage)
	if err != nil {
		writeEnhanceError(c, err)
		return
	}

	response.OK(c, gin.H{
		"analysis": result.Content,
		"save_id":  saveID(result),
	})
}

// EnglishStudy tailors the material to the user's stored proficiency level.
func (h *EnhanceHandler) EnglishStudy(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid token payload")
		return
	}

	var req EnglishStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil || user == nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch current user failed")
		return
	}

	result, err := h.enhanceService.GenerateEnglishMaterial(
		c.Request.Context(),
		userID,
		req.Text,
		req.IsImage,
		prompt.Level(user.EnglishLevel),
	)
	if err != nil {
		writeEnhanceError(c, err)
		return
	}

	response.OK(c, gin.H{
		"study_material": result.Content,
		"save_id":        saveID(result),
	})
}

func writeEnhanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrContentEmpty), errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "内容不能为空")
	case errors.Is(err, app.ErrAIUnavailable):
		response.Error(c, http.StatusServiceUnavailable, response.CodeAIUnavailable, "AI服务暂时不可用")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "enhancement failed")
	}
}

// saveID renders the artifact id as null when archival did not happen.
func saveID(result *app.EnhanceResult) interface{} {
	if result.ArtifactID == 0 {
		return nil
	}
	return result.ArtifactID
}

func getUserIDFromContext(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	return userID, ok
}

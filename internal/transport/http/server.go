package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jasonren05/learning-agent/internal/ai"
	appsvc "github.com/jasonren05/learning-agent/internal/app"
	"github.com/jasonren05/learning-agent/internal/archive"
	"github.com/jasonren05/learning-agent/internal/bootstrap"
	"github.com/jasonren05/learning-agent/internal/cache"
	"github.com/jasonren05/learning-agent/internal/platform/rabbitmq"
	"github.com/jasonren05/learning-agent/internal/repository"
	"github.com/jasonren05/learning-agent/internal/transport/http/handler"
	"github.com/jasonren05/learning-agent/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	noteRepo := repository.NewNoteRepository(app.MySQL)
	enhancedRepo := repository.NewEnhancedContentRepository(app.MySQL)
	vocabRepo := repository.NewVocabularyRepository(app.MySQL)
	progressRepo := repository.NewProgressRepository(app.MySQL)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)

	accessPublisher := rabbitmq.NewAccessPublisher(app.MQConn, app.Config.RabbitMQ.NoteAccessQueue)
	noteService := appsvc.NewNoteService(noteRepo, accessPublisher)

	llmClient := ai.NewOpenAICompatibleClient(time.Duration(app.Config.LLM.TimeoutSeconds) * time.Second)
	archiver := archive.New(app.Config.Storage.ArchiveDir, enhancedRepo)
	resultCache := cache.NewResultCache(app.Redis, time.Duration(app.Config.Redis.ResultTTLSeconds)*time.Second)
	enhanceService := appsvc.NewEnhanceService(llmClient, archiver, resultCache, ai.ChatConfig{
		BaseURL: app.Config.LLM.BaseURL,
		APIKey:  app.Config.LLM.APIKey,
		Model:   app.Config.LLM.Model,
	})

	studyService := appsvc.NewStudyService(vocabRepo, progressRepo, noteRepo)
	artifactService := appsvc.NewArtifactService(enhancedRepo)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService, app.Config.Storage.UploadDir)
	enhanceHandler := handler.NewEnhanceHandler(enhanceService, authService)
	studyHandler := handler.NewStudyHandler(studyService)
	artifactHandler := handler.NewArtifactHandler(artifactService)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	protected := v1.Group("")
	protected.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	protected.POST("/upload", noteHandler.Upload)
	protected.GET("/notes", noteHandler.List)
	protected.GET("/notes/:id", noteHandler.Get)
	protected.POST("/enhance-notes", enhanceHandler.EnhanceNotes)
	protected.POST("/analyze-problems", enhanceHandler.AnalyzeProblems)
	protected.POST("/english-study", enhanceHandler.EnglishStudy)
	protected.GET("/enhanced-contents", artifactHandler.List)
	protected.GET("/enhanced-contents/:id", artifactHandler.Get)
	protected.POST("/vocabulary", studyHandler.RecordVocabulary)
	protected.GET("/progress", studyHandler.Progress)

	return router
}

package app

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jasonren05/learning-agent/internal/ai"
	"github.com/jasonren05/learning-agent/internal/prompt"
)

var (
	ErrContentEmpty  = errors.New("content is empty")
	ErrAIUnavailable = errors.New("ai service unavailable")
)

// CompletionProvider is the external generative service boundary.
type CompletionProvider interface {
	Complete(ctx context.Context, cfg ai.ChatConfig, conversation ai.Conversation) (string, error)
}

// ArtifactArchiver persists a successful enhancement. Archival failure is
// never fatal to the request; the service absorbs it.
type ArtifactArchiver interface {
	Archive(userID uint, task prompt.TaskKind, original, generated string, isImage bool) (uint, error)
}

// EnhanceResultCache short-circuits repeated identical text requests.
type EnhanceResultCache interface {
	Get(ctx context.Context, task, content, level string) (string, bool, error)
	Set(ctx context.Context, task, content, level, generated string) error
}

// EnhanceService runs the enhancement pipeline: validate, build the prompt,
// call the provider, archive the result.
type EnhanceService struct {
	provider CompletionProvider
	archiver ArtifactArchiver
	cache    EnhanceResultCache // nil disables caching
	chatCfg  ai.ChatConfig
}

// EnhanceResult carries the generated content and, when archival succeeded,
// the artifact record id. ArtifactID 0 means the result was generated but
// could not be archived.
type EnhanceResult struct {
	Content    string `json:"content"`
	ArtifactID uint   `json:"artifact_id,omitempty"`
}

func NewEnhanceService(
	provider CompletionProvider,
	archiver ArtifactArchiver,
	cache EnhanceResultCache,
	chatCfg ai.ChatConfig,
) *EnhanceService {
	return &EnhanceService{
		provider: provider,
		archiver: archiver,
		cache:    cache,
		chatCfg:  chatCfg,
	}
}

func (s *EnhanceService) EnhanceNote(ctx context.Context, userID uint, content string, isImage bool) (*EnhanceResult, error) {
	return s.run(ctx, userID, prompt.TaskNoteCompletion, content, isImage, "")
}

func (s *EnhanceService) AnalyzeProblem(ctx context.Context, userID uint, content string, isImage bool) (*EnhanceResult, error) {
	return s.run(ctx, userID, prompt.TaskProblemAnalysis, content, isImage, "")
}

// GenerateEnglishMaterial never fails on an unrecognized level; the prompt
// builder resolves unknown levels to the high-school label.
func (s *EnhanceService) GenerateEnglishMaterial(ctx context.Context, userID uint, text string, isImage bool, level prompt.Level) (*EnhanceResult, error) {
	return s.run(ctx, userID, prompt.TaskEnglishStudy, text, isImage, level)
}

func (s *EnhanceService) run(ctx context.Context, userID uint, task prompt.TaskKind, content string, isImage bool, level prompt.Level) (*EnhanceResult, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentEmpty
	}

	generated, hit := s.cachedResult(ctx, task, content, isImage, level)
	if !hit {
		conversation := prompt.Build(task, content, isImage, level)
		raw, err := s.provider.Complete(ctx, s.chatCfg, conversation)
		if err != nil {
			log.Printf("completion for task %s failed: %v", task, err)
			return nil, ErrAIUnavailable
		}
		generated = strings.TrimSpace(raw)
		if generated == "" {
			return nil, ErrAIUnavailable
		}
		s.storeResult(ctx, task, content, isImage, level, generated)
	}

	artifactID, err := s.archiver.Archive(userID, task, content, generated, isImage)
	if err != nil {
		// Archival failure must not lose the generated content.
		log.Printf("archive %s enhancement for user %d failed: %v", task, userID, err)
		artifactID = 0
	}

	return &EnhanceResult{Content: generated, ArtifactID: artifactID}, nil
}

func (s *EnhanceService) cachedResult(ctx context.Context, task prompt.TaskKind, content string, isImage bool, level prompt.Level) (string, bool) {
	if s.cache == nil || isImage {
		return "", false
	}
	cached, hit, err := s.cache.Get(ctx, string(task), content, string(level))
	if err != nil {
		log.Printf("result cache get failed: %v", err)
		return "", false
	}
	return cached, hit
}

func (s *EnhanceService) storeResult(ctx context.Context, task prompt.TaskKind, content string, isImage bool, level prompt.Level, generated string) {
	if s.cache == nil || isImage {
		return
	}
	if err := s.cache.Set(ctx, string(task), content, string(level), generated); err != nil {
		log.Printf("result cache set failed: %v", err)
	}
}

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonren05/learning-agent/internal/ai"
	"github.com/jasonren05/learning-agent/internal/prompt"
)

type stubProvider struct {
	reply        string
	err          error
	calls        int
	conversation ai.Conversation
}

func (p *stubProvider) Complete(_ context.Context, _ ai.ChatConfig, conversation ai.Conversation) (string, error) {
	p.calls++
	p.conversation = conversation
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type stubArchiver struct {
	id        uint
	err       error
	calls     int
	task      prompt.TaskKind
	original  string
	generated string
	isImage   bool
}

func (a *stubArchiver) Archive(_ uint, task prompt.TaskKind, original, generated string, isImage bool) (uint, error) {
	a.calls++
	a.task = task
	a.original = original
	a.generated = generated
	a.isImage = isImage
	if a.err != nil {
		return 0, a.err
	}
	return a.id, nil
}

type stubCache struct {
	entries map[string]string
	gets    int
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]string)}
}

func (c *stubCache) key(task, content, level string) string {
	return task + "|" + level + "|" + content
}

func (c *stubCache) Get(_ context.Context, task, content, level string) (string, bool, error) {
	c.gets++
	cached, ok := c.entries[c.key(task, content, level)]
	return cached, ok, nil
}

func (c *stubCache) Set(_ context.Context, task, content, level, generated string) error {
	c.sets++
	c.entries[c.key(task, content, level)] = generated
	return nil
}

func newTestEnhanceService(provider *stubProvider, archiver *stubArchiver, cache EnhanceResultCache) *EnhanceService {
	return NewEnhanceService(provider, archiver, cache, ai.ChatConfig{Model: "test-model"})
}

func TestEnhanceNoteSuccess(t *testing.T) {
	provider := &stubProvider{reply: "  # Enhanced\n光合作用将光能转化为化学能。\n"}
	archiver := &stubArchiver{id: 42}
	svc := newTestEnhanceService(provider, archiver, nil)

	result, err := svc.EnhanceNote(context.Background(), 1, "Photosynthesis converts light into chemical energy.", false)

	require.NoError(t, err)
	assert.Equal(t, "# Enhanced\n光合作用将光能转化为化学能。", result.Content)
	assert.Equal(t, uint(42), result.ArtifactID)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1, archiver.calls)
	assert.Equal(t, prompt.TaskNoteCompletion, archiver.task)
	assert.Equal(t, "Photosynthesis converts light into chemical energy.", archiver.original)
	assert.Equal(t, result.Content, archiver.generated)
	assert.False(t, archiver.isImage)
}

func TestEnhanceNoteEmptyContent(t *testing.T) {
	provider := &stubProvider{reply: "unused"}
	svc := newTestEnhanceService(provider, &stubArchiver{}, nil)

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.EnhanceNote(context.Background(), 1, content, false)
		assert.ErrorIs(t, err, ErrContentEmpty)
	}
	assert.Zero(t, provider.calls)
}

func TestEnhanceNoteMissingUser(t *testing.T) {
	svc := newTestEnhanceService(&stubProvider{reply: "unused"}, &stubArchiver{}, nil)

	_, err := svc.EnhanceNote(context.Background(), 0, "content", false)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeProblemProviderFailure(t *testing.T) {
	archiver := &stubArchiver{id: 1}
	svc := newTestEnhanceService(&stubProvider{err: errors.New("connection refused")}, archiver, nil)

	_, err := svc.AnalyzeProblem(context.Background(), 1, "求解 x^2 = 4", false)

	assert.ErrorIs(t, err, ErrAIUnavailable)
	assert.Zero(t, archiver.calls)
}

func TestAnalyzeProblemBlankCompletion(t *testing.T) {
	archiver := &stubArchiver{id: 1}
	svc := newTestEnhanceService(&stubProvider{reply: "  \n\t"}, archiver, nil)

	_, err := svc.AnalyzeProblem(context.Background(), 1, "求解 x^2 = 4", false)

	assert.ErrorIs(t, err, ErrAIUnavailable)
	assert.Zero(t, archiver.calls)
}

func TestEnhanceNoteArchiveFailureIsAbsorbed(t *testing.T) {
	archiver := &stubArchiver{err: errors.New("disk full")}
	svc := newTestEnhanceService(&stubProvider{reply: "generated"}, archiver, nil)

	result, err := svc.EnhanceNote(context.Background(), 1, "some note", false)

	require.NoError(t, err)
	assert.Equal(t, "generated", result.Content)
	assert.Zero(t, result.ArtifactID)
}

func TestGenerateEnglishMaterialLevelReachesPrompt(t *testing.T) {
	provider := &stubProvider{reply: "学习材料"}
	svc := newTestEnhanceService(provider, &stubArchiver{id: 5}, nil)

	_, err := svc.GenerateEnglishMaterial(context.Background(), 1, "The quick brown fox.", false, prompt.LevelCET6)

	require.NoError(t, err)
	require.Len(t, provider.conversation, 2)
	assert.Equal(t, ai.RoleSystem, provider.conversation[0].Role)
	assert.Contains(t, provider.conversation[0].Text, "大学六级")
}

func TestEnhanceNoteCacheHitSkipsProviderButStillArchives(t *testing.T) {
	cache := newStubCache()
	cache.entries[cache.key("note", "cached content", "")] = "cached result"
	provider := &stubProvider{reply: "unused"}
	archiver := &stubArchiver{id: 7}
	svc := newTestEnhanceService(provider, archiver, cache)

	result, err := svc.EnhanceNote(context.Background(), 1, "cached content", false)

	require.NoError(t, err)
	assert.Equal(t, "cached result", result.Content)
	assert.Equal(t, uint(7), result.ArtifactID)
	assert.Zero(t, provider.calls)
	assert.Equal(t, 1, archiver.calls)
	assert.Zero(t, cache.sets)
}

func TestEnhanceNoteCacheMissStoresResult(t *testing.T) {
	cache := newStubCache()
	provider := &stubProvider{reply: "fresh result"}
	svc := newTestEnhanceService(provider, &stubArchiver{id: 2}, cache)

	_, err := svc.EnhanceNote(context.Background(), 1, "new content", false)

	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, "fresh result", cache.entries[cache.key("note", "new content", "")])
}

func TestEnhanceNoteImageBypassesCache(t *testing.T) {
	cache := newStubCache()
	provider := &stubProvider{reply: "image analysis"}
	svc := newTestEnhanceService(provider, &stubArchiver{id: 3}, cache)

	_, err := svc.EnhanceNote(context.Background(), 1, "data:image/png;base64,AAAA", true)

	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.Zero(t, cache.gets)
	assert.Zero(t, cache.sets)
}

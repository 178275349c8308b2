package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonren05/learning-agent/internal/model"
	"github.com/jasonren05/learning-agent/internal/prompt"
)

type fakeRecordStore struct {
	records []*model.EnhancedContent
	err     error
	nextID  uint
}

func (s *fakeRecordStore) Create(record *model.EnhancedContent) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	record.ID = s.nextID
	s.records = append(s.records, record)
	return nil
}

func TestArchiveWritesFileAndRecord(t *testing.T) {
	store := &fakeRecordStore{}
	archiver := New(t.TempDir(), store)

	id, err := archiver.Archive(7, prompt.TaskNoteCompletion, "光合作用笔记", "# 整理后\n更清晰的笔记", false)

	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
	require.Len(t, store.records, 1)

	record := store.records[0]
	assert.Equal(t, uint(7), record.UserID)
	assert.Equal(t, "note", record.ContentType)
	assert.Equal(t, "光合作用笔记", record.Original)
	assert.Equal(t, "# 整理后\n更清晰的笔记", record.Enhanced)
	assert.False(t, record.IsImage)
	require.NotEmpty(t, record.FilePath)
	assert.Equal(t, "7", filepath.Base(filepath.Dir(record.FilePath)))

	data, err := os.ReadFile(record.FilePath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# Note - 优化内容")
	assert.Contains(t, text, "**创建时间**: ")
	assert.Contains(t, text, "## 原始内容\n\n光合作用笔记")
	assert.Contains(t, text, "## 优化后内容\n\n# 整理后\n更清晰的笔记")
}

func TestArchiveImageReplacesOriginal(t *testing.T) {
	store := &fakeRecordStore{}
	archiver := New(t.TempDir(), store)

	_, err := archiver.Archive(3, prompt.TaskProblemAnalysis, "data:image/png;base64,AAAA", "解题步骤", true)

	require.NoError(t, err)
	require.Len(t, store.records, 1)

	record := store.records[0]
	assert.Equal(t, ImagePlaceholder, record.Original)
	assert.True(t, record.IsImage)

	data, err := os.ReadFile(record.FilePath)
	require.NoError(t, err)
	text := string(data)
	assert.NotContains(t, text, "## 原始内容")
	assert.NotContains(t, text, "data:image/png")
	assert.Contains(t, text, "## 优化后内容\n\n解题步骤")
}

func TestArchiveStoreFailure(t *testing.T) {
	storeErr := errors.New("mysql gone")
	archiver := New(t.TempDir(), &fakeRecordStore{err: storeErr})

	id, err := archiver.Archive(1, prompt.TaskEnglishStudy, "content", "generated", false)

	assert.Zero(t, id)
	assert.ErrorIs(t, err, storeErr)
}

func TestArchiveFilenamesDoNotCollide(t *testing.T) {
	store := &fakeRecordStore{}
	archiver := New(t.TempDir(), store)

	for i := 0; i < 5; i++ {
		_, err := archiver.Archive(9, prompt.TaskNoteCompletion, "same second", "same second", false)
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, record := range store.records {
		assert.False(t, seen[record.FilePath], "duplicate path %s", record.FilePath)
		seen[record.FilePath] = true
	}
}

// Package archive persists enhancement results: a per-user Markdown
// rendering on disk plus an EnhancedContent metadata row.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jasonren05/learning-agent/internal/model"
	"github.com/jasonren05/learning-agent/internal/prompt"
)

// ImagePlaceholder replaces the original content in the metadata row when
// the source was an image, so raw image payloads are not duplicated.
const ImagePlaceholder = "图片内容"

// RecordStore persists the artifact metadata row.
type RecordStore interface {
	Create(record *model.EnhancedContent) error
}

type Archiver struct {
	baseDir string
	store   RecordStore
}

func New(baseDir string, store RecordStore) *Archiver {
	return &Archiver{baseDir: baseDir, store: store}
}

// Archive writes the Markdown rendering and the metadata row, returning the
// new record's id. Filenames carry a timestamp plus a random token so
// concurrent saves for one user in the same second cannot collide.
func (a *Archiver) Archive(userID uint, task prompt.TaskKind, original, generated string, isImage bool) (uint, error) {
	userDir := filepath.Join(a.baseDir, strconv.FormatUint(uint64(userID), 10))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return 0, fmt.Errorf("create archive dir failed: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s_%s_%s.md", task, now.Format("20060102_150405"), shortToken())
	path := filepath.Join(userDir, filename)

	if err := os.WriteFile(path, []byte(render(task, original, generated, isImage, now)), 0o644); err != nil {
		return 0, fmt.Errorf("write archive file failed: %w", err)
	}

	record := &model.EnhancedContent{
		UserID:      userID,
		ContentType: string(task),
		Original:    original,
		Enhanced:    generated,
		IsImage:     isImage,
		FilePath:    path,
		CreatedAt:   now,
	}
	if isImage {
		record.Original = ImagePlaceholder
	}
	if err := a.store.Create(record); err != nil {
		return 0, err
	}
	return record.ID, nil
}

func render(task prompt.TaskKind, original, generated string, isImage bool, now time.Time) string {
	var doc strings.Builder
	doc.WriteString(fmt.Sprintf("# %s - 优化内容\n\n", task.Title()))
	doc.WriteString(fmt.Sprintf("**创建时间**: %s\n\n", now.Format("2006-01-02 15:04:05")))
	if !isImage {
		doc.WriteString(fmt.Sprintf("## 原始内容\n\n%s\n\n", original))
	}
	doc.WriteString(fmt.Sprintf("## 优化后内容\n\n%s\n", generated))
	return doc.String()
}

func shortToken() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

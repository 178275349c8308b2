package officetext

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocxTextParagraphs(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>Split </w:t></w:r><w:r><w:t>across runs</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:r><w:t>细胞结构</w:t></w:r></w:p>
  </w:body>
</w:document>`
	path := buildArchive(t, "doc.docx", map[string]string{"word/document.xml": document})

	text, err := DocxText(path)

	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSplit across runs\n\n细胞结构\n", text)
}

func TestDocxTextMissingDocumentPart(t *testing.T) {
	path := buildArchive(t, "doc.docx", map[string]string{"word/styles.xml": "<w:styles/>"})

	_, err := DocxText(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestDocxTextNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	require.NoError(t, os.WriteFile(path, []byte("plain bytes"), 0o644))

	_, err := DocxText(path)

	require.Error(t, err)
}

func TestPptxTextSlideAndShapeOrder(t *testing.T) {
	slide := func(lines ...string) string {
		body := ""
		for _, line := range lines {
			body += `<p:sp><p:txBody><a:p><a:r><a:t>` + line + `</a:t></a:r></a:p></p:txBody></p:sp>`
		}
		return `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>` + body + `</p:spTree></p:cSld>
</p:sld>`
	}
	// Entry order deliberately scrambled; numeric slide order must win.
	path := buildArchive(t, "deck.pptx", map[string]string{
		"ppt/slides/slide10.xml": slide("Tenth"),
		"ppt/slides/slide2.xml":  slide("Second"),
		"ppt/slides/slide1.xml":  slide("First", "Subtitle"),
	})

	text, err := PptxText(path)

	require.NoError(t, err)
	assert.Equal(t, "First\nSubtitle\nSecond\nTenth\n", text)
}

func TestPptxTextJoinsParagraphsWithinShape(t *testing.T) {
	slide := `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:sp><p:txBody>
      <a:p><a:r><a:t>Line one</a:t></a:r></a:p>
      <a:p><a:r><a:t>Line two</a:t></a:r></a:p>
    </p:txBody></p:sp>
    <p:sp><p:nvSpPr/></p:sp>
  </p:spTree></p:cSld>
</p:sld>`
	path := buildArchive(t, "deck.pptx", map[string]string{"ppt/slides/slide1.xml": slide})

	text, err := PptxText(path)

	require.NoError(t, err)
	assert.Equal(t, "Line one\nLine two\n", text)
}

func TestPptxTextNoSlides(t *testing.T) {
	path := buildArchive(t, "deck.pptx", map[string]string{"ppt/presentation.xml": "<p:presentation/>"})

	text, err := PptxText(path)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func buildArchive(t *testing.T, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for entry, body := range entries {
		w, err := zw.Create(entry)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

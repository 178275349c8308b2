package extract

import (
	"archive/zip"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileType(t *testing.T) {
	cases := []struct {
		ext  string
		want FileType
		ok   bool
	}{
		{".pdf", TypePDF, true},
		{"PDF", TypePDF, true},
		{".JPeG", TypeJPEG, true},
		{"docx", TypeDocx, true},
		{"pptx", TypePptx, true},
		{".txt", TypeTxt, true},
		{".exe", FileType("exe"), false},
		{"", FileType(""), false},
	}
	for _, tc := range cases {
		got, ok := ParseFileType(tc.ext)
		assert.Equal(t, tc.want, got, tc.ext)
		assert.Equal(t, tc.ok, ok, tc.ext)
	}
}

func TestFileTypeIsImage(t *testing.T) {
	assert.True(t, TypePNG.IsImage())
	assert.True(t, TypeWebP.IsImage())
	assert.False(t, TypePDF.IsImage())
	assert.False(t, TypeTxt.IsImage())
}

func TestExtractUnknownTypeYieldsEmptyContent(t *testing.T) {
	path := writeFile(t, "program.exe", []byte{0x4d, 0x5a, 0x00})

	content, err := File(path, FileType("exe"))

	require.NoError(t, err)
	assert.Empty(t, content.Text)
	assert.Nil(t, content.Image)
}

func TestExtractPlainText(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("光合作用 photosynthesis\n"))

	content, err := File(path, TypeTxt)

	require.NoError(t, err)
	assert.Equal(t, "光合作用 photosynthesis\n", content.Text)
	assert.False(t, content.IsImage())
}

func TestExtractInvalidEncodingIsFatal(t *testing.T) {
	path := writeFile(t, "broken.txt", []byte{0xff, 0xfe, 0xfd})

	_, err := File(path, TypeTxt)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestExtractUnreadableTextDegradesToEmpty(t *testing.T) {
	content, err := File(filepath.Join(t.TempDir(), "missing.txt"), TypeTxt)

	require.NoError(t, err)
	assert.Empty(t, content.Text)
}

// A 1x1 transparent PNG.
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestExtractImageProducesDataURL(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)
	path := writeFile(t, "diagram.png", raw)

	content, extractErr := File(path, TypePNG)

	require.NoError(t, extractErr)
	require.True(t, content.IsImage())
	assert.Equal(t, "image/png", content.Image.MIME)
	assert.Equal(t, "data:image/png;base64,"+tinyPNG, content.Image.DataURL)
	assert.Equal(t, content.Image.DataURL, content.Payload())
}

func TestExtractUnreadableImageYieldsAbsentReference(t *testing.T) {
	content, err := File(filepath.Join(t.TempDir(), "missing.png"), TypePNG)

	require.NoError(t, err)
	assert.Nil(t, content.Image)
	assert.Empty(t, content.Text)
}

func TestExtractMalformedPDFDegradesToEmpty(t *testing.T) {
	path := writeFile(t, "broken.pdf", []byte("this is not a pdf"))

	content, err := File(path, TypePDF)

	require.NoError(t, err)
	assert.Empty(t, content.Text)
}

func TestExtractDocxDispatch(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Cell structure</w:t></w:r></w:p>
  </w:body>
</w:document>`
	path := writeZip(t, "notes.docx", map[string]string{"word/document.xml": document})

	content, err := File(path, TypeDocx)

	require.NoError(t, err)
	assert.Equal(t, "Cell structure\n", content.Text)
}

func TestExtractMalformedDocxDegradesToEmpty(t *testing.T) {
	path := writeFile(t, "broken.docx", []byte("not a zip archive"))

	content, err := File(path, TypeDocx)

	require.NoError(t, err)
	assert.Empty(t, content.Text)
}

func TestExtractPptxDispatch(t *testing.T) {
	slide := `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:sp><p:txBody><a:p><a:r><a:t>Slide title</a:t></a:r></a:p></p:txBody></p:sp>
  </p:spTree></p:cSld>
</p:sld>`
	path := writeZip(t, "deck.pptx", map[string]string{"ppt/slides/slide1.xml": slide})

	content, err := File(path, TypePptx)

	require.NoError(t, err)
	assert.Equal(t, "Slide title\n", content.Text)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeZip(t *testing.T, name string, entries map[string]string) string {
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

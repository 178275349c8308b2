// Package extract normalizes uploaded files into a single content shape:
// plain text, or an embeddable image reference for image formats.
package extract

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jasonren05/learning-agent/internal/pkg/officetext"
	"github.com/jasonren05/learning-agent/internal/pkg/pdfextract"
)

// ErrInvalidEncoding is returned for plain-text files that are not valid
// UTF-8. It is the only fatal extraction error; every other unreadable or
// unsupported input degrades to empty content.
var ErrInvalidEncoding = errors.New("text file is not valid utf-8")

// ImageRef is a self-describing embeddable image reference.
type ImageRef struct {
	MIME    string `json:"mime"`
	DataURL string `json:"data_url"`
}

// Content is the extraction result: either Text, or an image reference
// when the source was an image format. A zero Content means the file held
// no usable content, which callers must not treat as a failure.
type Content struct {
	Text  string    `json:"text"`
	Image *ImageRef `json:"image,omitempty"`
}

func (c Content) IsImage() bool { return c.Image != nil }

// Payload returns the string handed to the prompt builder: the image data
// URL for images, the extracted text otherwise.
func (c Content) Payload() string {
	if c.Image != nil {
		return c.Image.DataURL
	}
	return c.Text
}

// File extracts content from path according to the declared type.
func File(path string, fileType FileType) (Content, error) {
	if fileType.IsImage() {
		return imageContent(path), nil
	}

	switch fileType {
	case TypePDF:
		text, err := pdfextract.FileText(path)
		if err != nil {
			log.Printf("extract pdf %s failed: %v", path, err)
			return Content{}, nil
		}
		return Content{Text: text}, nil
	case TypeDocx, TypeDoc:
		text, err := officetext.DocxText(path)
		if err != nil {
			log.Printf("extract docx %s failed: %v", path, err)
			return Content{}, nil
		}
		return Content{Text: text}, nil
	case TypePptx, TypePpt:
		text, err := officetext.PptxText(path)
		if err != nil {
			log.Printf("extract pptx %s failed: %v", path, err)
			return Content{}, nil
		}
		return Content{Text: text}, nil
	case TypeTxt:
		return textContent(path)
	default:
		// Outside the enumeration: no usable content, by contract not an error.
		return Content{}, nil
	}
}

func textContent(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("read text file %s failed: %v", path, err)
		return Content{}, nil
	}
	if !utf8.Valid(data) {
		return Content{}, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return Content{Text: string(data)}, nil
}

func imageContent(path string) Content {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("read image file %s failed: %v", path, err)
		return Content{}
	}

	mimeType := mimetype.Detect(data).String()
	if mimeType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
			mimeType = byExt
		}
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return Content{
		Image: &ImageRef{
			MIME:    mimeType,
			DataURL: fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
		},
	}
}

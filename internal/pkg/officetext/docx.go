// Package officetext extracts plain text from OOXML office documents
// (DOCX, PPTX) by walking the XML parts inside the zip container.
package officetext

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DocxText returns the paragraph text of a .docx file in document order,
// each paragraph followed by a newline.
func DocxText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx failed: %w", err)
	}
	defer zr.Close()

	doc := findEntry(&zr.Reader, "word/document.xml")
	if doc == nil {
		return "", fmt.Errorf("docx has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open docx document part failed: %w", err)
	}
	defer rc.Close()

	return wordParagraphs(rc)
}

func wordParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		out       strings.Builder
		paragraph strings.Builder
		inRunText bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode docx xml failed: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRunText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRunText = false
			case "p":
				out.WriteString(paragraph.String())
				out.WriteString("\n")
				paragraph.Reset()
			}
		case xml.CharData:
			if inRunText {
				paragraph.Write(t)
			}
		}
	}
	return out.String(), nil
}

func findEntry(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

package officetext

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slidePattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// PptxText returns the text of every shape with a text body, slide order
// then shape order within a slide, each shape followed by a newline.
// Paragraphs within one shape are joined by newlines.
func PptxText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open pptx failed: %w", err)
	}
	defer zr.Close()

	type slideEntry struct {
		number int
		file   *zip.File
	}
	var slides []slideEntry
	for _, f := range zr.File {
		m := slidePattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideEntry{number: n, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var out strings.Builder
	for _, slide := range slides {
		rc, err := slide.file.Open()
		if err != nil {
			return "", fmt.Errorf("open slide part failed: %w", err)
		}
		text, err := slideShapes(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	return out.String(), nil
}

func slideShapes(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		out        strings.Builder
		shape      []string
		paragraph  strings.Builder
		inShape    bool
		hasBody    bool
		inRunText  bool
		shapeDepth int
	)
	flushShape := func() {
		if !hasBody {
			return
		}
		out.WriteString(strings.Join(shape, "\n"))
		out.WriteString("\n")
	}
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode pptx xml failed: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				if !inShape {
					inShape = true
					hasBody = false
					shape = shape[:0]
				}
				shapeDepth++
			case "txBody":
				if inShape {
					hasBody = true
				}
			case "p":
				if inShape && hasBody {
					paragraph.Reset()
				}
			case "t":
				if inShape && hasBody {
					inRunText = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRunText = false
			case "p":
				if inShape && hasBody {
					shape = append(shape, paragraph.String())
				}
			case "sp":
				shapeDepth--
				if shapeDepth == 0 && inShape {
					flushShape()
					inShape = false
				}
			}
		case xml.CharData:
			if inRunText {
				paragraph.Write(t)
			}
		}
	}
	return out.String(), nil
}

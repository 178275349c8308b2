package pdfextract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// FileText extracts plain text from the PDF at path, page by page in page
// order. Pages without extractable text contribute nothing; a PDF with no
// text at all yields an empty string and nil error.
func FileText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var out strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		out.WriteString(text)
	}
	return out.String(), nil
}

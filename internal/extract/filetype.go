package extract

import "strings"

// FileType is the closed set of declared upload formats. Anything outside
// the set extracts to empty content rather than an error.
type FileType string

const (
	TypeJPG  FileType = "jpg"
	TypeJPEG FileType = "jpeg"
	TypePNG  FileType = "png"
	TypeGIF  FileType = "gif"
	TypeBMP  FileType = "bmp"
	TypeWebP FileType = "webp"
	TypePDF  FileType = "pdf"
	TypeDocx FileType = "docx"
	TypeDoc  FileType = "doc"
	TypePptx FileType = "pptx"
	TypePpt  FileType = "ppt"
	TypeTxt  FileType = "txt"
)

// ParseFileType normalizes a filename extension (with or without the dot)
// into a FileType. ok is false for anything outside the enumeration.
func ParseFileType(ext string) (FileType, bool) {
	normalized := FileType(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")))
	switch normalized {
	case TypeJPG, TypeJPEG, TypePNG, TypeGIF, TypeBMP, TypeWebP,
		TypePDF, TypeDocx, TypeDoc, TypePptx, TypePpt, TypeTxt:
		return normalized, true
	}
	return normalized, false
}

func (t FileType) IsImage() bool {
	switch t {
	case TypeJPG, TypeJPEG, TypePNG, TypeGIF, TypeBMP, TypeWebP:
		return true
	}
	return false
}

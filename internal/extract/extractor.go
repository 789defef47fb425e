// Package extract pulls plain text out of uploaded source documents.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"stylewriter/internal/domain"
	"stylewriter/internal/port"
)

// Extractor implements port.TextExtractor for pdf, docx, pptx and plain text.
type Extractor struct {
	maxBytes int64
}

// New creates an Extractor that rejects files larger than maxBytes.
// A non-positive limit disables the check.
func New(maxBytes int64) *Extractor {
	return &Extractor{maxBytes: maxBytes}
}

// FileType resolves the upload type from a filename extension.
func FileType(filename string) (domain.UploadFileType, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	ft, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, filepath.Ext(filename))
	}
	return ft, nil
}

func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	ft, err := FileType(filename)
	if err != nil {
		return "", err
	}
	if e.maxBytes > 0 && int64(len(data)) > e.maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes (max %d)", domain.ErrFileTooLarge, filename, len(data), e.maxBytes)
	}
	if len(data) == 0 {
		return "", nil
	}

	var text string
	switch ft {
	case domain.UploadPDF:
		text, err = extractPDF(data)
	case domain.UploadDOCX:
		text, err = extractDocx(data)
	case domain.UploadPPTX:
		text, err = extractPptx(data)
	default:
		text = extractPlain(data)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s (%s): %w", filename, ft, err)
	}
	return strings.TrimSpace(text), nil
}

// ExtractAll concatenates the text of files in upload order, skipping files
// that yield no text.
func (e *Extractor) ExtractAll(files []port.SourceFile) (string, error) {
	var parts []string
	for _, f := range files {
		text, err := e.Extract(f.Name, f.Data)
		if err != nil {
			return "", err
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n"), nil
}

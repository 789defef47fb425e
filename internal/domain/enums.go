package domain

import "strings"

// ExportFormat is a downloadable rendering of rewritten content.
type ExportFormat string

const (
	ExportDOCX ExportFormat = "docx"
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

// ExportContentTypes maps export formats to MIME types.
var ExportContentTypes = map[ExportFormat]string{
	ExportDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	ExportPDF:  "application/pdf",
	ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ExportCSV:  "text/csv; charset=utf-8",
}

// ParseExportFormat normalizes a format name such as "PDF" or ".docx".
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	if _, ok := ExportContentTypes[f]; !ok {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	return ExportContentTypes[f]
}

// UploadFileType is a source document type accepted for text extraction.
type UploadFileType string

const (
	UploadPDF  UploadFileType = "pdf"
	UploadDOCX UploadFileType = "docx"
	UploadPPTX UploadFileType = "pptx"
	UploadTXT  UploadFileType = "txt"
)

// AllowedExtensions maps file extensions (without dot) to UploadFileType.
var AllowedExtensions = map[string]UploadFileType{
	"pdf":      UploadPDF,
	"docx":     UploadDOCX,
	"pptx":     UploadPPTX,
	"txt":      UploadTXT,
	"md":       UploadTXT,
	"markdown": UploadTXT,
}

// UserRole distinguishes staff who may manage the style library.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)

// Rewrite length bounds in words.
const (
	MinOutputLength     = 20
	MaxOutputLength     = 75000
	DefaultOutputLength = 1000
)

// ClampOutputLength applies the default and bounds to a requested word limit.
func ClampOutputLength(n int) int {
	switch {
	case n <= 0:
		return DefaultOutputLength
	case n < MinOutputLength:
		return MinOutputLength
	case n > MaxOutputLength:
		return MaxOutputLength
	}
	return n
}

package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Style is a named writing-style profile extracted from example text.
type Style struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	Name                  string    `db:"name" json:"name"`
	Style                 string    `db:"style" json:"style"`
	Example               string    `db:"example" json:"example"`
	AdditionalInstruction string    `db:"additional_instruction" json:"additional_instruction,omitempty"`
	ModelUsed             string    `db:"model_used" json:"model_used"`
	CreatedBy             string    `db:"created_by" json:"created_by"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// Rewrite is one rewrite request and its output.
type Rewrite struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	StyleID               uuid.UUID       `db:"style_id" json:"style_id"`
	StyleName             string          `db:"style_name" json:"style_name"`
	Title                 string          `db:"title" json:"title"`
	BaseName              string          `db:"base_name" json:"base_name"`
	Input                 string          `db:"input" json:"input"`
	Output                string          `db:"output" json:"output"`
	MaxOutputLength       int             `db:"max_output_length" json:"max_output_length"`
	Guidelines            json.RawMessage `db:"guidelines" json:"guidelines"`
	AdditionalInstruction string          `db:"additional_instruction" json:"additional_instruction,omitempty"`
	ModelUsed             string          `db:"model_used" json:"model_used"`
	DocxKey               string          `db:"docx_key" json:"docx_key,omitempty"`
	PdfKey                string          `db:"pdf_key" json:"pdf_key,omitempty"`
	CreatedBy             string          `db:"created_by" json:"created_by"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
}

// ArtifactKey returns the storage key of the stored rendering in format, or "".
func (r *Rewrite) ArtifactKey(format ExportFormat) string {
	switch format {
	case ExportDOCX:
		return r.DocxKey
	case ExportPDF:
		return r.PdfKey
	default:
		return ""
	}
}

// GuidelineNames decodes the stored guideline selection.
func (r *Rewrite) GuidelineNames() []string {
	var names []string
	if len(r.Guidelines) > 0 {
		_ = json.Unmarshal(r.Guidelines, &names)
	}
	return names
}

// Artifact describes one stored export of a rewrite.
type Artifact struct {
	Format      ExportFormat `json:"format"`
	FileName    string       `json:"file_name"`
	ContentType string       `json:"content_type"`
	Size        int64        `json:"size"`
	S3Key       string       `json:"s3_key,omitempty"`
	URL         string       `json:"url,omitempty"`
}

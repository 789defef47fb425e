package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"stylewriter/internal/domain"
	"stylewriter/internal/report"
	"stylewriter/internal/tableexport"
)

// BaseNameLayout is the timestamp layout used in export file names.
const BaseNameLayout = "20060102-150405"

// ExportInput is the DTO for an ad-hoc export of arbitrary text.
type ExportInput struct {
	Text   string
	Title  string
	Format domain.ExportFormat
}

// Download is a rendered file ready to send to a client.
type Download struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService defines the document export contract.
type ExportService interface {
	Export(ctx context.Context, input *ExportInput) (*Download, error)
	ExportMany(ctx context.Context, text, title string, formats []domain.ExportFormat) ([]*Download, error)
	Render(text, title string, format domain.ExportFormat) ([]byte, error)
	Both(text, title string) (*report.Result, error)
	Outline(text string) []report.OutlineEntry
}

type exportService struct {
	exporter *report.Exporter
	now      func() time.Time
}

// NewExportService creates a new ExportService implementation.
func NewExportService(exporter *report.Exporter) ExportService {
	return &exportService{exporter: exporter, now: time.Now}
}

func (s *exportService) Export(_ context.Context, input *ExportInput) (*Download, error) {
	if _, ok := domain.ExportContentTypes[input.Format]; !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	data, err := s.Render(input.Text, input.Title, input.Format)
	if err != nil {
		return nil, err
	}
	return newDownload(input.Title, input.Format, s.now(), data), nil
}

// ExportMany renders text in every requested format. DOCX and PDF requested
// together come from one plan so they agree on content and generation time.
func (s *exportService) ExportMany(_ context.Context, text, title string, formats []domain.ExportFormat) ([]*Download, error) {
	for _, f := range formats {
		if _, ok := domain.ExportContentTypes[f]; !ok {
			return nil, fmt.Errorf("exportService.ExportMany: %s: %w", f, domain.ErrUnsupportedFormat)
		}
	}
	at := s.now()
	rest := formats
	var out []*Download
	if slices.Contains(formats, domain.ExportDOCX) && slices.Contains(formats, domain.ExportPDF) {
		res, err := s.Both(text, title)
		if err != nil {
			return nil, err
		}
		out = append(out,
			newDownload(title, domain.ExportDOCX, at, res.Flow.Data),
			newDownload(title, domain.ExportPDF, at, res.Fixed.Data),
		)
		rest = slices.DeleteFunc(slices.Clone(formats), func(f domain.ExportFormat) bool {
			return f == domain.ExportDOCX || f == domain.ExportPDF
		})
	}
	seen := make(map[domain.ExportFormat]bool)
	for _, f := range rest {
		if seen[f] {
			continue
		}
		seen[f] = true
		data, err := s.Render(text, title, f)
		if err != nil {
			return nil, err
		}
		out = append(out, newDownload(title, f, at, data))
	}
	return out, nil
}

func newDownload(title string, format domain.ExportFormat, at time.Time, data []byte) *Download {
	base := tableexport.SanitizeFilename(title)
	if base == "" {
		base = "export"
	}
	return &Download{
		FileName:    fmt.Sprintf("%s_%s.%s", base, at.Format(BaseNameLayout), format),
		ContentType: format.ContentType(),
		Data:        data,
	}
}

func (s *exportService) Render(text, title string, format domain.ExportFormat) ([]byte, error) {
	req := report.Request{Text: text, Title: title}
	switch format {
	case domain.ExportDOCX, domain.ExportPDF:
		art, err := s.exporter.Render(req, report.Format(format))
		if err != nil {
			return nil, fmt.Errorf("exportService.Render: %w", err)
		}
		return art.Data, nil
	case domain.ExportXLSX:
		data, err := tableexport.XLSX(s.exporter.Plan(req))
		if err != nil {
			return nil, fmt.Errorf("exportService.Render: %w", err)
		}
		return data, nil
	case domain.ExportCSV:
		data, err := tableexport.CSV(s.exporter.Plan(req))
		if err != nil {
			return nil, fmt.Errorf("exportService.Render: %w", err)
		}
		return data, nil
	default:
		return nil, domain.ErrUnsupportedFormat
	}
}

func (s *exportService) Both(text, title string) (*report.Result, error) {
	res, err := s.exporter.Export(report.Request{Text: text, Title: title})
	if err != nil {
		return nil, fmt.Errorf("exportService.Both: %w", err)
	}
	return res, nil
}

func (s *exportService) Outline(text string) []report.OutlineEntry {
	return s.exporter.Plan(report.Request{Text: strings.TrimSpace(text)}).Outline()
}

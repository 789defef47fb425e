package report

import (
	"fmt"
	"time"
)

// Format identifies an output document format.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Renderer turns a plan into document bytes.
type Renderer interface {
	Format() Format
	Render(p *Plan) ([]byte, error)
}

// Artifact is one rendered document.
type Artifact struct {
	Format Format
	Data   []byte
}

// Request is the input of a single export.
type Request struct {
	Text  string
	Title string
}

// Result holds both renderings of one plan.
type Result struct {
	Flow      Artifact
	Fixed     Artifact
	Outline   []OutlineEntry
	Generated time.Time
}

// Exporter builds one plan per request and renders it in both formats.
type Exporter struct {
	branding Branding
	now      func() time.Time
	flow     Renderer
	fixed    Renderer
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// WithBranding overrides the cover and header labels.
func WithBranding(b Branding) Option {
	return func(e *Exporter) { e.branding = b }
}

// WithRenderers replaces the flow and fixed-page renderers.
func WithRenderers(flow, fixed Renderer) Option {
	return func(e *Exporter) {
		e.flow = flow
		e.fixed = fixed
	}
}

// NewExporter creates an exporter using the given optional assets.
func NewExporter(assets *Assets, opts ...Option) *Exporter {
	e := &Exporter{
		branding: DefaultBranding(),
		now:      time.Now,
		flow:     NewDocxRenderer(assets),
		fixed:    NewPdfRenderer(assets),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan classifies the request text without rendering it.
func (e *Exporter) Plan(req Request) *Plan {
	return BuildPlan(req.Text, req.Title, e.now(), e.branding)
}

// Export renders both formats from a single plan. Either renderer failing
// fails the whole export.
func (e *Exporter) Export(req Request) (*Result, error) {
	plan := e.Plan(req)
	flow, err := e.flow.Render(plan)
	if err != nil {
		return nil, fmt.Errorf("report.Export: %s: %w", e.flow.Format(), err)
	}
	fixed, err := e.fixed.Render(plan)
	if err != nil {
		return nil, fmt.Errorf("report.Export: %s: %w", e.fixed.Format(), err)
	}
	return &Result{
		Flow:      Artifact{Format: e.flow.Format(), Data: flow},
		Fixed:     Artifact{Format: e.fixed.Format(), Data: fixed},
		Outline:   plan.Outline(),
		Generated: plan.Generated,
	}, nil
}

// Render produces a single format.
func (e *Exporter) Render(req Request, f Format) (Artifact, error) {
	plan := e.Plan(req)
	var r Renderer
	switch f {
	case e.flow.Format():
		r = e.flow
	case e.fixed.Format():
		r = e.fixed
	default:
		return Artifact{}, fmt.Errorf("report.Render: unsupported format %q", f)
	}
	data, err := r.Render(plan)
	if err != nil {
		return Artifact{}, fmt.Errorf("report.Render: %s: %w", f, err)
	}
	return Artifact{Format: f, Data: data}, nil
}

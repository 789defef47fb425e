package report

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout renders the cover page generation date, e.g. "05 March 2025".
const DateLayout = "02 January 2006"

// Branding holds the fixed labels printed on the cover, notice and running header.
type Branding struct {
	Organization       string
	Sector             string
	HeaderSubtitle     string
	ReportTitle        string
	Location           string
	DocumentType       string
	ConfidentialNotice string
	NoticeText         string
	Author             string
	DefaultTitle       string
}

// DefaultBranding returns the labels used when no overrides are configured.
func DefaultBranding() Branding {
	return Branding{
		Organization:       "BANGKO SENTRAL NG PILIPINAS",
		Sector:             "FINANCIAL SUPERVISION SECTOR",
		HeaderSubtitle:     "Financial Supervision Sector",
		ReportTitle:        "REPORT OF EXAMINATION",
		Location:           "Philippines",
		DocumentType:       "Style Rewrite",
		ConfidentialNotice: "THIS REPORT IS STRICTLY CONFIDENTIAL",
		NoticeText: "This report was generated by Bangko Sentral ng Pilipinas (BSP) Style Writer application. " +
			"The content has been rewritten according to the selected editorial style guidelines. " +
			"This document is provided for internal use and review purposes. " +
			"Under no circumstance should this document or any portion thereof be disclosed or made public in any manner, " +
			"except when allowed by law, regulations, or judicial orders. " +
			"Please verify the content for accuracy and compliance before official distribution.",
		Author:       "BSP Style Writer",
		DefaultTitle: "Rewritten Content",
	}
}

// withDefaults fills empty fields from DefaultBranding.
func (b Branding) withDefaults() Branding {
	d := DefaultBranding()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&b.Organization, d.Organization)
	fill(&b.Sector, d.Sector)
	fill(&b.HeaderSubtitle, d.HeaderSubtitle)
	fill(&b.ReportTitle, d.ReportTitle)
	fill(&b.Location, d.Location)
	fill(&b.DocumentType, d.DocumentType)
	fill(&b.ConfidentialNotice, d.ConfidentialNotice)
	fill(&b.NoticeText, d.NoticeText)
	fill(&b.Author, d.Author)
	fill(&b.DefaultTitle, d.DefaultTitle)
	return b
}

// Run is a span of text sharing one emphasis.
type Run struct {
	Text string
	Bold bool
}

// ContentBlock is a classified block ready for rendering.
type ContentBlock struct {
	Kind  BlockKind
	Text  string
	Lines [][]Run
	Table *Grid
}

// TOCEntry is one table-of-contents row.
type TOCEntry struct {
	Label string
	Page  string
}

// Section headings shared by both output formats.
const (
	HeadingTOC      = "TABLE OF CONTENTS"
	HeadingGlossary = "LIST OF ACRONYMS"
	HeadingContent  = "CONTENT"
	GlossaryTerm    = "Acronym"
	GlossaryDef     = "Definition"
	TOCPageHeader   = "Page No."
)

// Plan is the format-agnostic description of one export. Both renderers walk the
// same plan, so they agree on section order and block classification.
type Plan struct {
	Branding  Branding
	Title     string
	Generated time.Time
	TOC       []TOCEntry
	Glossary  []Acronym
	Blocks    []ContentBlock
}

// OutlineEntry summarizes one content block.
type OutlineEntry struct {
	Kind BlockKind `json:"kind"`
	Rows int       `json:"rows,omitempty"`
	Cols int       `json:"cols,omitempty"`
}

// BuildPlan classifies text into content blocks and fixes the front matter.
func BuildPlan(text, title string, now time.Time, branding Branding) *Plan {
	p := &Plan{
		Branding:  branding.withDefaults(),
		Title:     strings.TrimSpace(title),
		Generated: now,
		TOC: []TOCEntry{
			{Label: "List of Acronyms", Page: "i"},
			{Label: "Content", Page: "1"},
		},
		Glossary: Glossary,
	}
	for _, b := range SplitBlocks(text) {
		p.Blocks = append(p.Blocks, planBlock(b))
	}
	return p
}

func planBlock(b Block) ContentBlock {
	kind := Classify(b.Lines)
	if kind == KindTable {
		if grid := ParseTable(b.Lines); grid != nil {
			return ContentBlock{Kind: KindTable, Text: b.Text, Table: grid}
		}
		kind = KindProse
	}
	cb := ContentBlock{Kind: kind, Text: b.Text}
	switch kind {
	case KindMajorHeader, KindMinorHeader:
		for _, line := range b.Lines {
			cb.Lines = append(cb.Lines, []Run{{Text: line, Bold: true}})
		}
	default:
		for _, line := range b.Lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if IsHeadingLine(line) {
				cb.Lines = append(cb.Lines, []Run{{Text: line, Bold: true}})
				continue
			}
			cb.Lines = append(cb.Lines, emphasizeRatings(line))
		}
	}
	return cb
}

var wordRe = regexp.MustCompile(`\S+`)

const wordPunct = ".,;:!?()[]{}\"'"

// emphasizeRatings splits a prose line into runs, bolding whole-word rating keywords.
func emphasizeRatings(line string) []Run {
	var runs []Run
	add := func(text string, bold bool) {
		if text == "" {
			return
		}
		if n := len(runs); n > 0 && runs[n-1].Bold == bold {
			runs[n-1].Text += text
			return
		}
		runs = append(runs, Run{Text: text, Bold: bold})
	}
	pos := 0
	for _, loc := range wordRe.FindAllStringIndex(line, -1) {
		word := line[loc[0]:loc[1]]
		if !IsRatingWord(word) {
			continue
		}
		core := strings.TrimLeft(word, wordPunct)
		start := loc[0] + len(word) - len(core)
		core = strings.TrimRight(core, wordPunct)
		end := start + len(core)
		add(line[pos:start], false)
		add(line[start:end], true)
		pos = end
	}
	add(line[pos:], false)
	return runs
}

// DocumentTitle is the metadata title: the request title or the default.
func (p *Plan) DocumentTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Branding.DefaultTitle
}

// DateLabel is the cover page generation line.
func (p *Plan) DateLabel() string {
	return "Date Generated: " + p.Generated.Format(DateLayout)
}

// Outline lists the classified content blocks in order.
func (p *Plan) Outline() []OutlineEntry {
	out := make([]OutlineEntry, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		e := OutlineEntry{Kind: b.Kind}
		if b.Table != nil {
			e.Rows = len(b.Table.Rows)
			e.Cols = b.Table.Cols()
		}
		out = append(out, e)
	}
	return out
}

// LineText joins runs back into plain text.
func LineText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

package report

import (
	"bytes"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Fixed-page geometry in millimetres (A4).
const (
	pdfPageW    = 210.0
	pdfPageH    = 297.0
	pdfMarginLR = 32.0
	pdfMarginT  = 30.0
	pdfMarginB  = 25.0
	pdfContentW = pdfPageW - 2*pdfMarginLR
	mmPerInch   = 25.4
	mmPerPt     = 25.4 / 72

	unicodeFamily = "DejaVuSans"
	coreFamily    = "Helvetica"
	logoImageName = "logo"
)

var (
	lightGrey  = [3]int{211, 211, 211}
	headerGrey = [3]int{217, 217, 217}
	ruleGrey   = [3]int{128, 128, 128}
)

// PdfRenderer lays a plan out on A4 pages.
type PdfRenderer struct {
	assets   *Assets
	compress bool
}

// PdfOption configures a PdfRenderer.
type PdfOption func(*PdfRenderer)

// WithCompression toggles content stream compression (on by default).
func WithCompression(on bool) PdfOption {
	return func(r *PdfRenderer) { r.compress = on }
}

// NewPdfRenderer creates a fixed-page renderer. assets may be nil.
func NewPdfRenderer(assets *Assets, opts ...PdfOption) *PdfRenderer {
	if assets == nil {
		assets = &Assets{}
	}
	r := &PdfRenderer{assets: assets, compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format returns the fixed-page format descriptor.
func (r *PdfRenderer) Format() Format { return FormatPDF }

type pdfDoc struct {
	pdf     *fpdf.Fpdf
	plan    *Plan
	family  string
	unicode bool
	logo    *Image
}

// Render produces the .pdf bytes.
func (r *PdfRenderer) Render(p *Plan) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLR, pdfMarginT, pdfMarginLR)
	pdf.SetAutoPageBreak(false, pdfMarginB)
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(p.Generated)
	pdf.SetTitle(p.DocumentTitle(), true)
	pdf.SetAuthor(p.Branding.Author, true)
	pdf.SetCreator("stylewriter", true)

	d := &pdfDoc{pdf: pdf, plan: p, family: coreFamily}
	d.loadFont(r.assets)
	d.loadLogo(r.assets.Logo)

	pdf.SetHeaderFuncMode(func() {
		if pdf.PageNo() > 1 {
			d.pageHeader()
		}
	}, true)

	pdf.AddPage()
	d.cover()
	pdf.AddPage()
	d.notice()
	pdf.AddPage()
	d.toc()
	pdf.AddPage()
	d.glossary()
	pdf.AddPage()
	d.content()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report.PdfRenderer.Render: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *pdfDoc) loadFont(a *Assets) {
	if a.Font == nil {
		return
	}
	if err := ValidateFont(a.Font); err != nil {
		log.Printf("report.PdfRenderer: unicode font rejected, using %s: %v", coreFamily, err)
		return
	}
	bold := a.BoldFont
	if bold == nil || ValidateFont(bold) != nil {
		bold = a.Font
	}
	d.pdf.AddUTF8FontFromBytes(unicodeFamily, "", a.Font)
	d.pdf.AddUTF8FontFromBytes(unicodeFamily, "B", bold)
	if d.pdf.Err() {
		log.Printf("report.PdfRenderer: unicode font rejected, using %s: %v", coreFamily, d.pdf.Error())
		d.pdf.ClearError()
		return
	}
	// fpdf drops fonts it cannot parse without recording an error.
	if d.pdf.GetFontDesc(unicodeFamily, "").Ascent == 0 {
		log.Printf("report.PdfRenderer: unicode font has no metrics, using %s", coreFamily)
		return
	}
	d.family = unicodeFamily
	d.unicode = true
}

func (d *pdfDoc) loadLogo(img *Image) {
	if img == nil {
		return
	}
	d.pdf.RegisterImageOptionsReader(logoImageName, imageOptions(img), bytes.NewReader(img.Data))
	if d.pdf.Err() {
		log.Printf("report.PdfRenderer: logo rejected: %v", d.pdf.Error())
		d.pdf.ClearError()
		return
	}
	d.logo = img
}

func imageOptions(img *Image) fpdf.ImageOptions {
	if img.Format == "jpeg" {
		return fpdf.ImageOptions{ImageType: "JPG"}
	}
	return fpdf.ImageOptions{ImageType: "PNG"}
}

// text converts s to what the active font expects. Core fonts take Windows-1252;
// runes outside it become '?'.
func (d *pdfDoc) text(s string) string {
	s = norm.NFC.String(s)
	if d.unicode {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

func (d *pdfDoc) setFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont(d.family, style, size)
}

func (d *pdfDoc) width(s string, bold bool, size float64) float64 {
	d.setFont(bold, size)
	return d.pdf.GetStringWidth(d.text(s))
}

// pageHeader runs on every page after the cover.
func (d *pdfDoc) pageHeader() {
	pdf := d.pdf
	if d.logo != nil {
		w, h := fitBox(d.logo, 15, 15)
		pdf.ImageOptions(logoImageName, 25, 0, w, h, false, imageOptions(d.logo), 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	d.setFont(false, 8)
	pdf.Text(45, 12, d.text(d.plan.Branding.Organization))
	pdf.Text(45, 15, d.text(d.plan.Branding.HeaderSubtitle))
	pdf.SetDrawColor(ruleGrey[0], ruleGrey[1], ruleGrey[2])
	pdf.SetLineWidth(0.5 * mmPerPt)
	pdf.Line(20, 20, pdfPageW-20, 20)
}

func fitBox(img *Image, maxW, maxH float64) (float64, float64) {
	w, h := maxW, maxW*float64(img.Height)/float64(img.Width)
	if h > maxH {
		h = maxH
		w = maxH * float64(img.Width) / float64(img.Height)
	}
	return w, h
}

func (d *pdfDoc) space(mm float64) {
	d.pdf.SetY(d.pdf.GetY() + mm)
}

// ensure starts a new page when h millimetres do not fit above the bottom margin.
func (d *pdfDoc) ensure(h float64) bool {
	if d.pdf.GetY()+h <= pdfPageH-pdfMarginB {
		return false
	}
	d.pdf.AddPage()
	return true
}

type paraStyle struct {
	size    float64
	leading float64 // points
	align   string  // "L", "C", "J"
	before  float64 // points
	after   float64 // points
}

func (d *pdfDoc) paragraph(lines [][]Run, st paraStyle) {
	d.space(st.before * mmPerPt)
	lh := st.leading * mmPerPt
	for _, runs := range lines {
		for _, ln := range d.wrap(runs, st.size, pdfContentW) {
			d.ensure(lh)
			d.drawLine(ln, pdfMarginLR, d.pdf.GetY(), pdfContentW, lh, st.size, st.align)
			d.pdf.SetXY(pdfMarginLR, d.pdf.GetY()+lh)
		}
	}
	d.space(st.after * mmPerPt)
}

func (d *pdfDoc) plain(text string, bold bool, st paraStyle) {
	d.paragraph([][]Run{{{Text: text, Bold: bold}}}, st)
}

func (d *pdfDoc) heading(text string) {
	d.plain(text, true, paraStyle{size: 14, leading: 18, align: "L", before: 12, after: 16})
}

func (d *pdfDoc) cover() {
	b := d.plan.Branding
	centered := func(size, leading, before, after float64) paraStyle {
		return paraStyle{size: size, leading: leading, align: "C", before: before, after: after}
	}
	if d.logo != nil {
		d.space(15)
		w, h := fitBox(d.logo, 30, 30)
		d.pdf.ImageOptions(logoImageName, (pdfPageW-w)/2, d.pdf.GetY(), w, h, false, imageOptions(d.logo), 0, "")
		d.space(h + 5)
	} else {
		d.space(20)
	}
	d.plain(b.Organization, true, centered(16, 20, 0, 6))
	d.space(3)
	d.plain(b.Sector, true, centered(12, 16, 12, 18))
	d.space(25)
	d.plain(b.ReportTitle, true, centered(16, 20, 24, 18))
	d.space(15)
	if d.plan.Title != "" {
		d.plain(d.plan.Title, true, centered(12, 16, 0, 12))
	}
	d.space(5)
	d.plain(b.Location, false, centered(11, 14, 0, 8))
	d.space(10)
	d.plain(b.DocumentType, false, centered(11, 14, 0, 8))
	d.space(20)
	d.plain(d.plan.DateLabel(), false, centered(11, 14, 0, 8))
}

func (d *pdfDoc) notice() {
	b := d.plan.Branding
	d.space(20)
	d.heading(b.ReportTitle)
	d.space(5)
	d.plain(b.ConfidentialNotice, true, paraStyle{size: 12, leading: 16, align: "C", before: 6, after: 18})
	d.space(8)
	d.plain(b.NoticeText, false, paraStyle{size: 10, leading: 14, align: "J", after: 12})
}

func (d *pdfDoc) toc() {
	d.heading(HeadingTOC)
	d.space(8)
	rows := [][]string{{"", TOCPageHeader}}
	for _, e := range d.plan.TOC {
		rows = append(rows, []string{e.Label, e.Page})
	}
	d.table(pdfTable{
		rows:    rows,
		widths:  []float64{120, 30},
		size:    11,
		leading: 14,
		padding: 8 * mmPerPt,
		style: func(_, col int, _ string) (bool, string) {
			if col == 1 {
				return false, "R"
			}
			return false, "L"
		},
	})
}

func (d *pdfDoc) glossary() {
	d.heading(HeadingGlossary)
	d.space(8)
	rows := make([][]string, 0, len(d.plan.Glossary)+1)
	rows = append(rows, []string{GlossaryTerm, GlossaryDef})
	for _, a := range d.plan.Glossary {
		rows = append(rows, []string{a.Term, a.Definition})
	}
	d.table(pdfTable{
		rows:       rows,
		widths:     []float64{30, 120},
		size:       9,
		leading:    11,
		padding:    6 * mmPerPt,
		headerFill: &lightGrey,
		grid:       true,
		style: func(row, _ int, _ string) (bool, string) {
			return row == 0, "L"
		},
	})
}

func (d *pdfDoc) content() {
	d.heading(HeadingContent)
	d.space(5)
	for _, blk := range d.plan.Blocks {
		switch blk.Kind {
		case KindTable:
			d.contentTable(blk.Table)
			d.space(12 * mmPerPt)
		case KindMajorHeader:
			d.paragraph(blk.Lines, paraStyle{size: 12, leading: 16, align: "L", before: 12, after: 6})
		case KindMinorHeader:
			d.paragraph(blk.Lines, paraStyle{size: 11, leading: 16, align: "L", before: 6, after: 3})
		default:
			d.paragraph(blk.Lines, paraStyle{size: 11, leading: 16, align: "J", after: 12})
		}
	}
}

func (d *pdfDoc) contentTable(g *Grid) {
	inches := FitWidths(ColumnWidths(g.Cols()), pdfContentW/mmPerInch)
	widths := make([]float64, len(inches))
	for i, w := range inches {
		widths[i] = w * mmPerInch
	}
	d.table(pdfTable{
		rows:       g.Rows,
		widths:     widths,
		size:       10,
		leading:    12,
		padding:    1.5,
		headerFill: &headerGrey,
		grid:       true,
		style: func(row, _ int, text string) (bool, string) {
			if row == 0 {
				return true, "C"
			}
			return HasRating(text), "L"
		},
	})
}

type pdfTable struct {
	rows       [][]string
	widths     []float64 // mm
	size       float64
	leading    float64 // points
	padding    float64 // mm
	headerFill *[3]int
	grid       bool
	style      func(row, col int, text string) (bold bool, align string)
}

func (d *pdfDoc) table(t pdfTable) {
	pdf := d.pdf
	lh := t.leading * mmPerPt
	// lines that fit on a fresh page
	pageLines := int((pdfPageH - pdfMarginB - pdfMarginT - 2*t.padding) / lh)
	for i, row := range t.rows {
		cells := make([][]pdfLine, len(row))
		aligns := make([]string, len(row))
		maxLines := 1
		for j, text := range row {
			bold, align := t.style(i, j, text)
			aligns[j] = align
			cells[j] = d.wrap([]Run{{Text: text, Bold: bold}}, t.size, t.widths[j]-2*t.padding)
			if len(cells[j]) > maxLines {
				maxLines = len(cells[j])
			}
		}
		if maxLines <= pageLines {
			rowH := float64(maxLines)*lh + 2*t.padding
			d.ensure(rowH)
			y := pdf.GetY()
			d.rowSegment(t, i, cells, aligns, 0, maxLines, y, rowH, true)
			pdf.SetXY(pdfMarginLR, y+rowH)
			continue
		}
		// Rows taller than a page continue top-aligned on the following pages.
		for from := 0; from < maxLines; {
			avail := int((pdfPageH - pdfMarginB - pdf.GetY() - 2*t.padding) / lh)
			if avail < 1 {
				pdf.AddPage()
				continue
			}
			n := min(avail, maxLines-from)
			segH := float64(n)*lh + 2*t.padding
			y := pdf.GetY()
			d.rowSegment(t, i, cells, aligns, from, n, y, segH, false)
			pdf.SetXY(pdfMarginLR, y+segH)
			from += n
			if from < maxLines {
				pdf.AddPage()
			}
		}
	}
}

// rowSegment draws lines [from, from+n) of every cell in a row box of height h at y.
func (d *pdfDoc) rowSegment(t pdfTable, row int, cells [][]pdfLine, aligns []string, from, n int, y, h float64, center bool) {
	pdf := d.pdf
	lh := t.leading * mmPerPt
	x := pdfMarginLR
	for j, lines := range cells {
		w := t.widths[j]
		if row == 0 && t.headerFill != nil {
			pdf.SetFillColor(t.headerFill[0], t.headerFill[1], t.headerFill[2])
			pdf.Rect(x, y, w, h, "F")
		}
		if t.grid {
			pdf.SetDrawColor(ruleGrey[0], ruleGrey[1], ruleGrey[2])
			pdf.SetLineWidth(0.5 * mmPerPt)
			pdf.Rect(x, y, w, h, "D")
		}
		var part []pdfLine
		if from < len(lines) {
			part = lines[from:min(from+n, len(lines))]
		}
		ty := y + t.padding
		if center {
			ty = y + (h-float64(len(part))*lh)/2
		}
		for _, ln := range part {
			d.drawLine(ln, x+t.padding, ty, w-2*t.padding, lh, t.size, aligns[j])
			ty += lh
		}
		x += w
	}
}

type pdfPiece struct {
	text string
	bold bool
	w    float64
}

type pdfWord struct {
	pieces []pdfPiece
	w      float64
}

type pdfLine struct {
	words []pdfWord
	w     float64 // natural width without gaps
	last  bool
}

var tokenRe = regexp.MustCompile(`\s+|\S+`)

// words splits runs on whitespace. Adjacent runs without whitespace between
// them stay glued into one word.
func (d *pdfDoc) words(runs []Run, size float64) []pdfWord {
	var out []pdfWord
	var cur pdfWord
	flush := func() {
		if len(cur.pieces) > 0 {
			out = append(out, cur)
		}
		cur = pdfWord{}
	}
	for _, r := range runs {
		for _, tok := range tokenRe.FindAllString(r.Text, -1) {
			if strings.TrimSpace(tok) == "" {
				flush()
				continue
			}
			w := d.width(tok, r.Bold, size)
			cur.pieces = append(cur.pieces, pdfPiece{text: tok, bold: r.Bold, w: w})
			cur.w += w
		}
	}
	flush()
	return out
}

// wrap breaks runs into lines no wider than width.
func (d *pdfDoc) wrap(runs []Run, size, width float64) []pdfLine {
	space := d.width(" ", false, size)
	var lines []pdfLine
	var cur pdfLine
	for _, w := range d.words(runs, size) {
		for _, part := range d.splitWide(w, size, width) {
			gap := 0.0
			if len(cur.words) > 0 {
				gap = space
			}
			if len(cur.words) > 0 && cur.w+gap*float64(len(cur.words))+part.w > width {
				lines = append(lines, cur)
				cur = pdfLine{}
			}
			cur.words = append(cur.words, part)
			cur.w += part.w
		}
	}
	cur.last = true
	lines = append(lines, cur)
	return lines
}

// splitWide breaks a word wider than width into rune chunks that fit.
func (d *pdfDoc) splitWide(w pdfWord, size, width float64) []pdfWord {
	if w.w <= width {
		return []pdfWord{w}
	}
	var out []pdfWord
	var cur pdfWord
	for _, p := range w.pieces {
		var chunk strings.Builder
		chunkW := 0.0
		for _, r := range p.text {
			rw := d.width(string(r), p.bold, size)
			if cur.w+chunkW+rw > width && (cur.w > 0 || chunkW > 0) {
				if chunk.Len() > 0 {
					cur.pieces = append(cur.pieces, pdfPiece{text: chunk.String(), bold: p.bold, w: chunkW})
					cur.w += chunkW
				}
				out = append(out, cur)
				cur = pdfWord{}
				chunk.Reset()
				chunkW = 0
			}
			chunk.WriteRune(r)
			chunkW += rw
		}
		if chunk.Len() > 0 {
			cur.pieces = append(cur.pieces, pdfPiece{text: chunk.String(), bold: p.bold, w: chunkW})
			cur.w += chunkW
		}
	}
	if len(cur.pieces) > 0 {
		out = append(out, cur)
	}
	return out
}

// drawLine places a wrapped line. Justified lines stretch the gaps between
// words except on the last line of a paragraph.
func (d *pdfDoc) drawLine(ln pdfLine, x, y, width, lh, size float64, align string) {
	if len(ln.words) == 0 {
		return
	}
	space := d.width(" ", false, size)
	natural := ln.w + space*float64(len(ln.words)-1)
	gap := space
	switch align {
	case "C":
		x += (width - natural) / 2
	case "R":
		x += width - natural
	case "J":
		if !ln.last && len(ln.words) > 1 {
			gap = (width - ln.w) / float64(len(ln.words)-1)
		}
	}
	baseline := y + lh/2 + 0.3*size*mmPerPt
	d.pdf.SetTextColor(0, 0, 0)
	for _, w := range ln.words {
		for _, p := range w.pieces {
			d.setFont(p.bold, size)
			d.pdf.Text(x, baseline, d.text(p.text))
			x += p.w
		}
		x += gap
	}
}

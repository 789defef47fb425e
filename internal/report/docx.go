package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/constants"
	"github.com/gomutex/godocx/common/units"
	"github.com/gomutex/godocx/dml"
	"github.com/gomutex/godocx/dml/dmlct"
	"github.com/gomutex/godocx/dml/dmlpic"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
)

// Flow-format geometry, in twentieths of a point (twips).
const (
	twipsPerInch   = 1440
	docxPageW      = 12240
	docxPageH      = 15840
	docxMarginTB   = 1440
	docxMarginLR   = 1800
	docxHeaderFtr  = 720
	docxContentW   = docxPageW - 2*docxMarginLR
	docxBodyFont   = "Calibri"
	docxCoverLogoW = 1.5
	docxNotLogoW   = 1.2
)

// DocxRenderer writes a plan as a WordprocessingML package.
type DocxRenderer struct {
	assets *Assets
}

// NewDocxRenderer creates a flow-format renderer. assets may be nil.
func NewDocxRenderer(assets *Assets) *DocxRenderer {
	if assets == nil {
		assets = &Assets{}
	}
	return &DocxRenderer{assets: assets}
}

// Format returns the flow format descriptor.
func (r *DocxRenderer) Format() Format { return FormatDOCX }

type runStyle struct {
	size uint64
	bold bool
	font string
}

type docxDoc struct {
	rd      *docx.RootDoc
	logo    *Image
	logoRel string
}

// Render produces the .docx bytes.
func (r *DocxRenderer) Render(p *Plan) ([]byte, error) {
	rd, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("report.DocxRenderer.Render: %w", err)
	}
	d := &docxDoc{rd: rd, logo: r.assets.Logo}
	d.pageSetup()
	if err := d.embedLogo(); err != nil {
		return nil, fmt.Errorf("report.DocxRenderer.Render: %w", err)
	}

	d.cover(p)
	rd.AddPageBreak()
	d.notice(p)
	rd.AddPageBreak()
	d.toc(p)
	rd.AddPageBreak()
	d.glossary(p)
	rd.AddPageBreak()
	d.content(p)

	rd.FileMap.Store("docProps/core.xml", []byte(corePropsXML(p)))

	var buf bytes.Buffer
	if err := rd.Write(&buf); err != nil {
		return nil, fmt.Errorf("report.DocxRenderer.Render: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *docxDoc) pageSetup() {
	body := d.rd.Document.Body
	if body.SectPr == nil {
		body.SectPr = &ctypes.SectionProp{}
	}
	w, h := uint64(docxPageW), uint64(docxPageH)
	body.SectPr.PageSize = &ctypes.PageSize{Width: &w, Height: &h}
	tb, lr, hf, gutter := docxMarginTB, docxMarginLR, docxHeaderFtr, 0
	body.SectPr.PageMargin = &ctypes.PageMargin{
		Top: &tb, Bottom: &tb, Left: &lr, Right: &lr,
		Header: &hf, Footer: &hf, Gutter: &gutter,
	}
}

// embedLogo stores the logo once so the cover and notice drawings share one relationship.
func (d *docxDoc) embedLogo() error {
	if d.logo == nil {
		return nil
	}
	ext := d.logo.Ext()
	mime, err := docx.MIMEFromExt(ext)
	if err != nil {
		return err
	}
	registered := false
	for _, def := range d.rd.ContentType.Default {
		if def.Extension == ext {
			registered = true
			break
		}
	}
	if !registered {
		if err := d.rd.ContentType.AddExtension(ext, mime); err != nil {
			return err
		}
	}
	d.rd.FileMap.Store(constants.MediaPath+"logo."+ext, d.logo.Data)
	d.logoRel = "rId" + strconv.Itoa(d.rd.Document.IncRelationID())
	d.rd.Document.DocRels.Relationships = append(d.rd.Document.DocRels.Relationships, &docx.Relationship{
		ID:     d.logoRel,
		Type:   constants.SourceRelationshipImage,
		Target: "media/logo." + ext,
	})
	return nil
}

func (d *docxDoc) logoPara(widthIn float64) {
	if d.logo == nil {
		return
	}
	d.rd.ImageCount++
	cx := units.Inch(widthIn).ToEmu()
	cy := cx * units.Emu(d.logo.Height) / units.Emu(d.logo.Width)
	inline := dml.NewInline(
		*dmlct.NewPostvSz2D(cx, cy),
		dml.DocProp{ID: uint64(d.rd.ImageCount), Name: fmt.Sprintf("Logo %d", d.rd.ImageCount)},
		*dml.NewPicGraphic(dmlpic.NewPic(d.logoRel, d.rd.ImageCount, cx, cy)),
	)
	p := d.rd.AddEmptyParagraph()
	p.Justification(stypes.JustificationCenter)
	ct := p.GetCT()
	ct.Children = append(ct.Children, ctypes.ParagraphChild{Run: &ctypes.Run{
		Children: []ctypes.RunChild{{Drawing: &dml.Drawing{Inline: []dml.Inline{inline}}}},
	}})
}

func (d *docxDoc) cover(p *Plan) {
	b := p.Branding
	d.logoPara(docxCoverLogoW)
	d.blank(1)
	d.centered(b.Organization, runStyle{size: 16, bold: true})
	d.blank(1)
	d.centered(b.Sector, runStyle{size: 12, bold: true})
	d.blank(3)
	d.centered(b.ReportTitle, runStyle{size: 16, bold: true})
	d.blank(2)
	if p.Title != "" {
		d.centered(p.Title, runStyle{size: 14, bold: true})
	}
	d.blank(1)
	d.centered(b.Location, runStyle{size: 11})
	d.blank(2)
	d.centered(b.DocumentType, runStyle{size: 11})
	d.blank(3)
	d.centered(p.DateLabel(), runStyle{size: 11})
}

func (d *docxDoc) notice(p *Plan) {
	b := p.Branding
	d.logoPara(docxNotLogoW)
	d.blank(1)
	d.centered(b.Sector, runStyle{size: 10, bold: true})
	d.blank(2)
	d.centered(b.ReportTitle, runStyle{size: 14, bold: true})
	d.blank(1)
	d.centered(b.ConfidentialNotice, runStyle{size: 12, bold: true})
	d.blank(1)
	para := d.rd.AddEmptyParagraph()
	para.Justification(stypes.JustificationBoth)
	addRun(para, b.NoticeText, runStyle{size: 10})
}

func (d *docxDoc) toc(p *Plan) {
	d.heading(HeadingTOC)
	d.blank(1)
	leader := stypes.CustLeadCharDot
	rs := runStyle{size: 11}
	for _, e := range p.TOC {
		para := d.rd.AddEmptyParagraph()
		ct := para.GetCT()
		if ct.Property == nil {
			ct.Property = &ctypes.ParagraphProp{}
		}
		ct.Property.Tabs.Tab = append(ct.Property.Tabs.Tab, ctypes.Tab{
			Val:        stypes.CustTabStopRight,
			Position:   docxContentW,
			LeaderChar: &leader,
		})
		addRun(para, e.Label+"\t"+e.Page, rs)
	}
}

func (d *docxDoc) glossary(p *Plan) {
	d.heading(HeadingGlossary)
	d.blank(1)
	rows := make([][]string, 0, len(p.Glossary)+1)
	rows = append(rows, []string{GlossaryTerm, GlossaryDef})
	for _, a := range p.Glossary {
		rows = append(rows, []string{a.Term, a.Definition})
	}
	d.table(rows, []float64{1.2, 4.8}, func(row, _ int, _ string) (runStyle, stypes.Justification) {
		if row == 0 {
			return runStyle{size: 11, bold: true}, stypes.JustificationLeft
		}
		return runStyle{size: 10}, stypes.JustificationLeft
	})
}

func (d *docxDoc) content(p *Plan) {
	d.heading(HeadingContent)
	d.blank(1)
	for _, blk := range p.Blocks {
		switch blk.Kind {
		case KindTable:
			d.table(blk.Table.Rows, ColumnWidths(blk.Table.Cols()), contentCellStyle)
			d.blank(1)
		case KindMajorHeader:
			para := d.rd.AddEmptyParagraph()
			para.Spacing(12*20, 6*20)
			addLines(para, blk.Lines, 12)
		case KindMinorHeader:
			para := d.rd.AddEmptyParagraph()
			para.Spacing(6*20, 3*20)
			addLines(para, blk.Lines, 11)
		default:
			para := d.rd.AddEmptyParagraph()
			para.Justification(stypes.JustificationBoth)
			addLines(para, blk.Lines, 11)
		}
	}
}

func contentCellStyle(row, _ int, text string) (runStyle, stypes.Justification) {
	if row == 0 {
		return runStyle{size: 10, bold: true, font: docxBodyFont}, stypes.JustificationCenter
	}
	return runStyle{size: 10, bold: HasRating(text), font: docxBodyFont}, stypes.JustificationLeft
}

type cellStyler func(row, col int, text string) (runStyle, stypes.Justification)

func (d *docxDoc) table(rows [][]string, widthsIn []float64, style cellStyler) {
	widths := FitWidths(widthsIn, float64(docxContentW)/twipsPerInch)
	grid := make([]uint64, len(widths))
	for i, w := range widths {
		grid[i] = uint64(w * twipsPerInch)
	}

	tbl := d.rd.AddTable()
	tbl.Style("TableGrid")
	tbl.Width(0, stypes.TableWidthAuto)
	tbl.Grid(grid...)
	tbl.Layout(stypes.TableLayoutFixed)
	ct := tbl.GetCT()
	ct.TableProp.Borders = &ctypes.TableBorders{
		Top:     ctypes.NewCellBorder(stypes.BorderStyleSingle, "auto", "0", 4),
		Left:    ctypes.NewCellBorder(stypes.BorderStyleSingle, "auto", "0", 4),
		Bottom:  ctypes.NewCellBorder(stypes.BorderStyleSingle, "auto", "0", 4),
		Right:   ctypes.NewCellBorder(stypes.BorderStyleSingle, "auto", "0", 4),
		InsideH: ctypes.NewCellBorder(stypes.BorderStyleSingle, "auto", "0", 4),
		InsideV: ctypes.NewCellBorder(stypes.BorderStyleSingle, "auto", "0", 4),
	}

	for i, row := range rows {
		tr := tbl.AddRow()
		for j, text := range row {
			rs, jc := style(i, j, text)
			cell := tr.AddCell()
			cell.Width(int(grid[j]), stypes.TableWidthDxa)
			cell.VerticalAlign("center")
			if i == 0 {
				cell.BackgroundColor(HeaderShade)
			}
			para := cell.AddEmptyPara()
			para.Justification(jc)
			addRun(para, text, rs)
		}
	}
	if len(ct.RowContents) > 0 && ct.RowContents[0].Row != nil {
		ct.RowContents[0].Row.Property.Header = &ctypes.OnOff{}
	}
}

func (d *docxDoc) heading(text string) {
	d.rd.AddParagraph(text).Style("Heading1")
}

func (d *docxDoc) centered(text string, rs runStyle) {
	para := d.rd.AddEmptyParagraph()
	para.Justification(stypes.JustificationCenter)
	addRun(para, text, rs)
}

func (d *docxDoc) blank(n int) {
	for i := 0; i < n; i++ {
		d.rd.AddEmptyParagraph()
	}
}

func addLines(para *docx.Paragraph, lines [][]Run, size uint64) {
	for i, line := range lines {
		if i > 0 {
			para.AddRun().AddBreak(nil)
		}
		for _, r := range line {
			addRun(para, r.Text, runStyle{size: size, bold: r.Bold, font: docxBodyFont})
		}
	}
}

// addRun appends text as one run. Newlines become line breaks and tabs become tab characters.
func addRun(para *docx.Paragraph, text string, rs runStyle) {
	run := &ctypes.Run{Property: rs.property()}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.Children = append(run.Children, ctypes.RunChild{Break: &ctypes.Break{}})
		}
		for j, seg := range strings.Split(line, "\t") {
			if j > 0 {
				run.Children = append(run.Children, ctypes.RunChild{Tab: &ctypes.Empty{}})
			}
			if seg != "" {
				run.Children = append(run.Children, ctypes.RunChild{Text: ctypes.TextFromString(seg)})
			}
		}
	}
	ct := para.GetCT()
	ct.Children = append(ct.Children, ctypes.ParagraphChild{Run: run})
}

func (rs runStyle) property() *ctypes.RunProperty {
	if rs.font == "" && !rs.bold && rs.size == 0 {
		return nil
	}
	prop := &ctypes.RunProperty{}
	if rs.font != "" {
		prop.Fonts = &ctypes.RunFonts{Ascii: rs.font, HAnsi: rs.font}
	}
	if rs.bold {
		prop.Bold = ctypes.OnOffFromBool(true)
		prop.BoldCS = ctypes.OnOffFromBool(true)
	}
	if rs.size > 0 {
		prop.Size = ctypes.NewFontSize(rs.size * 2)
		prop.SizeCs = ctypes.NewFontSizeCS(rs.size * 2)
	}
	return prop
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// corePropsXML replaces the template's core properties. godocx carries docProps/core.xml
// through as an opaque part, so title, creator and created date are written here.
func corePropsXML(p *Plan) string {
	return fmt.Sprintf(xml.Header+
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" `+
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" `+
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+
		`<dc:title>%s</dc:title><dc:creator>%s</dc:creator>`+
		`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`+
		`</cp:coreProperties>`,
		escapeXML(p.DocumentTitle()), escapeXML(p.Branding.Author), p.Generated.UTC().Format("2006-01-02T15:04:05Z"))
}

package tableexport

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"stylewriter/internal/report"
)

const (
	summarySheet  = "Summary"
	glossarySheet = "Glossary"
	// charsPerInch converts the report's inch-based column policy to
	// spreadsheet character widths.
	charsPerInch = 13.0
)

type xlsxStyles struct {
	header int
	body   int
	rating int
	label  int
}

// XLSX renders a workbook with a summary sheet, the acronym glossary and one
// sheet per content table, using the report's column policy and shading.
func XLSX(p *report.Plan) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   p.DocumentTitle(),
		Creator: p.Branding.Author,
		Created: p.Generated.UTC().Format("2006-01-02T15:04:05Z"),
	}); err != nil {
		return nil, fmt.Errorf("tableexport.XLSX: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("tableexport.XLSX: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("tableexport.XLSX: %w", err)
	}
	if err := writeSummary(f, p, st); err != nil {
		return nil, fmt.Errorf("tableexport.XLSX: summary: %w", err)
	}

	glossary := make([][]string, 0, len(p.Glossary)+1)
	glossary = append(glossary, []string{report.GlossaryTerm, report.GlossaryDef})
	for _, a := range p.Glossary {
		glossary = append(glossary, []string{a.Term, a.Definition})
	}
	if err := writeGrid(f, glossarySheet, glossary, []float64{1.2, 4.8}, st, false); err != nil {
		return nil, fmt.Errorf("tableexport.XLSX: glossary: %w", err)
	}

	for i, g := range Tables(p) {
		name := "Table " + strconv.Itoa(i+1)
		if err := writeGrid(f, name, g.Rows, report.ColumnWidths(g.Cols()), st, true); err != nil {
			return nil, fmt.Errorf("tableexport.XLSX: %s: %w", name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("tableexport.XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (xlsxStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	var st xlsxStyles
	var err error
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: "Calibri", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{report.HeaderShade}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return st, err
	}
	st.body, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return st, err
	}
	st.rating, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: "Calibri", Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return st, err
	}
	st.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	return st, err
}

func writeSummary(f *excelize.File, p *report.Plan, st xlsxStyles) error {
	b := p.Branding
	rows := [][]interface{}{
		{b.Organization},
		{b.Sector},
		{b.ReportTitle},
		{"Title", p.DocumentTitle()},
		{"Document Type", b.DocumentType},
		{"Date Generated", p.Generated.Format(report.DateLayout)},
		{},
		{"Block", "Kind", "Rows", "Columns"},
	}
	for i, e := range p.Outline() {
		rows = append(rows, []interface{}{i + 1, e.Kind.String(), e.Rows, e.Cols})
	}
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A3", st.label); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A8", "D8", st.header); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "A", "B", 24)
}

func writeGrid(f *excelize.File, sheet string, rows [][]string, widthsIn []float64, st xlsxStyles, ratings bool) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for r, cells := range rows {
		for c, text := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, text); err != nil {
				return err
			}
			style := st.body
			switch {
			case r == 0:
				style = st.header
			case ratings && report.HasRating(text):
				style = st.rating
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	for c, w := range widthsIn {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w*charsPerInch); err != nil {
			return err
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

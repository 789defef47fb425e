package guidelines

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook column headers, matched case-insensitively on the first row.
const (
	colName    = "name"
	colSummary = "summary"
	colContent = "content"
	colDefault = "default"
)

// ImportWorkbook builds a library from the first sheet of an XLSX workbook
// with Name, Content, Summary and Default columns. Prompt material is taken
// from base. Rows without a name are skipped.
func ImportWorkbook(r io.Reader, base *Library) (*Library, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("guidelines.ImportWorkbook: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("guidelines.ImportWorkbook: read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("guidelines.ImportWorkbook: workbook is empty")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colName, colContent} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("guidelines.ImportWorkbook: missing %q column", required)
		}
	}

	lib := &Library{
		LLMInstructions: base.LLMInstructions,
		TrainingContent: base.TrainingContent,
		TrainingOutput:  base.TrainingOutput,
	}
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cellVal(row, cols, colName))
		if name == "" {
			continue
		}
		lib.Sections = append(lib.Sections, Section{
			Name:    name,
			Content: strings.TrimSpace(cellVal(row, cols, colContent)),
			Summary: strings.TrimSpace(cellVal(row, cols, colSummary)),
		})
		if isYes(cellVal(row, cols, colDefault)) {
			lib.DefaultSelected = append(lib.DefaultSelected, name)
		}
	}

	if err := lib.reindex(); err != nil {
		return nil, fmt.Errorf("guidelines.ImportWorkbook: %w", err)
	}
	return lib, nil
}

// cellVal returns the named column of row, or "" when absent.
func cellVal(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "x", "1":
		return true
	}
	return false
}

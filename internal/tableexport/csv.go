// Package tableexport writes the tables of a report plan as CSV or XLSX.
package tableexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"stylewriter/internal/report"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Tables returns the content tables of a plan in document order.
func Tables(p *report.Plan) []*report.Grid {
	var out []*report.Grid
	for _, b := range p.Blocks {
		if b.Kind == report.KindTable && b.Table != nil {
			out = append(out, b.Table)
		}
	}
	return out
}

// Writer wraps csv.Writer for exporting plan tables as CSV.
type Writer struct {
	csv  *csv.Writer
	cols int
}

// NewWriter creates a Writer that writes CSV to w with cols cell columns.
func NewWriter(w io.Writer, cols int) *Writer {
	return &Writer{csv: csv.NewWriter(w), cols: cols}
}

// WriteHeader writes the Table, Row, Column 1..n header row.
func (w *Writer) WriteHeader() error {
	header := []string{"Table", "Row"}
	for i := 1; i <= w.cols; i++ {
		header = append(header, "Column "+strconv.Itoa(i))
	}
	return w.csv.Write(header)
}

// WriteTable writes every row of g, tagged with its 1-based table number.
// Row 0 is the table's header row.
func (w *Writer) WriteTable(n int, g *report.Grid) error {
	for i, cells := range g.Rows {
		row := make([]string, 2+w.cols)
		row[0] = strconv.Itoa(n)
		row[1] = strconv.Itoa(i)
		copy(row[2:], cells)
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// CSV renders all content tables of p into a single BOM-prefixed sheet.
func CSV(p *report.Plan) ([]byte, error) {
	tables := Tables(p)
	cols := 0
	for _, g := range tables {
		if c := g.Cols(); c > cols {
			cols = c
		}
	}

	var buf bytes.Buffer
	buf.Write(BOM)
	w := NewWriter(&buf, cols)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("tableexport.CSV: %w", err)
	}
	for i, g := range tables {
		if err := w.WriteTable(i+1, g); err != nil {
			return nil, fmt.Errorf("tableexport.CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("tableexport.CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a title for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

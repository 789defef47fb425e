package report

import "strings"

// RatingKeywords mark assessment values that are emphasized wherever they appear in a table.
var RatingKeywords = []string{"STRONG", "MODERATE", "LOW", "ACCEPTABLE", "WEAK", "HIGH"}

// HeaderShade is the fill color of a content table's header row.
const HeaderShade = "D9D9D9"

// Grid is a rectangular table parsed from a content block. Row 0 is the header.
type Grid struct {
	Rows [][]string
}

// Cols returns the column count shared by every row.
func (g *Grid) Cols() int {
	if g == nil || len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// ParseTable splits block lines into cells. Lines containing a tab are split on
// tabs, the rest on runs of two or more whitespace characters. It returns nil when
// the block does not yield at least two rows and two columns.
func ParseTable(lines []string) *Grid {
	var rows [][]string
	maxCols := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var parts []string
		if strings.Contains(line, "\t") {
			parts = strings.Split(line, "\t")
		} else {
			parts = wideGapRe.Split(line, -1)
		}
		var cells []string
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cells = append(cells, p)
			}
		}
		if len(cells) == 0 {
			continue
		}
		if len(cells) > maxCols {
			maxCols = len(cells)
		}
		rows = append(rows, cells)
	}
	if len(rows) < 2 || maxCols <= 1 {
		return nil
	}
	for i, row := range rows {
		for len(row) < maxCols {
			row = append(row, "")
		}
		rows[i] = row
	}
	return &Grid{Rows: rows}
}

// ColumnWidths returns the width policy in inches for a table with n columns.
func ColumnWidths(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{6.0}
	case n == 2:
		return []float64{4.0, 1.5}
	case n == 3:
		return []float64{2.5, 2.0, 1.5}
	case n == 4:
		return []float64{2.0, 2.0, 1.0, 1.5}
	}
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = 6.0 / float64(n)
	}
	return widths
}

// FitWidths scales widths down proportionally so their sum does not exceed limit.
func FitWidths(widths []float64, limit float64) []float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	out := make([]float64, len(widths))
	scale := 1.0
	if total > limit && total > 0 {
		scale = limit / total
	}
	for i, w := range widths {
		out[i] = w * scale
	}
	return out
}

// HasRating reports whether the cell text contains a rating keyword, ignoring case.
func HasRating(cell string) bool {
	upper := strings.ToUpper(cell)
	for _, kw := range RatingKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// IsRatingWord reports whether a single word, stripped of surrounding punctuation,
// is a rating keyword.
func IsRatingWord(word string) bool {
	w := strings.ToUpper(strings.Trim(word, ".,;:!?()[]{}\"'"))
	for _, kw := range RatingKeywords {
		if w == kw {
			return true
		}
	}
	return false
}

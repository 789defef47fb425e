package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/report"
)

func TestParseTable_Tabs(t *testing.T) {
	grid := report.ParseTable([]string{"Category\tRating", "Credit\tModerate", "Liquidity\tLow"})
	require.NotNil(t, grid)
	assert.Equal(t, [][]string{
		{"Category", "Rating"},
		{"Credit", "Moderate"},
		{"Liquidity", "Low"},
	}, grid.Rows)
	assert.Equal(t, 2, grid.Cols())
}

func TestParseTable_SpacesAndPadding(t *testing.T) {
	grid := report.ParseTable([]string{
		"Area     Rating    Trend",
		"",
		"Credit   Strong",
		"   Liquidity  Low  Stable  ",
	})
	require.NotNil(t, grid)
	assert.Equal(t, 3, grid.Cols())
	assert.Equal(t, []string{"Credit", "Strong", ""}, grid.Rows[1])
	assert.Equal(t, []string{"Liquidity", "Low", "Stable"}, grid.Rows[2])
}

func TestParseTable_DropsEmptyTabCells(t *testing.T) {
	grid := report.ParseTable([]string{"A\t\tB", "\tC\tD\t"})
	require.NotNil(t, grid)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}}, grid.Rows)
}

func TestParseTable_Rejects(t *testing.T) {
	assert.Nil(t, report.ParseTable(nil))
	assert.Nil(t, report.ParseTable([]string{"A\tB"}), "single row")
	assert.Nil(t, report.ParseTable([]string{"A\t", "B\t"}), "single column")
	assert.Nil(t, report.ParseTable([]string{"\t\t", "  ", "\t"}), "no cells")
}

func TestParseTable_AlwaysRectangular(t *testing.T) {
	inputs := [][]string{
		{"a\tb\tc\td", "e", "f\tg"},
		{"one  two", "three  four  five  six", "seven"},
		{"x\ty", "\t\t\tz"},
	}
	for _, lines := range inputs {
		grid := report.ParseTable(lines)
		require.NotNil(t, grid)
		for _, row := range grid.Rows {
			assert.Len(t, row, grid.Cols())
		}
	}
}

func TestColumnWidths(t *testing.T) {
	assert.Equal(t, []float64{4.0, 1.5}, report.ColumnWidths(2))
	assert.Equal(t, []float64{2.5, 2.0, 1.5}, report.ColumnWidths(3))
	assert.Equal(t, []float64{2.0, 2.0, 1.0, 1.5}, report.ColumnWidths(4))
	five := report.ColumnWidths(5)
	require.Len(t, five, 5)
	for _, w := range five {
		assert.InDelta(t, 1.2, w, 1e-9)
	}
	assert.Len(t, report.ColumnWidths(8), 8)
	assert.Nil(t, report.ColumnWidths(0))
}

func TestFitWidths(t *testing.T) {
	assert.Equal(t, []float64{4.0, 1.5}, report.FitWidths([]float64{4.0, 1.5}, 6))
	fitted := report.FitWidths([]float64{2.5, 2.0, 1.5}, 3)
	assert.InDelta(t, 1.25, fitted[0], 1e-9)
	assert.InDelta(t, 1.0, fitted[1], 1e-9)
	assert.InDelta(t, 0.75, fitted[2], 1e-9)
}

func TestHasRating(t *testing.T) {
	for _, cell := range []string{"Strong", "moderate risk", "LOW", "Acceptable", "weak", "Highly rated"} {
		assert.True(t, report.HasRating(cell), cell)
	}
	for _, cell := range []string{"Credit", "", "Stable"} {
		assert.False(t, report.HasRating(cell), cell)
	}
}

func TestIsRatingWord(t *testing.T) {
	assert.True(t, report.IsRatingWord("Strong"))
	assert.True(t, report.IsRatingWord("(moderate),"))
	assert.False(t, report.IsRatingWord("below"))
	assert.False(t, report.IsRatingWord("Highly"))
}

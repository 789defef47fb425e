package tableexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stylewriter/internal/report"
	"stylewriter/internal/tableexport"
)

var generated = time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)

const sample = "I. RATINGS\n\n" +
	"Component\tRating\nCapital\tSTRONG\nLiquidity\tAcceptable\n\n" +
	"Some prose about the findings.\n\n" +
	"Area  Owner  Due\nCredit  CRO  Q1\nMarket  Treasury  Q2"

func plan() *report.Plan {
	return report.BuildPlan(sample, "Ratings", generated, report.DefaultBranding())
}

func TestTables(t *testing.T) {
	tables := tableexport.Tables(plan())
	require.Len(t, tables, 2)
	assert.Equal(t, 2, tables[0].Cols())
	assert.Equal(t, 3, tables[1].Cols())
}

func TestCSV(t *testing.T) {
	data, err := tableexport.CSV(plan())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, tableexport.BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(tableexport.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Table", "Row", "Column 1", "Column 2", "Column 3"}, rows[0])
	assert.Equal(t, []string{"1", "1", "Capital", "STRONG", ""}, rows[2])
	assert.Equal(t, []string{"2", "0", "Area", "Owner", "Due"}, rows[4])
}

func TestCSV_NoTables(t *testing.T) {
	data, err := tableexport.CSV(report.BuildPlan("just prose", "", generated, report.DefaultBranding()))
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte{}, tableexport.BOM...), []byte("Table,Row\n")...), data)
}

func TestXLSX(t *testing.T) {
	data, err := tableexport.XLSX(plan())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Summary", "Glossary", "Table 1", "Table 2"}, f.GetSheetList())

	glossary, err := f.GetRows("Glossary")
	require.NoError(t, err)
	assert.Len(t, glossary, len(report.Glossary)+1)
	assert.Equal(t, []string{"Acronym", "Definition"}, glossary[0])

	rows, err := f.GetRows("Table 1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Component", "Rating"}, {"Capital", "STRONG"}, {"Liquidity", "Acceptable"}}, rows)

	headerStyle, err := f.GetCellStyle("Table 1", "A1")
	require.NoError(t, err)
	hs, err := f.GetStyle(headerStyle)
	require.NoError(t, err)
	assert.True(t, hs.Font.Bold)
	require.Len(t, hs.Fill.Color, 1)
	assert.Contains(t, strings.ToUpper(hs.Fill.Color[0]), report.HeaderShade)

	ratingStyle, err := f.GetCellStyle("Table 1", "B2")
	require.NoError(t, err)
	rs, err := f.GetStyle(ratingStyle)
	require.NoError(t, err)
	assert.True(t, rs.Font.Bold)

	plainStyle, err := f.GetCellStyle("Table 1", "A2")
	require.NoError(t, err)
	ps, err := f.GetStyle(plainStyle)
	require.NoError(t, err)
	assert.False(t, ps.Font.Bold)

	title, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Ratings", title)
	kind, err := f.GetCellValue("Summary", "B9")
	require.NoError(t, err)
	assert.Equal(t, "major_header", kind)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Q1_Report_final", tableexport.SanitizeFilename("Q1 Report (final)"))
	assert.Equal(t, "a-b_c", tableexport.SanitizeFilename("__a-b  c__"))
}

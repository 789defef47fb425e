package guidelines_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stylewriter/internal/guidelines"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportWorkbook(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Name", "Summary", "Content", "Default"},
		{"NUMBERS", "Spell out one to nine", "Spell out numbers below ten.", "yes"},
		{"", "", "ignored row", ""},
		{"DATES", "", "Use day-month-year.", ""},
	})
	base := guidelines.Default()

	lib, err := guidelines.ImportWorkbook(buf, base)

	require.NoError(t, err)
	assert.Equal(t, []string{"NUMBERS", "DATES"}, lib.Names())
	assert.Equal(t, []string{"NUMBERS"}, lib.DefaultSelected)
	assert.Equal(t, base.LLMInstructions, lib.LLMInstructions)

	text, err := lib.Select(nil)
	require.NoError(t, err)
	assert.Equal(t, "Spell out numbers below ten.", text)
}

func TestImportWorkbook_RoundTripsThroughYAML(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"content", "NAME"},
		{"Avoid jargon.", "PLAIN LANGUAGE"},
	})

	lib, err := guidelines.ImportWorkbook(buf, guidelines.Default())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, lib.Encode(&out))
	parsed, err := guidelines.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"PLAIN LANGUAGE"}, parsed.Names())
	assert.Empty(t, parsed.DefaultSelected)
}

func TestImportWorkbook_Errors(t *testing.T) {
	_, err := guidelines.ImportWorkbook(workbook(t, [][]interface{}{{"Name", "Summary"}}), guidelines.Default())
	assert.ErrorContains(t, err, `missing "content" column`)

	_, err = guidelines.ImportWorkbook(workbook(t, [][]interface{}{
		{"Name", "Content"},
		{"A", "x"},
		{"A", "y"},
	}), guidelines.Default())
	assert.ErrorContains(t, err, "duplicate section")

	_, err = guidelines.ImportWorkbook(bytes.NewReader([]byte("not a zip")), guidelines.Default())
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/report"
)

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestOutlineCmd(t *testing.T) {
	path := writeInput(t, "\ufeffI. SCOPE\n\nArea\tRating\nCredit\tSTRONG")

	cmd := outlineCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	var outline []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &outline))
	require.Len(t, outline, 2)
	assert.Equal(t, report.KindMajorHeader.String(), outline[0]["kind"])
	assert.Equal(t, report.KindTable.String(), outline[1]["kind"])
}

func TestExportCmd(t *testing.T) {
	path := writeInput(t, "Overall: ACCEPTABLE")
	outDir := t.TempDir()

	cmd := exportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--title", "Exam Report", "--format", "pdf,csv", "--out", outDir})
	require.NoError(t, cmd.Execute())

	pdfs, err := filepath.Glob(filepath.Join(outDir, "Exam_Report_*.pdf"))
	require.NoError(t, err)
	require.Len(t, pdfs, 1)
	data, err := os.ReadFile(pdfs[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	csvs, err := filepath.Glob(filepath.Join(outDir, "Exam_Report_*.csv"))
	require.NoError(t, err)
	assert.Len(t, csvs, 1)
}

func TestExportCmd_DefaultFormatsShareOnePlan(t *testing.T) {
	path := writeInput(t, "I. SCOPE\n\nArea\tRating\nCredit\tSTRONG")
	outDir := t.TempDir()

	cmd := exportCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--title", "Exam Report", "--out", outDir})
	require.NoError(t, cmd.Execute())

	docs, err := filepath.Glob(filepath.Join(outDir, "Exam_Report_*.docx"))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	pdfs, err := filepath.Glob(filepath.Join(outDir, "Exam_Report_*.pdf"))
	require.NoError(t, err)
	require.Len(t, pdfs, 1)
	assert.Equal(t, strings.TrimSuffix(docs[0], ".docx"), strings.TrimSuffix(pdfs[0], ".pdf"))
	assert.Equal(t, 2, strings.Count(out.String(), " bytes"))
}

func TestExportCmd_BadFormat(t *testing.T) {
	cmd := exportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{writeInput(t, "x"), "--format", "odt", "--out", t.TempDir()})

	assert.Error(t, cmd.Execute())
}

func TestExtractCmd(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(a, []byte("first"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("second"), 0o644))

	cmd := extractCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{a, b})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "first\nsecond\n", out.String())
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("STYLEWRITER_JWT_SECRET", "cli-secret")

	cmd := tokenCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"analyst@example.com", "--role", "admin"})
	require.NoError(t, cmd.Execute())

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &tok))
	assert.NotEmpty(t, tok.AccessToken)

	bad := tokenCmd()
	bad.SetOut(&bytes.Buffer{})
	bad.SetErr(&bytes.Buffer{})
	bad.SetArgs([]string{"x", "--role", "owner"})
	assert.ErrorContains(t, bad.Execute(), "unknown role")
}

func TestGuidelinesListCmd(t *testing.T) {
	cmd := guidelinesCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "NUMBERS")
}

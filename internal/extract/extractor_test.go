package extract_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/domain"
	"stylewriter/internal/extract"
	"stylewriter/internal/port"
	"stylewriter/internal/report"
)

func zipOf(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func TestExtract_Docx(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document ` + wordNS + `><w:body>
<w:p><w:r><w:t>I. SCOPE</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">The Bank </w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>complied</w:t></w:r><w:r><w:t>.</w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:r><w:t>Rating</w:t><w:tab/><w:t>STRONG</w:t></w:r></w:p>
</w:body></w:document>`
	data := zipOf(t, map[string]string{"word/document.xml": doc})

	text, err := extract.New(0).Extract("report.DOCX", data)
	require.NoError(t, err)
	assert.Equal(t, "I. SCOPE\nThe Bank complied.\nRating\tSTRONG", text)
}

func TestExtract_DocxMissingBody(t *testing.T) {
	data := zipOf(t, map[string]string{"word/other.xml": "<x/>"})
	_, err := extract.New(0).Extract("a.docx", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestExtract_PptxSlideOrder(t *testing.T) {
	slide := func(text string) string {
		return `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
	}
	data := zipOf(t, map[string]string{
		"ppt/slides/slide10.xml":           slide("tenth"),
		"ppt/slides/slide2.xml":            slide("second"),
		"ppt/slides/slide1.xml":            slide("first"),
		"ppt/slides/_rels/slide1.xml.rels": "<Relationships/>",
	})

	text, err := extract.New(0).Extract("deck.pptx", data)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\ntenth", text)
}

func TestExtract_PlainText(t *testing.T) {
	e := extract.New(0)

	text, err := e.Extract("notes.md", []byte("\xEF\xBB\xBF# Title\r\nbody\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\nbody", text)

	text, err = e.Extract("legacy.txt", []byte("caf\xE9 \x93quoted\x94"))
	require.NoError(t, err)
	assert.Equal(t, "café “quoted”", text)
}

func TestExtract_PDF(t *testing.T) {
	exp := report.NewExporter(nil, report.WithClock(func() time.Time {
		return time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	}))
	art, err := exp.Render(report.Request{Text: "The liquidity position remains adequate.", Title: "Findings"}, report.FormatPDF)
	require.NoError(t, err)

	text, err := extract.New(0).Extract("out.pdf", art.Data)
	require.NoError(t, err)
	assert.Contains(t, text, "REPORT OF EXAMINATION")
	assert.Contains(t, text, "liquidity position remains")
	assert.True(t, strings.Index(text, "REPORT OF EXAMINATION") < strings.Index(text, "liquidity"))
}

func TestExtract_Errors(t *testing.T) {
	e := extract.New(8)

	_, err := e.Extract("image.png", []byte("x"))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType))

	_, err = e.Extract("big.txt", []byte("123456789"))
	assert.True(t, errors.Is(err, domain.ErrFileTooLarge))

	text, err := e.Extract("empty.pdf", nil)
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = e.Extract("broken.docx", []byte("not a zip"))
	require.Error(t, err)
}

func TestExtractAll(t *testing.T) {
	text, err := extract.New(0).ExtractAll([]port.SourceFile{
		{Name: "a.txt", Data: []byte("first")},
		{Name: "b.txt", Data: []byte("   ")},
		{Name: "c.md", Data: []byte("third")},
	})
	require.NoError(t, err)
	assert.Equal(t, "first\nthird", text)

	_, err = extract.New(0).ExtractAll([]port.SourceFile{{Name: "x.exe", Data: []byte("1")}})
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType))
}

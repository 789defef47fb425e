package extract

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// extractPDF reads every page's content stream and joins the page texts with newlines.
func extractPDF(data []byte) (string, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return "", fmt.Errorf("pdfcpu read: %w", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil || r == nil {
			continue
		}
		stream, err := io.ReadAll(r)
		if err != nil || len(stream) == 0 {
			continue
		}
		if text := contentText(stream); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n"), nil
}

// contentText interprets the text-showing operators of a content stream.
// A vertical move of the text position starts a new line, a horizontal one
// inserts a space.
func contentText(stream []byte) string {
	var (
		sb       strings.Builder
		operands []string
		pending  []string
		lastY    = math.NaN()
	)

	flush := func() {
		for _, s := range pending {
			sb.WriteString(s)
		}
		pending = pending[:0]
	}
	moveTo := func(y float64) {
		if sb.Len() == 0 {
			lastY = y
			return
		}
		if math.IsNaN(lastY) || math.Abs(y-lastY) > 0.5 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
		lastY = y
	}

	for i := 0; i < len(stream); {
		c := stream[i]
		switch {
		case isPDFSpace(c):
			i++
		case c == '%':
			for i < len(stream) && stream[i] != '\n' && stream[i] != '\r' {
				i++
			}
		case c == '(':
			s, n := readLiteral(stream[i:])
			pending = append(pending, decodeText(s))
			i += n
		case c == '<' && i+1 < len(stream) && stream[i+1] != '<':
			s, n := readHex(stream[i:])
			pending = append(pending, decodeText(s))
			i += n
		case c == '[' || c == ']' || c == '<' || c == '>' || c == '{' || c == '}':
			i++
		default:
			start := i
			for i < len(stream) && !isPDFSpace(stream[i]) && !isPDFDelim(stream[i]) {
				i++
			}
			if i == start {
				i++
				continue
			}
			tok := string(stream[start:i])
			if _, err := strconv.ParseFloat(tok, 64); err == nil {
				operands = append(operands, tok)
				continue
			}
			switch tok {
			case "Tj", "TJ":
				flush()
			case "'", "\"":
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
				flush()
			case "Td", "TD":
				if y, ok := operand(operands, 1, 2); ok {
					moveTo(y)
				}
			case "Tm":
				if y, ok := operand(operands, 5, 6); ok {
					moveTo(y)
				}
			case "T*":
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
			}
			operands = operands[:0]
			pending = pending[:0]
		}
	}
	return strings.TrimSpace(sb.String())
}

// operand returns operand idx of an operator taking n numeric operands.
func operand(ops []string, idx, n int) (float64, bool) {
	if len(ops) < n {
		return 0, false
	}
	v, err := strconv.ParseFloat(ops[len(ops)-n+idx], 64)
	return v, err == nil
}

func isPDFSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f' || c == 0
}

func isPDFDelim(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

// readLiteral parses a (...) string with nested parentheses and escapes.
func readLiteral(b []byte) ([]byte, int) {
	var out []byte
	depth := 0
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch c {
		case '(':
			if depth > 0 {
				out = append(out, c)
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				return out, i + 1
			}
			out = append(out, c)
		case '\\':
			if i+1 >= len(b) {
				return out, len(b)
			}
			i++
			switch e := b[i]; e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '\r', '\n':
				if e == '\r' && i+1 < len(b) && b[i+1] == '\n' {
					i++
				}
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for k := 0; k < 2 && i+1 < len(b) && b[i+1] >= '0' && b[i+1] <= '7'; k++ {
						i++
						val = val*8 + int(b[i]-'0')
					}
					out = append(out, byte(val))
				} else {
					out = append(out, e)
				}
			}
		default:
			out = append(out, c)
		}
	}
	return out, len(b)
}

// readHex parses a <...> hex string.
func readHex(b []byte) ([]byte, int) {
	end := bytes.IndexByte(b, '>')
	if end < 0 {
		end = len(b) - 1
	}
	var digits []byte
	for _, c := range b[1:end] {
		if !isPDFSpace(c) {
			digits = append(digits, c)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i+1 < len(digits); i += 2 {
		v, err := strconv.ParseUint(string(digits[i:i+2]), 16, 8)
		if err != nil {
			break
		}
		out = append(out, byte(v))
	}
	return out, end + 1
}

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)

// decodeText maps string bytes to UTF-8: UTF-16 when a byte order mark is
// present, WinAnsi otherwise.
func decodeText(s []byte) string {
	if len(s) >= 2 && s[0] == 0xFE && s[1] == 0xFF {
		if out, err := utf16BE.NewDecoder().Bytes(s); err == nil {
			return string(out)
		}
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(s)
	if err != nil {
		return string(s)
	}
	return string(out)
}

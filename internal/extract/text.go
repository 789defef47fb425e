package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// extractPlain passes UTF-8 text through. Anything else is read as
// Windows-1252, which is what legacy office exports produce.
func extractPlain(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	var text string
	if utf8.Valid(data) {
		text = string(data)
	} else {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			text = strings.ToValidUTF8(string(data), "�")
		} else {
			text = string(decoded)
		}
	}
	return strings.ReplaceAll(text, "\r\n", "\n")
}

package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func openZip(data []byte) (*zip.Reader, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	return r, nil
}

// extractDocx returns the paragraph texts of word/document.xml, one per line.
func extractDocx(data []byte) (string, error) {
	r, err := openZip(data)
	if err != nil {
		return "", err
	}
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			paras, err := readParagraphs(f)
			if err != nil {
				return "", err
			}
			return strings.Join(paras, "\n"), nil
		}
	}
	return "", fmt.Errorf("word/document.xml not found in archive")
}

// extractPptx returns the text of every slide in slide-number order.
func extractPptx(data []byte) (string, error) {
	r, err := openZip(data)
	if err != nil {
		return "", err
	}

	type slide struct {
		n int
		f *zip.File
	}
	var slides []slide
	for _, f := range r.File {
		if m := slideNameRe.FindStringSubmatch(f.Name); m != nil {
			n, _ := strconv.Atoi(m[1])
			slides = append(slides, slide{n: n, f: f})
		}
	}
	if len(slides) == 0 {
		return "", fmt.Errorf("no slides found in archive")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].n < slides[j].n })

	var out []string
	for _, s := range slides {
		paras, err := readParagraphs(s.f)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", s.n, err)
		}
		out = append(out, paras...)
	}
	return strings.Join(out, "\n"), nil
}

// readParagraphs collects the text runs of each <w:p> or <a:p> element.
// Tabs and line breaks inside a paragraph are kept.
func readParagraphs(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	decoder := xml.NewDecoder(rc)
	var paras []string
	var current strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Name, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				current.Reset()
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br":
				current.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimRight(current.String(), " \n"); strings.TrimSpace(text) != "" {
					paras = append(paras, text)
				}
				current.Reset()
			}
		}
	}
	return paras, nil
}

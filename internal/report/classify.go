package report

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BlockKind is the formatting category of a content block.
type BlockKind int

const (
	KindProse BlockKind = iota
	KindTable
	KindMajorHeader
	KindMinorHeader
)

func (k BlockKind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindMajorHeader:
		return "major_header"
	case KindMinorHeader:
		return "minor_header"
	default:
		return "prose"
	}
}

// MarshalText encodes the kind by name in JSON outlines.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// shortLineLimit is the rune length under which an all-caps line counts as a heading.
const shortLineLimit = 100

var (
	// Roman numerals I through CCCXCIX followed by a period and whitespace.
	romanHeadingRe = regexp.MustCompile(`^(C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})\.\s+`)
	labelHeadingRe = regexp.MustCompile(`(?i)^(Assessment|Directives|Overall|Summary|Scope|Conclusion):`)
	numberedRe     = regexp.MustCompile(`^\d+[.)]\s+`)
	wideGapRe      = regexp.MustCompile(`\s{2,}`)
)

type rule struct {
	kind  BlockKind
	match func(block string, lines []string) bool
}

// rules is evaluated in order; the first match wins.
var rules = []rule{
	{KindTable, looksTabular},
	{KindMajorHeader, isMajorHeading},
	{KindMinorHeader, isMinorHeading},
}

// Block is a trimmed, blank-line delimited chunk of input text.
type Block struct {
	Text  string
	Lines []string
}

// SplitBlocks normalizes line endings and splits text on blank lines.
// Blocks that are empty after trimming are dropped.
func SplitBlocks(text string) []Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []Block
	for _, raw := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		blocks = append(blocks, Block{Text: trimmed, Lines: strings.Split(trimmed, "\n")})
	}
	return blocks
}

// Classify returns the kind of a block given its lines.
func Classify(lines []string) BlockKind {
	block := strings.Join(lines, "\n")
	for _, r := range rules {
		if r.match(block, lines) {
			return r.kind
		}
	}
	return KindProse
}

// ClassifyText splits a block string into lines and classifies it.
func ClassifyText(block string) BlockKind {
	trimmed := strings.TrimSpace(strings.ReplaceAll(block, "\r\n", "\n"))
	return Classify(strings.Split(trimmed, "\n"))
}

func looksTabular(_ string, lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	nonEmpty, tabbed, spaced := 0, 0, 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonEmpty++
		if strings.Contains(line, "\t") {
			tabbed++
		}
		if len(wideGapRe.FindAllStringIndex(line, -1)) >= 2 {
			spaced++
		}
	}
	if nonEmpty < 2 {
		return false
	}
	return tabbed >= 2 || spaced >= 2
}

func isMajorHeading(block string, _ []string) bool {
	if m := romanHeadingRe.FindStringSubmatch(block); m != nil && m[1]+m[2]+m[3] != "" {
		return true
	}
	return labelHeadingRe.MatchString(block)
}

func isMinorHeading(block string, lines []string) bool {
	if numberedRe.MatchString(block) {
		return true
	}
	return len(lines) > 0 && utf8.RuneCountInString(lines[0]) < shortLineLimit && isUpper(lines[0])
}

// IsHeadingLine reports whether a single prose line should be emphasized.
func IsHeadingLine(line string) bool {
	line = strings.TrimSpace(line)
	return utf8.RuneCountInString(line) < shortLineLimit && isUpper(line)
}

// isUpper reports whether s has at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r) || unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

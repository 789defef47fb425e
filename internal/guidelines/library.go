// Package guidelines loads the editorial guideline library used to condition rewrites.
package guidelines

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stylewriter/internal/domain"
	"stylewriter/internal/llm"
)

//go:embed default_library.yaml
var defaultLibrary []byte

// Section is one selectable guideline.
type Section struct {
	Name    string `yaml:"name" json:"name"`
	Content string `yaml:"content" json:"content"`
	Summary string `yaml:"summary" json:"summary"`
}

// Library is the reference data behind style extraction and rewriting.
type Library struct {
	Sections        []Section `yaml:"sections"`
	DefaultSelected []string  `yaml:"default_selected"`
	LLMInstructions string    `yaml:"llm_instructions"`
	TrainingContent string    `yaml:"training_content"`
	TrainingOutput  string    `yaml:"training_output"`

	index map[string]int
}

// Parse decodes a YAML library document.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("guidelines.Parse: %w", err)
	}
	if err := lib.reindex(); err != nil {
		return nil, fmt.Errorf("guidelines.Parse: %w", err)
	}
	return &lib, nil
}

// reindex rebuilds the name index and checks names and defaults.
func (l *Library) reindex() error {
	l.index = make(map[string]int, len(l.Sections))
	for i, s := range l.Sections {
		if s.Name == "" {
			return fmt.Errorf("section %d has no name", i)
		}
		if _, dup := l.index[s.Name]; dup {
			return fmt.Errorf("duplicate section %q", s.Name)
		}
		l.index[s.Name] = i
	}
	for _, name := range l.DefaultSelected {
		if _, ok := l.index[name]; !ok {
			return fmt.Errorf("default %q is not a section", name)
		}
	}
	return nil
}

// Encode writes the library as YAML.
func (l *Library) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("guidelines.Encode: %w", err)
	}
	return enc.Close()
}

// Default returns the library compiled into the binary.
func Default() *Library {
	lib, err := Parse(defaultLibrary)
	if err != nil {
		panic(err)
	}
	return lib
}

// Load reads the library at path, using the embedded default when path is
// empty or the file does not exist.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("guidelines.Load: %s not found, using embedded library", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("guidelines.Load: %w", err)
	}
	return Parse(data)
}

// Names lists the section names in library order.
func (l *Library) Names() []string {
	names := make([]string, len(l.Sections))
	for i, s := range l.Sections {
		names[i] = s.Name
	}
	return names
}

// IsDefault reports whether a section is selected when the caller picks none.
func (l *Library) IsDefault(name string) bool {
	for _, d := range l.DefaultSelected {
		if d == name {
			return true
		}
	}
	return false
}

// Resolve validates names and returns them in library order, applying the
// default selection when names is nil.
func (l *Library) Resolve(names []string) ([]string, error) {
	if names == nil {
		names = l.DefaultSelected
	}
	picked := make(map[int]bool, len(names))
	for _, name := range names {
		i, ok := l.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGuideline, name)
		}
		picked[i] = true
	}
	out := make([]string, 0, len(picked))
	for i, s := range l.Sections {
		if picked[i] {
			out = append(out, s.Name)
		}
	}
	return out, nil
}

// Select joins the contents of the chosen sections with newlines.
func (l *Library) Select(names []string) (string, error) {
	resolved, err := l.Resolve(names)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(resolved))
	for i, name := range resolved {
		parts[i] = l.Sections[l.index[name]].Content
	}
	return strings.Join(parts, "\n"), nil
}

// FewShot returns the style extraction instructions and worked example.
func (l *Library) FewShot() llm.FewShot {
	return llm.FewShot{
		Instructions:   l.LLMInstructions,
		TrainingInput:  l.TrainingContent,
		TrainingOutput: l.TrainingOutput,
	}
}

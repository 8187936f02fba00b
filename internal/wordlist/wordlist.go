// Package wordlist holds the static data the word source draws from: the candidate
// headwords to look up and the pre-authored records served when a lookup fails.
package wordlist

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hpungsan/wordly/internal/word"
)

//go:embed words.yaml
var defaultYAML []byte

// List is the candidate and fallback data for a word source.
type List struct {
	Candidates []string   `yaml:"candidates"`
	Fallbacks  []Fallback `yaml:"fallbacks"`
}

// Fallback is a pre-authored record without fetch identity (no ID or date).
type Fallback struct {
	Word         string `yaml:"word"`
	Definition   string `yaml:"definition"`
	Example      string `yaml:"example,omitempty"`
	PartOfSpeech string `yaml:"part_of_speech,omitempty"`
	Phonetic     string `yaml:"phonetic,omitempty"`
}

// Record builds a Word from the fallback with the given identity.
func (f Fallback) Record(id, date string) *word.Word {
	return &word.Word{
		ID:           id,
		Word:         word.NormalizeHeadword(f.Word),
		Definition:   strings.TrimSpace(f.Definition),
		Example:      word.OptionalString(f.Example),
		PartOfSpeech: word.OptionalString(f.PartOfSpeech),
		Phonetic:     word.OptionalString(f.Phonetic),
		Date:         date,
	}
}

// Default returns the built-in list. It panics if the embedded data is invalid.
func Default() *List {
	l, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("wordlist: embedded words.yaml: %v", err))
	}
	return l
}

// Load reads a list from a YAML file. An empty path returns Default().
func Load(path string) (*List, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a YAML word list. Blank candidates are dropped.
func Parse(data []byte) (*List, error) {
	var l List
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}

	candidates := make([]string, 0, len(l.Candidates))
	for _, c := range l.Candidates {
		if c = word.NormalizeHeadword(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	l.Candidates = candidates

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that the list can always produce a record.
func (l *List) Validate() error {
	if len(l.Candidates) == 0 {
		return fmt.Errorf("word list has no candidates")
	}
	if len(l.Fallbacks) == 0 {
		return fmt.Errorf("word list has no fallbacks")
	}
	for i, f := range l.Fallbacks {
		if strings.TrimSpace(f.Word) == "" {
			return fmt.Errorf("fallbacks[%d]: word is required", i)
		}
		if strings.TrimSpace(f.Definition) == "" {
			return fmt.Errorf("fallbacks[%d] (%s): definition is required", i, f.Word)
		}
	}
	return nil
}

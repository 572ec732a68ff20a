package detector

import (
	"strings"

	"github.com/viant/solemn/lexicon"
	"github.com/viant/solemn/unit"
)

// Violation represents offensive content found in a text unit
type Violation struct {
	Kind   unit.Kind      `yaml:"type" json:"type"`
	File   string         `yaml:"file" json:"file"`
	Line   int            `yaml:"line" json:"line"`
	Column int            `yaml:"column" json:"column"`
	Text   string         `yaml:"text" json:"text"`
	Issues lexicon.Issues `yaml:"issues" json:"issues"`
}

// NewViolation creates a violation for a text unit
func NewViolation(fileName string, u *unit.TextUnit, issues lexicon.Issues) *Violation {
	return &Violation{
		Kind:   u.Kind,
		File:   fileName,
		Line:   u.Position.Line,
		Column: u.Position.Column,
		Text:   strings.TrimSpace(u.Text),
		Issues: issues,
	}
}

// FileResult holds the outcome of scanning one file
type FileResult struct {
	Path       string       `yaml:"path" json:"path"`
	Violations []*Violation `yaml:"violations" json:"violations"`
	Err        error        `yaml:"-" json:"-"`
}

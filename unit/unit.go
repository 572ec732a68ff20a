package unit

import (
	"github.com/viant/solemn/inspector/syntax"
)

// Kind indicates the type of text unit
type Kind string

const (
	KindIdentifier Kind = "identifier"
	KindLiteral    Kind = "literal"
	KindComment    Kind = "comment"
)

// TextUnit represents one identifier name, literal value or comment body
type TextUnit struct {
	Kind     Kind            `yaml:"kind" json:"kind"`
	Position syntax.Position `yaml:"position" json:"position"`
	Text     string          `yaml:"text" json:"text"`
}

// Equal returns true if both units are identical across all fields
func (u *TextUnit) Equal(other *TextUnit) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.Kind == other.Kind &&
		u.Position == other.Position &&
		u.Text == other.Text
}

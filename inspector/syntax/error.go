package syntax

import "fmt"

// ParseError reports malformed source
type ParseError struct {
	Language string
	Position Position
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: syntax error at line %d, column %d: %s", e.Language, e.Position.Line, e.Position.Column, e.Message)
}

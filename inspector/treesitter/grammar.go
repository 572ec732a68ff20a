package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Grammar maps tree-sitter node types of one language onto the syntax model
type Grammar struct {
	Name        string
	Language    *sitter.Language
	Identifiers map[string]bool // Node types reported as identifiers
	Literals    map[string]bool // Node types reported as literals
	Comments    map[string]bool // Node types holding comments
	// Substitutions are literal child node types whose source is left out of the literal text
	Substitutions map[string]bool
	// LiteralText derives the literal value from its source, defaults to the raw source
	LiteralText func(nodeType, content string) string
}

func (g *Grammar) literalText(nodeType, content string) string {
	if g.LiteralText == nil {
		return content
	}
	return g.LiteralText(nodeType, content)
}

// Set builds a node type lookup
func Set(nodeTypes ...string) map[string]bool {
	ret := make(map[string]bool, len(nodeTypes))
	for _, nodeType := range nodeTypes {
		ret[nodeType] = true
	}
	return ret
}

// Unquote strips the given delimiter from both ends of a literal
func Unquote(content string, delimiters ...string) string {
	for _, delimiter := range delimiters {
		n := len(delimiter)
		if len(content) >= 2*n && content[:n] == delimiter && content[len(content)-n:] == delimiter {
			return content[n : len(content)-n]
		}
	}
	return content
}

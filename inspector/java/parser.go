package java

import (
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/solemn/inspector/treesitter"
)

// Name is the language name reported by the parser
const Name = "java"

var grammar = &treesitter.Grammar{
	Name:     Name,
	Language: java.GetLanguage(),
	Identifiers: treesitter.Set(
		"identifier",
		"type_identifier",
	),
	Literals: treesitter.Set(
		"string_literal",
		"character_literal",
		"decimal_integer_literal",
		"hex_integer_literal",
		"octal_integer_literal",
		"binary_integer_literal",
		"decimal_floating_point_literal",
		"hex_floating_point_literal",
		"true",
		"false",
		"null_literal",
	),
	Comments:    treesitter.Set("comment", "line_comment", "block_comment"),
	LiteralText: literalText,
}

// escapes lists Java escapes unknown to other languages
var escapes = map[byte]rune{'s': ' '}

func literalText(nodeType, content string) string {
	switch nodeType {
	case "string_literal":
		return treesitter.Unescape(treesitter.Unquote(content, `"""`, `"`), escapes)
	case "character_literal":
		return treesitter.Unescape(treesitter.Unquote(content, "'"), escapes)
	}
	return content
}

// NewParser creates a Java parser
func NewParser() *treesitter.Parser {
	return treesitter.NewParser(grammar)
}

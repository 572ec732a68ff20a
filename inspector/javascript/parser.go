package javascript

import (
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/viant/solemn/inspector/treesitter"
)

// Name is the language name reported by the parser
const Name = "javascript"

var grammar = &treesitter.Grammar{
	Name:     Name,
	Language: javascript.GetLanguage(),
	Identifiers: treesitter.Set(
		"identifier",
		"property_identifier",
		"shorthand_property_identifier",
		"shorthand_property_identifier_pattern",
		"private_property_identifier",
		"statement_identifier",
		"undefined",
	),
	Literals: treesitter.Set(
		"string",
		"template_string",
		"number",
		"regex",
		"true",
		"false",
		"null",
		"jsx_text",
	),
	Comments:      treesitter.Set("comment"),
	Substitutions: treesitter.Set("template_substitution"),
	LiteralText:   literalText,
}

func literalText(nodeType, content string) string {
	switch nodeType {
	case "string":
		return treesitter.Unescape(treesitter.Unquote(content, `"`, `'`), nil)
	case "template_string":
		return treesitter.Unescape(treesitter.Unquote(content, "`"), nil)
	}
	return content
}

// NewParser creates a JavaScript (including JSX) parser
func NewParser() *treesitter.Parser {
	return treesitter.NewParser(grammar)
}

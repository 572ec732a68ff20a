package treesitter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/solemn/inspector/syntax"
)

const maxSnippet = 32

// Parser converts tree-sitter parse trees into the syntax model
type Parser struct {
	grammar *Grammar
}

// NewParser creates a parser for the supplied grammar
func NewParser(grammar *Grammar) *Parser {
	return &Parser{grammar: grammar}
}

// Language returns the grammar name
func (p *Parser) Language() string {
	return p.grammar.Name
}

// Parse parses source code and converts it into a syntax tree.
// Tree-sitter recovers from malformed input, any recovered error is reported as *syntax.ParseError
func (p *Parser) Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.grammar.Language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, p.parseError(rootNode, src)
	}
	return &syntax.Tree{
		Language: p.grammar.Name,
		Root:     p.convert(rootNode, src),
	}, nil
}

func (p *Parser) convert(node *sitter.Node, src []byte) *syntax.Node {
	nodeType := node.Type()
	result := &syntax.Node{
		Type:     nodeType,
		Position: position(node.StartPoint()),
	}
	switch {
	case p.grammar.Identifiers[nodeType]:
		result.Kind = syntax.KindIdentifier
		result.Text = node.Content(src)
	case p.grammar.Literals[nodeType]:
		result.Kind = syntax.KindLiteral
		result.Text = p.grammar.literalText(nodeType, p.literalSource(node, src))
	}

	count := int(node.NamedChildCount())
	if count == 0 {
		return result
	}
	children := make([]*syntax.Node, count)
	comments := make([]*syntax.Comment, count)
	for j := 0; j < count; j++ {
		childNode := node.NamedChild(j)
		if p.grammar.Comments[childNode.Type()] {
			comments[j] = &syntax.Comment{
				Text:     syntax.CommentText(childNode.Content(src)),
				Position: position(childNode.StartPoint()),
			}
			continue
		}
		children[j] = p.convert(childNode, src)
		result.AddChild(children[j])
	}
	// comments with no sibling node belong to the enclosing node
	result.Trailing = append(result.Trailing, syntax.Attach(children, comments)...)
	return result
}

// literalSource returns the literal source without substitution children
func (p *Parser) literalSource(node *sitter.Node, src []byte) string {
	if len(p.grammar.Substitutions) == 0 {
		return node.Content(src)
	}
	builder := strings.Builder{}
	offset := node.StartByte()
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		if !p.grammar.Substitutions[child.Type()] {
			continue
		}
		builder.Write(src[offset:child.StartByte()])
		offset = child.EndByte()
	}
	builder.Write(src[offset:node.EndByte()])
	return builder.String()
}

func (p *Parser) parseError(rootNode *sitter.Node, src []byte) *syntax.ParseError {
	ret := &syntax.ParseError{
		Language: p.grammar.Name,
		Position: syntax.Position{Line: 1},
		Message:  "invalid source",
	}
	node := firstError(rootNode)
	if node == nil {
		return ret
	}
	ret.Position = position(node.StartPoint())
	if node.IsMissing() {
		ret.Message = "missing " + node.Type()
		return ret
	}
	ret.Message = "unexpected " + strconv.Quote(truncate(node.Content(src), maxSnippet))
	return ret
}

// truncate shortens text to at most n runes
func truncate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n]) + "..."
}

// firstError returns the first error or missing node in pre-order
func firstError(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

func position(point sitter.Point) syntax.Position {
	return syntax.Position{Line: int(point.Row) + 1, Column: int(point.Column)}
}

package golang

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/solemn/inspector/syntax"
	"golang.org/x/tools/go/ast/inspector"
)

// Name is the language name reported by the parser
const Name = "go"

const defaultFilename = "source.go"

// Parser converts Go sources into the syntax model
type Parser struct{}

// NewParser creates a Go parser
func NewParser() *Parser {
	return &Parser{}
}

// Language returns the language name
func (p *Parser) Language() string {
	return Name
}

// Parse parses Go source code with comments attached through ast.CommentMap
func (p *Parser) Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, defaultFilename, src, parser.ParseComments)
	if err != nil {
		return nil, parseError(err)
	}

	commentMap := ast.NewCommentMap(fset, file, file.Comments)
	var stack []*syntax.Node
	var root *syntax.Node
	inspector.New([]*ast.File{file}).Nodes(nil, func(n ast.Node, push bool) bool {
		if !push {
			stack = stack[:len(stack)-1]
			return true
		}
		node := convert(fset, n)
		for _, group := range commentMap[n] {
			for _, comment := range group.List {
				attached := &syntax.Comment{
					Text:     syntax.CommentText(comment.Text),
					Position: position(fset, comment.Pos()),
				}
				if comment.End() <= n.Pos() {
					node.Leading = append(node.Leading, attached)
				} else {
					node.Trailing = append(node.Trailing, attached)
				}
			}
		}
		if len(stack) == 0 {
			root = node
		} else {
			stack[len(stack)-1].AddChild(node)
		}
		stack = append(stack, node)
		return true
	})
	return &syntax.Tree{Language: Name, Root: root}, nil
}

func convert(fset *token.FileSet, n ast.Node) *syntax.Node {
	ret := &syntax.Node{
		Type:     strings.TrimPrefix(reflect.TypeOf(n).String(), "*ast."),
		Position: position(fset, n.Pos()),
	}
	switch actual := n.(type) {
	case *ast.Ident:
		ret.Kind = syntax.KindIdentifier
		ret.Text = actual.Name
	case *ast.BasicLit:
		ret.Kind = syntax.KindLiteral
		ret.Text = literalText(actual)
	}
	return ret
}

func literalText(lit *ast.BasicLit) string {
	switch lit.Kind {
	case token.STRING, token.CHAR:
		if value, err := strconv.Unquote(lit.Value); err == nil {
			return value
		}
	}
	return lit.Value
}

func position(fset *token.FileSet, pos token.Pos) syntax.Position {
	p := fset.Position(pos)
	return syntax.Position{Line: p.Line, Column: p.Column - 1}
}

func parseError(err error) error {
	var list scanner.ErrorList
	if !errors.As(err, &list) || len(list) == 0 {
		return fmt.Errorf("failed to parse source: %w", err)
	}
	first := list[0]
	return &syntax.ParseError{
		Language: Name,
		Position: syntax.Position{Line: first.Pos.Line, Column: first.Pos.Column - 1},
		Message:  first.Msg,
	}
}

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/solemn/inspector/syntax"
)

func TestCommentText(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect string
	}{
		{name: "line comment", raw: "// badword here", expect: " badword here"},
		{name: "line comment with carriage return", raw: "// note\r", expect: " note"},
		{name: "block comment", raw: "/* multi\n line */", expect: " multi\n line "},
		{name: "doc comment", raw: "/** doc */", expect: "* doc "},
		{name: "no markers", raw: "plain", expect: "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, syntax.CommentText(tt.raw))
		})
	}
}

func TestAttach(t *testing.T) {
	a := &syntax.Node{Type: "a"}
	b := &syntax.Node{Type: "b"}
	c := &syntax.Comment{Text: " c", Position: syntax.Position{Line: 1, Column: 3}}

	orphans := syntax.Attach([]*syntax.Node{a, nil, b}, []*syntax.Comment{nil, c, nil})
	assert.Empty(t, orphans)
	assert.Equal(t, []*syntax.Comment{c}, a.Trailing)
	assert.Equal(t, []*syntax.Comment{c}, b.Leading)
	assert.Empty(t, a.Leading)
	assert.Empty(t, b.Trailing)

	only := &syntax.Comment{Text: " only"}
	orphans = syntax.Attach([]*syntax.Node{nil}, []*syntax.Comment{only})
	assert.Equal(t, []*syntax.Comment{only}, orphans)
}

func TestTraverse(t *testing.T) {
	tree := &syntax.Tree{Root: &syntax.Node{Type: "program", Children: []*syntax.Node{
		{Type: "decl", Children: []*syntax.Node{{Type: "id"}, {Type: "lit"}}},
		{Type: "stmt"},
	}}}
	var visited []string
	syntax.Traverse(tree, func(node *syntax.Node) bool {
		visited = append(visited, node.Type)
		return true
	})
	assert.Equal(t, []string{"program", "decl", "id", "lit", "stmt"}, visited)

	visited = nil
	syntax.Traverse(tree, func(node *syntax.Node) bool {
		visited = append(visited, node.Type)
		return node.Type != "decl"
	})
	assert.Equal(t, []string{"program", "decl", "stmt"}, visited)

	syntax.Traverse(nil, func(node *syntax.Node) bool {
		t.Fatal("unexpected visit")
		return true
	})
}

func TestParseError_Error(t *testing.T) {
	err := &syntax.ParseError{Language: "javascript", Position: syntax.Position{Line: 2, Column: 4}, Message: "unexpected token"}
	assert.EqualError(t, err, "javascript: syntax error at line 2, column 4: unexpected token")
}

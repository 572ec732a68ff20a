package syntax

// NodeKind classifies a syntax node for text extraction
type NodeKind int

const (
	// KindOther is any node that carries no extractable text itself
	KindOther NodeKind = iota
	// KindIdentifier is a name reference or declaration
	KindIdentifier
	// KindLiteral is a string, number, boolean, null, regex or template value
	KindLiteral
)

// Position represents a source position, line is 1-based, column is 0-based
type Position struct {
	Line   int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
}

// Comment represents a comment attached to a node
type Comment struct {
	Text     string   // Comment body without markers
	Position Position // Position of the comment opening marker
}

// Node represents a language neutral syntax tree node
type Node struct {
	Kind     NodeKind
	Type     string   // Grammar specific node type
	Text     string   // Identifier name or literal value, empty for other nodes
	Position Position // Start position of the node
	Leading  []*Comment
	Trailing []*Comment
	Children []*Node
}

// AddChild appends a child node
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Tree represents a parsed program
type Tree struct {
	Language string
	Root     *Node
}

package syntax

// Visitor is called once for every node, returning false skips the node's children
type Visitor func(node *Node) bool

// Traverse walks the tree depth-first in pre-order
func Traverse(tree *Tree, visit Visitor) {
	if tree == nil || tree.Root == nil {
		return
	}
	traverse(tree.Root, visit)
}

func traverse(node *Node, visit Visitor) {
	if !visit(node) {
		return
	}
	for _, child := range node.Children {
		traverse(child, visit)
	}
}

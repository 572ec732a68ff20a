package syntax

import "strings"

// CommentText strips line and block comment markers from raw comment source
func CommentText(raw string) string {
	switch {
	case strings.HasPrefix(raw, "//"):
		return strings.TrimSuffix(strings.TrimPrefix(raw, "//"), "\r")
	case strings.HasPrefix(raw, "/*"):
		return strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
	}
	return raw
}

// Attach distributes comments among sibling nodes.
// The input is the ordered list of a parent's children where comments are
// represented by a non nil comment at the same index. A comment becomes
// trailing for the closest preceding node and leading for the closest
// following node, as long as only comments lie in between. Comments without
// any sibling node are returned as orphans.
func Attach(nodes []*Node, comments []*Comment) (orphans []*Comment) {
	var prev *Node
	var pending []*Comment
	for i := range nodes {
		if comment := comments[i]; comment != nil {
			pending = append(pending, comment)
			if prev != nil {
				prev.Trailing = append(prev.Trailing, comment)
			}
			continue
		}
		node := nodes[i]
		if node == nil {
			continue
		}
		node.Leading = append(node.Leading, pending...)
		pending = nil
		prev = node
	}
	if prev == nil {
		return pending
	}
	return nil
}

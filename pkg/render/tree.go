// Package render turns closure graphs into terminal-friendly text.
package render

import "strings"

const (
	branchConnector   = "├── "
	cornerConnector   = "└── "
	openContinuation  = "│   "
	blankContinuation = "    "
)

// Tree renders closure as an indented ASCII tree rooted at root, in the
// conventional directory-tree style: the last child of a node uses the
// corner connector, earlier children the branch connector, and continuation
// segments accumulate per depth. Children appear in closure order; packages
// absent from closure render as leaves.
//
// If root is not a key of closure the result is the degenerate one-line
// tree. Tree assumes an already-validated acyclic closure and performs no
// cycle guarding of its own.
func Tree(closure graphView, root string) string {
	var b strings.Builder
	b.WriteString(root)
	b.WriteByte('\n')
	writeChildren(&b, closure, root, "")
	return b.String()
}

// graphView is the read access Tree needs from a closure graph.
type graphView interface {
	EdgesOf(pkg string) ([]string, bool)
}

func writeChildren(b *strings.Builder, closure graphView, node, prefix string) {
	children, _ := closure.EdgesOf(node)
	for i, child := range children {
		connector, continuation := branchConnector, openContinuation
		if i == len(children)-1 {
			connector, continuation = cornerConnector, blankContinuation
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(child)
		b.WriteByte('\n')
		writeChildren(b, closure, child, prefix+continuation)
	}
}

package postpass

import "github.com/haloscript/hsc/internal/ast"

// collapseBegin repeatedly replaces a call node named `begin` that has
// exactly one argument with that argument, then recurses into children.
// Runs to a fixed point by construction, since each substitution strictly
// shrinks the tree at that position before the next check.
func collapseBegin(n *ast.Node) *ast.Node {
	if n == nil {
		return nil
	}
	for n.Kind == ast.Call && n.StringData == "begin" && len(n.Parameters) == 1 {
		n = n.Parameters[0]
	}
	if n.Kind == ast.Call {
		for i, p := range n.Parameters {
			n.Parameters[i] = collapseBegin(p)
		}
	}
	return n
}

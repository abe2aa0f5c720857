package analyzer

import (
	"github.com/haloscript/hsc/internal/config"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/sexp"
)

// desugarCond folds `cond`'s arms from last to first into nested
// `(if <cond> (begin <body...>) <next-if>)`, preserving each arm's own
// source position on its synthesized `if` and `begin` nodes.
func desugarCond(call *sexp.Node, arms []*sexp.Node) (*sexp.Node, error) {
	if len(arms) == 0 {
		return nil, errAt(diagnostics.ErrCondShape, call, "cond requires at least one arm")
	}

	var result *sexp.Node
	for i := len(arms) - 1; i >= 0; i-- {
		arm := arms[i]
		if arm.IsLeaf() || len(arm.Children) < 2 {
			return nil, errAt(diagnostics.ErrCondShape, arm, "cond arm must be (condition body...)")
		}
		condition := arm.Children[0]
		body := arm.Children[1:]

		beginHead := &sexp.Node{Leaf: config.BeginFuncName, Pos: arm.Pos}
		beginChildren := append([]*sexp.Node{beginHead}, body...)
		beginNode := &sexp.Node{Children: beginChildren, Pos: arm.Pos}

		ifHead := &sexp.Node{Leaf: config.IfFuncName, Pos: arm.Pos}
		ifChildren := []*sexp.Node{ifHead, condition, beginNode}
		if result != nil {
			ifChildren = append(ifChildren, result)
		}
		result = &sexp.Node{Children: ifChildren, Pos: arm.Pos}
	}
	return result, nil
}

package analyzer

import (
	"strings"

	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/config"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/sexp"
	"github.com/haloscript/hsc/internal/symbols"
	"github.com/haloscript/hsc/internal/types"
)

// analyzeCall resolves a call's head, checks its arity against the
// matched callable, unifies any passthrough parameters against the
// supplied arguments, and parses any argument that is still a static
// literal once its final type is known.
func (a *Analyzer) analyzeCall(n *sexp.Node, expected types.T, locals symbols.Locals) (*ast.Node, error) {
	head := n.Children[0]
	if !head.IsLeaf() || head.Quoted {
		return nil, errAt(diagnostics.ErrUnknownFunction, head, "call head must be a function name")
	}
	name := strings.ToLower(head.Leaf)
	argToks := n.Children[1:]

	if name == config.CondFuncName {
		rewritten, err := desugarCond(n, argToks)
		if err != nil {
			return nil, err
		}
		return a.Analyze(rewritten, expected, locals)
	}

	callable, ok := a.Env.LookupFunction(name)
	if !ok {
		return nil, errAt(diagnostics.ErrUnknownFunction, head, "unknown function %q", name)
	}

	// Step 4: argument-count check.
	min := callable.MinArity()
	if len(argToks) < min {
		return nil, errAt(diagnostics.ErrTooFewArgs, n, "%q requires at least %d argument(s), got %d", name, min, len(argToks))
	}
	if max, unbounded := callable.MaxArity(); !unbounded && len(argToks) > max {
		return nil, errAt(diagnostics.ErrTooManyArgs, argToks[max], "%q accepts at most %d argument(s)", name, max)
	}

	// Step 5: return type resolution.
	declaredReturn := callable.Return()
	finalType := declaredReturn
	if declaredReturn == types.Passthrough && expected != types.Passthrough {
		finalType = expected
	}
	if expected != types.Passthrough && !types.CanConvert(finalType, expected) {
		return nil, errAt(diagnostics.ErrConvertError, n, "%q returns %s, cannot be used where %s is expected", name, finalType, expected)
	}

	// Step 6: passthrough unification seed.
	isSet := name == config.SetFuncName
	var u *types.T
	var setVarNode *ast.Node
	if isSet {
		if len(argToks) == 0 || !argToks[0].IsLeaf() || argToks[0].Quoted {
			return nil, errAt(diagnostics.ErrSetOnNonGlobal, n, "set requires a global name as its first argument")
		}
		gname := strings.ToLower(argToks[0].Leaf)
		v, ok := a.Env.LookupGlobal(gname)
		if !ok {
			return nil, errAt(diagnostics.ErrSetOnNonGlobal, argToks[0], "%q is not a global", gname)
		}
		gt := v.Type()
		u = &gt
		setVarNode = &ast.Node{
			Kind:       ast.PrimitiveGlobal,
			ValueType:  gt,
			StringData: gname,
			HasIndex:   true,
			Index:      config.SetIndexSentinel,
			Pos:        posOf(argToks[0]),
		}
	} else if declaredReturn == types.Passthrough && finalType != declaredReturn {
		v := finalType
		u = &v
	}

	// Step 7: argument pass.
	argNodes := make([]*ast.Node, 0, len(argToks))
	argParams := make([]catalog.Param, 0, len(argToks))
	for i, tok := range argToks {
		param, ok := callable.ParamAt(i)
		if !ok {
			return nil, errAt(diagnostics.ErrTooManyArgs, tok, "%q accepts at most %d argument(s)", name, len(argParams))
		}
		if isSet && i == 0 {
			argNodes = append(argNodes, setVarNode)
			argParams = append(argParams, param)
			continue
		}

		actualExpected := param.Type
		wasPassthroughSlot := false
		if param.Type == types.Passthrough {
			switch {
			case callable.PassthroughLast() && i != len(argToks)-1:
				actualExpected = types.Void
			case u != nil:
				actualExpected = *u
			default:
				actualExpected = types.Passthrough
				wasPassthroughSlot = true
			}
		}

		node, err := a.Analyze(tok, actualExpected, locals)
		if err != nil {
			return nil, err
		}
		if wasPassthroughSlot && node.ValueType != types.Passthrough {
			v := node.ValueType
			u = &v
		}
		argNodes = append(argNodes, node)
		argParams = append(argParams, param)
	}

	// Step 8: passthrough finalization.
	if u == nil {
		real := types.Real
		u = &real
	}

	// Step 9: numeric/inequality guard.
	if callable.NumberPassthrough() && !types.CanConvert(*u, types.Real) {
		return nil, errAt(diagnostics.ErrPassthroughTypeMismatch, n, "%q requires a numeric passthrough type, got %s", name, *u)
	}
	if callable.Inequality() {
		okType := u.IsNumeric() || *u == types.GameDifficulty || *u == types.Team
		if !okType {
			return nil, errAt(diagnostics.ErrPassthroughTypeMismatch, n, "%q requires a numeric, game_difficulty, or team operand, got %s", name, *u)
		}
	}

	// Step 10: literal parsing pass.
	for i, node := range argNodes {
		if node.Kind != ast.PrimitiveStatic {
			continue
		}
		parsed, err := a.parseLiteral(node, argParams[i], *u)
		if err != nil {
			return nil, err
		}
		argNodes[i] = parsed
	}

	return &ast.Node{
		Kind:         ast.Call,
		ValueType:    finalType,
		StringData:   name,
		IsEngineCall: callable.IsEngine(),
		Parameters:   argNodes,
		Pos:          posOf(head),
	}, nil
}

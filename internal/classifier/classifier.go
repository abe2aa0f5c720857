// Package classifier implements the top-level form recognizer: it walks
// the parsed S-expression forest and splits it into Script and Global
// headers with bodies left unanalyzed, ready for internal/analyzer.
package classifier

import (
	"strings"

	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/config"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/sexp"
	"github.com/haloscript/hsc/internal/target"
	"github.com/haloscript/hsc/internal/types"
)

// Classify builds a Program from the parsed forest for compile target t.
func Classify(forest []*sexp.Node, t target.Target) (*ast.Program, error) {
	prog := &ast.Program{}
	for _, n := range forest {
		if n.IsLeaf() {
			return nil, diagErr(diagnostics.ErrExpectedGlobalOrScript, n, "top-level form must be a block, found %q", n.Leaf)
		}
		if len(n.Children) == 0 {
			return nil, diagErr(diagnostics.ErrExpectedGlobalOrScript, n, "empty top-level block")
		}
		head := n.Children[0]
		if !head.IsLeaf() {
			return nil, diagErr(diagnostics.ErrExpectedGlobalOrScript, head, "expected 'global' or 'script'")
		}
		switch strings.ToLower(head.Leaf) {
		case config.GlobalFormName:
			g, err := classifyGlobal(n)
			if err != nil {
				return nil, err
			}
			prog.Globals = append(prog.Globals, g)
		case config.ScriptFormName:
			s, err := classifyScript(n, t)
			if err != nil {
				return nil, err
			}
			prog.Scripts = append(prog.Scripts, s)
		default:
			return nil, diagErr(diagnostics.ErrExpectedGlobalOrScript, head, "expected 'global' or 'script', found %q", head.Leaf)
		}
	}
	return prog, nil
}

func classifyGlobal(n *sexp.Node) (*ast.Global, error) {
	// (global T name expr)
	if len(n.Children) < 4 {
		return nil, diagErr(diagnostics.ErrIncompleteGlobal, n, "global declaration requires a type, a name, and an initializer")
	}
	if len(n.Children) > 4 {
		return nil, diagErr(diagnostics.ErrExtraneousToken, n.Children[4], "global declaration takes no implicit begin; unexpected extra form")
	}
	typeTok := n.Children[1]
	nameTok := n.Children[2]
	bodyTok := n.Children[3]

	t, ok := typeFromLeaf(typeTok)
	if !ok {
		return nil, diagErr(diagnostics.ErrBadScriptHeader, typeTok, "unknown type %q", typeTok.Leaf)
	}
	if t == types.Passthrough {
		return nil, diagErr(diagnostics.ErrPassthroughNotAllowed, typeTok, "a global may not be declared passthrough")
	}
	if !nameTok.IsLeaf() {
		return nil, diagErr(diagnostics.ErrBadScriptHeader, nameTok, "global name must be an identifier")
	}
	name := strings.ToLower(nameTok.Leaf)
	if len(name) > config.MaxNameLength {
		return nil, diagErr(diagnostics.ErrLimitExceeded, nameTok, "global name %q exceeds %d characters", name, config.MaxNameLength)
	}

	return &ast.Global{
		Name: name,
		Type: t,
		Pos:  pos(n),
		Body: bodyTok,
	}, nil
}

func classifyScript(n *sexp.Node, t target.Target) (*ast.Script, error) {
	if len(n.Children) < 2 {
		return nil, diagErr(diagnostics.ErrBadScriptHeader, n, "script declaration requires a kind")
	}
	kindTok := n.Children[1]
	if !kindTok.IsLeaf() {
		return nil, diagErr(diagnostics.ErrBadScriptKind, kindTok, "script kind must be an identifier")
	}
	kind, ok := ast.ParseScriptKind(strings.ToLower(kindTok.Leaf))
	if !ok {
		return nil, diagErr(diagnostics.ErrBadScriptKind, kindTok, "unknown script kind %q", kindTok.Leaf)
	}

	var returnType types.T
	var sigIdx int
	if kind.AlwaysVoid() {
		returnType = types.Void
		sigIdx = 2
	} else {
		if len(n.Children) < 4 {
			return nil, diagErr(diagnostics.ErrBadScriptHeader, n, "script declaration requires a return type and a name")
		}
		rt, ok := typeFromLeaf(n.Children[2])
		if !ok {
			return nil, diagErr(diagnostics.ErrBadScriptHeader, n.Children[2], "unknown type %q", n.Children[2].Leaf)
		}
		returnType = rt
		sigIdx = 3
	}
	if len(n.Children) <= sigIdx {
		return nil, diagErr(diagnostics.ErrBadScriptHeader, n, "script declaration requires a name")
	}
	sigTok := n.Children[sigIdx]
	bodyForms := n.Children[sigIdx+1:]
	if len(bodyForms) == 0 {
		return nil, diagErr(diagnostics.ErrBadScriptHeader, sigTok, "script %q has no body", sigTok.Leaf)
	}

	name, params, err := classifySignature(sigTok, kind, t)
	if err != nil {
		return nil, err
	}
	if config.ReservedNames[name] {
		return nil, diagErr(diagnostics.ErrScriptNameReserved, sigTok, "script name %q is reserved", name)
	}
	if len(name) > config.MaxNameLength {
		return nil, diagErr(diagnostics.ErrLimitExceeded, sigTok, "script name %q exceeds %d characters", name, config.MaxNameLength)
	}

	return &ast.Script{
		Name:       name,
		Return:     returnType,
		Kind:       kind,
		Parameters: params,
		Pos:        pos(n),
		Body:       wrapBody(bodyForms),
	}, nil
}

// classifySignature resolves the name_or_sig token into a lowercase name
// and its (possibly empty) parameter list.
func classifySignature(sig *sexp.Node, kind ast.ScriptKind, t target.Target) (string, []ast.ScriptParameter, error) {
	if sig.IsLeaf() {
		return strings.ToLower(sig.Leaf), nil, nil
	}
	if !kind.AllowsParameters() {
		return "", nil, diagErr(diagnostics.ErrBadScriptHeader, sig, "only static and stub scripts may declare parameters")
	}
	if t.MaxScriptParameters() <= 0 {
		return "", nil, diagErr(diagnostics.ErrBadScriptHeader, sig, "compile target does not support script parameters")
	}
	if len(sig.Children) == 0 {
		return "", nil, diagErr(diagnostics.ErrBadScriptHeader, sig, "empty script signature")
	}
	nameTok := sig.Children[0]
	if !nameTok.IsLeaf() {
		return "", nil, diagErr(diagnostics.ErrBadScriptHeader, nameTok, "script name must be an identifier")
	}
	paramToks := sig.Children[1:]
	if len(paramToks) > t.MaxScriptParameters() {
		return "", nil, diagErr(diagnostics.ErrLimitExceeded, sig, "script declares %d parameters, target allows at most %d", len(paramToks), t.MaxScriptParameters())
	}
	params := make([]ast.ScriptParameter, 0, len(paramToks))
	seen := make(map[string]bool, len(paramToks))
	for _, p := range paramToks {
		if p.IsLeaf() || len(p.Children) != 2 {
			return "", nil, diagErr(diagnostics.ErrBadScriptHeader, p, "script parameter must be (type name)")
		}
		pt, ok := typeFromLeaf(p.Children[0])
		if !ok {
			return "", nil, diagErr(diagnostics.ErrBadScriptHeader, p.Children[0], "unknown type %q", p.Children[0].Leaf)
		}
		if !p.Children[1].IsLeaf() {
			return "", nil, diagErr(diagnostics.ErrBadScriptHeader, p.Children[1], "script parameter name must be an identifier")
		}
		pname := strings.ToLower(p.Children[1].Leaf)
		if seen[pname] {
			return "", nil, diagErr(diagnostics.ErrDuplicateDefinition, p.Children[1], "duplicate parameter name %q", pname)
		}
		seen[pname] = true
		params = append(params, ast.ScriptParameter{Name: pname, Type: pt, Pos: pos(p)})
	}
	return strings.ToLower(nameTok.Leaf), params, nil
}

func typeFromLeaf(n *sexp.Node) (types.T, bool) {
	if !n.IsLeaf() {
		return 0, false
	}
	return types.Parse(strings.ToLower(n.Leaf))
}

// wrapBody combines one or more body forms into a single unanalyzed
// s-expression root: a lone form passes through unchanged; multiple forms
// are folded under an implicit `begin`, since the analyzer only ever
// walks one root expression per script/global.
func wrapBody(forms []*sexp.Node) *sexp.Node {
	if len(forms) == 1 {
		return forms[0]
	}
	beginHead := &sexp.Node{Leaf: config.BeginFuncName, Pos: forms[0].Pos}
	children := append([]*sexp.Node{beginHead}, forms...)
	return &sexp.Node{Children: children, Pos: forms[0].Pos}
}

func pos(n *sexp.Node) ast.Pos {
	return ast.Pos{File: n.Pos.File, Line: n.Pos.Line, Column: n.Pos.Column}
}

func diagErr(code diagnostics.ErrorCode, n *sexp.Node, format string, args ...interface{}) error {
	p := n.Pos
	return diagnostics.New(code, p.File, p.Line, p.Column, format, args...)
}

// Package analyzer implements the expression analyzer, the heart of the
// compiler: a single recursive function that turns a parsed S-expression
// into a typed ast.Node, resolving identifiers against the symbol
// environment, unifying passthrough calls, checking arities and
// conversions, and parsing literals.
//
// The recursion is split across a few files by concern: analyzer.go
// holds the entry point and the leaf case, call.go the call case,
// cond.go the `cond` desugaring, and literal.go the literal-parsing
// pass.
package analyzer

import (
	"strings"

	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/config"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/sexp"
	"github.com/haloscript/hsc/internal/symbols"
	"github.com/haloscript/hsc/internal/target"
	"github.com/haloscript/hsc/internal/types"
)

// Analyzer holds the per-compile state the recursion needs: the name
// environment, the active target, and the session's warning list. It is
// not safe for concurrent use: the compiler is single-threaded and
// synchronous.
type Analyzer struct {
	Env      *symbols.Environment
	Target   target.Target
	Warnings []diagnostics.Warning
}

// New builds an Analyzer over an already-constructed environment.
func New(env *symbols.Environment, t target.Target) *Analyzer {
	return &Analyzer{Env: env, Target: t}
}

func (a *Analyzer) warn(w diagnostics.Warning) {
	a.Warnings = append(a.Warnings, w)
}

func posOf(n *sexp.Node) ast.Pos {
	return ast.Pos{File: n.Pos.File, Line: n.Pos.Line, Column: n.Pos.Column}
}

func errAt(code diagnostics.ErrorCode, n *sexp.Node, format string, args ...interface{}) error {
	p := n.Pos
	return diagnostics.New(code, p.File, p.Line, p.Column, format, args...)
}

func errAtPos(code diagnostics.ErrorCode, p ast.Pos, format string, args ...interface{}) error {
	return diagnostics.New(code, p.File, p.Line, p.Column, format, args...)
}

// AnalyzeRoot analyzes a script or global's body. The body is wrapped in
// a synthetic `begin` before recursing: this routes a bare literal root
// expression (e.g. `(global short x 5)`'s `5`) through the same
// argument-pass/literal-parsing machinery a call argument gets, rather
// than special-casing "a literal directly at the root". `begin`'s
// passthrough_last return means this is transparent for any non-literal
// root, and the post-pass's begin-collapsing removes the wrapper from
// the final tree either way.
func (a *Analyzer) AnalyzeRoot(body *sexp.Node, expected types.T, locals symbols.Locals) (*ast.Node, error) {
	wrapped := &sexp.Node{
		Children: []*sexp.Node{{Leaf: config.BeginFuncName, Pos: body.Pos}, body},
		Pos:      body.Pos,
	}
	return a.Analyze(wrapped, expected, locals)
}

// Analyze is the entry point: given a token, an expected type, and the
// enclosing script's locals (empty for a global's body), it returns a
// typed Node or the first error encountered.
func (a *Analyzer) Analyze(n *sexp.Node, expected types.T, locals symbols.Locals) (*ast.Node, error) {
	if n.IsLeaf() {
		return a.analyzeLeaf(n, expected, locals)
	}
	if len(n.Children) == 0 {
		return nil, errAt(diagnostics.ErrEmptyBlock, n, "empty block is not a valid expression")
	}
	return a.analyzeCall(n, expected, locals)
}

// analyzeLeaf resolves a single token against the locals, then the
// globals, falling back to an unresolved static literal.
func (a *Analyzer) analyzeLeaf(n *sexp.Node, expected types.T, locals symbols.Locals) (*ast.Node, error) {
	if n.Quoted {
		// A quoted string is always a literal: no case-folding, no
		// identifier resolution. String literals and identifiers are
		// distinct token shapes.
		return &ast.Node{
			Kind:       ast.PrimitiveStatic,
			ValueType:  expected,
			StringData: n.Leaf,
			Quoted:     true,
			Pos:        posOf(n),
		}, nil
	}

	text := n.Leaf
	lower := strings.ToLower(text)
	if lower != text && config.WarnOnCaseChange {
		a.warn(diagnostics.NewWarning(diagnostics.WarnCaseChanged, n.Pos.File, n.Pos.Line, n.Pos.Column,
			"identifier %q normalized to lowercase", text))
	}

	if vt, _, ok := locals.Lookup(lower); ok {
		if expected != types.Passthrough && !types.CanConvert(vt, expected) {
			return nil, errAt(diagnostics.ErrConvertError, n, "parameter %q of type %s cannot be used where %s is expected", lower, vt, expected)
		}
		return &ast.Node{Kind: ast.PrimitiveLocal, ValueType: vt, StringData: lower, Pos: posOf(n)}, nil
	}

	if v, ok := a.Env.LookupGlobal(lower); ok {
		vt := v.Type()
		if expected != types.Passthrough && !types.CanConvert(vt, expected) {
			return nil, errAt(diagnostics.ErrConvertError, n, "global %q of type %s cannot be used where %s is expected", lower, vt, expected)
		}
		return &ast.Node{Kind: ast.PrimitiveGlobal, ValueType: vt, StringData: lower, Pos: posOf(n)}, nil
	}

	// Not a known name: a static literal, value type resolved and parsed
	// later by the call site. Original casing is preserved here; the
	// caller re-lowercases unless its parameter allows uppercase.
	return &ast.Node{Kind: ast.PrimitiveStatic, ValueType: expected, StringData: text, Pos: posOf(n)}, nil
}

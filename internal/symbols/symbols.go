// Package symbols builds the per-compile name environment: a union of
// visible-for-target catalog entries and user scripts/globals, with user
// definitions silently shadowing builtins of the same name. Lookup is
// case-insensitive because callers lowercase names upstream. The
// environment has no nested lexical scopes to chain, only the fixed
// catalog/user-script/user-global/local split.
package symbols

import (
	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/types"
)

// Callable is a function resolvable in a call position: either an engine
// builtin or a user script. Exactly one of Engine/Script is non-nil.
type Callable struct {
	Engine *catalog.Function
	Script *ast.Script
}

// Return is the callable's declared return type.
func (c Callable) Return() types.T {
	if c.Engine != nil {
		return c.Engine.Return
	}
	return c.Script.Return
}

// IsEngine reports whether this callable is a catalog builtin.
func (c Callable) IsEngine() bool {
	return c.Engine != nil
}

// MinArity and MaxArity mirror catalog.Function for both callable shapes;
// a user script has no optional/variadic tail, so its arity is fixed to
// its parameter count.
func (c Callable) MinArity() int {
	if c.Engine != nil {
		return c.Engine.MinArity()
	}
	return len(c.Script.Parameters)
}

func (c Callable) MaxArity() (max int, unbounded bool) {
	if c.Engine != nil {
		return c.Engine.MaxArity()
	}
	return len(c.Script.Parameters), false
}

// ParamAt returns the declared type and flags of the i-th parameter.
func (c Callable) ParamAt(i int) (catalog.Param, bool) {
	if c.Engine != nil {
		return c.Engine.ParamAt(i)
	}
	if i < 0 || i >= len(c.Script.Parameters) {
		return catalog.Param{}, false
	}
	return catalog.Param{Type: c.Script.Parameters[i].Type}, true
}

// Variable is a name resolvable in a value position: a user or engine
// global.
type Variable struct {
	UserGlobal   *ast.Global
	EngineGlobal *catalog.Global
}

func (v Variable) Type() types.T {
	if v.UserGlobal != nil {
		return v.UserGlobal.Type
	}
	return v.EngineGlobal.Type
}

func (v Variable) IsUser() bool {
	return v.UserGlobal != nil
}

// Environment is the name table built once per compile.
// Locals are not part of Environment: they are passed alongside it into
// each analyzer recursion and scoped to a single script body.
type Environment struct {
	functions map[string]Callable
	globals   map[string]Variable
}

// LookupFunction resolves a lowercase call-position name.
func (e *Environment) LookupFunction(name string) (Callable, bool) {
	c, ok := e.functions[name]
	return c, ok
}

// LookupGlobal resolves a lowercase value-position name among globals.
func (e *Environment) LookupGlobal(name string) (Variable, bool) {
	v, ok := e.globals[name]
	return v, ok
}

// HasFunction reports whether name resolves to any callable, engine or
// user. Used by the analyzer's literal-parse-failure diagnostic to offer
// a "did you mean (name)?" suggestion.
func (e *Environment) HasFunction(name string) bool {
	_, ok := e.functions[name]
	return ok
}

// PassthroughLast mirrors catalog.Function.PassthroughLast; user scripts
// never carry the flag.
func (c Callable) PassthroughLast() bool {
	return c.Engine != nil && c.Engine.PassthroughLast
}

// NumberPassthrough mirrors catalog.Function.NumberPassthrough.
func (c Callable) NumberPassthrough() bool {
	return c.Engine != nil && c.Engine.NumberPassthrough
}

// Inequality mirrors catalog.Function.Inequality.
func (c Callable) Inequality() bool {
	return c.Engine != nil && c.Engine.Inequality
}

// Name returns the script's name for a user callable, or the catalog
// entry's name for an engine callable.
func (c Callable) Name() string {
	if c.Script != nil {
		return c.Script.Name
	}
	if c.Engine != nil {
		return c.Engine.Name
	}
	return ""
}

// Locals is a script's parameter list, scoped to the analysis of its own
// body: passed separately to the analyzer so that their scope ends at
// the script boundary.
type Locals struct {
	params []ast.ScriptParameter
}

func NewLocals(params []ast.ScriptParameter) Locals {
	return Locals{params: params}
}

// Lookup resolves a lowercase name among the script's own parameters,
// returning its declared type and 0-based position.
func (l Locals) Lookup(name string) (types.T, int, bool) {
	for i, p := range l.params {
		if p.Name == name {
			return p.Type, i, true
		}
	}
	return 0, 0, false
}

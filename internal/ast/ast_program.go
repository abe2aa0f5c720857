package ast

import (
	"github.com/haloscript/hsc/internal/sexp"
	"github.com/haloscript/hsc/internal/types"
)

// ScriptKind is one of the five script shapes.
type ScriptKind int

const (
	Startup ScriptKind = iota
	Dormant
	Continuous
	Static
	Stub
)

var scriptKindNames = map[ScriptKind]string{
	Startup:    "startup",
	Dormant:    "dormant",
	Continuous: "continuous",
	Static:     "static",
	Stub:       "stub",
}

func (k ScriptKind) String() string {
	if s, ok := scriptKindNames[k]; ok {
		return s
	}
	return "?"
}

// ParseScriptKind resolves a lowercase script-kind keyword.
func ParseScriptKind(name string) (ScriptKind, bool) {
	for k, n := range scriptKindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// AlwaysVoid reports whether scripts of this kind always return void and
// carry no return-type token.
func (k ScriptKind) AlwaysVoid() bool {
	return k == Startup || k == Dormant || k == Continuous
}

// AllowsParameters reports whether scripts of this kind may declare
// parameters. Only Static and Stub scripts may.
func (k ScriptKind) AllowsParameters() bool {
	return k == Static || k == Stub
}

// ScriptParameter is one parameter of a Static/Stub script, exposed as a
// local variable within the body.
type ScriptParameter struct {
	Name string
	Type types.T
	Pos  Pos
}

// Script is a user-defined callable.
type Script struct {
	Name       string
	Return     types.T
	Kind       ScriptKind
	Parameters []ScriptParameter
	Body       *sexp.Node // unanalyzed body, set by the classifier
	Root       *Node      // analyzed body, set by internal/analyzer
	Pos        Pos

	// Index is the dense sequence index assigned by the post-pass.
	HasIndex bool
	Index    int16
}

// ParamIndex returns the 0-based position of the parameter named name, or
// -1 if there is none.
func (s *Script) ParamIndex(name string) int {
	for i, p := range s.Parameters {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Global is a user-defined named variable with an initializer expression.
type Global struct {
	Name string
	Type types.T
	Body *sexp.Node // unanalyzed body, set by the classifier
	Root *Node      // analyzed body, set by internal/analyzer
	Pos  Pos

	// Index is the dense sequence index assigned by the post-pass.
	HasIndex bool
	Index    int32
}

// Program is the classifier's output: every top-level form recognized,
// with headers parsed but bodies unanalyzed. The expression analyzer
// fills in each Script/Global's Root in place.
type Program struct {
	Scripts []*Script
	Globals []*Global
}

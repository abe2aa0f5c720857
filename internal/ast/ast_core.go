// Package ast defines the analyzed node graph: a closed, tagged-union
// Node produced by internal/analyzer, refined in place by
// internal/postpass, and drained by internal/emitter. The graph has a
// small, fixed set of shapes, so a single struct with a Kind tag and an
// exhaustive switch in callers is the right fit, rather than a
// Visitor-dispatched class hierarchy.
package ast

import "github.com/haloscript/hsc/internal/types"

// Kind tags an analyzed Node's shape.
type Kind int

const (
	// PrimitiveStatic is an unresolved or resolved literal value.
	PrimitiveStatic Kind = iota
	// PrimitiveLocal references a script parameter.
	PrimitiveLocal
	// PrimitiveGlobal references a user or engine global.
	PrimitiveGlobal
	// Call is a function call, engine builtin or user script.
	Call
)

func (k Kind) String() string {
	switch k {
	case PrimitiveStatic:
		return "static"
	case PrimitiveLocal:
		return "local"
	case PrimitiveGlobal:
		return "global"
	case Call:
		return "call"
	default:
		return "?"
	}
}

// Data holds an analyzed node's resolved payload. At most one field is
// meaningful at a time, selected by the owning Node's Kind and stage of
// processing; which one is live is documented per field.
type Data struct {
	// Boolean/Short/Long/Real hold a parsed literal value for a
	// PrimitiveStatic node once literal parsing has run. HasX
	// discriminates "not a numeric/boolean literal" from "parsed to the
	// zero value".
	HasBoolean bool
	Boolean    bool
	HasShort   bool
	Short      int16
	HasLong    bool
	Long       int32
	HasReal    bool
	Real       float32

	// LocalIndex is a PrimitiveLocal node's 0-based parameter position,
	// assigned by the post-pass.
	HasLocalIndex bool
	LocalIndex    int32

	// GlobalIndex is a PrimitiveGlobal node's dense global index, assigned
	// by the post-pass. Absent for engine globals, which carry no data.
	HasGlobalIndex bool
	GlobalIndex    int32

	// ScriptIndex is set on a PrimitiveStatic node of value type
	// types.Script (a script-name literal) once the post-pass resolves it.
	HasScriptIndex bool
	ScriptIndex    int16

	// NodeOffset is a Call node's emitted-form payload: the index of its
	// synthetic FunctionName primitive in the flattened array. Populated
	// only by internal/emitter.
	HasNodeOffset bool
	NodeOffset    int
}

// Pos is a source location carried by every token, analyzed node, and
// emitted node.
type Pos struct {
	File   string
	Line   int
	Column int
}

// Node is one analyzed expression element.
type Node struct {
	Kind      Kind
	ValueType types.T

	// StringData is the literal text for a primitive, or the function
	// name for a call.
	StringData string

	// Quoted marks a PrimitiveStatic node that came from a "..." token
	// rather than a bare identifier-shaped literal. Case normalization
	// never applies to it, regardless of the matched parameter's
	// AllowUppercase flag.
	Quoted bool

	Data Data

	// Index is: for an engine call, the catalog availability index for
	// the current target; for a script call, the script's sequence
	// index; for the variable operand of `set`, the sentinel 0xFFFF
	// (config.SetIndexSentinel). Call indices are assigned by the
	// post-pass; the `set` sentinel is written by the analyzer.
	HasIndex bool
	Index    uint16

	// IsEngineCall distinguishes a builtin call (true) from a user script
	// call (false). Meaningful only when Kind == Call.
	IsEngineCall bool

	// Parameters holds a call's argument nodes in source order.
	Parameters []*Node

	Pos Pos
}

// IsPrimitive reports whether n is one of the three primitive kinds.
func (n *Node) IsPrimitive() bool {
	return n.Kind == PrimitiveStatic || n.Kind == PrimitiveLocal || n.Kind == PrimitiveGlobal
}

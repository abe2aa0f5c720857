// Package emitter flattens the analyzed, post-pass-finished script and
// global trees into a single packed node array with stable indices,
// injecting a synthetic FunctionName primitive before each call's
// arguments and chaining siblings via next-node indices.
package emitter

import (
	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/types"
)

// Node is the emitted (external) node shape: an ast.Node's fields plus
// the sibling-chaining Next index the flat array adds.
type Node struct {
	ValueType    types.T
	Kind         ast.Kind
	StringData   string
	Data         ast.Data
	IsEngineCall bool
	HasIndex     bool
	Index        uint16
	HasNext      bool
	Next         int
	Pos          ast.Pos
}

// Emitter accumulates one compile's worth of emitted nodes across every
// script and global root into a single contiguous array.
type Emitter struct {
	nodes []Node
}

func New() *Emitter {
	return &Emitter{}
}

// Nodes returns the accumulated flat array.
func (e *Emitter) Nodes() []Node {
	return e.nodes
}

// EmitScript flattens a script's analyzed root and returns its first-node
// index into the shared array.
func (e *Emitter) EmitScript(s *ast.Script) int {
	return e.flatten(s.Root)
}

// EmitGlobal flattens a global's analyzed root and returns its first-node
// index into the shared array.
func (e *Emitter) EmitGlobal(g *ast.Global) int {
	return e.flatten(g.Root)
}

func (e *Emitter) append(n *ast.Node) int {
	e.nodes = append(e.nodes, Node{
		ValueType:    n.ValueType,
		Kind:         n.Kind,
		StringData:   n.StringData,
		Data:         n.Data,
		IsEngineCall: n.IsEngineCall,
		HasIndex:     n.HasIndex,
		Index:        n.Index,
		Pos:          n.Pos,
	})
	return len(e.nodes) - 1
}

func (e *Emitter) setNext(at, next int) {
	e.nodes[at].HasNext = true
	e.nodes[at].Next = next
}

// flatten applies the per-node-kind flattening rule.
func (e *Emitter) flatten(n *ast.Node) int {
	if n.Kind != ast.Call {
		return e.append(n)
	}

	callIdx := e.append(n)
	synthetic := &ast.Node{
		Kind:       ast.PrimitiveStatic,
		ValueType:  types.FunctionName,
		StringData: n.StringData,
		Pos:        n.Pos,
	}
	synthIdx := e.append(synthetic)
	e.nodes[callIdx].Data.HasNodeOffset = true
	e.nodes[callIdx].Data.NodeOffset = synthIdx

	prev := synthIdx
	for _, arg := range n.Parameters {
		argIdx := e.flatten(arg)
		e.setNext(prev, argIdx)
		prev = argIdx
	}
	return callIdx
}

package emitter

import (
	"testing"

	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/types"
)

func TestFlattenPrimitive(t *testing.T) {
	e := New()
	idx := e.EmitGlobal(&ast.Global{Root: &ast.Node{Kind: ast.PrimitiveStatic, ValueType: types.Short, Data: ast.Data{HasShort: true, Short: 5}}})
	if idx != 0 {
		t.Fatalf("first-node index = %d, want 0", idx)
	}
	nodes := e.Nodes()
	if len(nodes) != 1 || nodes[0].Data.Short != 5 {
		t.Errorf("unexpected nodes: %+v", nodes)
	}
}

func TestFlattenCallInjectsFunctionNamePrimitive(t *testing.T) {
	e := New()
	call := &ast.Node{Kind: ast.Call, StringData: "print", ValueType: types.Void,
		Parameters: []*ast.Node{{Kind: ast.PrimitiveStatic, ValueType: types.String, StringData: "hi"}}}
	first := e.EmitGlobal(&ast.Global{Root: call})
	nodes := e.Nodes()

	if first != 0 {
		t.Fatalf("first-node index = %d, want 0", first)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3 (call, function name, argument)", len(nodes))
	}
	callNode := nodes[0]
	if !callNode.Data.HasNodeOffset || callNode.Data.NodeOffset != 1 {
		t.Errorf("call node offset = %v, %d; want true, 1", callNode.Data.HasNodeOffset, callNode.Data.NodeOffset)
	}
	fnNameNode := nodes[1]
	if fnNameNode.ValueType != types.FunctionName || fnNameNode.StringData != "print" {
		t.Errorf("unexpected synthetic function name node: %+v", fnNameNode)
	}
	if !fnNameNode.HasNext || fnNameNode.Next != 2 {
		t.Errorf("function name node should chain to argument at index 2, got HasNext=%v Next=%d", fnNameNode.HasNext, fnNameNode.Next)
	}
	argNode := nodes[2]
	if argNode.StringData != "hi" {
		t.Errorf("unexpected argument node: %+v", argNode)
	}
	if argNode.HasNext {
		t.Error("the last argument should not chain to a next node")
	}
}

func TestFlattenMultipleArgumentsChained(t *testing.T) {
	e := New()
	call := &ast.Node{Kind: ast.Call, StringData: "+", ValueType: types.Real, Parameters: []*ast.Node{
		{Kind: ast.PrimitiveStatic, ValueType: types.Real, Data: ast.Data{HasReal: true, Real: 1}},
		{Kind: ast.PrimitiveStatic, ValueType: types.Real, Data: ast.Data{HasReal: true, Real: 2}},
		{Kind: ast.PrimitiveStatic, ValueType: types.Real, Data: ast.Data{HasReal: true, Real: 3}},
	}}
	e.EmitGlobal(&ast.Global{Root: call})
	nodes := e.Nodes()
	// nodes: [0]=call [1]=fnname [2]=arg1 [3]=arg2 [4]=arg3
	if len(nodes) != 5 {
		t.Fatalf("got %d nodes, want 5", len(nodes))
	}
	if !nodes[1].HasNext || nodes[1].Next != 2 {
		t.Errorf("fnname should chain to arg1 at index 2, got %+v", nodes[1])
	}
	if !nodes[2].HasNext || nodes[2].Next != 3 {
		t.Errorf("arg1 should chain to arg2 at index 3, got %+v", nodes[2])
	}
	if !nodes[3].HasNext || nodes[3].Next != 4 {
		t.Errorf("arg2 should chain to arg3 at index 4, got %+v", nodes[3])
	}
	if nodes[4].HasNext {
		t.Error("arg3 is the last argument and should not chain further")
	}
}

func TestFlattenNestedCall(t *testing.T) {
	e := New()
	inner := &ast.Node{Kind: ast.Call, StringData: "game_difficulty_get", ValueType: types.GameDifficulty}
	outer := &ast.Node{Kind: ast.Call, StringData: "print", ValueType: types.Void, Parameters: []*ast.Node{inner}}
	e.EmitGlobal(&ast.Global{Root: outer})
	nodes := e.Nodes()
	// [0]=outer call, [1]=outer fnname, [2]=inner call, [3]=inner fnname
	if len(nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(nodes))
	}
	if nodes[2].StringData != "game_difficulty_get" {
		t.Errorf("unexpected inner call node: %+v", nodes[2])
	}
	if !nodes[2].Data.HasNodeOffset || nodes[2].Data.NodeOffset != 3 {
		t.Errorf("inner call's offset should point at its own fnname node (index 3): %+v", nodes[2])
	}
}

func TestEmitScriptAndGlobalShareArray(t *testing.T) {
	e := New()
	gIdx := e.EmitGlobal(&ast.Global{Root: &ast.Node{Kind: ast.PrimitiveStatic, ValueType: types.Short}})
	sIdx := e.EmitScript(&ast.Script{Root: &ast.Node{Kind: ast.PrimitiveStatic, ValueType: types.Void}})
	if gIdx != 0 || sIdx != 1 {
		t.Errorf("EmitGlobal/EmitScript = %d, %d; want 0, 1 (shared contiguous array)", gIdx, sIdx)
	}
	if len(e.Nodes()) != 2 {
		t.Errorf("got %d nodes, want 2", len(e.Nodes()))
	}
}

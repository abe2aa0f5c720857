package postpass

import (
	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/target"
	"github.com/haloscript/hsc/internal/types"
)

// assignIndices walks every remaining script/global tree, resolving each
// FunctionCall, Primitive(Script literal), Primitive(Local), and
// Primitive(Global) node's index/data fields against the now-dense
// script and global index tables.
func assignIndices(cat *catalog.Catalog, t target.Target, prog *ast.Program) ([]diagnostics.Warning, error) {
	scriptIdx := make(map[string]int16, len(prog.Scripts))
	for i, s := range prog.Scripts {
		s.Index = int16(i)
		s.HasIndex = true
		scriptIdx[s.Name] = s.Index
	}
	globalIdx := make(map[string]int32, len(prog.Globals))
	for i, g := range prog.Globals {
		g.Index = int32(i)
		g.HasIndex = true
		globalIdx[g.Name] = g.Index
	}

	var warnings []diagnostics.Warning
	walk := func(n *ast.Node, script *ast.Script) error {
		var visit func(n *ast.Node) error
		visit = func(n *ast.Node) error {
			if n == nil {
				return nil
			}
			switch n.Kind {
			case ast.Call:
				if n.IsEngineCall {
					fn, ok := cat.LookupFunction(n.StringData)
					if !ok {
						return diagErrAtNode(diagnostics.ErrUnknownFunction, n, "internal: engine call %q lost its catalog entry", n.StringData)
					}
					idx, ok := fn.AvailabilityIndex(t)
					if !ok {
						return diagErrAtNode(diagnostics.ErrUnknownFunction, n, "%q is not available under the selected target", n.StringData)
					}
					n.HasIndex, n.Index = true, idx
					if fn.DeprecatedSince[t] {
						warnings = append(warnings, diagnostics.NewWarning(diagnostics.WarnDeprecatedBuiltin,
							n.Pos.File, n.Pos.Line, n.Pos.Column, "%q is deprecated under the selected target", n.StringData))
					}
				} else {
					idx, ok := scriptIdx[n.StringData]
					if !ok {
						return diagErrAtNode(diagnostics.ErrUnknownScript, n, "script %q no longer exists after stub replacement", n.StringData)
					}
					n.HasIndex, n.Index = true, uint16(idx)
				}
				for _, p := range n.Parameters {
					if err := visit(p); err != nil {
						return err
					}
				}
			case ast.PrimitiveStatic:
				if n.ValueType == types.Script {
					idx, ok := scriptIdx[n.StringData]
					if !ok {
						return diagErrAtNode(diagnostics.ErrUnknownScript, n, "script %q no longer exists after stub replacement", n.StringData)
					}
					n.Data.HasScriptIndex, n.Data.ScriptIndex = true, idx
				}
			case ast.PrimitiveLocal:
				pos := script.ParamIndex(n.StringData)
				if pos < 0 {
					return diagErrAtNode(diagnostics.ErrUnknownIdentifier, n, "internal: local %q has no matching parameter", n.StringData)
				}
				n.Data.HasLocalIndex, n.Data.LocalIndex = true, int32(pos)
			case ast.PrimitiveGlobal:
				if idx, ok := globalIdx[n.StringData]; ok {
					n.Data.HasGlobalIndex, n.Data.GlobalIndex = true, idx
				}
			}
			return nil
		}
		return visit(n)
	}

	for _, s := range prog.Scripts {
		if err := walk(s.Root, s); err != nil {
			return nil, err
		}
	}
	for _, g := range prog.Globals {
		if err := walk(g.Root, nil); err != nil {
			return nil, err
		}
	}

	warnings = append(warnings, uninitializedGlobalWarnings(prog, globalIdx)...)
	return warnings, nil
}

// uninitializedGlobalWarnings flags a global whose initializer reads
// another global at or after its own declaration index: positions
// i..N-1, inclusive of itself, are not yet initialized at that point.
func uninitializedGlobalWarnings(prog *ast.Program, globalIdx map[string]int32) []diagnostics.Warning {
	var warnings []diagnostics.Warning
	for i, g := range prog.Globals {
		var visit func(n *ast.Node)
		visit = func(n *ast.Node) {
			if n == nil {
				return
			}
			if n.Kind == ast.PrimitiveGlobal {
				if idx, ok := globalIdx[n.StringData]; ok && idx >= int32(i) {
					warnings = append(warnings, diagnostics.NewWarning(diagnostics.WarnUninitializedRef,
						n.Pos.File, n.Pos.Line, n.Pos.Column,
						"global %q is referenced before it is guaranteed initialized", n.StringData))
				}
			}
			for _, p := range n.Parameters {
				visit(p)
			}
		}
		visit(g.Root)
	}
	return warnings
}

// Package postpass implements the analyzed-tree cleanup and linking
// stage that runs after every script and global has an
// analyzed root and before the emitter sees the program. It collapses
// single-argument `begin` calls, resolves stub scripts against their
// static replacements, rejects duplicate names and oversized programs,
// and assigns the dense indices the emitter and the engine runtime rely
// on.
package postpass

import (
	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/config"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/target"
)

// Run executes the full post-pass over prog in place and returns the
// warnings it produced (in addition to any the analyzer already
// collected).
func Run(cat *catalog.Catalog, t target.Target, prog *ast.Program) ([]diagnostics.Warning, error) {
	for _, s := range prog.Scripts {
		s.Root = collapseBegin(s.Root)
	}
	for _, g := range prog.Globals {
		g.Root = collapseBegin(g.Root)
	}

	scripts, err := replaceStubs(prog.Scripts)
	if err != nil {
		return nil, err
	}
	prog.Scripts = scripts

	if err := checkDuplicatesAndLimits(prog); err != nil {
		return nil, err
	}

	return assignIndices(cat, t, prog)
}

func checkDuplicatesAndLimits(prog *ast.Program) error {
	seenScripts := make(map[string]bool, len(prog.Scripts))
	for _, s := range prog.Scripts {
		if seenScripts[s.Name] {
			return diagErrAtScript(diagnostics.ErrDuplicateDefinition, s, "duplicate script name %q", s.Name)
		}
		seenScripts[s.Name] = true
	}
	if len(prog.Scripts) > config.MaxScripts {
		offender := prog.Scripts[config.MaxScripts]
		return diagErrAtScript(diagnostics.ErrLimitExceeded, offender, "more than %d scripts declared", config.MaxScripts)
	}

	seenGlobals := make(map[string]*ast.Global, len(prog.Globals))
	for _, g := range prog.Globals {
		if _, ok := seenGlobals[g.Name]; ok {
			return diagErrAtGlobal(diagnostics.ErrDuplicateDefinition, g, "duplicate global name %q", g.Name)
		}
		seenGlobals[g.Name] = g
	}
	if len(prog.Globals) > config.MaxGlobals {
		offender := prog.Globals[config.MaxGlobals]
		return diagErrAtGlobal(diagnostics.ErrLimitExceeded, offender, "more than %d globals declared", config.MaxGlobals)
	}
	return nil
}

func diagErrAtNode(code diagnostics.ErrorCode, n *ast.Node, format string, args ...interface{}) error {
	if n == nil {
		return diagnostics.New(code, "", 0, 0, format, args...)
	}
	return diagnostics.New(code, n.Pos.File, n.Pos.Line, n.Pos.Column, format, args...)
}

func diagErrAtScript(code diagnostics.ErrorCode, s *ast.Script, format string, args ...interface{}) error {
	return diagnostics.New(code, s.Pos.File, s.Pos.Line, s.Pos.Column, format, args...)
}

func diagErrAtGlobal(code diagnostics.ErrorCode, g *ast.Global, format string, args ...interface{}) error {
	return diagnostics.New(code, g.Pos.File, g.Pos.Line, g.Pos.Column, format, args...)
}

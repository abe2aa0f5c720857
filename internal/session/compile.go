package session

import (
	"github.com/haloscript/hsc/internal/analyzer"
	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/classifier"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/emitter"
	"github.com/haloscript/hsc/internal/postpass"
	"github.com/haloscript/hsc/internal/sexp"
	"github.com/haloscript/hsc/internal/symbols"
)

// ScriptRecord pairs a compiled script's own declaration with the index
// of its first emitted node.
type ScriptRecord struct {
	Script    *ast.Script
	FirstNode int
}

// GlobalRecord pairs a compiled global's own declaration with the index
// of its first emitted node.
type GlobalRecord struct {
	Global    *ast.Global
	FirstNode int
}

// Result is the full output of one successful compile: the file name
// table in read order, every script and global with its first-node
// index into the shared flat array, that array itself, and the combined
// warnings collected by the analyzer and the post-pass.
type Result struct {
	SessionID string
	Files     []string
	Scripts   []ScriptRecord
	Globals   []GlobalRecord
	Nodes     []emitter.Node
	Warnings  []diagnostics.Warning
}

// CompileScriptData runs the full pipeline once over every file read so
// far: classify, build the name environment, analyze every global and
// script body, run the post-pass, then flatten into the emitted array.
// Any error at any stage aborts immediately with no partial Result.
func (s *Session) CompileScriptData() (*Result, error) {
	merged := s.mergedForest()

	prog, err := classifier.Classify(merged, s.Target)
	if err != nil {
		return nil, err
	}

	env := symbols.Build(s.Catalog, s.Target, prog)
	an := analyzer.New(env, s.Target)

	for _, g := range prog.Globals {
		root, err := an.AnalyzeRoot(g.Body, g.Type, symbols.NewLocals(nil))
		if err != nil {
			return nil, err
		}
		g.Root = root
	}
	for _, sc := range prog.Scripts {
		root, err := an.AnalyzeRoot(sc.Body, sc.Return, symbols.NewLocals(sc.Parameters))
		if err != nil {
			return nil, err
		}
		sc.Root = root
	}

	warnings := append([]diagnostics.Warning(nil), an.Warnings...)

	ppWarnings, err := postpass.Run(s.Catalog, s.Target, prog)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, ppWarnings...)

	em := emitter.New()
	scripts := make([]ScriptRecord, len(prog.Scripts))
	for i, sc := range prog.Scripts {
		scripts[i] = ScriptRecord{Script: sc, FirstNode: em.EmitScript(sc)}
	}
	globals := make([]GlobalRecord, len(prog.Globals))
	for i, g := range prog.Globals {
		globals[i] = GlobalRecord{Global: g, FirstNode: em.EmitGlobal(g)}
	}

	fileNames := make([]string, len(s.files))
	for i, f := range s.files {
		fileNames[i] = f.name
	}

	return &Result{
		SessionID: s.ID.String(),
		Files:     fileNames,
		Scripts:   scripts,
		Globals:   globals,
		Nodes:     em.Nodes(),
		Warnings:  warnings,
	}, nil
}

func (s *Session) mergedForest() []*sexp.Node {
	var out []*sexp.Node
	for _, f := range s.files {
		out = append(out, f.forest...)
	}
	return out
}

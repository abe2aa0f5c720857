// Package hsc is the stable, embeddable front door to the compiler: a
// Session a host opens once per compile, feeds source files to, and
// drains into a flat, serialization-friendly CompiledOutput.
//
// Everything under internal/ is free to change shape; this package is
// the only one a host program should import.
package hsc

import (
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/diagnostics"
	"github.com/haloscript/hsc/internal/emitter"
	"github.com/haloscript/hsc/internal/encoding"
	"github.com/haloscript/hsc/internal/session"
	"github.com/haloscript/hsc/internal/target"
	"github.com/haloscript/hsc/internal/types"
)

// Target re-exports the compile target enum so a host never has to
// import internal/target directly.
type Target = target.Target

const (
	MCCCEA    = target.MCCCEA
	XboxNTSC  = target.XboxNTSC
	GBXRetail = target.GBXRetail
	GBXCustom = target.GBXCustom
	GBXDemo   = target.GBXDemo
)

// ParseTarget resolves a target by its lowercase name (e.g. "gbx-custom").
func ParseTarget(name string) (Target, bool) { return target.Parse(name) }

// Encoding re-exports the source/output byte encoding selector.
type Encoding = encoding.Encoding

const (
	UTF8        = encoding.UTF8
	Windows1252 = encoding.Windows1252
)

// Type re-exports the value-type enum used on script/global/parameter
// records below.
type Type = types.T

// Diagnostic is the host-facing shape of one fatal error or warning:
// file name, 1-based line/column, severity, and message.
type Diagnostic = diagnostics.Record

// Catalog holds the engine builtin/global definitions a Session compiles
// against. Build one with DefaultCatalog or LoadCatalog and reuse it
// across many Sessions; it is immutable after construction.
type Catalog struct {
	inner *catalog.Catalog
}

// DefaultCatalog loads the catalog bundled with this module.
func DefaultCatalog() (*Catalog, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return &Catalog{inner: c}, nil
}

// LoadCatalog parses an external YAML catalog definition document.
func LoadCatalog(doc []byte) (*Catalog, error) {
	c, err := catalog.Load(doc)
	if err != nil {
		return nil, err
	}
	return &Catalog{inner: c}, nil
}

// Session is one compile: open it against a catalog, target, and
// encoding, feed it source files with ReadFile, then call Compile once.
type Session struct {
	inner *session.Session
}

// NewSession opens a session. Nothing is read or compiled yet.
func NewSession(cat *Catalog, t Target, enc Encoding) *Session {
	return &Session{inner: session.New(cat.inner, t, enc)}
}

// ReadFile decodes one source file under the session's encoding and adds
// it to the compile. name becomes that file's entry in the output file
// table; order of calls is preserved.
func (s *Session) ReadFile(name string, raw []byte) error {
	return s.inner.ReadScriptData(name, raw)
}

// Compile runs the full pipeline once over every file read so far. It
// returns the first fatal error encountered, if any, with no partial
// output. The error is always a *diagnostics.DiagnosticError.
func (s *Session) Compile() (*CompiledOutput, error) {
	res, err := s.inner.CompileScriptData()
	if err != nil {
		return nil, err
	}
	return newCompiledOutput(res), nil
}

// ScriptParameter is one parameter of a compiled Static/Stub script.
type ScriptParameter struct {
	Name string
	Type Type
}

// CompiledScript is one compiled script's output record.
type CompiledScript struct {
	Name       string
	Return     Type
	Kind       string
	Parameters []ScriptParameter
	FirstNode  int
	File       string
	Line       int
	Column     int
}

// CompiledGlobal is one compiled global's output record.
type CompiledGlobal struct {
	Name      string
	Type      Type
	FirstNode int
	File      string
	Line      int
	Column    int
}

// CompiledOutput is the flat, serialization-friendly result of one
// successful compile.
type CompiledOutput struct {
	SessionID string
	Files     []string
	Scripts   []CompiledScript
	Globals   []CompiledGlobal
	Nodes     []Node
	Warnings  []Diagnostic
}

// Node is one entry in the flattened node array.
type Node struct {
	Kind         string
	ValueType    Type
	StringData   string
	IsEngineCall bool
	HasIndex     bool
	Index        uint16
	HasNext      bool
	Next         int
	File         string
	Line         int
	Column       int

	HasBoolean bool
	Boolean    bool
	HasShort   bool
	Short      int16
	HasLong    bool
	Long       int32
	HasReal    bool
	Real       float32

	HasLocalIndex  bool
	LocalIndex     int32
	HasGlobalIndex bool
	GlobalIndex    int32
	HasScriptIndex bool
	ScriptIndex    int16
	HasNodeOffset  bool
	NodeOffset     int
}

func newCompiledOutput(res *session.Result) *CompiledOutput {
	out := &CompiledOutput{
		SessionID: res.SessionID,
		Files:     res.Files,
	}

	for _, sr := range res.Scripts {
		params := make([]ScriptParameter, len(sr.Script.Parameters))
		for i, p := range sr.Script.Parameters {
			params[i] = ScriptParameter{Name: p.Name, Type: p.Type}
		}
		out.Scripts = append(out.Scripts, CompiledScript{
			Name:       sr.Script.Name,
			Return:     sr.Script.Return,
			Kind:       sr.Script.Kind.String(),
			Parameters: params,
			FirstNode:  sr.FirstNode,
			File:       sr.Script.Pos.File,
			Line:       sr.Script.Pos.Line,
			Column:     sr.Script.Pos.Column,
		})
	}

	for _, gr := range res.Globals {
		out.Globals = append(out.Globals, CompiledGlobal{
			Name:      gr.Global.Name,
			Type:      gr.Global.Type,
			FirstNode: gr.FirstNode,
			File:      gr.Global.Pos.File,
			Line:      gr.Global.Pos.Line,
			Column:    gr.Global.Pos.Column,
		})
	}

	for _, n := range res.Nodes {
		out.Nodes = append(out.Nodes, nodeFrom(n))
	}

	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, w.Record())
	}

	return out
}

func nodeFrom(n emitter.Node) Node {
	return Node{
		Kind:           n.Kind.String(),
		ValueType:      n.ValueType,
		StringData:     n.StringData,
		IsEngineCall:   n.IsEngineCall,
		HasIndex:       n.HasIndex,
		Index:          n.Index,
		HasNext:        n.HasNext,
		Next:           n.Next,
		File:           n.Pos.File,
		Line:           n.Pos.Line,
		Column:         n.Pos.Column,
		HasBoolean:     n.Data.HasBoolean,
		Boolean:        n.Data.Boolean,
		HasShort:       n.Data.HasShort,
		Short:          n.Data.Short,
		HasLong:        n.Data.HasLong,
		Long:           n.Data.Long,
		HasReal:        n.Data.HasReal,
		Real:           n.Data.Real,
		HasLocalIndex:  n.Data.HasLocalIndex,
		LocalIndex:     n.Data.LocalIndex,
		HasGlobalIndex: n.Data.HasGlobalIndex,
		GlobalIndex:    n.Data.GlobalIndex,
		HasScriptIndex: n.Data.HasScriptIndex,
		ScriptIndex:    n.Data.ScriptIndex,
		HasNodeOffset:  n.Data.HasNodeOffset,
		NodeOffset:     n.Data.NodeOffset,
	}
}

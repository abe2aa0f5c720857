// Package session implements the compile driver: a single-threaded,
// synchronous session that owns the token forest and file list for one
// compile, exposing ReadScriptData (append a file) and CompileScriptData
// (run the pipeline once and return the collected warnings in its
// Result). Each session is tagged with
// a github.com/google/uuid identifier for log correlation.
package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/diagnostics"
	encpkg "github.com/haloscript/hsc/internal/encoding"
	"github.com/haloscript/hsc/internal/sexp"
	"github.com/haloscript/hsc/internal/target"
)

type fileEntry struct {
	name   string
	forest []*sexp.Node
}

// Session owns every piece of mutable state for one compile: the token
// list and file table are mutated exclusively by the owning session.
// Warnings are collected during CompileScriptData and returned in its
// Result rather than stored on the Session.
type Session struct {
	ID       uuid.UUID
	Target   target.Target
	Encoding encpkg.Encoding
	Catalog  *catalog.Catalog

	files []fileEntry
}

// New starts a session against an immutable, shared catalog.
func New(cat *catalog.Catalog, t target.Target, enc encpkg.Encoding) *Session {
	return &Session{ID: uuid.New(), Target: t, Encoding: enc, Catalog: cat}
}

// ReadScriptData decodes one source file and appends its parsed token
// forest to the session. The caller invokes it once per file; order of
// calls becomes the file name table's order.
func (s *Session) ReadScriptData(name string, raw []byte) error {
	text, err := encpkg.Decode(raw, s.Encoding)
	if err != nil {
		return diagnostics.New(diagnostics.ErrDecodeFailure, name, 0, 0, "failed to decode %q under %s: %v", name, s.Encoding, err)
	}
	forest, err := sexp.ParseAll(name, text)
	if err != nil {
		return mapSexpError(err)
	}
	s.files = append(s.files, fileEntry{name: name, forest: forest})
	return nil
}

func mapSexpError(err error) error {
	se, ok := err.(*sexp.Error)
	if !ok {
		return err
	}
	code := diagnostics.ErrUnmatchedParen
	if strings.Contains(se.Msg, "end of input") {
		code = diagnostics.ErrUnterminatedToken
	}
	return diagnostics.New(code, se.Pos.File, se.Pos.Line, se.Pos.Column, "%s", se.Msg)
}

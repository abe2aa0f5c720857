// Package config holds process-wide constants for the HSC compiler:
// size limits, reserved names, and recognized source file extensions.
package config

const SourceFileExt = ".hsc"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".hsc", ".hscript"}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Hard size limits on a compiled program.
const (
	MaxNameLength = 31
	MaxScripts    = 32767
	MaxGlobals    = 32767
)

// SetIndexSentinel is the value `set` writes into its variable operand's
// index regardless of that variable's true index. Preserved exactly.
const SetIndexSentinel = 0xFFFF

// Reserved special-form names. Scripts may not be named any of these.
var ReservedNames = map[string]bool{
	"begin": true,
	"if":    true,
	"cond":  true,
}

// Built-in special-form and function names referenced directly by the
// analyzer and post-pass (cond desugaring, begin collapsing, set).
const (
	BeginFuncName = "begin"
	IfFuncName    = "if"
	CondFuncName  = "cond"
	SetFuncName   = "set"
)

// GlobalFormName and ScriptFormName are the two recognized top-level form
// heads.
const (
	GlobalFormName = "global"
	ScriptFormName = "script"
)

// WarnOnCaseChange controls whether the analyzer emits a warning when a
// leaf identifier is lowercased. This can get noisy on a large existing
// source tree, so a host may want to flip it off.
var WarnOnCaseChange = true


package postpass

import (
	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/diagnostics"
)

// replaceStubs finds, for each Stub script, another non-stub script of
// the same name; it must be Static with a matching return type, and the
// Stub is discarded. Two stubs sharing a name are not an error and both
// survive untouched when neither has a static match. Repeats until a
// pass makes no change, so a chain of stubs resolves in one call and
// running it twice is a no-op.
func replaceStubs(scripts []*ast.Script) ([]*ast.Script, error) {
	for {
		changed := false
		for i, s := range scripts {
			if s.Kind != ast.Stub {
				continue
			}
			for _, other := range scripts {
				if other == s || other.Name != s.Name {
					continue
				}
				if other.Kind == ast.Stub {
					// Two stubs sharing a name: neither replaces the
					// other, and it is not an error unless a later
					// pass turns up a non-static script of the same
					// name.
					continue
				}
				if other.Kind != ast.Static {
					return nil, diagErrAtScript(diagnostics.ErrStubNotReplaceableByNonStatic, s,
						"stub %q cannot be replaced by non-static script of the same name", s.Name)
				}
				if other.Return != s.Return {
					return nil, diagErrAtScript(diagnostics.ErrStubReturnMismatch, s,
						"stub %q return type %s does not match replacement's %s", s.Name, s.Return, other.Return)
				}
				scripts = append(scripts[:i:i], scripts[i+1:]...)
				changed = true
				break
			}
			if changed {
				break
			}
		}
		if !changed {
			return scripts, nil
		}
	}
}

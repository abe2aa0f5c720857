package symbols

import (
	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/target"
)

// Build constructs the Environment for one compile: catalog entries
// visible for t, unioned with the program's own scripts and globals. A
// user script or global collides with an engine name only by exact
// lowercase match; the user definition wins silently. This is
// intentional shadowing, not an error.
func Build(cat *catalog.Catalog, t target.Target, prog *ast.Program) *Environment {
	env := &Environment{
		functions: make(map[string]Callable),
		globals:   make(map[string]Variable),
	}

	for name, fn := range cat.VisibleFunctions(t) {
		env.functions[name] = Callable{Engine: fn}
	}
	for name, g := range cat.VisibleGlobals(t) {
		env.globals[name] = Variable{EngineGlobal: g}
	}

	for _, s := range prog.Scripts {
		env.functions[s.Name] = Callable{Script: s}
	}
	for _, g := range prog.Globals {
		env.globals[g.Name] = Variable{UserGlobal: g}
	}

	return env
}

package symbols

import (
	"testing"

	"github.com/haloscript/hsc/internal/ast"
	"github.com/haloscript/hsc/internal/catalog"
	"github.com/haloscript/hsc/internal/target"
	"github.com/haloscript/hsc/internal/types"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default(): %v", err)
	}
	return c
}

func TestBuildUnionsCatalogAndUserDefinitions(t *testing.T) {
	prog := &ast.Program{
		Scripts: []*ast.Script{{Name: "my_script", Return: types.Void}},
		Globals: []*ast.Global{{Name: "my_global", Type: types.Short}},
	}
	env := Build(defaultCatalog(t), target.MCCCEA, prog)

	if _, ok := env.LookupFunction("print"); !ok {
		t.Error("expected engine function print to be visible")
	}
	if _, ok := env.LookupFunction("my_script"); !ok {
		t.Error("expected user script my_script to be visible")
	}
	if _, ok := env.LookupGlobal("pi"); !ok {
		t.Error("expected engine global pi to be visible")
	}
	if _, ok := env.LookupGlobal("my_global"); !ok {
		t.Error("expected user global my_global to be visible")
	}
}

func TestBuildUserScriptShadowsEngineFunction(t *testing.T) {
	prog := &ast.Program{
		Scripts: []*ast.Script{{Name: "print", Return: types.Void}},
	}
	env := Build(defaultCatalog(t), target.MCCCEA, prog)

	c, ok := env.LookupFunction("print")
	if !ok {
		t.Fatal("expected print to resolve")
	}
	if c.IsEngine() {
		t.Error("user script print should shadow the engine builtin silently")
	}
}

func TestBuildUserGlobalShadowsEngineGlobal(t *testing.T) {
	prog := &ast.Program{
		Globals: []*ast.Global{{Name: "pi", Type: types.Short}},
	}
	env := Build(defaultCatalog(t), target.MCCCEA, prog)

	v, ok := env.LookupGlobal("pi")
	if !ok {
		t.Fatal("expected pi to resolve")
	}
	if !v.IsUser() {
		t.Error("user global pi should shadow the engine global silently")
	}
	if v.Type() != types.Short {
		t.Errorf("Type() = %v, want Short", v.Type())
	}
}

func TestBuildFiltersUnavailableTargets(t *testing.T) {
	env := Build(defaultCatalog(t), target.MCCCEA, &ast.Program{})
	if _, ok := env.LookupFunction("sv_map_reset"); ok {
		t.Error("sv_map_reset is gbx-custom only and should not be visible under mcc-cea")
	}
}

func TestCallableArityDelegation(t *testing.T) {
	prog := &ast.Program{
		Scripts: []*ast.Script{{
			Name:   "add",
			Return: types.Real,
			Parameters: []ast.ScriptParameter{
				{Name: "a", Type: types.Real},
				{Name: "b", Type: types.Real},
			},
		}},
	}
	env := Build(defaultCatalog(t), target.MCCCEA, prog)
	c, _ := env.LookupFunction("add")
	if c.MinArity() != 2 {
		t.Errorf("MinArity() = %d, want 2", c.MinArity())
	}
	max, unbounded := c.MaxArity()
	if unbounded || max != 2 {
		t.Errorf("MaxArity() = %d, %v; want 2, false", max, unbounded)
	}
	p, ok := c.ParamAt(1)
	if !ok || p.Type != types.Real {
		t.Errorf("ParamAt(1) = %+v, %v", p, ok)
	}
}

func TestHasFunction(t *testing.T) {
	env := Build(defaultCatalog(t), target.MCCCEA, &ast.Program{})
	if !env.HasFunction("print") {
		t.Error("expected HasFunction(print) to be true")
	}
	if env.HasFunction("not_a_function") {
		t.Error("expected HasFunction(not_a_function) to be false")
	}
}

func TestLocalsLookup(t *testing.T) {
	locals := NewLocals([]ast.ScriptParameter{
		{Name: "a", Type: types.Short},
		{Name: "b", Type: types.Real},
	})
	typ, idx, ok := locals.Lookup("b")
	if !ok || typ != types.Real || idx != 1 {
		t.Errorf("Lookup(b) = %v, %d, %v; want Real, 1, true", typ, idx, ok)
	}
	if _, _, ok := locals.Lookup("missing"); ok {
		t.Error("expected Lookup(missing) to fail")
	}
}

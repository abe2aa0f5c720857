package hsc

import "testing"

func TestDefaultCatalog(t *testing.T) {
	if _, err := DefaultCatalog(); err != nil {
		t.Fatalf("DefaultCatalog(): %v", err)
	}
}

func TestParseTarget(t *testing.T) {
	tgt, ok := ParseTarget("gbx-custom")
	if !ok || tgt != GBXCustom {
		t.Errorf("ParseTarget(gbx-custom) = %v, %v; want GBXCustom, true", tgt, ok)
	}
	if _, ok := ParseTarget("not-a-target"); ok {
		t.Error("expected ParseTarget to fail for an unknown name")
	}
}

func TestCompileSimpleProgram(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog(): %v", err)
	}
	sess := NewSession(cat, MCCCEA, UTF8)
	if err := sess.ReadFile("a.hsc", []byte(`
		(global short counter 0)
		(script startup on_init (set counter 1))
	`)); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out, err := sess.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(out.Globals) != 1 || out.Globals[0].Name != "counter" {
		t.Fatalf("unexpected globals: %+v", out.Globals)
	}
	if len(out.Scripts) != 1 || out.Scripts[0].Name != "on_init" {
		t.Fatalf("unexpected scripts: %+v", out.Scripts)
	}
	if len(out.Nodes) == 0 {
		t.Error("expected emitted nodes")
	}
	if out.SessionID == "" {
		t.Error("expected a non-empty session ID")
	}
}

func TestCompileReturnsDiagnosticOnError(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog(): %v", err)
	}
	sess := NewSession(cat, MCCCEA, UTF8)
	if err := sess.ReadFile("a.hsc", []byte(`(global short x (bogus_function))`)); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if _, err := sess.Compile(); err == nil {
		t.Fatal("expected Compile to fail for an unknown function")
	}
}

func TestCompileScriptParameters(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog(): %v", err)
	}
	sess := NewSession(cat, MCCCEA, UTF8)
	if err := sess.ReadFile("a.hsc", []byte(`(script static short (add (short a) (short b)) (+ a b))`)); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out, err := sess.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	params := out.Scripts[0].Parameters
	if len(params) != 2 || params[0].Name != "a" || params[1].Name != "b" {
		t.Errorf("unexpected parameters: %+v", params)
	}
}

func TestLoadCatalogRejectsBadDocument(t *testing.T) {
	if _, err := LoadCatalog([]byte(`functions: [{name: x, return: not_a_type, params: [], availability: {}}]`)); err == nil {
		t.Fatal("expected LoadCatalog to reject an unknown return type")
	}
}

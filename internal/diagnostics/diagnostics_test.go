package diagnostics

import "testing"

func TestNewDiagnosticError(t *testing.T) {
	err := New(ErrUnknownFunction, "a.hsc", 3, 7, "unknown function %q", "frob")
	want := `a.hsc:3:7: error: unknown function "frob"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code != ErrUnknownFunction {
		t.Errorf("Code = %v, want %v", err.Code, ErrUnknownFunction)
	}
}

func TestNewWarningString(t *testing.T) {
	w := NewWarning(WarnCaseChanged, "a.hsc", 1, 1, "identifier %q lowercased", "Foo")
	want := `a.hsc:1:1: warning: identifier "Foo" lowercased`
	if w.String() != want {
		t.Errorf("String() = %q, want %q", w.String(), want)
	}
}

func TestDiagnosticErrorRecord(t *testing.T) {
	err := New(ErrTooFewArgs, "a.hsc", 2, 4, "too few args")
	rec := err.Record()
	if rec.Severity != SeverityError || rec.File != "a.hsc" || rec.Line != 2 || rec.Column != 4 || rec.Message != "too few args" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestWarningRecord(t *testing.T) {
	w := NewWarning(WarnDeprecatedBuiltin, "a.hsc", 5, 9, "deprecated")
	rec := w.Record()
	if rec.Severity != SeverityWarning || rec.File != "a.hsc" || rec.Line != 5 || rec.Column != 9 || rec.Message != "deprecated" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

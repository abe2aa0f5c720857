package sexp

import "testing"

func TestParseAllSimpleForm(t *testing.T) {
	forest, err := ParseAll("t.hsc", `(set global_a 5)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forest) != 1 {
		t.Fatalf("got %d top-level forms, want 1", len(forest))
	}
	n := forest[0]
	if n.IsLeaf() {
		t.Fatal("top-level form should not be a leaf")
	}
	if len(n.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(n.Children))
	}
	if n.Children[0].Leaf != "set" || n.Children[1].Leaf != "global_a" || n.Children[2].Leaf != "5" {
		t.Errorf("unexpected children: %+v", n.Children)
	}
}

func TestParseAllNested(t *testing.T) {
	forest, err := ParseAll("t.hsc", `(begin (print "hi") (print "bye"))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	begin := forest[0]
	if len(begin.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(begin.Children))
	}
	inner := begin.Children[1]
	if len(inner.Children) != 2 || inner.Children[1].Leaf != "hi" || !inner.Children[1].Quoted {
		t.Errorf("unexpected inner form: %+v", inner)
	}
}

func TestParseAllMultipleTopLevelForms(t *testing.T) {
	forest, err := ParseAll("t.hsc", `(global short a 1) (global short b 2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("got %d forms, want 2", len(forest))
	}
}

func TestParseAllUnmatchedOpenParen(t *testing.T) {
	_, err := ParseAll("t.hsc", `(begin (print "hi")`)
	if err == nil {
		t.Fatal("expected an error for unmatched '('")
	}
}

func TestParseAllUnmatchedCloseParen(t *testing.T) {
	_, err := ParseAll("t.hsc", `(begin))`)
	if err == nil {
		t.Fatal("expected an error for unmatched ')'")
	}
}

func TestParseAllBareTopLevelAtomAccepted(t *testing.T) {
	// Bare atoms are valid as nested leaves but ParseAll itself happily
	// accepts a bare top-level atom node; the "must be a block" rule is
	// enforced by the classifier, not the parser. This just exercises the
	// leaf path at top level.
	forest, err := ParseAll("t.hsc", `5`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forest) != 1 || !forest[0].IsLeaf() || forest[0].Leaf != "5" {
		t.Errorf("unexpected forest: %+v", forest)
	}
}

func TestPositionPropagation(t *testing.T) {
	forest, err := ParseAll("t.hsc", "(a\n  (b))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer := forest[0]
	if outer.Pos.Line != 1 || outer.Pos.Column != 1 {
		t.Errorf("outer pos = %+v, want line 1 col 1", outer.Pos)
	}
	inner := outer.Children[1]
	if inner.Pos.Line != 2 {
		t.Errorf("inner pos = %+v, want line 2", inner.Pos)
	}
}

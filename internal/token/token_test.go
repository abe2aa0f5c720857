package token

import "testing"

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		ILLEGAL: "ILLEGAL",
		EOF:     "EOF",
		LPAREN:  "LPAREN",
		RPAREN:  "RPAREN",
		ATOM:    "ATOM",
		STRING:  "STRING",
		Type(99): "UNKNOWN",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestTokenPos(t *testing.T) {
	tok := Token{Type: ATOM, Literal: "begin", File: "a.hsc", Line: 3, Column: 7}
	want := Pos{File: "a.hsc", Line: 3, Column: 7}
	if got := tok.Pos(); got != want {
		t.Errorf("Pos() = %+v, want %+v", got, want)
	}
}

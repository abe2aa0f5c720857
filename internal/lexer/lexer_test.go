package lexer

import (
	"testing"

	"github.com/haloscript/hsc/internal/token"
)

func collectTokens(input string) []token.Token {
	l := New("t.hsc", input)
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestNextTokenBasic(t *testing.T) {
	toks := collectTokens(`(set global_a 5)`)
	wantTypes := []token.Type{token.LPAREN, token.ATOM, token.ATOM, token.ATOM, token.RPAREN, token.EOF}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantTypes), toks)
	}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token %d: type = %v, want %v", i, toks[i].Type, want)
		}
	}
	if toks[1].Literal != "set" || toks[2].Literal != "global_a" || toks[3].Literal != "5" {
		t.Errorf("unexpected literals: %+v", toks[:4])
	}
}

func TestNextTokenString(t *testing.T) {
	toks := collectTokens(`"hello world"`)
	if len(toks) != 2 || toks[0].Type != token.STRING || toks[0].Literal != "hello world" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	toks := collectTokens(`"hello`)
	if toks[0].Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %+v", toks[0])
	}
}

func TestLineCommentSkipped(t *testing.T) {
	toks := collectTokens("; a comment\n(foo)")
	if toks[0].Type != token.LPAREN || toks[0].Line != 2 {
		t.Fatalf("expected LPAREN on line 2, got %+v", toks[0])
	}
}

func TestBlockCommentSkipped(t *testing.T) {
	toks := collectTokens(";* block\ncomment *;(foo)")
	if toks[0].Type != token.LPAREN {
		t.Fatalf("expected LPAREN after block comment, got %+v", toks[0])
	}
}

func TestLineColumnTracking(t *testing.T) {
	toks := collectTokens("(a\n  b)")
	// 'b' sits on line 2, column 3
	var bTok token.Token
	for _, tk := range toks {
		if tk.Literal == "b" {
			bTok = tk
		}
	}
	if bTok.Line != 2 || bTok.Column != 3 {
		t.Errorf("b token position = line %d col %d, want line 2 col 3", bTok.Line, bTok.Column)
	}
}

func TestAtomDelimitedByParen(t *testing.T) {
	toks := collectTokens("(foo)")
	if toks[1].Literal != "foo" {
		t.Fatalf("expected atom 'foo', got %+v", toks[1])
	}
}

// Package sexp builds the token tree: a forest of S-expression nodes with
// file/line/column, each either a leaf atom/string or an ordered list of
// children. It is built in the lexer's own idiom: a cursor over a
// token.Token stream, one token of lookahead.
package sexp

import (
	"fmt"

	"github.com/haloscript/hsc/internal/lexer"
	"github.com/haloscript/hsc/internal/token"
)

// Node is one element of the token tree. A leaf node has Leaf set and no
// Children; an interior ("block") node has Children and an empty Leaf.
// Quoted is true when the leaf came from a "..." string token, so the
// classifier and analyzer can tell `"5"` (a String literal) from `5` (a
// Short/Long/Real literal candidate).
type Node struct {
	Leaf     string
	Quoted   bool
	Children []*Node
	Pos      token.Pos
}

func (n *Node) IsLeaf() bool { return n.Children == nil }

// Error reports a tokenization or parenthesization failure at a position.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Column, e.Msg)
}

// Parser turns a token stream into a forest of top-level Nodes.
type Parser struct {
	lex  *lexer.Lexer
	file string
	cur  token.Token
}

func NewParser(file, input string) *Parser {
	p := &Parser{lex: lexer.New(file, input), file: file}
	p.cur = p.lex.NextToken()
	return p
}

func (p *Parser) advance() {
	p.cur = p.lex.NextToken()
}

// ParseAll reads every top-level form in the input and returns the
// forest. A bare atom or string at the top level is accepted here as a
// leaf node; the rule that every top-level form must be a block is
// enforced by the classifier, not by the parser.
func ParseAll(file, input string) ([]*Node, error) {
	p := NewParser(file, input)
	var forest []*Node
	for p.cur.Type != token.EOF {
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		forest = append(forest, n)
	}
	return forest, nil
}

func (p *Parser) parseNode() (*Node, error) {
	switch p.cur.Type {
	case token.LPAREN:
		return p.parseBlock()
	case token.ATOM:
		n := &Node{Leaf: p.cur.Literal, Pos: pos(p.cur)}
		p.advance()
		return n, nil
	case token.STRING:
		n := &Node{Leaf: p.cur.Literal, Quoted: true, Pos: pos(p.cur)}
		p.advance()
		return n, nil
	case token.RPAREN:
		return nil, &Error{Pos: pos(p.cur), Msg: "unmatched ')'"}
	case token.ILLEGAL:
		return nil, &Error{Pos: pos(p.cur), Msg: fmt.Sprintf("unexpected character or unterminated token %q", p.cur.Literal)}
	default:
		return nil, &Error{Pos: pos(p.cur), Msg: "unexpected end of input"}
	}
}

func (p *Parser) parseBlock() (*Node, error) {
	open := p.cur
	p.advance() // consume '('
	block := &Node{Pos: pos(open), Children: []*Node{}}
	for {
		if p.cur.Type == token.RPAREN {
			p.advance()
			return block, nil
		}
		if p.cur.Type == token.EOF {
			return nil, &Error{Pos: pos(open), Msg: "unmatched '('"}
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		block.Children = append(block.Children, child)
	}
}

func pos(t token.Token) token.Pos {
	return token.Pos{File: t.File, Line: t.Line, Column: t.Column}
}

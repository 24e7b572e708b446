// Package jslexer implements the JS lexer (component B): a lazy,
// peekable scanner producing pkg/token.Token values from a source string.
package jslexer

import (
	"fmt"

	"github.com/cwbudde/saba/pkg/token"
)

// Lexer scans a JS source string one rune at a time. It never
// backtracks further than the single-token lookahead Peek provides.
type Lexer struct {
	input  []rune
	pos    int
	line   int
	column int

	peeked    *token.Token
	hasPeeked bool
}

// New creates a Lexer over src. Unlike the teacher's DWScript lexer, no
// BOM stripping is performed: original_source's JS scanner consumes a
// plain Rust String with no encoding handling, and the JS subset here
// makes the same assumption.
func New(src string) *Lexer {
	return &Lexer{
		input:  []rune(src),
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Error reports an unrecognized character at a position (spec.md §7).
type Error struct {
	Pos Position
	Ch  rune
}

// Position is an alias of token.Position, so lexer errors carry the same
// position type as tokens and can be built before a Token exists.
type Position = token.Position

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: unexpected character %q", e.Pos.Line, e.Pos.Column, e.Ch)
}

func (l *Lexer) current() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *Lexer) advance() {
	ch, ok := l.current()
	if !ok {
		return
	}
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, ok := l.current()
		if !ok || (ch != ' ' && ch != '\n' && ch != '\t' && ch != '\r') {
			return
		}
		l.advance()
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Peek returns the next token without consuming it. Calling Peek
// repeatedly returns the same token until Next is called.
func (l *Lexer) Peek() (token.Token, error) {
	if l.hasPeeked {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return token.Token{}, err
	}
	l.peeked = &tok
	l.hasPeeked = true
	return tok, nil
}

// Next consumes and returns the next token. If Peek was called since
// the last Next, the peeked token is returned instead of re-scanning —
// this is the contract spec.md §4.2 requires: "peek followed by next
// yields the same token."
func (l *Lexer) Next() (token.Token, error) {
	if l.hasPeeked {
		tok := *l.peeked
		l.peeked = nil
		l.hasPeeked = false
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) pos1() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

func (l *Lexer) scan() (token.Token, error) {
	l.skipWhitespace()

	pos := l.pos1()
	ch, ok := l.current()
	if !ok {
		return token.Token{Type: token.EOF, Pos: pos}, nil
	}

	switch {
	case isDigit(ch):
		return l.scanNumber(pos), nil
	case isLetter(ch):
		return l.scanIdentifier(pos), nil
	case ch == '"' || ch == '\'':
		return l.scanString(pos, ch), nil
	case isPunctuator(ch):
		l.advance()
		return token.Token{Type: token.PUNCT, Literal: string(ch), Pos: pos}, nil
	default:
		l.advance()
		return token.Token{}, &Error{Pos: pos, Ch: ch}
	}
}

func isPunctuator(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '=', ';', '(', ')', '{', '}', ',', '.':
		return true
	default:
		return false
	}
}

func (l *Lexer) scanNumber(pos token.Position) token.Token {
	start := l.pos
	for {
		ch, ok := l.current()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	lit := string(l.input[start:l.pos])

	var value uint64
	for _, r := range lit {
		value = value*10 + uint64(r-'0')
	}
	return token.Token{Type: token.NUMBER, Literal: lit, Value: value, Pos: pos}
}

func (l *Lexer) scanIdentifier(pos token.Position) token.Token {
	start := l.pos
	for {
		ch, ok := l.current()
		if !ok || !(isLetter(ch) || isDigit(ch)) {
			break
		}
		l.advance()
	}
	lit := string(l.input[start:l.pos])

	if token.Keywords[lit] {
		return token.Token{Type: token.KEYWORD, Literal: lit, Pos: pos}
	}
	return token.Token{Type: token.IDENT, Literal: lit, Pos: pos}
}

// scanString consumes until the matching quote. An unterminated string
// returns whatever text was accumulated (spec.md §4.2/§4.1); no escape
// processing is performed.
func (l *Lexer) scanString(pos token.Position, quote rune) token.Token {
	l.advance() // opening quote
	start := l.pos
	for {
		ch, ok := l.current()
		if !ok || ch == quote {
			break
		}
		l.advance()
	}
	lit := string(l.input[start:l.pos])
	if _, ok := l.current(); ok {
		l.advance() // closing quote
	}
	return token.Token{Type: token.STRINGLIT, Literal: lit, Pos: pos}
}

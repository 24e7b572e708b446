// Package cssscan implements the CSS tokenizer (component A): a
// character-indexed scanner producing a lazy, single-pass sequence of
// Token values. It is consumed by the same engine as internal/jslexer
// (spec.md §1) though the two token shapes are unrelated.
package cssscan

import "fmt"

// Kind identifies which variant of the CSS token tagged union a Token
// holds.
type Kind int

const (
	HashToken Kind = iota
	Delim
	Number
	Colon
	Semicolon
	OpenParen
	CloseParen
	OpenCurly
	CloseCurly
	Ident
	StringToken
	AtKeyword
)

func (k Kind) String() string {
	switch k {
	case HashToken:
		return "HashToken"
	case Delim:
		return "Delim"
	case Number:
		return "Number"
	case Colon:
		return "Colon"
	case Semicolon:
		return "Semicolon"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case OpenCurly:
		return "OpenCurly"
	case CloseCurly:
		return "CloseCurly"
	case Ident:
		return "Ident"
	case StringToken:
		return "StringToken"
	case AtKeyword:
		return "AtKeyword"
	default:
		return "Unknown"
	}
}

// Token is a single CSS lexical unit. Only the field matching Kind is
// meaningful: Text for HashToken/Ident/StringToken/AtKeyword, Char for
// Delim, NumberValue for Number. The one-character kinds carry neither.
type Token struct {
	Kind        Kind
	Text        string
	Char        rune
	NumberValue float64
}

func (t Token) String() string {
	switch t.Kind {
	case HashToken, Ident, StringToken, AtKeyword:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case Delim:
		return fmt.Sprintf("Delim(%q)", t.Char)
	case Number:
		return fmt.Sprintf("Number(%g)", t.NumberValue)
	default:
		return t.Kind.String()
	}
}

package cssscan_test

import (
	"errors"
	"io"
	"testing"

	"github.com/cwbudde/saba/internal/cssscan"
	"github.com/gkampitakis/go-snaps/snaps"
)

func mustTokens(t *testing.T, src string) []cssscan.Token {
	t.Helper()
	toks, err := cssscan.New(src).Tokens()
	if err != nil {
		t.Fatalf("Tokens(%q): %v", src, err)
	}
	return toks
}

// TestDeclarationBlock is spec.md §8 scenario 9.
func TestDeclarationBlock(t *testing.T) {
	toks := mustTokens(t, "#main { color: red; }")

	want := []cssscan.Kind{
		cssscan.HashToken,
		cssscan.OpenCurly,
		cssscan.Ident,
		cssscan.Colon,
		cssscan.Ident,
		cssscan.Semicolon,
		cssscan.CloseCurly,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[0].Text != "main" {
		t.Errorf("hash text = %q, want main", toks[0].Text)
	}
	if toks[2].Text != "color" || toks[4].Text != "red" {
		t.Errorf("ident text mismatch: %q / %q", toks[2].Text, toks[4].Text)
	}
}

func TestDispatchTable(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind cssscan.Kind
	}{
		{"paren open", "(", cssscan.OpenParen},
		{"paren close", ")", cssscan.CloseParen},
		{"comma", ",", cssscan.Delim},
		{"dot", ".", cssscan.Delim},
		{"colon", ":", cssscan.Colon},
		{"semicolon", ";", cssscan.Semicolon},
		{"curly open", "{", cssscan.OpenCurly},
		{"curly close", "}", cssscan.CloseCurly},
		{"number", "42", cssscan.Number},
		{"hash", "#id", cssscan.HashToken},
		{"leading dash ident", "-webkit-x", cssscan.Ident},
		{"at-keyword", "@media", cssscan.AtKeyword},
		{"bare at", "@", cssscan.Delim},
		{"ident", "color", cssscan.Ident},
		{"string", `"hi"`, cssscan.StringToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := mustTokens(t, tt.src)
			if len(toks) != 1 {
				t.Fatalf("got %d tokens, want 1: %v", len(toks), toks)
			}
			if toks[0].Kind != tt.kind {
				t.Errorf("got %s, want %s", toks[0].Kind, tt.kind)
			}
		})
	}
}

func TestFractionalNumber(t *testing.T) {
	toks := mustTokens(t, "1.5")
	if len(toks) != 1 || toks[0].Kind != cssscan.Number {
		t.Fatalf("got %v", toks)
	}
	if toks[0].NumberValue != 1.5 {
		t.Errorf("got %v, want 1.5", toks[0].NumberValue)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := mustTokens(t, `"unterminated`)
	if len(toks) != 1 || toks[0].Text != "unterminated" {
		t.Fatalf("got %v", toks)
	}
}

func TestUnexpectedCharIsReported(t *testing.T) {
	_, err := cssscan.New("$").Next()
	var unexpected *cssscan.ErrUnexpectedChar
	if !errors.As(err, &unexpected) {
		t.Fatalf("got %v, want *ErrUnexpectedChar", err)
	}
	if unexpected.Char != '$' {
		t.Errorf("got %q, want $", unexpected.Char)
	}
}

func TestEOFAtEnd(t *testing.T) {
	tz := cssscan.New("")
	_, err := tz.Next()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

// TestTokenStreamSnapshot guards the token stream's textual rendering
// against accidental drift (spec.md §8's whitespace-idempotence property
// relies on a stable display form per token).
func TestTokenStreamSnapshot(t *testing.T) {
	toks := mustTokens(t, `#main { color: red; } @media screen { .x, y: 1.25 }`)
	snaps.MatchSnapshot(t, "css_token_stream", toks)
}

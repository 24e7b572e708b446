// Package parser implements the recursive-descent JS parser (component
// C, spec.md §4.3), producing an *ast.Program from a token stream.
package parser

import (
	"errors"
	"fmt"

	"github.com/cwbudde/saba/internal/ast"
	"github.com/cwbudde/saba/internal/jslexer"
	"github.com/cwbudde/saba/internal/sabaerr"
	"github.com/cwbudde/saba/pkg/token"
)

// Parser walks a jslexer.Lexer's token stream and builds an *ast.Program.
// spec.md §4.3 notes the design's parse-error policy is "may strengthen
// to a fatal error (recommended)" — this parser does that: ParseProgram
// returns a *sabaerr.SourceError immediately on a malformed construct,
// rather than silently truncating the body.
type Parser struct {
	lex    *jslexer.Lexer
	source string
}

// New creates a Parser over lex. source is kept only so error messages
// can quote the offending line.
func New(lex *jslexer.Lexer, source string) *Parser {
	return &Parser{lex: lex, source: source}
}

// Parse is a convenience wrapper for the common case of parsing a whole
// source string in one call (mirrors parse_ast(source) from spec.md §6).
func Parse(source string) (*ast.Program, error) {
	return New(jslexer.New(source), source).ParseProgram()
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) error {
	return &sabaerr.SourceError{Pos: pos, Message: fmt.Sprintf(format, args...), Source: p.source}
}

// ParseProgram parses SourceElement* (spec.md §4.3 grammar). An empty
// source string is a valid empty Program (spec.md §8 scenario 1).
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, p.wrapLexError(err)
		}
		if peek.Type == token.EOF {
			return program, nil
		}

		stmt, err := p.sourceElement()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
	}
}

func (p *Parser) wrapLexError(err error) error {
	var lexErr *jslexer.Error
	if errors.As(err, &lexErr) {
		return &sabaerr.SourceError{Pos: lexErr.Pos, Message: lexErr.Error(), Source: p.source}
	}
	return err
}

// sourceElement := Statement | FunctionDeclaration
func (p *Parser) sourceElement() (ast.Node, error) {
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}
	if peek.Type == token.KEYWORD && peek.Literal == "function" {
		return p.functionDeclaration()
	}
	return p.statement()
}

// functionDeclaration := 'function' Identifier '(' ParamList? ')' BlockStatement
func (p *Parser) functionDeclaration() (ast.Node, error) {
	tok, _ := p.lex.Next() // 'function'

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	id := &ast.Identifier{Tok: nameTok, Name: nameTok.Literal}

	if _, err := p.expectPunct('('); err != nil {
		return nil, err
	}

	var params []ast.Node
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}
	if !(peek.Type == token.PUNCT && peek.Literal == ")") {
		for {
			pt, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			params = append(params, &ast.Identifier{Tok: pt, Name: pt.Literal})

			peek, err := p.lex.Peek()
			if err != nil {
				return nil, p.wrapLexError(err)
			}
			if peek.Type == token.PUNCT && peek.Literal == "," {
				p.lex.Next()
				continue
			}
			break
		}
	}

	if _, err := p.expectPunct(')'); err != nil {
		return nil, err
	}

	body, err := p.blockStatement()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{Tok: tok, ID: id, Params: params, Body: body}, nil
}

// blockStatement := '{' SourceElement* '}'
func (p *Parser) blockStatement() (ast.Node, error) {
	tok, err := p.expectPunct('{')
	if err != nil {
		return nil, err
	}

	var body []ast.Node
	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, p.wrapLexError(err)
		}
		if peek.Type == token.PUNCT && peek.Literal == "}" {
			p.lex.Next()
			break
		}
		if peek.Type == token.EOF {
			return nil, p.errorf(peek.Pos, "unexpected end of input, expected '}'")
		}
		stmt, err := p.sourceElement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	return &ast.BlockStatement{Tok: tok, Body: body}, nil
}

// statement := VariableStatement | ReturnStatement | ExpressionStatement
func (p *Parser) statement() (ast.Node, error) {
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}

	switch {
	case peek.Type == token.KEYWORD && peek.Literal == "var":
		return p.variableStatement()
	case peek.Type == token.KEYWORD && peek.Literal == "return":
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

// variableStatement := 'var' VariableDeclarator (',' VariableDeclarator)* ';'?
func (p *Parser) variableStatement() (ast.Node, error) {
	tok, _ := p.lex.Next() // 'var'

	var decls []ast.Node
	for {
		decl, err := p.variableDeclarator()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)

		peek, err := p.lex.Peek()
		if err != nil {
			return nil, p.wrapLexError(err)
		}
		if peek.Type == token.PUNCT && peek.Literal == "," {
			p.lex.Next()
			continue
		}
		break
	}

	p.consumeOptionalSemicolon()
	return &ast.VariableDeclaration{Tok: tok, Declarators: decls}, nil
}

// variableDeclarator := Identifier ('=' AssignmentExpression)?
func (p *Parser) variableDeclarator() (ast.Node, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	id := &ast.Identifier{Tok: nameTok, Name: nameTok.Literal}

	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}
	var init ast.Node
	if peek.Type == token.PUNCT && peek.Literal == "=" {
		p.lex.Next()
		init, err = p.assignmentExpression()
		if err != nil {
			return nil, err
		}
	}

	return &ast.VariableDeclarator{Tok: nameTok, ID: id, Init: init}, nil
}

// returnStatement := 'return' AssignmentExpression? ';'?
func (p *Parser) returnStatement() (ast.Node, error) {
	tok, _ := p.lex.Next() // 'return'

	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}

	var arg ast.Node
	if !isStatementTerminator(peek) {
		arg, err = p.assignmentExpression()
		if err != nil {
			return nil, err
		}
	}

	p.consumeOptionalSemicolon()
	return &ast.ReturnStatement{Tok: tok, Argument: arg}, nil
}

func isStatementTerminator(t token.Token) bool {
	return t.Type == token.EOF || (t.Type == token.PUNCT && (t.Literal == ";" || t.Literal == "}"))
}

// expressionStatement := AssignmentExpression ';'?
func (p *Parser) expressionStatement() (ast.Node, error) {
	peek, _ := p.lex.Peek()
	expr, err := p.assignmentExpression()
	if err != nil {
		return nil, err
	}
	p.consumeOptionalSemicolon()
	return &ast.ExpressionStatement{Tok: peek, Expr: expr}, nil
}

// assignmentExpression := AdditiveExpression ('=' AssignmentExpression)?
func (p *Parser) assignmentExpression() (ast.Node, error) {
	left, err := p.additiveExpression()
	if err != nil {
		return nil, err
	}

	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}
	if peek.Type == token.PUNCT && peek.Literal == "=" {
		tok, _ := p.lex.Next()
		right, err := p.assignmentExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Tok: tok, Op: '=', Left: left, Right: right}, nil
	}

	return left, nil
}

// additiveExpression := LeftHandSide (('+'|'-') AssignmentExpression)?
//
// The right operand is parsed as a full AssignmentExpression, which makes
// this grammar right-associative (spec.md §4.3, §9): `1 - 2 - 3` parses
// as `1 - (2 - 3)`, not `(1 - 2) - 3`.
func (p *Parser) additiveExpression() (ast.Node, error) {
	left, err := p.leftHandSideExpression()
	if err != nil {
		return nil, err
	}

	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}
	if peek.Type == token.PUNCT && (peek.Literal == "+" || peek.Literal == "-") {
		tok, _ := p.lex.Next()
		right, err := p.assignmentExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AdditiveExpression{Tok: tok, Op: tok.Literal[0], Left: left, Right: right}, nil
	}

	return left, nil
}

// leftHandSideExpression := MemberExpression ('(' ArgumentList? ')')?
func (p *Parser) leftHandSideExpression() (ast.Node, error) {
	expr, err := p.memberExpression()
	if err != nil {
		return nil, err
	}

	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}
	if peek.Type == token.PUNCT && peek.Literal == "(" {
		tok, _ := p.lex.Next()
		args, err := p.argumentList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(')'); err != nil {
			return nil, err
		}
		return &ast.CallExpression{Tok: tok, Callee: expr, Arguments: args}, nil
	}

	return expr, nil
}

// memberExpression := PrimaryExpression ('.' Identifier)*
func (p *Parser) memberExpression() (ast.Node, error) {
	expr, err := p.primaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		peek, err := p.lex.Peek()
		if err != nil {
			return nil, p.wrapLexError(err)
		}
		if !(peek.Type == token.PUNCT && peek.Literal == ".") {
			break
		}
		tok, _ := p.lex.Next()

		propTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		prop := &ast.Identifier{Tok: propTok, Name: propTok.Literal}
		expr = &ast.MemberExpression{Tok: tok, Object: expr, Property: prop}
	}

	return expr, nil
}

// primaryExpression := Number | String | Identifier
func (p *Parser) primaryExpression() (ast.Node, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, p.wrapLexError(err)
	}

	switch tok.Type {
	case token.NUMBER:
		return &ast.NumberLiteral{Tok: tok, Value: tok.Value}, nil
	case token.STRINGLIT:
		return &ast.StringLiteral{Tok: tok, Value: tok.Literal}, nil
	case token.IDENT:
		return &ast.Identifier{Tok: tok, Name: tok.Literal}, nil
	default:
		return nil, p.errorf(tok.Pos, "unexpected token %q, expected an expression", tok.String())
	}
}

// argumentList := AssignmentExpression (',' AssignmentExpression)*
func (p *Parser) argumentList() ([]ast.Node, error) {
	peek, err := p.lex.Peek()
	if err != nil {
		return nil, p.wrapLexError(err)
	}
	if peek.Type == token.PUNCT && peek.Literal == ")" {
		return nil, nil
	}

	var args []ast.Node
	for {
		arg, err := p.assignmentExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		peek, err := p.lex.Peek()
		if err != nil {
			return nil, p.wrapLexError(err)
		}
		if peek.Type == token.PUNCT && peek.Literal == "," {
			p.lex.Next()
			continue
		}
		break
	}

	return args, nil
}

func (p *Parser) consumeOptionalSemicolon() {
	peek, err := p.lex.Peek()
	if err != nil {
		return
	}
	if peek.Type == token.PUNCT && peek.Literal == ";" {
		p.lex.Next()
	}
}

func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return token.Token{}, p.wrapLexError(err)
	}
	if tok.Type != t {
		return token.Token{}, p.errorf(tok.Pos, "unexpected token %q, expected %s", tok.String(), t)
	}
	return tok, nil
}

func (p *Parser) expectPunct(lit byte) (token.Token, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return token.Token{}, p.wrapLexError(err)
	}
	if !(tok.Type == token.PUNCT && len(tok.Literal) == 1 && tok.Literal[0] == lit) {
		return token.Token{}, p.errorf(tok.Pos, "unexpected token %q, expected %q", tok.String(), lit)
	}
	return tok, nil
}

// Package ast defines the node types produced by internal/parser and
// walked by internal/interp (component C, spec.md §3).
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cwbudde/saba/pkg/token"
)

// Node is the base interface every AST node implements. Child slots are
// typed ast.Node (a nilable interface), giving the "optional owning
// reference" spec.md §3 requires without a separate Option wrapper.
type Node interface {
	TokenLiteral() string
	String() string
}

// Program is the root of the tree: an ordered sequence of top-level
// statements (spec.md §3).
type Program struct {
	Body []Node
}

func (p *Program) TokenLiteral() string {
	if len(p.Body) > 0 {
		return p.Body[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, stmt := range p.Body {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Tok  token.Token
	Expr Node
}

func (e *ExpressionStatement) TokenLiteral() string { return e.Tok.Literal }
func (e *ExpressionStatement) String() string {
	if e.Expr == nil {
		return ""
	}
	return e.Expr.String()
}

// AdditiveExpression is `left op right` for op in {+, -}. The grammar
// (spec.md §4.3) makes this right-associative: the right operand is
// parsed as a full AssignmentExpression, not another AdditiveExpression.
// Do not "fix" this to left-associativity; `1 - 2 - 3` must evaluate to
// 2, not -4 (spec.md §9).
type AdditiveExpression struct {
	Tok   token.Token
	Op    byte
	Left  Node
	Right Node
}

func (a *AdditiveExpression) TokenLiteral() string { return a.Tok.Literal }
func (a *AdditiveExpression) String() string {
	return fmt.Sprintf("(%s %c %s)", stringOf(a.Left), a.Op, stringOf(a.Right))
}

// AssignmentExpression is `left = right`. Only '=' is supported.
type AssignmentExpression struct {
	Tok   token.Token
	Op    byte
	Left  Node
	Right Node
}

func (a *AssignmentExpression) TokenLiteral() string { return a.Tok.Literal }
func (a *AssignmentExpression) String() string {
	return fmt.Sprintf("(%s = %s)", stringOf(a.Left), stringOf(a.Right))
}

// MemberExpression is `object.property`.
type MemberExpression struct {
	Tok      token.Token
	Object   Node
	Property Node
}

func (m *MemberExpression) TokenLiteral() string { return m.Tok.Literal }
func (m *MemberExpression) String() string {
	return fmt.Sprintf("%s.%s", stringOf(m.Object), stringOf(m.Property))
}

// NumberLiteral is an unsigned integer literal.
type NumberLiteral struct {
	Tok   token.Token
	Value uint64
}

func (n *NumberLiteral) TokenLiteral() string { return n.Tok.Literal }
func (n *NumberLiteral) String() string       { return fmt.Sprintf("%d", n.Value) }

// StringLiteral is a quoted string literal.
type StringLiteral struct {
	Tok   token.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string { return s.Tok.Literal }
func (s *StringLiteral) String() string       { return s.Value }

// Identifier is a bare name reference.
type Identifier struct {
	Tok  token.Token
	Name string
}

func (i *Identifier) TokenLiteral() string { return i.Tok.Literal }
func (i *Identifier) String() string       { return i.Name }

// VariableDeclaration is `var a=1, b=2;`.
type VariableDeclaration struct {
	Tok         token.Token
	Declarators []Node
}

func (v *VariableDeclaration) TokenLiteral() string { return v.Tok.Literal }
func (v *VariableDeclaration) String() string {
	parts := make([]string, 0, len(v.Declarators))
	for _, d := range v.Declarators {
		parts = append(parts, stringOf(d))
	}
	return "var " + strings.Join(parts, ", ") + ";"
}

// VariableDeclarator is a single `id = init` (or bare `id`) inside a
// VariableDeclaration.
type VariableDeclarator struct {
	Tok  token.Token
	ID   Node
	Init Node
}

func (v *VariableDeclarator) TokenLiteral() string { return v.Tok.Literal }
func (v *VariableDeclarator) String() string {
	if v.Init == nil {
		return stringOf(v.ID)
	}
	return fmt.Sprintf("%s = %s", stringOf(v.ID), stringOf(v.Init))
}

// BlockStatement is `{ ... }`.
type BlockStatement struct {
	Tok  token.Token
	Body []Node
}

func (b *BlockStatement) TokenLiteral() string { return b.Tok.Literal }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range b.Body {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// ReturnStatement is `return expr;`.
type ReturnStatement struct {
	Tok      token.Token
	Argument Node
}

func (r *ReturnStatement) TokenLiteral() string { return r.Tok.Literal }
func (r *ReturnStatement) String() string {
	return "return " + stringOf(r.Argument) + ";"
}

// FunctionDeclaration is `function id(params) { body }`.
type FunctionDeclaration struct {
	Tok    token.Token
	ID     Node
	Params []Node
	Body   Node
}

func (f *FunctionDeclaration) TokenLiteral() string { return f.Tok.Literal }
func (f *FunctionDeclaration) String() string {
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, stringOf(p))
	}
	return fmt.Sprintf("function %s(%s) %s", stringOf(f.ID), strings.Join(params, ", "), stringOf(f.Body))
}

// CallExpression is `callee(arguments)`.
type CallExpression struct {
	Tok       token.Token
	Callee    Node
	Arguments []Node
}

func (c *CallExpression) TokenLiteral() string { return c.Tok.Literal }
func (c *CallExpression) String() string {
	args := make([]string, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		args = append(args, stringOf(a))
	}
	return fmt.Sprintf("%s(%s)", stringOf(c.Callee), strings.Join(args, ", "))
}

func stringOf(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

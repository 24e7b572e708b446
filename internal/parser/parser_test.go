package parser_test

import (
	"testing"

	"github.com/cwbudde/saba/internal/ast"
	"github.com/cwbudde/saba/internal/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diffOpts() cmp.Option {
	return cmp.Options{
		cmpopts.IgnoreFields(ast.Identifier{}, "Tok"),
		cmpopts.IgnoreFields(ast.NumberLiteral{}, "Tok"),
		cmpopts.IgnoreFields(ast.StringLiteral{}, "Tok"),
		cmpopts.IgnoreFields(ast.AdditiveExpression{}, "Tok"),
		cmpopts.IgnoreFields(ast.AssignmentExpression{}, "Tok"),
		cmpopts.IgnoreFields(ast.MemberExpression{}, "Tok"),
		cmpopts.IgnoreFields(ast.ExpressionStatement{}, "Tok"),
		cmpopts.IgnoreFields(ast.VariableDeclaration{}, "Tok"),
		cmpopts.IgnoreFields(ast.VariableDeclarator{}, "Tok"),
		cmpopts.IgnoreFields(ast.BlockStatement{}, "Tok"),
		cmpopts.IgnoreFields(ast.ReturnStatement{}, "Tok"),
		cmpopts.IgnoreFields(ast.FunctionDeclaration{}, "Tok"),
		cmpopts.IgnoreFields(ast.CallExpression{}, "Tok"),
	}
}

// TestEmptyProgram is spec.md §8 scenario 1.
func TestEmptyProgram(t *testing.T) {
	program, err := parser.Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if len(program.Body) != 0 {
		t.Fatalf("got %d statements, want 0", len(program.Body))
	}
}

// TestNumberLiteral is spec.md §8 scenario 2.
func TestNumberLiteral(t *testing.T) {
	program, err := parser.Parse("42")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &ast.Program{Body: []ast.Node{
		&ast.ExpressionStatement{Expr: &ast.NumberLiteral{Value: 42}},
	}}

	if diff := cmp.Diff(want, program, diffOpts()); diff != "" {
		t.Errorf("Parse(\"42\") mismatch (-want +got):\n%s", diff)
	}
}

func TestAdditiveIsRightAssociative(t *testing.T) {
	// 1 - 2 - 3 must parse as 1 - (2 - 3), per spec.md §4.3/§9.
	program, err := parser.Parse("1 - 2 - 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	stmt, ok := program.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("body[0] = %T, want *ast.ExpressionStatement", program.Body[0])
	}
	outer, ok := stmt.Expr.(*ast.AdditiveExpression)
	if !ok {
		t.Fatalf("expr = %T, want *ast.AdditiveExpression", stmt.Expr)
	}
	if outer.Op != '-' {
		t.Fatalf("outer op = %q, want '-'", outer.Op)
	}
	if _, ok := outer.Left.(*ast.NumberLiteral); !ok {
		t.Fatalf("left = %T, want *ast.NumberLiteral", outer.Left)
	}
	inner, ok := outer.Right.(*ast.AdditiveExpression)
	if !ok {
		t.Fatalf("right = %T, want *ast.AdditiveExpression (nested)", outer.Right)
	}
	if inner.Op != '-' {
		t.Fatalf("inner op = %q, want '-'", inner.Op)
	}
}

func TestVariableDeclarationAndFunction(t *testing.T) {
	src := `var foo=42; function bar(a, b) { return a+b; } bar(foo, 1)+1;`
	program, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(program.Body) != 3 {
		t.Fatalf("got %d top-level statements, want 3", len(program.Body))
	}

	if _, ok := program.Body[0].(*ast.VariableDeclaration); !ok {
		t.Errorf("body[0] = %T, want *ast.VariableDeclaration", program.Body[0])
	}
	fn, ok := program.Body[1].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("body[1] = %T, want *ast.FunctionDeclaration", program.Body[1])
	}
	if len(fn.Params) != 2 {
		t.Errorf("got %d params, want 2", len(fn.Params))
	}
}

// TestMemberExpressionChaining checks that `document.getElementById`
// parses as one MemberExpression with object `document` and property
// `getElementById`. (The grammar allows a call only after a
// MemberExpression, not a member access on a call's result, so a host
// bridge result is reached by first binding it to a variable.)
func TestMemberExpressionChaining(t *testing.T) {
	program, err := parser.Parse("document.getElementById")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	stmt := program.Body[0].(*ast.ExpressionStatement)
	member, ok := stmt.Expr.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("expr = %T, want *ast.MemberExpression", stmt.Expr)
	}
	if id, ok := member.Property.(*ast.Identifier); !ok || id.Name != "getElementById" {
		t.Errorf("property = %#v, want getElementById", member.Property)
	}
	if id, ok := member.Object.(*ast.Identifier); !ok || id.Name != "document" {
		t.Errorf("object = %#v, want document", member.Object)
	}
}

func TestAssignmentToMemberOfVariable(t *testing.T) {
	program, err := parser.Parse(`var target=document.getElementById("main"); target.textContent="hi";`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	stmt, ok := program.Body[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("body[1] = %T, want *ast.ExpressionStatement", program.Body[1])
	}
	assign, ok := stmt.Expr.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("expr = %T, want *ast.AssignmentExpression", stmt.Expr)
	}
	member, ok := assign.Left.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("left = %T, want *ast.MemberExpression", assign.Left)
	}
	if id, ok := member.Object.(*ast.Identifier); !ok || id.Name != "target" {
		t.Errorf("object = %#v, want target", member.Object)
	}
}

func TestUnexpectedTokenIsFatal(t *testing.T) {
	_, err := parser.Parse("var = 1;")
	if err == nil {
		t.Fatal("expected a parse error for 'var = 1;'")
	}
}

func TestUnclosedBlockIsFatal(t *testing.T) {
	_, err := parser.Parse("function foo() {")
	if err == nil {
		t.Fatal("expected a parse error for an unclosed block")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := "var a=1; function f(x) { return x+1; } f(a)"
	first, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(first, second, diffOpts()); diff != "" {
		t.Errorf("Parse(%q) is not deterministic (-first +second):\n%s", src, diff)
	}
}

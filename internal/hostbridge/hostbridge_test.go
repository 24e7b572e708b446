package hostbridge_test

import (
	"errors"
	"testing"

	"github.com/cwbudde/saba/internal/ast"
	"github.com/cwbudde/saba/internal/domtree"
	"github.com/cwbudde/saba/internal/hostbridge"
	"github.com/cwbudde/saba/internal/value"
)

func stringLitNode(s string) ast.Node {
	return &ast.StringLiteral{Value: s}
}

func evalStringLiterals(n ast.Node) (value.Value, error) {
	lit, ok := n.(*ast.StringLiteral)
	if !ok {
		return nil, errors.New("unsupported node in test eval")
	}
	return value.StringLit(lit.Value), nil
}

func TestUnrecognizedCalleeIsNotClaimed(t *testing.T) {
	_, claimed, err := hostbridge.Call("foo", nil, evalStringLiterals, nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if claimed {
		t.Fatal("claimed = true, want false for an unrecognized callee")
	}
}

func TestGetElementByIDFindsElement(t *testing.T) {
	root := domtree.NewElement("", "html")
	main := domtree.NewElement("main", "div")
	root.AddChild(main)

	result, claimed, err := hostbridge.Call(
		"document.getElementById",
		[]ast.Node{stringLitNode("main")},
		evalStringLiterals,
		root,
	)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !claimed {
		t.Fatal("claimed = false, want true for document.getElementById")
	}
	elem, ok := result.(value.HTMLElement)
	if !ok {
		t.Fatalf("result = %T, want value.HTMLElement", result)
	}
	if elem.Object != main {
		t.Errorf("elem.Object = %+v, want the main node", elem.Object)
	}
	if elem.Property != nil {
		t.Errorf("elem.Property = %v, want nil (no pending property yet)", *elem.Property)
	}
}

// TestGetElementByIDMissIsStillClaimed covers spec.md §4.5 step 3: a
// claimed call never falls through to user-function lookup even when it
// resolves to no result.
func TestGetElementByIDMissIsStillClaimed(t *testing.T) {
	root := domtree.NewElement("", "html")

	result, claimed, err := hostbridge.Call(
		"document.getElementById",
		[]ast.Node{stringLitNode("missing")},
		evalStringLiterals,
		root,
	)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !claimed {
		t.Fatal("claimed = false, want true even on a miss")
	}
	if result != nil {
		t.Errorf("result = %v, want nil", result)
	}
}

func TestGetElementByIDWithNoArgumentsIsClaimedWithNilResult(t *testing.T) {
	result, claimed, err := hostbridge.Call("document.getElementById", nil, evalStringLiterals, nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !claimed {
		t.Fatal("claimed = false, want true")
	}
	if result != nil {
		t.Errorf("result = %v, want nil", result)
	}
}

// TestGetElementByIDArgEvaluatesToAbsentIsNotAPanic covers an argument
// that evaluates to no value at all (e.g. an uninitialized `var x;`
// passed as the id, or an assignment expression used as an argument) —
// the bridge must not call String() on a nil Value.
func TestGetElementByIDArgEvaluatesToAbsentIsNotAPanic(t *testing.T) {
	evalToNil := func(n ast.Node) (value.Value, error) { return nil, nil }

	result, claimed, err := hostbridge.Call("document.getElementById", []ast.Node{stringLitNode("x")}, evalToNil, nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !claimed {
		t.Fatal("claimed = false, want true: the call was still recognized")
	}
	if result != nil {
		t.Errorf("result = %v, want nil", result)
	}
}

func TestGetElementByIDPropagatesArgEvalError(t *testing.T) {
	badEval := func(n ast.Node) (value.Value, error) { return nil, errors.New("boom") }
	_, claimed, err := hostbridge.Call("document.getElementById", []ast.Node{stringLitNode("x")}, badEval, nil)
	if err == nil {
		t.Fatal("expected an error from a failing argument evaluation")
	}
	if !claimed {
		t.Error("claimed = false, want true: the call was still recognized")
	}
}

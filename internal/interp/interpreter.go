// Package interp implements the tree-walking interpreter (component E,
// spec.md §4.5): lexical environments, first-class user functions, and
// dispatch into internal/hostbridge for DOM-touching calls.
package interp

import (
	"fmt"

	"github.com/cwbudde/saba/internal/ast"
	"github.com/cwbudde/saba/internal/domtree"
	"github.com/cwbudde/saba/internal/environment"
	"github.com/cwbudde/saba/internal/hostbridge"
	"github.com/cwbudde/saba/internal/value"
)

// Environment is the scope chain specialized to runtime values.
type Environment = environment.Environment[value.Value]

// Function is a user-defined function record (spec.md §3). Name
// collisions shadow rather than replace: a later FunctionDeclaration
// with the same ID is appended, and lookup scans from the most recently
// registered function backwards, so the latest definition wins
// (spec.md §4.5, §9).
type Function struct {
	ID     string
	Params []ast.Node
	Body   ast.Node
}

// Interpreter walks an *ast.Program against a DOM root. It is
// single-threaded and holds exactly one environment reference at a time
// (spec.md §5): there is no concurrent mutation of functions, env, or
// the DOM.
type Interpreter struct {
	domRoot   *domtree.Node
	functions []*Function
	env       *Environment
}

// New creates an Interpreter rooted at domRoot with a fresh global
// environment.
func New(domRoot *domtree.Node) *Interpreter {
	return &Interpreter{
		domRoot: domRoot,
		env:     environment.New[value.Value](),
	}
}

// Execute evaluates every top-level statement in program against the
// interpreter's global environment, mutating the DOM through the host
// bridge as a side effect. It returns the first fatal runtime error
// encountered (spec.md §7: "Runtime errors terminate the execute call").
func (it *Interpreter) Execute(program *ast.Program) error {
	for _, stmt := range program.Body {
		if _, err := it.Eval(stmt, it.env); err != nil {
			return err
		}
	}
	return nil
}

// EvalAll evaluates every top-level statement and returns each
// statement's resulting value (nil for statements with no value), for
// callers — tests, the CLI's --trace — that want the per-statement
// trace spec.md §8's scenario table describes.
func (it *Interpreter) EvalAll(program *ast.Program) ([]value.Value, error) {
	results := make([]value.Value, 0, len(program.Body))
	for _, stmt := range program.Body {
		v, err := it.Eval(stmt, it.env)
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Eval walks a single node, returning its runtime value (nil for "no
// value," spec.md's Option<RuntimeValue>) and any fatal runtime error.
func (it *Interpreter) Eval(node ast.Node, env *Environment) (value.Value, error) {
	if node == nil {
		return nil, nil
	}

	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return it.Eval(n.Expr, env)

	case *ast.NumberLiteral:
		return value.Number(n.Value), nil

	case *ast.StringLiteral:
		return value.StringLit(n.Value), nil

	case *ast.Identifier:
		return it.evalIdentifier(n, env)

	case *ast.AdditiveExpression:
		return it.evalAdditive(n, env)

	case *ast.AssignmentExpression:
		return it.evalAssignment(n, env)

	case *ast.MemberExpression:
		return it.evalMember(n, env)

	case *ast.VariableDeclaration:
		for _, decl := range n.Declarators {
			if _, err := it.Eval(decl, env); err != nil {
				return nil, err
			}
		}
		return nil, nil

	case *ast.VariableDeclarator:
		id, ok := n.ID.(*ast.Identifier)
		if !ok {
			return nil, nil
		}
		initVal, err := it.Eval(n.Init, env)
		if err != nil {
			return nil, err
		}
		env.Add(id.Name, initVal, initVal != nil)
		return nil, nil

	case *ast.BlockStatement:
		var result value.Value
		for _, stmt := range n.Body {
			v, err := it.Eval(stmt, env)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil

	case *ast.ReturnStatement:
		// return does not interrupt evaluation; it is effectively the
		// last evaluated expression because BlockStatement just threads
		// through the last statement's value (spec.md §9).
		return it.Eval(n.Argument, env)

	case *ast.FunctionDeclaration:
		return it.evalFunctionDeclaration(n, env)

	case *ast.CallExpression:
		return it.evalCall(n, env)

	default:
		return nil, fmt.Errorf("interp: unhandled node type %T", node)
	}
}

// evalIdentifier resolves name in env. Only a name absent from every
// ancestor frame falls back to its own text as a string literal
// (spec.md §4.5) — this is the mechanism by which document,
// getElementById, and textContent become composable text in a
// MemberExpression. A declared-but-uninitialized variable (no `=` in its
// declarator) evaluates to nil, matching the uninitialized-var scenario
// rather than the unknown-identifier one; original_source's Rust
// implementation collapses these two cases because Option<RuntimeValue>
// can't distinguish "absent value" from "absent binding," but spec.md
// §3 is explicit that Get is "None only if the name exists in no
// ancestor," so we keep them distinct.
func (it *Interpreter) evalIdentifier(n *ast.Identifier, env *Environment) (value.Value, error) {
	val, _, found := env.Get(n.Name)
	if !found {
		return value.StringLit(n.Name), nil
	}
	return val, nil
}

func (it *Interpreter) evalAdditive(n *ast.AdditiveExpression, env *Environment) (value.Value, error) {
	left, err := it.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	if left == nil {
		return nil, nil
	}
	right, err := it.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, nil
	}

	switch n.Op {
	case '+':
		return value.Add(left, right), nil
	case '-':
		return value.Sub(left, right), nil
	default:
		return nil, nil
	}
}

func (it *Interpreter) evalAssignment(n *ast.AssignmentExpression, env *Environment) (value.Value, error) {
	if n.Op != '=' {
		return nil, nil
	}

	if id, ok := n.Left.(*ast.Identifier); ok {
		newVal, err := it.Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		env.Update(id.Name, newVal, newVal != nil)
		return nil, nil
	}

	leftVal, err := it.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	elem, ok := leftVal.(value.HTMLElement)
	if !ok || elem.Property == nil {
		return nil, nil
	}

	rightVal, err := it.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	if rightVal == nil {
		return nil, nil
	}

	if *elem.Property == "textContent" {
		elem.Object.SetFirstChild(domtree.NewTextNode(rightVal.String()))
	}
	// Any other property name is silently ignored (spec.md §7).
	return nil, nil
}

func (it *Interpreter) evalMember(n *ast.MemberExpression, env *Environment) (value.Value, error) {
	objVal, err := it.Eval(n.Object, env)
	if err != nil {
		return nil, err
	}
	if objVal == nil {
		return nil, nil
	}

	propVal, err := it.Eval(n.Property, env)
	if err != nil {
		return nil, err
	}
	if propVal == nil {
		return objVal, nil
	}

	if elem, ok := objVal.(value.HTMLElement); ok && elem.Property == nil {
		prop := propVal.String()
		return value.HTMLElement{Object: elem.Object, Property: &prop}, nil
	}

	return value.Add(value.Add(objVal, value.StringLit(".")), propVal), nil
}

func (it *Interpreter) evalFunctionDeclaration(n *ast.FunctionDeclaration, env *Environment) (value.Value, error) {
	idVal, err := it.Eval(n.ID, env)
	if err != nil {
		return nil, err
	}
	name, ok := idVal.(value.StringLit)
	if !ok {
		return nil, nil
	}
	it.functions = append(it.functions, &Function{ID: string(name), Params: n.Params, Body: n.Body})
	return nil, nil
}

func (it *Interpreter) lookupFunction(name string) *Function {
	for i := len(it.functions) - 1; i >= 0; i-- {
		if it.functions[i].ID == name {
			return it.functions[i]
		}
	}
	return nil
}

func (it *Interpreter) evalCall(n *ast.CallExpression, env *Environment) (value.Value, error) {
	callEnv := environment.NewChild(env)

	calleeVal, err := it.Eval(n.Callee, callEnv)
	if err != nil {
		return nil, err
	}
	if calleeVal == nil {
		return nil, nil
	}

	evalArg := func(node ast.Node) (value.Value, error) { return it.Eval(node, callEnv) }
	result, claimed, err := hostbridge.Call(calleeVal.String(), n.Arguments, evalArg, it.domRoot)
	if err != nil {
		return nil, err
	}
	if claimed {
		return result, nil
	}

	fn := it.lookupFunction(calleeVal.String())
	if fn == nil {
		return nil, fmt.Errorf("interp: function %q doesn't exist", calleeVal.String())
	}
	if len(n.Arguments) != len(fn.Params) {
		return nil, fmt.Errorf("interp: %q expects %d argument(s), got %d", fn.ID, len(fn.Params), len(n.Arguments))
	}

	for i, param := range fn.Params {
		paramVal, err := it.Eval(param, callEnv)
		if err != nil {
			return nil, err
		}
		paramName, ok := paramVal.(value.StringLit)
		if !ok {
			continue
		}
		argVal, err := it.Eval(n.Arguments[i], callEnv)
		if err != nil {
			return nil, err
		}
		callEnv.Add(string(paramName), argVal, argVal != nil)
	}

	return it.Eval(fn.Body, callEnv)
}

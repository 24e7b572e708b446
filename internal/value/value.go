// Package value defines the interpreter's runtime value variants
// (spec.md §3). It is split out from internal/interp so
// internal/hostbridge can produce values without importing the
// interpreter, and the interpreter can dispatch to the host bridge
// without the host bridge importing it back.
package value

import (
	"fmt"

	"github.com/cwbudde/saba/internal/domtree"
)

// Value is a runtime value. Type and String give every variant a
// "display form" (spec.md's Glossary): the textual representation used
// for string concatenation and host-name matching.
type Value interface {
	Type() string
	String() string
}

// Number is an unsigned integer runtime value.
type Number uint64

func (Number) Type() string { return "Number" }
func (n Number) String() string { return fmt.Sprintf("%d", uint64(n)) }

// StringLit is a runtime string value. It is also what an unresolved
// identifier evaluates to (spec.md §4.5) and what string concatenation
// of any two non-number values produces.
type StringLit string

func (StringLit) Type() string { return "StringLiteral" }
func (s StringLit) String() string { return string(s) }

// HTMLElement is a live reference into the DOM, optionally carrying a
// pending property name set by MemberExpression evaluation and consumed
// by AssignmentExpression evaluation (spec.md §3, the "deferred-property
// trick" in §9).
type HTMLElement struct {
	Object   *domtree.Node
	Property *string
}

func (HTMLElement) Type() string { return "HtmlElement" }

func (h HTMLElement) String() string {
	if h.Object == nil {
		return "HtmlElement(nil)"
	}
	return fmt.Sprintf("HtmlElement{id=%q}", h.Object.ID)
}

// Add implements the '+' operator's value semantics: numeric addition
// when both sides are Number, else textual concatenation of the display
// forms (spec.md §4.5).
func Add(l, r Value) Value {
	ln, lok := l.(Number)
	rn, rok := r.(Number)
	if lok && rok {
		return ln + rn
	}
	return StringLit(l.String() + r.String())
}

// Sub implements '-': numeric subtraction when both sides are Number,
// else Number(0), the engine's stand-in for NaN (spec.md §4.5).
func Sub(l, r Value) Value {
	ln, lok := l.(Number)
	rn, rok := r.(Number)
	if lok && rok {
		return ln - rn
	}
	return Number(0)
}

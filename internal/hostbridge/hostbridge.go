// Package hostbridge implements the host bridge (component F, spec.md
// §4.6): it intercepts calls whose callee display form matches a
// reserved host name and performs the corresponding DOM lookup. It is
// the only part of the engine that reads the DOM directly; writes still
// go through AssignmentExpression in internal/interp.
package hostbridge

import (
	"github.com/cwbudde/saba/internal/ast"
	"github.com/cwbudde/saba/internal/domtree"
	"github.com/cwbudde/saba/internal/value"
)

// EvalFunc evaluates an argument AST node to a runtime value. The bridge
// takes this as a callback rather than an already-evaluated slice
// because, like original_source's call_browser_api, it only evaluates
// the arguments a claimed call actually needs.
type EvalFunc func(node ast.Node) (value.Value, error)

// getElementByID is the only host name recognized (spec.md §4.6).
const getElementByID = "document.getElementById"

// Call dispatches calleeDisplay against the reserved host names. claimed
// reports whether the call was recognized at all — a claimed call never
// falls through to user-function lookup (spec.md §4.5 step 3), even if
// it resolves to no result (e.g. get_element_by_id finds nothing).
func Call(calleeDisplay string, args []ast.Node, eval EvalFunc, domRoot *domtree.Node) (result value.Value, claimed bool, err error) {
	if calleeDisplay != getElementByID {
		return nil, false, nil
	}

	if len(args) == 0 {
		return nil, true, nil
	}

	arg, err := eval(args[0])
	if err != nil {
		return nil, true, err
	}
	if arg == nil {
		return nil, true, nil
	}

	target := domtree.GetElementByID(domRoot, arg.String())
	if target == nil {
		return nil, true, nil
	}

	return value.HTMLElement{Object: target}, true, nil
}

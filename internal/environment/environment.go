// Package environment implements the lexical-scope chain (component D,
// spec.md §4.4): an ordered list of name/value bindings plus an optional
// parent. Storage is deliberately linear rather than a map — frames are
// small (parameters plus a handful of vars) and Update's re-append
// semantics (§4.4) are observable via iteration order, which a map
// cannot express without extra bookkeeping.
package environment

// Environment is one scope frame. It places no constraint on the value
// type: V is a type parameter so internal/interp's Value type can be
// stored without an import cycle.
type Environment[V any] struct {
	bindings []binding[V]
	parent   *Environment[V]
}

type binding[V any] struct {
	name string
	val  V
	set  bool // false models "declared with no initializer" (spec.md §3)
}

// New creates a root environment with no parent.
func New[V any]() *Environment[V] {
	return &Environment[V]{}
}

// NewChild creates an environment enclosed by parent. CallExpression
// evaluation (spec.md §4.5 step 1) calls this for every invocation.
func NewChild[V any](parent *Environment[V]) *Environment[V] {
	return &Environment[V]{parent: parent}
}

// Get scans this frame in insertion order, then recurses into the
// parent. ok is false only when name exists in no ancestor; when ok is
// true, val may still be the zero value if the binding has no set value
// (an uninitialized `var x;`).
func (e *Environment[V]) Get(name string) (val V, hasValue bool, ok bool) {
	for _, b := range e.bindings {
		if b.name == name {
			return b.val, b.set, true
		}
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	var zero V
	return zero, false, false
}

// Add appends a new binding to the current frame. Shadowing an existing
// name in the same frame is permitted: Get's forward scan returns the
// first match, so Add does not displace an earlier binding of the same
// name within this frame (spec.md §4.4).
func (e *Environment[V]) Add(name string, val V, hasValue bool) {
	e.bindings = append(e.bindings, binding[V]{name: name, val: val, set: hasValue})
}

// Update scans only this frame. On a match it removes the old entry and
// appends a new one at the end — observable via iteration, not via Get.
// No match in this frame is a silent no-op; Update never walks into the
// parent (spec.md §4.4, and the Open Question in §9: reassigning an
// outer-scope variable from inside a function is a no-op by design here,
// not a bug to fix).
func (e *Environment[V]) Update(name string, val V, hasValue bool) {
	for i, b := range e.bindings {
		if b.name == name {
			e.bindings = append(e.bindings[:i], e.bindings[i+1:]...)
			e.bindings = append(e.bindings, binding[V]{name: name, val: val, set: hasValue})
			return
		}
	}
}

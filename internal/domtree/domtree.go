// Package domtree is the external DOM collaborator named in spec.md §6.
// The real DOM — its construction from HTML and its CSS styling — is out
// of scope for this module; what spec.md does require is the "Consumed
// DOM API": get_element_by_id, construction of a text-kind node, and
// setting an element's first child. This package implements just that,
// as a minimal in-memory tree, so internal/hostbridge and internal/interp
// have a real collaborator to mutate end to end.
package domtree

// Kind distinguishes a DOM node's role. Only Element and Text are needed
// by the scripting core; a Document root ties the tree together.
type Kind int

const (
	Document Kind = iota
	Element
	Text
)

// Node is a DOM tree node, shared by reference the way spec.md §9
// describes: "HtmlElement values hold shared mutable references to DOM
// nodes owned by the external DOM collaborator." Multiple runtime values
// may point at the same *Node; mutating through one is visible through
// all (spec.md §5).
type Node struct {
	Kind       Kind
	ID         string
	Tag        string
	Text       string
	Children   []*Node
	FirstChild *Node
}

// NewTextNode constructs a text-kind node from a string. This is the
// node-construction half of the Consumed DOM API (spec.md §6); it is
// called by AssignmentExpression evaluation when the left side resolves
// to an HtmlElement with a pending "textContent" property.
func NewTextNode(content string) *Node {
	return &Node{Kind: Text, Text: content}
}

// NewElement constructs an element node with the given id and tag.
func NewElement(id, tag string) *Node {
	return &Node{Kind: Element, ID: id, Tag: tag}
}

// SetFirstChild replaces n's first child with child, the other half of
// the Consumed DOM API: `target.textContent = "foobar"` lowers to this
// call with a freshly constructed text node (spec.md §4.5).
func (n *Node) SetFirstChild(child *Node) {
	n.FirstChild = child
	if len(n.Children) == 0 {
		n.Children = append(n.Children, child)
	} else {
		n.Children[0] = child
	}
}

// AddChild appends a child node, used when building a tree (e.g. from a
// fixture) rather than mutating one from script.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
	if n.FirstChild == nil {
		n.FirstChild = child
	}
}

// GetElementByID walks root depth-first and returns the first Element
// node whose ID matches id, or nil if none matches. This is
// get_element_by_id(root, id) from spec.md §6.
func GetElementByID(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	if root.Kind == Element && root.ID == id {
		return root
	}
	for _, child := range root.Children {
		if found := GetElementByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

package domtree

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// fixtureNode is the YAML shape a DOM fixture file is authored in:
//
//	id: main
//	tag: div
//	text: hello
//	children:
//	  - id: child
//	    tag: span
//
// This lets `saba run`/`saba watch` (cmd/saba) exercise the host bridge
// against a real tree without a full HTML parser, which is out of scope
// (spec.md §1).
type fixtureNode struct {
	ID       string        `yaml:"id"`
	Tag      string        `yaml:"tag"`
	Text     string        `yaml:"text"`
	Children []fixtureNode `yaml:"children"`
}

// LoadFixture parses a YAML DOM fixture into a *Node tree rooted at a
// synthetic Document node.
func LoadFixture(data []byte) (*Node, error) {
	var root fixtureNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("domtree: parsing fixture: %w", err)
	}
	return buildNode(root, true), nil
}

func buildNode(f fixtureNode, isRoot bool) *Node {
	n := &Node{Kind: Element, ID: f.ID, Tag: f.Tag}
	if isRoot {
		n.Kind = Document
	}
	if f.Text != "" {
		n.AddChild(NewTextNode(f.Text))
	}
	for _, c := range f.Children {
		n.AddChild(buildNode(c, false))
	}
	return n
}

// Dump renders a tree back to a nested map suitable for re-marshaling to
// YAML, used by `saba run --dump-dom` to show the mutated fixture.
func Dump(n *Node) map[string]any {
	if n == nil {
		return nil
	}
	out := map[string]any{}
	if n.ID != "" {
		out["id"] = n.ID
	}
	if n.Tag != "" {
		out["tag"] = n.Tag
	}
	var children []any
	for _, c := range n.Children {
		if c.Kind == Text {
			out["text"] = c.Text
			continue
		}
		children = append(children, Dump(c))
	}
	if len(children) > 0 {
		out["children"] = children
	}
	return out
}

// Marshal renders the tree as YAML text.
func Marshal(n *Node) ([]byte, error) {
	return yaml.Marshal(Dump(n))
}

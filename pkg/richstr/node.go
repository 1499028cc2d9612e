package richstr

import (
	"fmt"

	"github.com/arthur-debert/richconsole/pkg/style"
)

// child is either literal text or a nested node.
type child struct {
	text string
	node *Node
}

// Node is a styled string tree: an ordered list of children, each literal
// text or another Node, plus the sheet the node applies locally. A child's
// sheet overrides its parent's group by group while rendering; no sheet is
// ever modified by rendering.
//
// The same Node may appear under several parents. The tree must be acyclic:
// a cycle makes traversal recurse forever.
type Node struct {
	children []child
	sheet    style.Sheet
}

// New creates an unstyled node. Children may be *Node, string,
// fmt.Stringer or any other value, which is formatted with fmt.Sprint.
func New(children ...any) *Node {
	return WithSheet(nil, children...)
}

// WithSheet creates a node applying sheet to its children.
func WithSheet(sheet style.Sheet, children ...any) *Node {
	n := &Node{sheet: sheet.Clone()}
	n.Append(children...)
	return n
}

// Styled creates a node applying the given styles to its children, e.g.
//
//	richstr.Styled(red, "RRR", richstr.Styled(green, "GGG"), "rrr")
func Styled(s style.Style, children ...any) *Node {
	return WithSheet(style.SheetOf(s), children...)
}

// Concat joins parts into a new unstyled node.
func Concat(parts ...any) *Node {
	return New(parts...)
}

// Join interleaves items with delim, like strings.Join, and wraps the result
// in an unstyled node. A nil or empty delim concatenates the items.
func Join(delim any, items ...any) *Node {
	if delim == nil || delim == "" || len(items) == 0 {
		return New(items...)
	}
	parts := make([]any, 0, 2*len(items)-1)
	for i, item := range items {
		if i > 0 {
			parts = append(parts, delim)
		}
		parts = append(parts, item)
	}
	return New(parts...)
}

// Append adds children at the end of the node and returns the node.
// Output already rendered from the node is unaffected.
func (n *Node) Append(children ...any) *Node {
	for _, c := range children {
		n.children = append(n.children, toChild(c))
	}
	return n
}

func toChild(v any) child {
	switch c := v.(type) {
	case *Node:
		return child{node: c}
	case string:
		return child{text: c}
	case fmt.Stringer:
		return child{text: c.String()}
	default:
		return child{text: fmt.Sprint(c)}
	}
}

// Sheet returns a copy of the sheet applied locally by the node.
func (n *Node) Sheet() style.Sheet {
	return n.sheet.Clone()
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Plain returns the text of the tree with every style dropped.
func (n *Node) Plain() string {
	return Plain(n)
}

// String renders the tree with the default renderer.
func (n *Node) String() string {
	return Default.Render(n)
}

package richstr

import (
	"iter"
	"slices"

	"github.com/arthur-debert/richconsole/pkg/style"
)

// Token is one element of a flattened tree: either a sheet snapshot or a run
// of text. Every text run is preceded by the snapshot in effect for it.
type Token struct {
	Sheet style.Sheet
	Text  string
	text  bool
}

// IsText reports whether the token is a text run.
func (t Token) IsText() bool {
	return t.text
}

// Flatten walks the tree depth-first, left to right, starting from the
// inherited sheet. Each text child yields the node's effective sheet (the
// inherited one layered with the node's own) followed by the text.
//
// Snapshot sheets are shared between tokens and must not be modified.
func (n *Node) Flatten(inherited style.Sheet) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		n.walk(inherited, yield)
	}
}

func (n *Node) walk(inherited style.Sheet, yield func(Token) bool) bool {
	sheet := style.Layer(inherited, n.sheet)
	for _, c := range n.children {
		if c.node != nil {
			if !c.node.walk(sheet, yield) {
				return false
			}
			continue
		}
		if !yield(Token{Sheet: sheet}) {
			return false
		}
		if !yield(Token{Text: c.text, text: true}) {
			return false
		}
	}
	return true
}

// Plain returns the concatenated text of the tree, ignoring all styles.
func Plain(n *Node) string {
	var buf []byte
	for tok := range n.Flatten(nil) {
		if tok.IsText() {
			buf = append(buf, tok.Text...)
		}
	}
	return string(buf)
}

// collect flattens n from the catalog's reset sheet and appends the trailing
// default sheet that returns the terminal to its initial state.
func collect(c *style.Catalog, n *Node) []Token {
	tokens := slices.Collect(n.Flatten(style.ResetSheet(c)))
	return append(tokens, Token{Sheet: style.Sheet{}})
}

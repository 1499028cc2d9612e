package richstr

import (
	"iter"
	"slices"

	"github.com/arthur-debert/richconsole/pkg/sgr"
	"github.com/arthur-debert/richconsole/pkg/style"
)

// Default is the renderer used by Node.String. Setting Default.MergeCodes to
// false switches off code merging for every later render.
var Default = &Renderer{MergeCodes: true}

// Renderer turns a styled tree into an interleaved stream of control codes
// and text.
type Renderer struct {
	// Catalog resolves groups; nil means style.Default().
	Catalog *style.Catalog
	// MergeCodes joins adjacent control sequences into one escape.
	MergeCodes bool
}

// NewRenderer returns a renderer over the catalog with merging on.
func NewRenderer(c *style.Catalog) *Renderer {
	return &Renderer{Catalog: c, MergeCodes: true}
}

func (r *Renderer) catalog() *style.Catalog {
	if r.Catalog == nil {
		return style.Default()
	}
	return r.Catalog
}

// Tokens returns the flattened tree: sheet snapshots and text runs, starting
// from the reset sheet and ending with the default (empty) sheet.
func (r *Renderer) Tokens(n *Node) []Token {
	return collect(r.catalog(), n)
}

// Stream converts flattened tokens into the minimal code/text stream.
//
// The terminal starts in the neutral state. Before every text run the patch
// from the current state to the pending snapshot is emitted, if not empty.
// When the input ends, the patch back to the default sheet closes the
// stream so nothing leaks past the rendered text.
func Stream(c *style.Catalog, tokens iter.Seq[Token]) iter.Seq[sgr.Token] {
	return func(yield func(sgr.Token) bool) {
		current := style.NeutralSheet(c)
		pending := current
		for tok := range tokens {
			if !tok.IsText() {
				pending = tok.Sheet
				continue
			}
			if codes := style.Diff(c, current, pending).Codes(); !codes.Empty() {
				if !yield(sgr.Code(codes)) {
					return
				}
			}
			current = pending
			if !yield(sgr.Text(tok.Text)) {
				return
			}
		}
		if codes := style.Diff(c, current, style.Sheet{}).Codes(); !codes.Empty() {
			yield(sgr.Code(codes))
		}
	}
}

func (r *Renderer) stream(nodes ...*Node) iter.Seq[sgr.Token] {
	c := r.catalog()
	s := func(yield func(sgr.Token) bool) {
		for _, n := range nodes {
			for tok := range Stream(c, slices.Values(collect(c, n))) {
				if !yield(tok) {
					return
				}
			}
		}
	}
	if r.MergeCodes {
		return sgr.Merge(s)
	}
	return s
}

// Codes returns the optimised stream of control codes and text for n.
func (r *Renderer) Codes(n *Node) []sgr.Token {
	return slices.Collect(r.stream(n))
}

// Render returns n as a terminal string.
func (r *Renderer) Render(n *Node) string {
	return r.RenderAll(n)
}

// RenderAll renders the trees back to back. Each tree closes its own styles;
// with merging on, the closing codes of one tree and the opening codes of
// the next share a single escape sequence.
func (r *Renderer) RenderAll(nodes ...*Node) string {
	return sgr.Join(r.stream(nodes...))
}

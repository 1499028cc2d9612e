package richstr

import (
	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/beevik/etree"
)

// HTML exports the tree as nested <span> elements, one per node. Each span
// carries the inline CSS of that node's own sheet only; nesting provides the
// inheritance. Nodes whose sheet has no CSS equivalent get a bare span.
func (r *Renderer) HTML(n *Node) (string, error) {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalEndTags: true,
		CanonicalText:    true,
		AttrSingleQuote:  true,
	}
	r.htmlNode(&doc.Element, n)

	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to write HTML")
	}
	return out, nil
}

func (r *Renderer) htmlNode(parent *etree.Element, n *Node) *etree.Element {
	span := parent.CreateElement("span")
	if css := r.catalog().CSS(n.sheet); css != "" {
		span.CreateAttr("style", css)
	}
	for _, c := range n.children {
		if c.node != nil {
			r.htmlNode(span, c.node)
			continue
		}
		span.CreateText(c.text)
	}
	return span
}

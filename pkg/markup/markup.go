package markup

import (
	"strings"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/arthur-debert/richconsole/pkg/richstr"
	"github.com/arthur-debert/richconsole/pkg/style"
	"github.com/beevik/etree"
)

const (
	rootTag  = "markup"
	styleTag = "style"
	spanTag  = "span"
)

// Parser turns tagged text into styled trees. Three kinds of tags are known:
//
//	<Fore.red>...</Fore.red>                    one style, named Group.style
//	<style fore="red" brightness="bright">...</style>  several styles at once
//	<span>...</span>                            grouping without styles
//
// Group names are matched case-insensitively. Character references such as
// &lt; are decoded in text.
type Parser struct {
	catalog *style.Catalog
	groups  map[string]string
}

// NewParser returns a parser resolving names against cat; nil means
// style.Default().
func NewParser(cat *style.Catalog) *Parser {
	if cat == nil {
		cat = style.Default()
	}
	groups := make(map[string]string)
	for _, name := range cat.Names() {
		groups[strings.ToLower(name)] = name
	}
	return &Parser{catalog: cat, groups: groups}
}

// Parse parses src with a parser over style.Default().
func Parse(src string) (*richstr.Node, error) {
	return NewParser(nil).Parse(src)
}

// Parse converts src into a tree. Malformed markup fails with MARKUP_PARSE;
// unknown names fail with UNKNOWN_GROUP or UNKNOWN_STYLE.
func (p *Parser) Parse(src string) (*richstr.Node, error) {
	root, err := read(src)
	if err != nil {
		return nil, err
	}
	return p.node(root, nil)
}

func read(src string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + src + "</" + rootTag + ">"); err != nil {
		return nil, errors.Wrap(err, errors.ErrMarkupParse, "malformed markup").
			WithDetail("input", src)
	}
	return doc.Root(), nil
}

func (p *Parser) node(e *etree.Element, sheet style.Sheet) (*richstr.Node, error) {
	n := richstr.WithSheet(sheet)
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			n.Append(t.Data)
		case *etree.Element:
			s, err := p.sheet(t)
			if err != nil {
				return nil, err
			}
			c, err := p.node(t, s)
			if err != nil {
				return nil, err
			}
			n.Append(c)
		}
	}
	return n, nil
}

func (p *Parser) sheet(e *etree.Element) (style.Sheet, error) {
	tag := e.FullTag()
	switch {
	case tag == spanTag:
		return nil, nil
	case tag == styleTag:
		var styles []style.Style
		for _, attr := range e.Attr {
			s, err := p.lookup(attr.Key, attr.Value)
			if err != nil {
				return nil, err
			}
			styles = append(styles, s)
		}
		return style.SheetOf(styles...), nil
	}

	group, name, ok := strings.Cut(tag, ".")
	if !ok {
		return nil, errors.Newf(errors.ErrMarkupParse, "unknown tag <%s>", tag).
			WithDetail("tag", tag)
	}
	s, err := p.lookup(group, name)
	if err != nil {
		return nil, err
	}
	return style.SheetOf(s), nil
}

func (p *Parser) lookup(group, name string) (style.Style, error) {
	canonical, ok := p.groups[strings.ToLower(group)]
	if !ok {
		return style.Style{}, errors.Newf(errors.ErrUnknownGroup, "unknown group %q", group).
			WithDetail("group", group)
	}
	return p.catalog.Style(canonical, name)
}

// Strip returns the text of src with all tags removed and references
// decoded. Names are not resolved.
func Strip(src string) (string, error) {
	root, err := read(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	strip(&b, root)
	return b.String(), nil
}

func strip(b *strings.Builder, e *etree.Element) {
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			strip(b, t)
		}
	}
}

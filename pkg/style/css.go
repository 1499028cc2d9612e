package style

import (
	"strings"
)

// CSSFunc converts one style of a group into a CSS declaration. ok is false
// when the style has no CSS equivalent.
type CSSFunc func(s Style) (property, value string, ok bool)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// ColorCSS converts colours to color / background-color declarations.
func ColorCSS(s Style) (string, string, bool) {
	property, value, err := s.CSSProperty()
	if err != nil {
		return "", "", false
	}
	return property, value, true
}

// DeclarationCSS returns a CSSFunc mapping style names to fixed declarations.
func DeclarationCSS(table map[string]Declaration) CSSFunc {
	return func(s Style) (string, string, bool) {
		d, ok := table[s.name]
		if !ok {
			return "", "", false
		}
		return d.Property, d.Value, true
	}
}

// SetCSS installs the group's CSS conversion. A nil func makes the group
// contribute nothing to exported markup.
func (g *Group) SetCSS(fn CSSFunc) {
	g.css = fn
}

// CSS converts a style of this group to a CSS declaration.
func (g *Group) CSS(s Style) (property, value string, ok bool) {
	if g.css == nil {
		return "", "", false
	}
	return g.css(s)
}

// CSS returns the inline CSS equivalent of a sheet, e.g.
// "color:#ff0000;background-color:#77ff77". Groups are visited in catalog
// order; a later declaration of the same property replaces an earlier one.
func (c *Catalog) CSS(sheet Sheet) string {
	var decls []Declaration
	index := make(map[string]int)
	for _, g := range c.Groups() {
		s, ok := sheet[g.name]
		if !ok || s.IsNeutral() {
			continue
		}
		property, value, ok := g.CSS(s)
		if !ok {
			continue
		}
		if i, seen := index[property]; seen {
			decls[i].Value = value
			continue
		}
		index[property] = len(decls)
		decls = append(decls, Declaration{Property: property, Value: value})
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+":"+d.Value)
	}
	return strings.Join(parts, ";")
}

package style

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/richconsole/pkg/errors"
)

// Catalog is an ordered registry of groups. The enumeration order is fixed
// when a group is added and never changes, which keeps diffs reproducible.
type Catalog struct {
	groups map[string]*Group
	order  []string
}

// NewCatalog returns a catalog holding the built-in groups. Fore and Back
// start with only their reset styles; colour names come from palette imports.
func NewCatalog() *Catalog {
	c := &Catalog{groups: make(map[string]*Group)}
	for _, g := range builtinGroups() {
		if err := c.AddGroup(g); err != nil {
			panic(err)
		}
	}
	return c
}

func builtinGroups() []*Group {
	fonts := make([]Style, 0, 9)
	for i := 0; i < 9; i++ {
		fonts = append(fonts, NewStyle(fmt.Sprintf("f%d", i), 11+i))
	}

	back := mustGroup(NewColorGroup(GroupBack, true, NewStyle(ResetName, 49)))
	fore := mustGroup(NewColorGroup(GroupFore, false, NewStyle(ResetName, 39)))

	brightness := mustGroup(NewGroup(GroupBrightness, NewStyle(ResetName, 21),
		NewStyle("bright", 1),
		NewStyle("dim", 2),
	))
	brightness.css = DeclarationCSS(map[string]Declaration{
		"bright": {"font-weight", "bold"},
		"dim":    {"font-weight", "lighter"},
	})

	decor := mustGroup(NewGroup(GroupDecor, NewStyle(ResetName, 23),
		NewStyle("italic", 3),
		NewStyle("fraktur", 20),
	))
	decor.css = DeclarationCSS(map[string]Declaration{
		"italic": {"font-style", "italic"},
	})

	underline := mustGroup(NewGroup(GroupUnderline, NewStyle(ResetName, 24),
		NewStyle("underline", 4),
	))
	underline.css = DeclarationCSS(map[string]Declaration{
		"underline": {"text-decoration", "underline"},
	})

	crossedOut := mustGroup(NewGroup(GroupCrossedOut, NewStyle(ResetName, 29),
		NewStyle("crossedOut", 9),
	))
	crossedOut.css = DeclarationCSS(map[string]Declaration{
		"crossedOut": {"text-decoration", "line-through"},
	})

	conceal := mustGroup(NewGroup(GroupConceal, NewStyle(ResetName, 28),
		NewStyle("conceal", 8),
	))
	conceal.css = DeclarationCSS(map[string]Declaration{
		"conceal": {"visibility", "hidden"},
	})

	blink := mustGroup(NewGroup(GroupBlink, NewStyle(ResetName, 25),
		NewStyle("slow", 5),
		NewStyle("rapid", 6),
	))

	frame := mustGroup(NewGroup(GroupFrame, NewStyle(ResetName, 54),
		NewStyle("framed", 51),
		NewStyle("encircled", 52),
	))

	overline := mustGroup(NewGroup(GroupOverline, NewStyle(ResetName, 55),
		NewStyle("overlined", 53),
	))
	overline.css = DeclarationCSS(map[string]Declaration{
		"overlined": {"text-decoration", "overline"},
	})

	ideogram := mustGroup(NewGroup(GroupIdeogram, NewStyle(ResetName, 65),
		NewStyle("singleUnderOrRight", 60),
		NewStyle("doubleUpperOrRight", 61),
		NewStyle("singleOverOrLeft", 62),
		NewStyle("doubleOverOrLeft", 63),
		NewStyle("stress", 64),
	))

	font := mustGroup(NewGroup(GroupFont, NewStyle(ResetName, 10), fonts...))

	return []*Group{
		back, fore, brightness, decor, underline, crossedOut,
		conceal, blink, frame, overline, ideogram, font,
	}
}

// AddGroup appends a group to the enumeration order. Groups are never
// removed or replaced.
func (c *Catalog) AddGroup(g *Group) error {
	if _, exists := c.groups[g.name]; exists {
		return errors.Newf(errors.ErrInvalidInput, "group %s is already registered", g.name).
			WithDetail("group", g.name)
	}
	c.groups[g.name] = g
	c.order = append(c.order, g.name)
	return nil
}

// Group returns the named group.
func (c *Catalog) Group(name string) (*Group, bool) {
	g, ok := c.groups[name]
	return g, ok
}

// Lookup returns the named group or UNKNOWN_GROUP.
func (c *Catalog) Lookup(name string) (*Group, error) {
	g, ok := c.groups[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownGroup, "no group named %q", name).
			WithDetail("group", name)
	}
	return g, nil
}

// Style returns the style registered as name in the named group.
func (c *Catalog) Style(group, name string) (Style, error) {
	g, err := c.Lookup(group)
	if err != nil {
		return Style{}, err
	}
	return g.Lookup(name)
}

// MustStyle is Style that panics on lookup failure.
func (c *Catalog) MustStyle(group, name string) Style {
	s, err := c.Style(group, name)
	if err != nil {
		panic(err)
	}
	return s
}

// Groups returns the groups in enumeration order.
func (c *Catalog) Groups() []*Group {
	out := make([]*Group, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.groups[name])
	}
	return out
}

// Names returns the group names in enumeration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Fore returns the foreground colour group.
func (c *Catalog) Fore() *Group {
	return c.groups[GroupFore]
}

// Back returns the background colour group.
func (c *Catalog) Back() *Group {
	return c.groups[GroupBack]
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, building the built-in groups on
// first use. Palette imports extend it; see palette.Init.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

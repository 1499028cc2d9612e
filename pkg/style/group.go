package style

import (
	"github.com/arthur-debert/richconsole/pkg/errors"
)

// Built-in group names, in catalog enumeration order.
const (
	GroupBack       = "Back"
	GroupFore       = "Fore"
	GroupBrightness = "Brightness"
	GroupDecor      = "Decor"
	GroupUnderline  = "Underline"
	GroupCrossedOut = "CrossedOut"
	GroupConceal    = "Conceal"
	GroupBlink      = "Blink"
	GroupFrame      = "Frame"
	GroupOverline   = "Overline"
	GroupIdeogram   = "Ideogram"
	GroupFont       = "Font"
)

// ResetName is the name every group registers its reset style under.
const ResetName = "reset"

type plane int

const (
	planeNone plane = iota
	planeFore
	planeBack
)

// Group is a category of mutually exclusive styles with one designated reset
// style. Styles are enumerated in the order they were first added.
//
// A group may be extended after construction; extension must happen before
// any concurrent reader looks at the group.
type Group struct {
	name   string
	styles map[string]Style
	order  []string
	reset  Style
	plane  plane
	css    CSSFunc
}

// NewGroup creates a non-colour group. The reset style must be a plain style
// with at least one code, otherwise the diff normalisation cannot tell it
// apart from Neutral and RESET_INVALID is returned.
func NewGroup(name string, reset Style, styles ...Style) (*Group, error) {
	return newGroup(name, planeNone, reset, styles)
}

// NewColorGroup creates a group holding colours of one plane. Colours added
// to it are moved to that plane.
func NewColorGroup(name string, bg bool, reset Style, styles ...Style) (*Group, error) {
	p := planeFore
	if bg {
		p = planeBack
	}
	return newGroup(name, p, reset, styles)
}

func newGroup(name string, p plane, reset Style, styles []Style) (*Group, error) {
	if reset.kind != KindPlain || reset.IsNeutral() {
		return nil, errors.Newf(errors.ErrResetInvalid,
			"group %s: reset must be a plain style with codes, got %s style %q", name, reset.kind, reset.name).
			WithDetail("group", name)
	}
	g := &Group{
		name:   name,
		styles: make(map[string]Style, len(styles)+1),
		plane:  p,
	}
	if p != planeNone {
		g.css = ColorCSS
	}
	for _, s := range styles {
		if _, err := g.Add(s); err != nil {
			return nil, err
		}
	}
	reset.name = ResetName
	added, err := g.Add(reset)
	if err != nil {
		return nil, err
	}
	g.reset = added
	return g, nil
}

func mustGroup(g *Group, err error) *Group {
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Reset returns the style restoring the group's default state.
func (g *Group) Reset() Style {
	return g.reset
}

// IsColor reports whether the group holds foreground or background colours.
func (g *Group) IsColor() bool {
	return g.plane != planeNone
}

// Add registers a style under its name and returns the registered copy, whose
// back-reference points to this group. A name that already exists is
// replaced in place, keeping its enumeration position.
//
// Colours may only be added to a colour group; anything else fails with
// GROUP_MISMATCH naming both legal groups.
func (g *Group) Add(s Style) (Style, error) {
	if s.kind.IsColor() {
		switch g.plane {
		case planeFore:
			s = s.WithBg(false)
		case planeBack:
			s = s.WithBg(true)
		default:
			return Style{}, errors.Newf(errors.ErrGroupMismatch,
				"group must be either %s or %s, %s given", GroupFore, GroupBack, g.name).
				WithDetail("group", g.name).
				WithDetail("style", s.name)
		}
	}
	s.category = g.name
	s.group = g
	if _, exists := g.styles[s.name]; !exists {
		g.order = append(g.order, s.name)
	}
	g.styles[s.name] = s
	return s, nil
}

// Get returns the named style.
func (g *Group) Get(name string) (Style, bool) {
	s, ok := g.styles[name]
	return s, ok
}

// Lookup returns the named style or UNKNOWN_STYLE.
func (g *Group) Lookup(name string) (Style, error) {
	s, ok := g.styles[name]
	if !ok {
		return Style{}, errors.Newf(errors.ErrUnknownStyle, "group %s has no style %q", g.name, name).
			WithDetail("group", g.name).
			WithDetail("style", name)
	}
	return s, nil
}

// MustGet returns the named style and panics when it does not exist.
func (g *Group) MustGet(name string) Style {
	s, err := g.Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the style names in enumeration order.
func (g *Group) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Styles returns the styles in enumeration order.
func (g *Group) Styles() []Style {
	out := make([]Style, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.styles[name])
	}
	return out
}

// Len returns the number of registered styles, reset included.
func (g *Group) Len() int {
	return len(g.order)
}

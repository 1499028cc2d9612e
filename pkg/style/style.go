package style

import (
	"fmt"

	"github.com/arthur-debert/richconsole/pkg/sgr"
)

// Kind identifies the concrete flavour of a Style.
type Kind int

const (
	// KindPlain is an attribute style (bold, underline...) or a bare code sequence
	KindPlain Kind = iota
	// KindBasic is one of the 16 basic colours (30-37, 90-97 and their backgrounds)
	KindBasic
	// KindIndexed is a colour from the 256 colour palette (38;5;n)
	KindIndexed
	// KindRGB is a true colour (38;2;r;g;b)
	KindRGB
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindBasic:
		return "basic"
	case KindIndexed:
		return "indexed"
	case KindRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// IsColor reports whether the kind is one of the colour kinds.
func (k Kind) IsColor() bool {
	return k == KindBasic || k == KindIndexed || k == KindRGB
}

// Style is an immutable atomic style: a control code sequence, an optional
// name and the name of the category it occupies. When the style was added to
// a Group it also keeps a back-reference to that group.
type Style struct {
	name     string
	codes    sgr.Codes
	category string
	group    *Group
	kind     Kind
}

var (
	// Neutral means "no opinion": it carries no codes and no category. It is
	// distinct from every category's reset style.
	Neutral = Style{name: "neutral"}

	// Reset is the full SGR reset. It belongs to no category.
	Reset = NewStyle("reset", 0)
)

// NewStyle creates a plain style outside of any category.
func NewStyle(name string, codes ...int) Style {
	return Style{name: name, codes: sgr.Codes(codes).Clone()}
}

// Name returns the human readable name, possibly empty.
func (s Style) Name() string {
	return s.name
}

// Codes returns a copy of the style's control codes.
func (s Style) Codes() sgr.Codes {
	return s.codes.Clone()
}

// Kind returns the concrete flavour of the style.
func (s Style) Kind() Kind {
	return s.kind
}

// Group returns the group this style was registered in, or nil.
func (s Style) Group() *Group {
	return s.group
}

// GroupName returns the category the style occupies. Colours that were never
// registered in a group still report Fore or Back depending on their plane.
func (s Style) GroupName() string {
	return s.category
}

// IsNeutral reports whether the style carries no codes at all.
func (s Style) IsNeutral() bool {
	return len(s.codes) == 0
}

// Equal compares two styles by their control codes only.
func (s Style) Equal(other Style) bool {
	return s.codes.Equal(other.codes)
}

// String renders the style's escape sequence.
func (s Style) String() string {
	return s.codes.String()
}

// GoString describes the style for debugging, e.g. Fore:red(\x1b[31m).
func (s Style) GoString() string {
	name := s.name
	if name == "" {
		name = "<unnamed>"
	}
	if s.category != "" {
		name = s.category + ":" + name
	}
	return fmt.Sprintf("%s(%q)", name, s.codes.String())
}

// Combine concatenates two styles. Styles of the same category yield a style
// in that category named "a&b"; styles of different categories yield a bare
// code sequence with no name and no category, since both now share one slot.
func Combine(a, b Style) Style {
	codes := a.codes.Concat(b.codes)
	if a.category == b.category {
		return Style{
			name:     a.name + "&" + b.name,
			codes:    codes,
			category: a.category,
			group:    a.group,
		}
	}
	return Style{codes: codes}
}

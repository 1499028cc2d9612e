package style

import (
	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/arthur-debert/richconsole/pkg/sgr"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Colour codes occupy [30; 50) plus the intensive range [90; 110).
//
//	code = colorRangeOffset + basicIndex + (bg ? backgroundOffset : 0) + (intensive ? intensiveOffset : 0)
const (
	colorRangeOffset = 30
	backgroundOffset = 10
	intensiveOffset  = 60
	// basic index reserved for the 38/48 extended colour introducers
	extendedIndex = 8

	extendedIndexed = 5
	extendedRGB     = 2
)

// channel levels used when approximating basic colours as RGB
const (
	normalLevel    = 0x77
	intensiveLevel = 0xff
)

// NewBasicColor creates one of the 16 basic colours. basicIndex is 0-7
// (black, red, green, yellow, blue, magenta, cyan, white).
func NewBasicColor(name string, basicIndex int, intensive, bg bool) Style {
	code := colorRangeOffset + basicIndex
	if bg {
		code += backgroundOffset
	}
	if intensive {
		code += intensiveOffset
	}
	return ParseBasicColor(name, code)
}

// ParseBasicColor creates a basic colour from its raw SGR code, e.g. 31 or 102.
func ParseBasicColor(name string, code int) Style {
	s := Style{name: name, codes: sgr.Of(code), kind: KindBasic}
	s.category = planeName(s.Bg())
	return s
}

// NewIndexedColor creates a colour from the terminal's 256 colour palette.
func NewIndexedColor(name string, index uint8, bg bool) Style {
	s := Style{
		name:  name,
		codes: sgr.Of(colorRangeOffset+extendedIndex, extendedIndexed, int(index)),
		kind:  KindIndexed,
	}
	return s.WithBg(bg)
}

// NewRGBColor creates a true colour. An empty name defaults to the CSS hex
// notation of the colour.
func NewRGBColor(name string, r, g, b uint8, bg bool) Style {
	if name == "" {
		name = hexOf(r, g, b)
	}
	s := Style{
		name:  name,
		codes: sgr.Of(colorRangeOffset+extendedIndex, extendedRGB, int(r), int(g), int(b)),
		kind:  KindRGB,
	}
	return s.WithBg(bg)
}

func planeName(bg bool) string {
	if bg {
		return GroupBack
	}
	return GroupFore
}

// mainCode is the first code of a colour, the one carrying the plane and
// intensity offsets.
func (s Style) mainCode() int {
	if len(s.codes) == 0 {
		return 0
	}
	return s.codes[0]
}

func (s Style) withMainCode(code int) Style {
	codes := s.codes.Clone()
	codes[0] = code
	s.codes = codes
	return s
}

// Bg reports whether a colour applies to the background. It is false for
// non-colour styles.
func (s Style) Bg() bool {
	if !s.kind.IsColor() {
		return false
	}
	return s.mainCode()%colorRangeOffset >= backgroundOffset
}

// BasicIndex returns the colour's basic index: 0-7 for basic colours and
// 8 for extended (indexed or RGB) colours.
func (s Style) BasicIndex() int {
	return s.mainCode() % colorRangeOffset % backgroundOffset
}

// Intensive reports whether a basic colour uses the bright range (90-97, 100-107).
func (s Style) Intensive() bool {
	return s.kind == KindBasic && s.mainCode() >= colorRangeOffset+intensiveOffset
}

// WithBg returns the colour moved to the requested plane. The category
// follows the plane. Non-colour styles are returned unchanged.
func (s Style) WithBg(bg bool) Style {
	if !s.kind.IsColor() {
		return s
	}
	if s.Bg() != bg {
		delta := backgroundOffset
		if !bg {
			delta = -delta
		}
		s = s.withMainCode(s.mainCode() + delta)
	}
	s.category = planeName(bg)
	if s.group != nil && s.group.name != s.category {
		s.group = nil
	}
	return s
}

// WithIntensive returns a basic colour moved in or out of the bright range.
func (s Style) WithIntensive(intensive bool) Style {
	if s.kind != KindBasic || s.Intensive() == intensive {
		return s
	}
	delta := intensiveOffset
	if !intensive {
		delta = -delta
	}
	return s.withMainCode(s.mainCode() + delta)
}

// Index returns the palette index of an indexed colour.
func (s Style) Index() (uint8, bool) {
	if s.kind != KindIndexed {
		return 0, false
	}
	return uint8(s.codes[2]), true
}

// ToRGB converts a colour to its RGB approximation. Styles that are not
// colours fail with NOT_IMPLEMENTED.
func (s Style) ToRGB() (r, g, b uint8, err error) {
	switch s.kind {
	case KindBasic:
		level := normalLevel
		if s.Intensive() {
			level = intensiveLevel
		}
		idx := s.BasicIndex()
		ch := func(bit int) uint8 { return uint8(((idx >> bit) & 1) * level) }
		return ch(0), ch(1), ch(2), nil
	case KindRGB:
		return uint8(s.codes[2]), uint8(s.codes[3]), uint8(s.codes[4]), nil
	case KindIndexed:
		c := termenv.ConvertToRGB(termenv.ANSI256Color(s.codes[2]))
		r, g, b := c.RGB255()
		return r, g, b, nil
	default:
		return 0, 0, 0, errors.Newf(errors.ErrNotImplemented,
			"RGB conversion is not implemented for %s styles", s.kind).
			WithDetail("style", s.name)
	}
}

// ToRGBColor converts a colour to an equivalent true colour on the same plane.
func (s Style) ToRGBColor() (Style, error) {
	r, g, b, err := s.ToRGB()
	if err != nil {
		return Style{}, err
	}
	return NewRGBColor(s.name, r, g, b, s.Bg()), nil
}

// CSSColor returns the colour in CSS hex notation, e.g. #ff0000.
func (s Style) CSSColor() (string, error) {
	r, g, b, err := s.ToRGB()
	if err != nil {
		return "", err
	}
	return hexOf(r, g, b), nil
}

// CSSProperty returns the CSS declaration equivalent to a colour:
// "color" for foreground, "background-color" for background.
func (s Style) CSSProperty() (property, value string, err error) {
	value, err = s.CSSColor()
	if err != nil {
		return "", "", err
	}
	property = "color"
	if s.Bg() {
		property = "background-color"
	}
	return property, value, nil
}

// Invert returns the complementary true colour.
func (s Style) Invert() (Style, error) {
	if s.kind != KindRGB {
		return Style{}, errors.Newf(errors.ErrNotImplemented,
			"inversion is not implemented for %s styles", s.kind).
			WithDetail("style", s.name)
	}
	r, g, b, _ := s.ToRGB()
	return NewRGBColor("", 0xff-r, 0xff-g, 0xff-b, s.Bg()), nil
}

func hexOf(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hex()
}

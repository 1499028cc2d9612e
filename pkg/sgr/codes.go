package sgr

import (
	"slices"
	"strconv"
	"strings"
)

// CSI sequence fragments for Select Graphic Rendition.
const (
	csi    = "\x1b["
	csiEnd = "m"
)

// Codes is an ordered sequence of SGR parameters. A nil or empty Codes is a
// no-op and renders to the empty string.
type Codes []int

// Of builds a Codes value from its arguments.
func Of(codes ...int) Codes {
	return Codes(codes)
}

// String renders the sequence as a single escape sequence, e.g. "\x1b[31;102m".
func (c Codes) String() string {
	if len(c) == 0 {
		return ""
	}
	return csi + c.Params() + csiEnd
}

// Params renders the parameters alone, e.g. "31;102".
func (c Codes) Params() string {
	var b strings.Builder
	b.Grow(len(c) * 4)
	for i, code := range c {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(code))
	}
	return b.String()
}

// Concat returns a new sequence holding c followed by other. Neither input is
// modified.
func (c Codes) Concat(other Codes) Codes {
	out := make(Codes, 0, len(c)+len(other))
	out = append(out, c...)
	return append(out, other...)
}

// Equal reports whether both sequences hold the same parameters in the same order.
func (c Codes) Equal(other Codes) bool {
	return slices.Equal(c, other)
}

// Empty reports whether the sequence renders to nothing.
func (c Codes) Empty() bool {
	return len(c) == 0
}

// Clone returns an independent copy.
func (c Codes) Clone() Codes {
	if c == nil {
		return nil
	}
	return slices.Clone(c)
}

package palette

import (
	"github.com/arthur-debert/richconsole/pkg/style"
	"golang.org/x/image/colornames"
)

type namedSource struct{}

// Named returns the SVG 1.1 colour keywords (aliceblue, tomato, ...) as
// true colours.
func Named() Source {
	return namedSource{}
}

func (namedSource) Name() string { return "named" }

func (namedSource) Entries() ([]style.Style, error) {
	entries := make([]style.Style, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		entries = append(entries, style.NewRGBColor(name, c.R, c.G, c.B, false))
	}
	return entries, nil
}

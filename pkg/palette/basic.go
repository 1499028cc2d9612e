package palette

import (
	"sort"

	"github.com/arthur-debert/richconsole/pkg/style"
	"github.com/fatih/color"
	gookit "github.com/gookit/color"
)

var basicNames = []string{"BLACK", "RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "WHITE"}

type basicSource struct{}

// Basic returns the 16 standard terminal colours, named the way colorama
// names them and converted to camelCase: red, green, ..., lightredEx,
// lightgreenEx, ...
func Basic() Source {
	return basicSource{}
}

func (basicSource) Name() string { return "basic" }

func (basicSource) Entries() ([]style.Style, error) {
	entries := make([]style.Style, 0, 2*len(basicNames))
	for i, name := range basicNames {
		entries = append(entries, style.ParseBasicColor(CamelCase(name), int(color.FgBlack)+i))
	}
	for i, name := range basicNames {
		entries = append(entries, style.ParseBasicColor(CamelCase("LIGHT"+name+"_EX"), int(color.FgHiBlack)+i))
	}
	return entries, nil
}

type gookitSource struct{}

// Gookit returns the 16 terminal colours under gookit/color's names: red,
// lightRed, darkGray, ...
func Gookit() Source {
	return gookitSource{}
}

func (gookitSource) Name() string { return "gookit" }

func (gookitSource) Entries() ([]style.Style, error) {
	var entries []style.Style
	for _, table := range []map[string]gookit.Color{gookit.FgColors, gookit.ExFgColors} {
		names := make([]string, 0, len(table))
		for name, c := range table {
			// the default colour is the group reset
			if c == gookit.FgDefault {
				continue
			}
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			entries = append(entries, style.ParseBasicColor(name, int(table[name])))
		}
	}
	return entries, nil
}

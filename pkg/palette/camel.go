package palette

import (
	"regexp"
	"strings"
)

var underscoreWord = regexp.MustCompile(`_\w`)

// CamelCase converts an underscore separated name to camelCase:
// LIGHTGREEN_EX becomes lightgreenEx and dark_olive_green darkOliveGreen.
func CamelCase(s string) string {
	return underscoreWord.ReplaceAllStringFunc(strings.ToLower(s), func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

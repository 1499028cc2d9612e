// Package sgr models terminal Select Graphic Rendition parameters.
//
// A Codes value is an ordered list of integer parameters that renders to one
// escape sequence of the form ESC [ n ; n ... m. An empty Codes renders to the
// empty string, never to a bare ESC[m.
//
// Rendered output is modelled as a stream of Tokens, each either literal text
// or a Codes value. Merge collapses adjacent code tokens into one:
//
//	"1" [31] [44] "2"  ->  "1" [31;44] "2"
package sgr

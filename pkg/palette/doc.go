// Package palette registers named colours in the Fore and Back groups of a
// style catalog.
//
// Colours come from sources: the 16 terminal colours (Basic, Gookit), the
// SVG colour keywords (Named) and user palette files (File). Import applies
// them in order so later sources redefine earlier names.
package palette

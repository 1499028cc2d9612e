// Package richstr builds styled strings as trees and renders them to
// terminal output with the fewest SGR codes needed.
//
// A Node holds text and nested nodes plus the styles it applies. Rendering
// flattens the tree into sheet snapshots and text runs, diffs consecutive
// snapshots group by group, and merges adjacent code sequences:
//
//	red := cat.MustStyle(style.GroupFore, "red")
//	n := richstr.New("DDD", richstr.Styled(red, "RRR"), "ddd")
//	richstr.NewRenderer(cat).Render(n) // "DDD\x1b[31mRRR\x1b[39mddd"
//
// Rendering never modifies the tree, so a node may be rendered on its own
// and as part of any number of parents.
package richstr

// Package style holds the style model: atomic styles, the categories
// (groups) they belong to, the catalog of groups and style sheets.
//
// A Style is a control code sequence plus the name of the group it occupies.
// Groups are mutually exclusive: a Sheet holds at most one style per group,
// and Diff computes the minimal Patch between two sheets by visiting the
// catalog's groups in their fixed order.
//
// Two "no change" notions are kept apart. A group missing from a sheet reads
// as the group's reset style, so leaving a styled span resets it. Neutral is
// the "no opinion" sentinel: layering it changes nothing, and moving from
// Neutral to reset emits nothing.
//
//	cat := style.Default()
//	bright := cat.MustStyle(style.GroupBrightness, "bright")
//	patch := style.Diff(cat, style.Sheet{}, style.SheetOf(bright))
//	fmt.Print(patch.Codes()) // "\x1b[1m"
//
// The process-wide catalog returned by Default is built once and extended by
// palette imports. Extension is append-only and must complete before
// concurrent readers use the catalog.
package style

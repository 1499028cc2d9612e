package style

import (
	"github.com/arthur-debert/richconsole/pkg/sgr"
)

// Sheet is a snapshot of active styles, keyed by group name, with at most one
// style per group. A group missing from a sheet reads as that group's reset.
//
// Sheets are treated as immutable: every operation returns a new sheet.
type Sheet map[string]Style

// SheetOf builds a sheet from styles, keyed by their group. A later style for
// the same group wins. Styles without a group have no slot and are skipped.
func SheetOf(styles ...Style) Sheet {
	sheet := make(Sheet, len(styles))
	for _, s := range styles {
		if s.category == "" {
			continue
		}
		sheet[s.category] = s
	}
	return sheet
}

// NeutralSheet maps every group of the catalog to Neutral: "make no changes".
func NeutralSheet(c *Catalog) Sheet {
	sheet := make(Sheet, len(c.order))
	for _, name := range c.order {
		sheet[name] = Neutral
	}
	return sheet
}

// ResetSheet maps every group of the catalog to its reset style.
func ResetSheet(c *Catalog) Sheet {
	sheet := make(Sheet, len(c.order))
	for _, name := range c.order {
		sheet[name] = c.groups[name].reset
	}
	return sheet
}

// Clone returns an independent copy of the sheet.
func (s Sheet) Clone() Sheet {
	out := make(Sheet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Layer returns base overridden by override, group by group. Neutral entries
// in override carry no opinion and leave base untouched. Neither input is
// modified.
func Layer(base, override Sheet) Sheet {
	out := base.Clone()
	for k, v := range override {
		if v.IsNeutral() {
			continue
		}
		out[k] = v
	}
	return out
}

// Patch is the ordered list of styles to apply, one per changed group, in
// catalog order.
type Patch []Style

// Codes concatenates the patch into one control code sequence.
func (p Patch) Codes() sgr.Codes {
	var codes sgr.Codes
	for _, s := range p {
		codes = append(codes, s.codes...)
	}
	return codes
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return len(p) == 0
}

// Diff computes the minimal patch moving a terminal from one sheet to another.
//
// For every group, in catalog order, a missing entry reads as the group's
// reset. An explicit Neutral in to leaves the group alone. Moving from
// Neutral to reset is also a no-op: a group nobody touched never gets a
// spurious reset code. Otherwise the group is patched when the codes differ.
func Diff(c *Catalog, from, to Sheet) Patch {
	var patch Patch
	for _, name := range c.order {
		g := c.groups[name]

		o, ok := from[name]
		if !ok {
			o = g.reset
		}
		n, ok := to[name]
		if ok && n.IsNeutral() {
			continue
		}
		if !ok {
			n = g.reset
		}
		if o.IsNeutral() && n.Equal(g.reset) {
			continue
		}
		if !o.Equal(n) {
			patch = append(patch, n)
		}
	}
	return patch
}

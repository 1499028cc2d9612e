package richconsole

import (
	"fmt"
	"io"

	"github.com/arthur-debert/richconsole/pkg/richstr"
	"github.com/arthur-debert/richconsole/pkg/style"
	"github.com/arthur-debert/richconsole/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (a *app) newCatalogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "catalog [group...]",
		Short:   MsgCatalogShort,
		Long:    MsgCatalogLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := a.catalog.Groups()
			if len(args) > 0 {
				groups = make([]*style.Group, 0, len(args))
				for _, name := range args {
					g, err := a.catalog.Lookup(name)
					if err != nil {
						return err
					}
					groups = append(groups, g)
				}
			}
			rich := ui.Resolve(a.outputFormat(), cmd.OutOrStdout()) == ui.FormatTerminal
			return a.printCatalog(cmd.OutOrStdout(), groups, limit, rich)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, MsgFlagLimit)
	return cmd
}

// printCatalog writes one table per group. Samples and colours are only
// written when rich is set.
func (a *app) printCatalog(w io.Writer, groups []*style.Group, limit int, rich bool) error {
	if !rich && pterm.PrintColor {
		pterm.DisableColor()
		defer pterm.EnableColor()
	}
	heading := func(name, s string) string {
		if !rich {
			return s
		}
		return ui.GetStyle(name).Render(s)
	}

	if _, err := fmt.Fprintln(w, heading("Title", MsgCatalogTitle)); err != nil {
		return err
	}

	for _, g := range groups {
		header := []string{"Style", "Codes"}
		if rich {
			header = append(header, "Sample")
		}
		data := pterm.TableData{header}

		styles := g.Styles()
		shown := styles
		if limit > 0 && len(styles) > limit {
			shown = styles[:limit]
		}
		for _, s := range shown {
			row := []string{s.Name(), s.Codes().Params()}
			if rich {
				row = append(row, a.renderer.Render(richstr.Styled(s, MsgSample)))
			}
			data = append(data, row)
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", heading("GroupHeader", g.Name()), table); err != nil {
			return err
		}
		if rest := len(styles) - len(shown); rest > 0 {
			if _, err := fmt.Fprintln(w, heading("Muted", fmt.Sprintf(MsgCatalogMore, rest))); err != nil {
				return err
			}
		}
	}
	return nil
}

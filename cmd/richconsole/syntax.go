package richconsole

import (
	"fmt"

	"github.com/arthur-debert/richconsole/pkg/logging"
	"github.com/arthur-debert/richconsole/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func (a *app) newSyntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := MsgSyntax
			if ui.Resolve(a.outputFormat(), cmd.OutOrStdout()) == ui.FormatTerminal {
				content = renderMarkdown(content)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

// renderMarkdown renders content with glamour, falling back to the raw
// markdown on error.
func renderMarkdown(content string) string {
	logger := logging.GetLogger("cmd.syntax")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to create markdown renderer")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to render markdown")
		return content
	}
	return rendered
}

package richconsole

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/richconsole/pkg/logging"
	"github.com/arthur-debert/richconsole/pkg/markup"
	"github.com/arthur-debert/richconsole/pkg/richstr"
	"github.com/arthur-debert/richconsole/pkg/ui"
	"github.com/spf13/cobra"
)

func (a *app) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "render [markup...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, args, a.outputFormat())
		},
	}
}

func (a *app) newPlainCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "plain [markup...]",
		Short:   MsgPlainShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.writePlain(cmd, args)
		},
	}
}

func (a *app) newHTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "html [markup...]",
		Short:   MsgHTMLShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.write(cmd, args, ui.FormatHTML)
		},
	}
}

// write parses the arguments (or stdin) and renders them in format.
func (a *app) write(cmd *cobra.Command, args []string, format ui.Format) error {
	logger := logging.GetLogger("cmd.render")

	args, err := input(cmd, args)
	if err != nil {
		return err
	}

	parser := markup.NewParser(a.catalog)
	nodes := make([]*richstr.Node, 0, len(args))
	for _, arg := range args {
		n, err := parser.Parse(arg)
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
	}

	out, err := ui.NewRenderer(format, cmd.OutOrStdout(), a.renderer)
	if err != nil {
		return err
	}
	logger.Debug().Int("args", len(args)).Str("format", format.String()).Msg("Rendering markup")
	return out.Render(nodes...)
}

// writePlain strips the tags from the arguments (or stdin) without resolving
// style names and prints the text.
func (a *app) writePlain(cmd *cobra.Command, args []string) error {
	args, err := input(cmd, args)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, arg := range args {
		text, err := markup.Strip(arg)
		if err != nil {
			return err
		}
		b.WriteString(text)
	}

	out, err := ui.NewRenderer(ui.FormatText, cmd.OutOrStdout(), a.renderer)
	if err != nil {
		return err
	}
	return out.RenderMessage(b.String())
}

// input returns args, or the whole of stdin as one argument when args is empty.
func input(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf(MsgErrReadInput, err)
	}
	return []string{strings.TrimRight(string(data), "\r\n")}, nil
}

package richconsole

import (
	"fmt"

	"github.com/arthur-debert/richconsole/internal/version"
	"github.com/arthur-debert/richconsole/pkg/config"
	"github.com/arthur-debert/richconsole/pkg/logging"
	"github.com/arthur-debert/richconsole/pkg/palette"
	"github.com/arthur-debert/richconsole/pkg/richstr"
	"github.com/arthur-debert/richconsole/pkg/style"
	"github.com/arthur-debert/richconsole/pkg/ui"
	"github.com/spf13/cobra"
)

// app holds the flag values and the state resolved before a command runs.
type app struct {
	verbosity  int
	configFile string
	format     string
	noMerge    bool
	palettes   []string

	cfg      *config.Config
	catalog  *style.Catalog
	renderer *richstr.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "richconsole",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.Name(), args)
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&a.format, "format", config.FormatAuto, MsgFlagFormat)
	flags.BoolVar(&a.noMerge, "no-merge", false, MsgFlagNoMerge)
	flags.StringSliceVar(&a.palettes, "palette", nil, MsgFlagPalette)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(a.newRenderCmd())
	rootCmd.AddCommand(a.newPlainCmd())
	rootCmd.AddCommand(a.newHTMLCmd())
	rootCmd.AddCommand(a.newCatalogCmd())
	rootCmd.AddCommand(a.newSyntaxCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration, applies changed flags on top of it and
// builds the catalog every command renders with.
func (a *app) setup(cmd *cobra.Command) error {
	logger := logging.GetLogger("cmd.setup")

	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		overrides["render.format"] = a.format
	}
	if flags.Changed("no-merge") {
		overrides["render.merge_codes"] = !a.noMerge
	}

	cfg, err := config.Load(config.Options{ConfigFile: a.configFile, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	// --palette adds to the configured files
	cfg.Palette.Files = append(cfg.Palette.Files, a.palettes...)
	a.cfg = cfg

	a.catalog = style.NewCatalog()
	done := logging.LogOperationStart(logger, "palette-import")
	n, err := palette.Import(a.catalog, palette.Sources(palette.Options{
		Named:  cfg.Palette.Named,
		Gookit: cfg.Palette.Gookit,
		Basic:  cfg.Palette.Basic,
		Files:  cfg.Palette.Files,
	})...)
	done()
	if err != nil {
		return fmt.Errorf(MsgErrLoadPalette, err)
	}

	a.renderer = richstr.NewRenderer(a.catalog)
	a.renderer.MergeCodes = cfg.Render.MergeCodes

	logger.Debug().
		Int("colors", n).
		Str("format", cfg.Render.Format).
		Bool("mergeCodes", cfg.Render.MergeCodes).
		Msg("Setup complete")
	return nil
}

// outputFormat returns the configured output format.
func (a *app) outputFormat() ui.Format {
	f, err := ui.ParseFormat(a.cfg.Render.Format)
	if err != nil {
		return ui.FormatAuto
	}
	return f
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Info())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

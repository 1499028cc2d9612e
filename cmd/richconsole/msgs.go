package richconsole

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render styled text with minimal escape codes"
	MsgRenderShort     = "Render markup for the terminal"
	MsgPlainShort      = "Print markup as plain text"
	MsgHTMLShort       = "Export markup as HTML spans"
	MsgCatalogShort    = "List style groups and their styles"
	MsgSyntaxShort     = "Describe the markup syntax"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgCatalogTitle   = "Style catalog"
	MsgCatalogMore    = "%d more"
	MsgVersionFormat  = "richconsole version %s\n"
	MsgSample         = "sample"
	MsgErrorFormat    = "Error: %v"
	MsgNoCommandGiven = "no command specified"

	// Error messages
	MsgErrReadInput   = "failed to read input: %w"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrLoadPalette = "failed to import palettes: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/richconsole/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text or html"
	MsgFlagNoMerge = "Emit one escape sequence per style change"
	MsgFlagPalette = "Extra palette file (YAML or TOML); repeatable"
	MsgFlagLimit   = "Show at most this many styles per group (0 for all)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/catalog-long.txt
	msgCatalogLongRaw string
	MsgCatalogLong    = strings.TrimSpace(msgCatalogLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/syntax.md
	MsgSyntax string
)

package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatHTML renders nested spans with inline CSS
	FormatHTML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "html":
		return FormatHTML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// Check terminal color support
	colorProfile := termenv.NewOutput(output).ColorProfile()
	if colorProfile == termenv.Ascii {
		return FormatText
	}

	// Terminal supports colors
	return FormatTerminal
}

// Resolve replaces FormatAuto by the format detected for output. Writers
// that are not files are treated as terminals.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatTerminal
}

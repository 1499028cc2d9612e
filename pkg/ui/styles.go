package ui

import (
	_ "embed"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// StylesConfig represents the complete chrome styles configuration
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

func init() {
	if err := LoadDefaultStyles(); err != nil {
		StyleRegistry = map[string]lipgloss.Style{}
	}
}

// LoadDefaultStyles restores the embedded styles.
func LoadDefaultStyles() error {
	return LoadStylesFromData(embeddedStyles)
}

// LoadStylesFromData replaces the registry with the styles defined in data.
func LoadStylesFromData(data []byte) error {
	var config StylesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles data")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		registry[name] = buildStyle(def, colors)
	}
	StyleRegistry = registry
	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.PaddingRight > 0 {
		style = style.PaddingRight(def.PaddingRight)
	}
	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

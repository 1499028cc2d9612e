// Package ui writes styled trees in different formats.
// It supports terminal (escape codes), text (plain) and HTML output.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/arthur-debert/richconsole/pkg/richstr"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// Render writes the trees back to back, followed by a newline.
	Render(nodes ...*richstr.Node) error

	// RenderMessage writes a simple message line.
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
// A nil r uses richstr.Default.
func NewRenderer(format Format, output io.Writer, r *richstr.Renderer) (Renderer, error) {
	if r == nil {
		r = richstr.Default
	}
	switch Resolve(format, output) {
	case FormatTerminal:
		return &terminalRenderer{out: output, r: r}, nil
	case FormatText:
		return &textRenderer{out: output}, nil
	case FormatHTML:
		return &htmlRenderer{out: output, r: r}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

type terminalRenderer struct {
	out io.Writer
	r   *richstr.Renderer
}

func (t *terminalRenderer) Render(nodes ...*richstr.Node) error {
	_, err := fmt.Fprintln(t.out, t.r.RenderAll(nodes...))
	return err
}

func (t *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(t.out, msg)
	return err
}

type textRenderer struct {
	out io.Writer
}

func (t *textRenderer) Render(nodes ...*richstr.Node) error {
	for _, n := range nodes {
		if _, err := io.WriteString(t.out, n.Plain()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(t.out, "\n")
	return err
}

func (t *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(t.out, msg)
	return err
}

type htmlRenderer struct {
	out io.Writer
	r   *richstr.Renderer
}

func (h *htmlRenderer) Render(nodes ...*richstr.Node) error {
	for _, n := range nodes {
		html, err := h.r.HTML(n)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(h.out, html); err != nil {
			return err
		}
	}
	return nil
}

func (h *htmlRenderer) RenderMessage(msg string) error {
	html, err := h.r.HTML(richstr.New(msg))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(h.out, html)
	return err
}

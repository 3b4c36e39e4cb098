// Package render turns backend text into something a terminal can show and
// hands it to the rest of the desktop (clipboard, browser).
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	minWidth      = 20
)

// TerminalWidth returns the usable width of stdout, or 80 when stdout is not
// a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fallbackWidth
	}
	if width > 10 {
		return width - 4
	}
	return width
}

// IsTerminal reports whether w is a terminal. Buffers and pipes are not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Markdown renders md for a terminal of the given width with the style that
// matches the terminal background.
func Markdown(md string, width int) (string, error) {
	return renderWith(md, width, glamour.WithAutoStyle(), glamour.WithColorProfile(termenv.EnvColorProfile()))
}

// MarkdownNoColor renders with the "notty" style. Used when output is piped.
func MarkdownNoColor(md string, width int) (string, error) {
	return renderWith(md, width, glamour.WithStandardStyle("notty"))
}

func renderWith(md string, width int, opts ...glamour.TermRendererOption) (string, error) {
	if width < minWidth {
		width = minWidth
	}
	opts = append(opts, glamour.WithWordWrap(width))

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Markdown rendering backs the guide command. Wrap width follows the
// terminal so the config-key table stays readable; glamour picks light or
// dark styling on its own.

const (
	defaultWrapWidth = 80
	minWrapWidth     = 20
)

// TerminalWidth probes stdout for the terminal width. When stdout is not a
// terminal (pipes, CI) it falls back to the COLUMNS variable, then to
// fallback.
func TerminalWidth(fallback int) int {
	if fallback <= 0 {
		fallback = defaultWrapWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return fallback
}

// RenderMarkdown renders text wrapped to the current terminal width.
func RenderMarkdown(text string) (string, error) {
	return RenderMarkdownWithWidth(text, TerminalWidth(defaultWrapWidth))
}

// RenderMarkdownWithWidth renders text wrapped to an explicit width. Widths
// below the minimum are clamped rather than rejected; a 10-column terminal
// still gets something legible.
func RenderMarkdownWithWidth(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width, minWrapWidth)),
	)
	if err != nil {
		return "", err
	}

	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

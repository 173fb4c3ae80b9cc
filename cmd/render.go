package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"claude-profile/helpers"
)

const defaultWrapWidth = 80

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return defaultWrapWidth
}

// writePreview prints the first n lines of content. Markdown is rendered with
// glamour when w is a terminal; otherwise lines are indented verbatim.
func (a *App) writePreview(w io.Writer, content string, n int) {
	preview, truncated := helpers.Preview(content, n)

	if rendered, ok := a.renderMarkdown(w, preview); ok {
		mustN(fmt.Fprint(w, rendered))
	} else {
		for line := range strings.SplitSeq(preview, "\n") {
			mustN(fmt.Fprintln(w, "  "+line))
		}
	}

	if truncated {
		mustN(fmt.Fprintln(w, a.styles.Dim.Render("  ... (truncated for preview)")))
	}
}

func (a *App) renderMarkdown(w io.Writer, md string) (string, bool) {
	if a.args.NoMarkdown || !isTerminal(w) {
		return "", false
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(terminalWidth(w)),
	)
	if err != nil {
		slog.Debug("markdown renderer unavailable", slog.Any("err", err))
		return "", false
	}

	out, err := r.Render(md)
	if err != nil {
		slog.Debug("render markdown", slog.Any("err", err))
		return "", false
	}

	return out, true
}

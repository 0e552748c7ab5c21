package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/itszrong/evacplan/internal/markup"
)

// listIndent is the prefix emitted before list markers.
const listIndent = "  "

// RenderLine renders one formatted line to a styled string. List markers
// are emitted as a leading element ahead of the fragment flow; a line
// whose fragments were fully stripped falls back to its content verbatim.
func (s *Styles) RenderLine(line markup.Line) string {
	var b strings.Builder

	switch line.Kind {
	case markup.LineBullet, markup.LineNumbered:
		b.WriteString(listIndent)
		b.WriteString(s.Marker.Render(line.Marker))
		b.WriteString(" ")
	}

	if len(line.Fragments) == 0 {
		b.WriteString(line.Content)
		return b.String()
	}

	status := line.Kind == markup.LineStatus
	for _, f := range line.Fragments {
		b.WriteString(s.renderFragment(f, status))
	}
	return b.String()
}

// renderFragment styles a single fragment. On status lines the status
// tint is inherited by every fragment, so bold/italic/code spans keep
// their own emphasis nested inside it.
func (s *Styles) renderFragment(f markup.Fragment, status bool) string {
	var style lipgloss.Style
	var text string

	switch {
	case f.Span == nil:
		style = s.renderer.NewStyle()
		text = f.Literal
	case f.Span.Kind == markup.SpanBold:
		style = s.Bold
		text = f.Span.Text
	case f.Span.Kind == markup.SpanItalic:
		style = s.Italic
		text = f.Span.Text
	default:
		style = s.Code
		text = f.Span.Text
	}

	if status {
		style = style.Inherit(s.Status)
	}
	return style.Render(text)
}

// RenderMessage formats a whole message body through the markup engine
// and renders it wrapped to width (0 disables wrapping).
func (s *Styles) RenderMessage(content string, width int) string {
	lines := markup.Format(content)
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = s.RenderLine(l)
	}
	out := strings.Join(rendered, "\n")
	if width > 0 {
		out = wordwrap.String(out, width)
	}
	return out
}

// TerminalWidth returns the current terminal width, or fallback when the
// output is not a terminal.
func TerminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}

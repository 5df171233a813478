// Package render provides text rendering utilities for TUI components.
// Track titles come from file tags, so everything passes through Sanitize.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters other than tab and bytes that are not
// valid UTF-8, and turns non-breaking spaces into plain ones.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, unsafeRune) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError, r != '\t' && unicode.IsControl(r):
			return -1
		case r == '\u00a0':
			return ' '
		}
		return r
	}, s)
}

func unsafeRune(r rune) bool {
	return r == '\u00a0' || (r != '\t' && unicode.IsControl(r))
}

// Truncate shortens s to maxWidth cells, ending in "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis is Truncate with a single-cell "…" tail.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// TruncateAndPad returns s cut or space-filled to exactly width cells.
func TruncateAndPad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row places left and right at the edges of width cells, keeping at least
// one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine returns width spaces.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}

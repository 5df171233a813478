// Package overlay draws boxes (help, file picker, toasts) over the main view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose paints top over base line by line. On each line the span from
// the first to the last non-space column of top replaces base; the columns
// around it keep base. Both inputs may carry ANSI styling.
func Compose(base, top string, width int) string {
	lines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		if i >= len(lines) {
			break
		}
		if from, to, ok := span(ansi.Strip(line)); ok {
			lines[i] = splice(lines[i], ansi.Cut(line, from, to), from, to, width)
		}
	}
	return strings.Join(lines, "\n")
}

// span returns the display columns [from, to) covering the non-space text
// of plain.
func span(plain string) (from, to int, ok bool) {
	body := strings.TrimLeft(plain, " ")
	if strings.TrimSpace(body) == "" {
		return 0, 0, false
	}
	from = len(plain) - len(body)
	to = from + ansi.StringWidth(strings.TrimRight(body, " "))
	return from, to, true
}

// splice replaces columns [from, to) of line with patch, padding line to
// width first so the right-hand remainder exists.
func splice(line, patch string, from, to, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	out := ansi.Cut(line, 0, from) + patch
	if to < width {
		out += ansi.Cut(line, to, width)
	}
	return out
}

// Center draws box in the middle of base.
func Center(base, box string, width, height int) string {
	return Compose(base, lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box), width)
}

// BottomRight draws box in the bottom right corner of base, above the last
// reserved rows.
func BottomRight(base, box string, width, height, reserved int) string {
	h := max(height-reserved, 0)
	return Compose(base, lipgloss.Place(width, h, lipgloss.Right, lipgloss.Bottom, box), width)
}

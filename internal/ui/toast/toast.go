// Package toast shows short-lived notifications stacked in a corner.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/styles"
)

// Toast is one visible notification.
type Toast struct {
	ID       int64
	Message  string
	Severity playback.Severity
}

// ExpiredMsg removes the toast with ID once its time is up.
type ExpiredMsg struct {
	ID int64
}

// Model holds the visible toasts, oldest first.
type Model struct {
	toasts []Toast
	nextID int64
	ttl    time.Duration
}

// New creates a toast stack whose entries expire after ttl.
func New(ttl time.Duration) Model {
	return Model{ttl: ttl}
}

// Push adds a toast and returns the command that expires it. The oldest
// toast is dropped once more than ui.MaxToasts are visible.
func (m *Model) Push(message string, severity playback.Severity) tea.Cmd {
	m.nextID++
	id := m.nextID
	m.toasts = append(m.toasts, Toast{ID: id, Message: message, Severity: severity})
	if len(m.toasts) > ui.MaxToasts {
		m.toasts = m.toasts[len(m.toasts)-ui.MaxToasts:]
	}
	return tea.Tick(m.ttl, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Expire removes the toast with id, if still visible.
func (m *Model) Expire(id int64) {
	for i, t := range m.toasts {
		if t.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the visible toasts, oldest first.
func (m Model) Toasts() []Toast {
	return m.toasts
}

// Empty reports whether nothing is shown.
func (m Model) Empty() bool {
	return len(m.toasts) == 0
}

// View renders the toasts as a column of boxes, newest at the bottom.
func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		boxes = append(boxes, renderToast(t))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func renderToast(t Toast) string {
	th := styles.T()
	color, glyph := th.Info, "i"
	switch t.Severity {
	case playback.SeverityInfo:
	case playback.SeveritySuccess:
		color, glyph = th.Success, "✓"
	case playback.SeverityWarning:
		color, glyph = th.Warning, "!"
	case playback.SeverityError:
		color, glyph = th.Error, "✗"
	}

	glyphStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	text := strings.TrimSpace(t.Message)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(th.FgBase).
		Padding(0, 1).
		Width(ui.ToastWidth - ui.BorderHeight).
		Render(glyphStyle.Render(glyph) + " " + text)
}

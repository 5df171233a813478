package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavelet/internal/playback"
)

// notify shows a toast and, when enabled, forwards it to the desktop.
func (m *Model) notify(message string, severity playback.Severity) tea.Cmd {
	cmds := []tea.Cmd{m.Toasts.Push(message, severity)}

	if f := m.forwarder; f != nil {
		n := playback.Notification{Message: message, Severity: severity}
		var icon string
		if t := m.Playback.CurrentTrack(); t != nil && severity == playback.SeveritySuccess {
			icon = t.Artwork
		}
		// D-Bus round trips stay off the update loop.
		cmds = append(cmds, func() tea.Msg {
			f.Forward(n, icon)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

package app

import (
	"strings"

	"github.com/llehouerou/wavelet/internal/keymap"
	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/overlay"
	"github.com/llehouerou/wavelet/internal/ui/playerbar"
	"github.com/llehouerou/wavelet/internal/ui/render"
	"github.com/llehouerou/wavelet/internal/ui/styles"
)

// hintActions are the bindings listed in the hint line, in order.
var hintActions = []struct {
	action keymap.Action
	label  string
}{
	{keymap.ActionPlayPause, "play"},
	{keymap.ActionPrevTrack, "prev"},
	{keymap.ActionNextTrack, "next"},
	{keymap.ActionOpenPicker, "add"},
	{keymap.ActionToggleTheme, "theme"},
	{keymap.ActionHelp, "help"},
	{keymap.ActionQuit, "quit"},
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.Playlist.View() + "\n" +
		playerbar.Render(playerbar.NewState(m.Playback), m.Width) + "\n" +
		m.renderHints()

	switch {
	case m.ShowPicker:
		view = overlay.Center(view, m.Picker.View(), m.Width, m.Height)
	case m.ShowHelp:
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}

	if !m.Toasts.Empty() {
		reserved := playerbar.Height() + ui.HintBarHeight
		view = overlay.BottomRight(view, m.Toasts.View(), m.Width, m.Height, reserved)
	}
	return view
}

// renderHints renders the single help line under the player bar.
func (m Model) renderHints() string {
	t := styles.T()
	parts := make([]string, 0, len(hintActions))
	for _, h := range hintActions {
		keys := m.resolver.KeysFor(h.action)
		if len(keys) == 0 {
			continue
		}
		key := keys[0]
		if key == " " {
			key = "space"
		}
		parts = append(parts, key+" "+h.label)
	}
	line := render.TruncateAndPad(" "+strings.Join(parts, " · "), m.Width)
	return t.S().Subtle.Render(line)
}

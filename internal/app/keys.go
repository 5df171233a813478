package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/app/handler"
	"github.com/llehouerou/wavelet/internal/keymap"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/ui/picker"
	"github.com/llehouerou/wavelet/internal/ui/styles"
)

// handleKeyMsg routes a key to the open overlay, the global and playback
// bindings, and finally the playlist panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.ShowPicker {
		var cmd tea.Cmd
		m.Picker, cmd = m.Picker.Update(msg)
		return m, cmd
	}
	if m.ShowHelp {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	action := m.resolver.Resolve(key)
	handled, cmd := handler.Chain(
		func() handler.Result { return m.handleGlobalAction(action) },
		func() handler.Result { return m.handlePlaybackAction(action, key) },
	)
	if handled {
		return m, cmd
	}

	m.Playlist, cmd = m.Playlist.Update(msg)
	return m, cmd
}

func (m *Model) handleGlobalAction(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // other actions belong to later handlers
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.ShowHelp = true
		m.Help.Reset()
		m.Playlist.SetFocused(false)
		return handler.HandledNoCmd
	case keymap.ActionOpenPicker:
		return handler.Handled(m.openPicker())
	case keymap.ActionToggleTheme:
		return handler.Handled(m.toggleTheme())
	}
	return handler.NotHandled
}

func (m *Model) handlePlaybackAction(action keymap.Action, key string) handler.Result {
	svc := m.Playback

	switch action { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionPlayPause:
		m.logControl("toggle", svc.TogglePlayPause())
	case keymap.ActionNextTrack:
		m.logControl("next", svc.Next())
	case keymap.ActionPrevTrack:
		m.logControl("previous", svc.Previous())
	case keymap.ActionSeekForward:
		m.logControl("seek", svc.SeekBy(m.seekStep))
	case keymap.ActionSeekBack:
		m.logControl("seek", svc.SeekBy(-m.seekStep))
	case keymap.ActionSeekPercent:
		if f, ok := keymap.SeekPercent(key); ok {
			m.logControl("seek", svc.Seek(f))
		}
	case keymap.ActionVolumeUp:
		svc.AdjustVolume(m.volumeStep)
	case keymap.ActionVolumeDown:
		svc.AdjustVolume(-m.volumeStep)
	case keymap.ActionToggleMute:
		svc.ToggleMute()
	case keymap.ActionCycleRepeat:
		svc.CycleRepeatMode()
	case keymap.ActionToggleShuffle:
		svc.ToggleShuffle()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// logControl records a refused control. The controller has already told the
// user where that was warranted.
func (m *Model) logControl(op string, err error) {
	if err == nil || errors.Is(err, playback.ErrEmptyPlaylist) {
		return
	}
	m.log.Debug("control refused", zap.String("op", op), zap.Error(err))
}

func (m *Model) openPicker() tea.Cmd {
	m.Picker = picker.New(m.pickerDir)
	m.Picker.SetSize(m.overlaySize())
	m.ShowPicker = true
	m.Playlist.SetFocused(false)
	return m.Picker.Init()
}

func (m *Model) closeOverlays() {
	if m.ShowPicker {
		m.pickerDir = m.Picker.Dir()
	}
	m.ShowPicker = false
	m.ShowHelp = false
	m.Playlist.SetFocused(true)
}

// toggleTheme switches between light and dark and saves the choice.
func (m *Model) toggleTheme() tea.Cmd {
	m.Theme = styles.Use(styles.Other(m.Theme)).Name
	return saveThemeCmd(m.state, m.Theme)
}

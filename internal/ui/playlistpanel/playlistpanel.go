// Package playlistpanel renders the playlist and turns list keys into
// explicit playback commands.
package playlistpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavelet/internal/keymap"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/cursor"
)

// PlayTrackMsg asks the app to play the track at Index.
type PlayTrackMsg struct {
	Index int
}

// RemoveTrackMsg asks the app to remove the track at Index.
type RemoveTrackMsg struct {
	Index int
}

// ClearMsg asks the app to empty the playlist.
type ClearMsg struct{}

var resolver = keymap.NewResolver(keymap.ByContext("playlist"))

// Model represents the playlist panel state.
type Model struct {
	ui.Base
	cursor  cursor.Cursor
	tracks  []playback.Track
	current int
	shuffle bool
	repeat  playback.RepeatMode
}

// New creates an empty, focused playlist panel.
func New() Model {
	m := Model{
		cursor:  cursor.New(ui.ScrollMargin),
		current: -1,
	}
	m.SetFocused(true)
	return m
}

// SetTracks replaces the displayed snapshot.
func (m *Model) SetTracks(tracks []playback.Track, current int) {
	m.tracks = tracks
	m.current = current
	m.cursor.ClampToBounds(len(tracks), m.listHeight())
}

// SetCurrent moves the playing marker.
func (m *Model) SetCurrent(index int) {
	m.current = index
}

// SetModes updates the shuffle and repeat indicators.
func (m *Model) SetModes(shuffle bool, repeat playback.RepeatMode) {
	m.shuffle = shuffle
	m.repeat = repeat
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(len(m.tracks), m.listHeight())
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Len returns the number of tracks shown.
func (m Model) Len() int {
	return len(m.tracks)
}

// Update handles list navigation keys. Commands that change the playlist
// are returned as messages for the app to apply.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	n := len(m.tracks)
	height := m.listHeight()

	switch resolver.Resolve(keyMsg.String()) {
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, height)
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, height)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, height)
	case keymap.ActionSelect:
		if n > 0 {
			idx := m.cursor.Pos()
			return m, func() tea.Msg { return PlayTrackMsg{Index: idx} }
		}
	case keymap.ActionDelete:
		if n > 0 {
			idx := m.cursor.Pos()
			return m, func() tea.Msg { return RemoveTrackMsg{Index: idx} }
		}
	case keymap.ActionClear:
		if n > 0 {
			return m, func() tea.Msg { return ClearMsg{} }
		}
	}
	return m, nil
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

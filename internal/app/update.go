package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/errmsg"
	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/helpbindings"
	"github.com/llehouerou/wavelet/internal/ui/picker"
	"github.com/llehouerou/wavelet/internal/ui/playerbar"
	"github.com/llehouerou/wavelet/internal/ui/playlistpanel"
	"github.com/llehouerou/wavelet/internal/ui/toast"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)
	case AcquireMessage:
		return m.handleAcquireMsg(msg)

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case playlistpanel.PlayTrackMsg:
		if err := m.Playback.PlayAt(msg.Index); err != nil {
			m.logControl("play", err)
		}
		return m, nil

	case playlistpanel.RemoveTrackMsg:
		cmd := m.removeTrack(msg.Index)
		m.syncPlaylist()
		return m, cmd

	case playlistpanel.ClearMsg:
		cmd := m.cancelAllProbes()
		m.Playback.Clear()
		m.syncPlaylist()
		return m, cmd

	case picker.FilesChosenMsg:
		m.closeOverlays()
		cmd := m.addFiles(msg.Paths)
		m.syncPlaylist()
		return m, cmd

	case picker.ClosedMsg, helpbindings.CloseMsg:
		m.closeOverlays()
		return m, nil

	case toast.ExpiredMsg:
		m.Toasts.Expire(msg.ID)
		return m, nil

	case ThemeSaveFailedMsg:
		m.log.Warn("theme not saved", zap.Error(msg.Err))
		return m, m.notify(errmsg.Format(errmsg.OpThemeSave, msg.Err), playback.SeverityError)
	}

	// Picker directory reads and other component-internal messages.
	if m.ShowPicker {
		var cmd tea.Cmd
		m.Picker, cmd = m.Picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePlaybackMsg routes controller and player messages.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.Playback.IsPlaying() {
			return m, TickCmd()
		}
		m.ticking = false
		return m, nil

	case PlayerEventMsg:
		m.Playback.HandlePlayerEvent(player.Event(msg))
		return m, m.WatchPlayerEvents()

	case ServiceClosedMsg:
		return m, nil

	case ServiceStateChangedMsg:
		var cmds []tea.Cmd
		if msg.Current == playback.StatePlaying && !m.ticking {
			m.ticking = true
			cmds = append(cmds, TickCmd())
		}
		return m, tea.Batch(append(cmds, m.WatchServiceEvents())...)

	case ServiceTrackChangedMsg:
		m.Playlist.SetCurrent(msg.Index)

	case ServiceQueueChangedMsg:
		m.Playlist.SetTracks(msg.Tracks, msg.Index)

	case ServiceModeChangedMsg:
		m.Playlist.SetModes(msg.Shuffle, msg.RepeatMode)

	case ServiceNotifiedMsg:
		return m, tea.Batch(m.notify(msg.Message, msg.Severity), m.WatchServiceEvents())

	case ServiceErrorMsg:
		m.log.Warn("playback error",
			zap.Stringer("kind", msg.Kind),
			zap.String("op", msg.Operation),
			zap.String("path", msg.Path),
			zap.Error(msg.Err))

	case ServicePositionMsg, ServiceVolumeChangedMsg:
		// Rendered from the controller on the next View.
	}
	return m, m.WatchServiceEvents()
}

// handleAcquireMsg routes messages that add files. The panel is synced
// right away; queue events can be dropped when the subscriber lags.
func (m Model) handleAcquireMsg(msg AcquireMessage) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case AddFilesMsg:
		cmd = m.addFiles(msg.Paths)
	case InboxDropMsg:
		cmd = tea.Batch(m.adoptFiles(msg.Paths), m.WatchInbox())
	case ProbeResultMsg:
		cmd = m.handleProbeResult(msg)
	}
	m.syncPlaylist()
	return m, cmd
}

// removeTrack removes the track at index and cancels its probe.
func (m *Model) removeTrack(index int) tea.Cmd {
	tracks := m.Playback.Tracks()
	if index < 0 || index >= len(tracks) {
		return nil
	}
	id := tracks[index].ID
	if err := m.Playback.RemoveAt(index); err != nil {
		m.logControl("remove", err)
		return nil
	}
	return m.cancelProbe(id)
}

// resizeComponents lays out panels for the current window size.
func (m *Model) resizeComponents() {
	listHeight := max(m.Height-playerbar.Height()-ui.HintBarHeight, ui.PanelOverhead+1)
	m.Playlist.SetSize(m.Width, listHeight)

	w, h := m.overlaySize()
	m.Help.SetSize(w, h)
	m.Picker.SetSize(w, h)
}

// overlaySize returns the box size for the help and picker overlays.
func (m Model) overlaySize() (width, height int) {
	return max(m.Width*3/4, 30), max(m.Height-4, 10)
}

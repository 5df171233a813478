package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavelet/internal/acquire"
	"github.com/llehouerou/wavelet/internal/errmsg"
	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/state"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchServiceEvents returns a command that waits for the next controller
// event and converts it to a tea.Msg. Handlers re-arm it.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg(e)
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg(e)
		case e := <-sub.PositionChanged:
			return ServicePositionMsg(e)
		case e := <-sub.VolumeChanged:
			return ServiceVolumeChangedMsg(e)
		case e := <-sub.Notified:
			return ServiceNotifiedMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchPlayerEvents returns a command that waits for the next player
// lifecycle signal.
func (m Model) WatchPlayerEvents() tea.Cmd {
	if m.player == nil {
		return nil
	}
	return waitForChannel(m.player.Events(), func(e player.Event, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return PlayerEventMsg(e)
	})
}

// WatchInbox returns a command that waits for the next batch of dropped files.
func (m Model) WatchInbox() tea.Cmd {
	if m.inbox == nil {
		return nil
	}
	return waitForChannel(m.inbox.Drops(), func(paths []string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return InboxDropMsg{Paths: paths}
	})
}

// pendingInboxCmd offers files left in the inbox from a previous session.
func (m Model) pendingInboxCmd() tea.Cmd {
	w := m.inbox
	log := m.log
	return func() tea.Msg {
		paths, err := w.Pending()
		if err != nil {
			log.Warn(errmsg.Format(errmsg.OpInboxScan, err))
			return nil
		}
		if len(paths) == 0 {
			return nil
		}
		return InboxDropMsg{Paths: paths}
	}
}

// probeCmd reads metadata for one added file within ctx.
func probeCmd(ctx context.Context, batchID, trackID, name, path string, read acquire.Reader) tea.Cmd {
	return func() tea.Msg {
		md, err := acquire.Probe(ctx, path, read)
		return ProbeResultMsg{
			BatchID:  batchID,
			TrackID:  trackID,
			Name:     name,
			Metadata: md,
			Err:      err,
		}
	}
}

// saveThemeCmd persists the theme off the update loop.
func saveThemeCmd(st state.Interface, name string) tea.Cmd {
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		if err := st.SaveTheme(name); err != nil {
			return ThemeSaveFailedMsg{Err: err}
		}
		return nil
	}
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

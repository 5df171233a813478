package app

import (
	"time"

	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/playlist"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these, so they get their
// own cases in the Update() switch.

// PlaybackMessage is implemented by messages from the controller or player.
type PlaybackMessage interface {
	playbackMessage()
}

// AcquireMessage is implemented by messages that add files.
type AcquireMessage interface {
	acquireMessage()
}

// TickMsg is sent periodically while playing to refresh the progress bar.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// ServiceStateChangedMsg wraps a controller state change.
type ServiceStateChangedMsg playback.StateChange

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg wraps a current-track change.
type ServiceTrackChangedMsg playback.TrackChange

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceQueueChangedMsg wraps a playlist content change.
type ServiceQueueChangedMsg playback.QueueChange

func (ServiceQueueChangedMsg) playbackMessage() {}

// ServiceModeChangedMsg wraps a repeat/shuffle change.
type ServiceModeChangedMsg playback.ModeChange

func (ServiceModeChangedMsg) playbackMessage() {}

// ServicePositionMsg wraps a seek.
type ServicePositionMsg playback.PositionChange

func (ServicePositionMsg) playbackMessage() {}

// ServiceVolumeChangedMsg wraps a volume or mute change.
type ServiceVolumeChangedMsg playback.VolumeChange

func (ServiceVolumeChangedMsg) playbackMessage() {}

// ServiceNotifiedMsg carries a user-facing notification from the controller.
type ServiceNotifiedMsg playback.Notification

func (ServiceNotifiedMsg) playbackMessage() {}

// ServiceErrorMsg wraps a recoverable controller error.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent once the controller shuts down.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// PlayerEventMsg carries a lifecycle signal from the audio player.
type PlayerEventMsg player.Event

func (PlayerEventMsg) playbackMessage() {}

// AddFilesMsg adds files the user named on the command line.
type AddFilesMsg struct {
	Paths []string
}

func (AddFilesMsg) acquireMessage() {}

// InboxDropMsg carries files dropped into the inbox folder. They are moved
// into the spool before being added.
type InboxDropMsg struct {
	Paths []string
}

func (InboxDropMsg) acquireMessage() {}

// ProbeResultMsg is the outcome of reading one added file's metadata.
type ProbeResultMsg struct {
	BatchID  string
	TrackID  string
	Name     string
	Metadata playlist.Metadata
	Err      error
}

func (ProbeResultMsg) acquireMessage() {}

// ThemeSaveFailedMsg reports that the theme preference was not persisted.
type ThemeSaveFailedMsg struct {
	Err error
}

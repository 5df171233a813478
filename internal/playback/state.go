// internal/playback/state.go
package playback

import "github.com/llehouerou/wavelet/internal/playlist"

// State represents the playback controller state.
type State int

const (
	// StateIdle means nothing is loaded; the playlist is empty.
	StateIdle State = iota
	// StatePaused means the current track is loaded but not playing.
	StatePaused
	// StatePlaying means the current track is playing.
	StatePlaying
	// StateError is entered when loading the current track fails and is
	// left for StatePaused once the failure has been reported.
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// RepeatMode defines the repeat behavior.
type RepeatMode = playlist.RepeatMode

const (
	RepeatOff = playlist.RepeatOff
	RepeatOne = playlist.RepeatOne
	RepeatAll = playlist.RepeatAll
)

// Severity classifies a user-facing notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrorKind classifies recoverable failures.
type ErrorKind int

const (
	// KindPlaybackStart: the player rejected play.
	KindPlaybackStart ErrorKind = iota
	// KindMetadataTimeout: a probe did not finish in time.
	KindMetadataTimeout
	// KindSourceLoad: a source failed to load or decode.
	KindSourceLoad
	// KindInvalidInput: the user asked for something impossible.
	KindInvalidInput
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindPlaybackStart:
		return "PlaybackStart"
	case KindMetadataTimeout:
		return "MetadataTimeout"
	case KindSourceLoad:
		return "SourceLoad"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

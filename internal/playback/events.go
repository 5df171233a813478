package playback

import "time"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when the current track changes.
//
// Emitted by:
//   - Next/Previous/PlayAt: when navigating
//   - track end: when playback advances automatically
//   - AddTracks: when the first track of an empty playlist becomes current
//   - RemoveAt/Clear: when the current track is removed
//
// Started is true when playback began on a track different from the last
// one played. The app announces "Now playing" only then.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
	Started       bool
}

// QueueChange is emitted when the playlist contents change.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// VolumeChange is emitted when volume or mute changes.
type VolumeChange struct {
	Volume float64
	Muted  bool
}

// Notification is a transient user-facing message.
type Notification struct {
	Message  string
	Severity Severity
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Kind      ErrorKind
	Operation string // e.g., "play", "load"
	Path      string // track path if applicable
	Err       error
}

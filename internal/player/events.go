package player

import "time"

const eventBufferSize = 16

// EventKind identifies a lifecycle signal from the player.
type EventKind int

const (
	// EventMetadataReady fires once a loaded source reports its duration.
	EventMetadataReady EventKind = iota
	// EventEnded fires when the loaded source plays to its end.
	EventEnded
	// EventError fires when decoding fails after the source was loaded.
	EventError
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMetadataReady:
		return "MetadataReady"
	case EventEnded:
		return "Ended"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is a lifecycle signal emitted on Events().
type Event struct {
	Kind     EventKind
	Path     string
	Duration time.Duration
	Err      error
}

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Load(path string) error
	Unload()
	Play() error
	Pause()
	SeekTo(position time.Duration)
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	State() State
	Loaded() string
	Position() time.Duration
	Duration() time.Duration
	Events() <-chan Event
	Done() <-chan struct{}
	Close()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)

package playback

import (
	"errors"
	"time"

	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/playlist"
)

var (
	ErrEmptyPlaylist   = errors.New("playlist is empty")
	ErrNoCurrentTrack  = errors.New("no current track")
	ErrNoSource        = errors.New("track has no audio source")
	ErrDurationUnknown = errors.New("duration not known yet")
	ErrInvalidIndex    = errors.New("index out of range")
)

// Service defines the playback service contract.
type Service interface {
	// Playback control
	Play() error
	Pause()
	TogglePlayPause() error
	Next() error
	Previous() error
	PlayAt(index int) error
	Seek(fraction float64) error
	SeekBy(delta time.Duration) error

	// Volume
	SetVolume(v float64)
	AdjustVolume(delta float64)
	ToggleMute()

	// Playlist manipulation
	AddTracks(tracks ...playlist.Track)
	RemoveAt(index int) error
	Discard(id string) bool
	Clear()
	ApplyMetadata(id string, md playlist.Metadata) bool

	// Capability lifecycle signals
	HandlePlayerEvent(e player.Event)

	// State queries
	State() State
	IsPlaying() bool
	Position() time.Duration
	Duration() time.Duration
	Elapsed() string
	Total() string
	Volume() float64
	Muted() bool
	CurrentTrack() *Track
	Player() player.Interface // Direct player access (for UI rendering)

	// Playlist queries
	Tracks() []Track
	CurrentIndex() int
	Len() int
	IsEmpty() bool

	// Mode control
	RepeatMode() RepeatMode
	SetRepeatMode(mode RepeatMode)
	CycleRepeatMode() RepeatMode
	Shuffle() bool
	SetShuffle(enabled bool)
	ToggleShuffle() bool
	ShuffleOrder() []int

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/wavelet/internal/playback"
)

const trackPathPrefix = "/org/mpris/MediaPlayer2/Track/"

var (
	statusByState = map[playback.State]types.PlaybackStatus{
		playback.StatePlaying: types.PlaybackStatusPlaying,
		playback.StatePaused:  types.PlaybackStatusPaused,
	}
	loopByRepeat = map[playback.RepeatMode]types.LoopStatus{
		playback.RepeatOff: types.LoopStatusNone,
		playback.RepeatOne: types.LoopStatusTrack,
		playback.RepeatAll: types.LoopStatusPlaylist,
	}
	repeatByLoop = map[types.LoopStatus]playback.RepeatMode{
		types.LoopStatusNone:     playback.RepeatOff,
		types.LoopStatusTrack:    playback.RepeatOne,
		types.LoopStatusPlaylist: playback.RepeatAll,
	}
)

// playerAdapter answers org.mpris.MediaPlayer2.Player along with the
// optional loop and shuffle properties.
type playerAdapter struct {
	service playback.Service
}

func (p *playerAdapter) Next() error      { return p.service.Next() }
func (p *playerAdapter) Previous() error  { return p.service.Previous() }
func (p *playerAdapter) PlayPause() error { return p.service.TogglePlayPause() }

func (p *playerAdapter) Pause() error {
	p.service.Pause()
	return nil
}

// Stop pauses. There is no stopped state once a track is loaded.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	if p.service.IsPlaying() {
		return nil
	}
	return p.service.Play()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.service.SeekBy(micros(offset))
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	total := p.service.Duration()
	if total <= 0 {
		return playback.ErrDurationUnknown
	}
	return p.service.Seek(float64(micros(position)) / float64(total))
}

//nolint:revive // name fixed by the server interface
func (p *playerAdapter) OpenUri(string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.service.State()), nil
}

// playbackStatus reports idle and failed states as stopped.
func playbackStatus(s playback.State) types.PlaybackStatus {
	if status, ok := statusByState[s]; ok {
		return status
	}
	return types.PlaybackStatusStopped
}

func (p *playerAdapter) Rate() (float64, error)        { return 1, nil }
func (p *playerAdapter) SetRate(float64) error         { return nil }
func (p *playerAdapter) MinimumRate() (float64, error) { return 1, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1, nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.service.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}
	return trackMetadata(track), nil
}

func trackMetadata(track *playback.Track) types.Metadata {
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
		Title:   track.Title,
		Artist:  []string{track.Artist},
		Album:   track.Album,
	}
	if !track.DurationUnknown {
		meta.Length = types.Microseconds(track.Duration.Microseconds())
	}
	if track.Artwork != "" {
		meta.ArtUrl = "file://" + track.Artwork
	}
	return meta
}

// Volume reports zero while muted so desktop sliders match what is heard.
func (p *playerAdapter) Volume() (float64, error) {
	if p.service.Muted() {
		return 0, nil
	}
	return p.service.Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	if p.service.Muted() {
		p.service.ToggleMute()
	}
	p.service.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Position().Microseconds(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.hasTracks(), nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.hasTracks(), nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.hasTracks(), nil }
func (p *playerAdapter) CanPause() (bool, error)      { return true, nil }
func (p *playerAdapter) CanControl() (bool, error)    { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.service.Duration() > 0, nil
}

func (p *playerAdapter) hasTracks() bool {
	return !p.service.IsEmpty()
}

func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if status, ok := loopByRepeat[p.service.RepeatMode()]; ok {
		return status, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus ignores unknown values.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	if mode, ok := repeatByLoop[status]; ok {
		p.service.SetRepeatMode(mode)
	}
	return nil
}

func (p *playerAdapter) Shuffle() (bool, error) {
	return p.service.Shuffle(), nil
}

func (p *playerAdapter) SetShuffle(on bool) error {
	p.service.SetShuffle(on)
	return nil
}

func micros(us types.Microseconds) time.Duration {
	return time.Duration(us) * time.Microsecond
}

// formatTrackID maps a queue ID onto a valid D-Bus object path.
func formatTrackID(id string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return fmt.Sprintf("%s%x", trackPathPrefix, h.Sum64())
}

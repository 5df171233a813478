package playback

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/errmsg"
	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/playlist"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	player player.Interface
	queue  *playlist.PlayingQueue
	log    *zap.Logger

	state        State
	volume       float64
	muted        bool
	lastPlayedID string

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates a new playback service. A non-empty queue has its current
// track loaded paused.
func New(p player.Interface, q *playlist.PlayingQueue, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &serviceImpl{
		player: p,
		queue:  q,
		log:    log.Named("playback"),
		state:  StateIdle,
		volume: p.Volume(),
		done:   make(chan struct{}),
	}
	if !q.IsEmpty() {
		_ = s.loadCurrentLocked()
	}
	return s
}

// --- playback control ---

// Play starts playback of the current track.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playLocked()
}

// Pause pauses playback. It cannot fail.
func (s *serviceImpl) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

// TogglePlayPause switches between playing and paused.
func (s *serviceImpl) TogglePlayPause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StatePlaying {
		s.pauseLocked()
		return nil
	}
	return s.playLocked()
}

// Next moves to the following track, resuming if playback was active.
func (s *serviceImpl) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked(s.queue.Next, s.state == StatePlaying)
}

// Previous moves to the preceding track, resuming if playback was active.
func (s *serviceImpl) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked(s.queue.Previous, s.state == StatePlaying)
}

// PlayAt makes the track at index current and plays it.
func (s *serviceImpl) PlayAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.queue.Len() {
		return s.rejectLocked("play", fmt.Errorf("%w: %d", ErrInvalidIndex, index))
	}
	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	s.queue.JumpTo(index)
	if err := s.loadCurrentLocked(); err != nil {
		s.emitTrackChange(prev, prevIdx, false)
		return err
	}
	err := s.playLocked()
	if err != nil {
		s.emitTrackChange(prev, prevIdx, false)
	}
	return err
}

// Seek moves to a fraction of the loaded track's duration.
func (s *serviceImpl) Seek(fraction float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.player.Duration()
	if total <= 0 {
		return ErrDurationUnknown
	}
	fraction = max(0, min(fraction, 1))
	pos := time.Duration(fraction * float64(total))
	s.player.SeekTo(pos)
	s.emitPosition(pos)
	return nil
}

// SeekBy moves the position relative to where it is now.
func (s *serviceImpl) SeekBy(delta time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.player.Duration()
	if total <= 0 {
		return ErrDurationUnknown
	}
	pos := max(0, min(s.player.Position()+delta, total))
	s.player.SeekTo(pos)
	s.emitPosition(pos)
	return nil
}

// --- volume ---

// SetVolume clamps v to [0,1] and applies it.
func (s *serviceImpl) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setVolumeLocked(v)
}

// AdjustVolume changes the volume by delta, clamped to [0,1]. A step
// is a request to hear the new level, so it also lifts mute.
func (s *serviceImpl) AdjustVolume(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted {
		s.muted = false
		s.player.SetMuted(false)
	}
	s.setVolumeLocked(s.volume + delta)
}

// ToggleMute flips the muted flag without touching the volume level.
func (s *serviceImpl) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = !s.muted
	s.player.SetMuted(s.muted)
	s.emitVolume()
}

func (s *serviceImpl) setVolumeLocked(v float64) {
	s.volume = max(0, min(v, 1))
	s.player.SetVolume(s.volume)
	s.emitVolume()
}

// --- playlist manipulation ---

// AddTracks appends tracks. The first track added to an empty playlist
// becomes current and is loaded without playing.
func (s *serviceImpl) AddTracks(tracks ...playlist.Track) {
	if len(tracks) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	wasEmpty := s.queue.IsEmpty()
	s.queue.Add(tracks...)
	if wasEmpty {
		_ = s.loadCurrentLocked()
		s.emitTrackChange(nil, -1, false)
	}
	s.emitQueue()
}

// RemoveAt removes the track at index and releases its source.
func (s *serviceImpl) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.queue.Len() {
		return s.rejectLocked("remove", fmt.Errorf("%w: %d", ErrInvalidIndex, index))
	}
	s.removeLocked(index)
	s.notify("Song removed from playlist", SeverityInfo)
	return nil
}

// Discard silently removes the track with the given ID.
// Returns false if it is no longer in the playlist.
func (s *serviceImpl) Discard(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.queue.IndexOf(id)
	if idx < 0 {
		return false
	}
	s.removeLocked(idx)
	return true
}

func (s *serviceImpl) removeLocked(index int) {
	wasCurrent := index == s.queue.CurrentIndex()
	wasPlaying := s.state == StatePlaying
	prev := s.currentTrackLocked()

	removed, _ := s.queue.RemoveAt(index)
	s.release(removed)

	switch {
	case s.queue.IsEmpty():
		s.player.Unload()
		s.setState(StateIdle)
		s.emitTrackChange(prev, index, false)
	case wasCurrent:
		if err := s.loadCurrentLocked(); err == nil && wasPlaying {
			_ = s.playLocked()
		}
		s.emitTrackChange(prev, index, false)
	}
	s.emitQueue()
}

// Clear releases every track and resets to idle.
func (s *serviceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.IsEmpty() {
		return
	}
	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	for _, t := range s.queue.Clear() {
		s.release(t)
	}
	s.player.Unload()
	s.lastPlayedID = ""
	s.setState(StateIdle)
	if prev != nil {
		s.emitTrackChange(prev, prevIdx, false)
	}
	s.emitQueue()
	s.notify("Playlist cleared", SeverityInfo)
}

// ApplyMetadata merges probe results into the track with the given ID.
// Results for tracks that were removed meanwhile are dropped.
func (s *serviceImpl) ApplyMetadata(id string, md playlist.Metadata) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.queue.Update(id, func(t *playlist.Track) { t.Apply(md) }) {
		s.log.Debug("metadata for removed track dropped", zap.String("id", id))
		return false
	}
	s.emitQueue()
	return true
}

func (s *serviceImpl) release(t playlist.Track) {
	if t.Source == nil {
		return
	}
	if err := t.Source.Release(); err != nil {
		s.log.Warn("release source", zap.String("path", t.Source.Path()), zap.Error(err))
	}
}

// --- capability lifecycle ---

// HandlePlayerEvent reacts to a lifecycle signal from the player. Signals
// for a source that is no longer loaded are ignored.
func (s *serviceImpl) HandlePlayerEvent(e player.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Path == "" || e.Path != s.player.Loaded() {
		return
	}

	switch e.Kind {
	case player.EventEnded:
		s.trackEndedLocked()
	case player.EventError:
		s.setState(StatePaused)
		s.player.Pause()
		s.log.Warn("source error", zap.String("path", e.Path), zap.Error(e.Err))
		s.emitError(ErrorEvent{Kind: KindSourceLoad, Operation: "decode", Path: e.Path, Err: e.Err})
		s.notify("Error playing audio file", SeverityError)
	case player.EventMetadataReady:
		cur := s.queue.Current()
		if cur == nil || cur.Path() != e.Path || e.Duration <= 0 {
			return
		}
		if cur.Duration != e.Duration || cur.DurationUnknown {
			cur.Duration = e.Duration
			cur.DurationUnknown = false
			s.emitQueue()
		}
	}
}

func (s *serviceImpl) trackEndedLocked() {
	switch {
	case s.queue.RepeatMode() == RepeatOne:
		s.player.SeekTo(0)
		s.emitPosition(0)
		if err := s.player.Play(); err != nil {
			s.playFailedLocked(err)
			return
		}
		s.setState(StatePlaying)
	case s.queue.RepeatMode() == RepeatAll || s.queue.HasSubsequent():
		_ = s.stepLocked(s.queue.Next, true)
	default:
		s.player.Pause()
		s.setState(StatePaused)
	}
}

// --- internals ---

// stepLocked moves the queue with move, loads the new current track and
// resumes when resume is set. A failed resume is reported, not retried.
func (s *serviceImpl) stepLocked(move func() *playlist.Track, resume bool) error {
	if s.queue.IsEmpty() {
		return ErrEmptyPlaylist
	}
	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	move()

	if err := s.loadCurrentLocked(); err != nil {
		s.emitTrackChange(prev, prevIdx, false)
		return err
	}
	if !resume {
		s.emitTrackChange(prev, prevIdx, false)
		return nil
	}
	err := s.playLocked()
	if err != nil {
		s.emitTrackChange(prev, prevIdx, false)
	}
	return err
}

// loadCurrentLocked hands the current track's source to the player.
// A track without source leaves the player empty in the paused state.
func (s *serviceImpl) loadCurrentLocked() error {
	t := s.queue.Current()
	if t == nil {
		s.player.Unload()
		s.setState(StateIdle)
		return ErrNoCurrentTrack
	}
	if !t.HasSource() {
		s.player.Unload()
		s.setState(StatePaused)
		return nil
	}

	path := t.Path()
	if err := s.player.Load(path); err != nil {
		// Error is only passed through: the session settles back into
		// Paused on the same track so Play can retry it.
		s.setState(StateError)
		s.log.Warn("load failed", zap.String("path", path), zap.Error(err))
		s.emitError(ErrorEvent{Kind: KindSourceLoad, Operation: "load", Path: path, Err: err})
		s.notify(errmsg.LoadFailed("audio file"), SeverityError)
		s.setState(StatePaused)
		return fmt.Errorf("load %s: %w", path, err)
	}
	s.setState(StatePaused)
	return nil
}

// rejectLocked reports a request that cannot be honored in the current
// state and returns err unchanged.
func (s *serviceImpl) rejectLocked(op string, err error) error {
	s.emitError(ErrorEvent{Kind: KindInvalidInput, Operation: op, Err: err})
	return err
}

func (s *serviceImpl) playLocked() error {
	if s.queue.IsEmpty() {
		s.notify("Please add songs to your playlist first!", SeverityWarning)
		return s.rejectLocked("play", ErrEmptyPlaylist)
	}
	t := s.queue.Current()
	if t == nil {
		s.notify("No song selected", SeverityWarning)
		return ErrNoCurrentTrack
	}
	if !t.HasSource() {
		s.notify("No audio file available for this song", SeverityWarning)
		return ErrNoSource
	}
	if s.player.Loaded() != t.Path() {
		if err := s.loadCurrentLocked(); err != nil {
			return err
		}
	}
	if err := s.player.Play(); err != nil {
		return s.playFailedLocked(err)
	}
	s.setState(StatePlaying)

	if t.ID != s.lastPlayedID {
		s.lastPlayedID = t.ID
		cur := fromPlaylistTrack(t)
		s.emitTrack(TrackChange{Current: &cur, Index: s.queue.CurrentIndex(), PreviousIndex: -1, Started: true})
		s.notify("Now playing: "+t.Title, SeveritySuccess)
	}
	return nil
}

func (s *serviceImpl) playFailedLocked(err error) error {
	path := s.player.Loaded()
	s.setState(StatePaused)
	s.log.Warn("play rejected", zap.String("path", path), zap.Error(err))
	s.emitError(ErrorEvent{Kind: KindPlaybackStart, Operation: "play", Path: path, Err: err})
	s.notify("Error playing audio file. Please try another file.", SeverityError)
	return fmt.Errorf("play %s: %w", path, err)
}

func (s *serviceImpl) pauseLocked() {
	if s.state != StatePlaying {
		return
	}
	s.player.Pause()
	s.setState(StatePaused)
}

func (s *serviceImpl) setState(st State) {
	if s.state == st {
		return
	}
	prev := s.state
	s.state = st
	s.emitState(StateChange{Previous: prev, Current: st})
}

// --- queries ---

// State returns the current playback state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsPlaying returns true if playback is active and not paused.
func (s *serviceImpl) IsPlaying() bool {
	return s.State() == StatePlaying
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Position()
}

// Duration returns the loaded track's duration, falling back to the probed
// duration when nothing is loaded.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.player.Duration(); d > 0 {
		return d
	}
	if t := s.queue.Current(); t != nil {
		return t.Duration
	}
	return 0
}

// Elapsed returns the position formatted M:SS.
func (s *serviceImpl) Elapsed() string {
	return FormatDuration(s.Position())
}

// Total returns the duration formatted M:SS.
func (s *serviceImpl) Total() string {
	return FormatDuration(s.Duration())
}

// Volume returns the volume level in [0,1].
func (s *serviceImpl) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// Muted returns whether output is muted.
func (s *serviceImpl) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muted
}

// CurrentTrack returns the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTrackLocked()
}

func (s *serviceImpl) currentTrackLocked() *Track {
	t := s.queue.Current()
	if t == nil {
		return nil
	}
	tr := fromPlaylistTrack(t)
	return &tr
}

// Player returns the underlying player.
func (s *serviceImpl) Player() player.Interface {
	return s.player
}

// Tracks returns a copy of all tracks in the playlist.
func (s *serviceImpl) Tracks() []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracksLocked()
}

func (s *serviceImpl) tracksLocked() []Track {
	tracks := s.queue.Tracks()
	result := make([]Track, len(tracks))
	for i := range tracks {
		result[i] = fromPlaylistTrack(&tracks[i])
	}
	return result
}

// CurrentIndex returns the current index (-1 if none).
func (s *serviceImpl) CurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.CurrentIndex()
}

// Len returns the number of tracks.
func (s *serviceImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Len()
}

// IsEmpty returns true if the playlist has no tracks.
func (s *serviceImpl) IsEmpty() bool {
	return s.Len() == 0
}

// --- modes ---

// RepeatMode returns the current repeat mode.
func (s *serviceImpl) RepeatMode() RepeatMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.RepeatMode()
}

// SetRepeatMode sets the repeat mode.
func (s *serviceImpl) SetRepeatMode(mode RepeatMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetRepeatMode(mode)
	s.emitMode()
}

// CycleRepeatMode advances Off, One, All, Off and returns the new mode.
func (s *serviceImpl) CycleRepeatMode() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := s.queue.CycleRepeatMode()
	s.emitMode()
	switch mode {
	case RepeatOne:
		s.notify("Repeat one enabled", SeverityInfo)
	case RepeatAll:
		s.notify("Repeat all enabled", SeverityInfo)
	default:
		s.notify("Repeat disabled", SeverityInfo)
	}
	return mode
}

// Shuffle returns whether shuffle is enabled.
func (s *serviceImpl) Shuffle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Shuffle()
}

// SetShuffle enables or disables shuffle.
func (s *serviceImpl) SetShuffle(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetShuffle(enabled)
	s.emitMode()
}

// ToggleShuffle flips shuffle and returns the new value.
func (s *serviceImpl) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	on := s.queue.ToggleShuffle()
	s.emitMode()
	if on {
		s.notify("Shuffle enabled", SeverityInfo)
	} else {
		s.notify("Shuffle disabled", SeverityInfo)
	}
	return on
}

// ShuffleOrder returns a copy of the shuffle permutation.
func (s *serviceImpl) ShuffleOrder() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.ShuffleOrder()
}

// --- subscription ---

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

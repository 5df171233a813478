package player

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned by Play when no source is loaded.
var ErrNotLoaded = errors.New("no source loaded")

// Player drives the speaker for a single loaded source.
type Player struct {
	mu  sync.Mutex
	log *zap.Logger

	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	tail     *tailStreamer
	playing  bool

	// gen invalidates end callbacks of sources that have been unloaded.
	gen atomic.Uint64

	volumeLevel float64
	muted       bool

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a player. The speaker is initialized on the first Load.
func New(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		log:         log.Named("player"),
		volumeLevel: 1,
		events:      make(chan Event, eventBufferSize),
		done:        make(chan struct{}),
	}
}

// Load opens and decodes path, leaving it paused at the start.
// Any previously loaded source is unloaded first.
func (p *Player) Load(path string) error {
	p.Unload()

	streamer, format, f, err := decodeFile(path)
	if err != nil {
		return err
	}
	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return err
	}

	p.mu.Lock()
	p.path = path
	p.file = f
	p.streamer = streamer
	p.format = format
	p.gen.Add(1)
	duration := format.SampleRate.D(streamer.Len())
	p.mu.Unlock()

	p.log.Debug("loaded", zap.String("path", path), zap.Duration("duration", duration))
	p.emit(Event{Kind: EventMetadataReady, Path: path, Duration: duration})
	return nil
}

// Unload stops output and releases the loaded source.
func (p *Player) Unload() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}
	p.gen.Add(1)
	speaker.Clear()

	p.streamer.Close()
	p.streamer = nil
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.tail = nil
	p.path = ""
	p.playing = false
}

// Play starts or resumes output. A source that played to its end restarts
// from the beginning.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNotLoaded
	}
	if p.tail == nil || p.tail.Ended() {
		if p.tail != nil {
			speaker.Lock()
			atEnd := p.streamer.Position() >= p.streamer.Len()
			var err error
			if atEnd {
				err = p.streamer.Seek(0)
			}
			speaker.Unlock()
			if err != nil {
				return err
			}
		}
		p.queueLocked()
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.playing = true
	return nil
}

// queueLocked builds the output chain for the loaded streamer and hands it
// to the speaker paused. Caller holds p.mu.
func (p *Player) queueLocked() {
	var s beep.Streamer = p.streamer
	if p.format.SampleRate != speakerSampleRate {
		s = beep.Resample(4, p.format.SampleRate, speakerSampleRate, s)
	}
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.muted,
	}

	gen := p.gen.Load()
	path := p.path
	p.tail = &tailStreamer{
		current: p.volume,
		onEnd:   func(err error) { p.finished(gen, path, err) },
	}
	speaker.Play(p.tail)
}

// finished runs on the speaker goroutine; it only reports.
func (p *Player) finished(gen uint64, path string, err error) {
	if p.gen.Load() != gen {
		return
	}
	if err != nil {
		p.emit(Event{Kind: EventError, Path: path, Err: err})
		return
	}
	p.emit(Event{Kind: EventEnded, Path: path})
}

// Pause pauses output. It cannot fail.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// SeekTo moves the playback position, clamped to the source length.
func (p *Player) SeekTo(position time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}
	n := p.format.SampleRate.N(position)
	n = max(0, min(n, p.streamer.Len()))

	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		p.log.Warn("seek failed", zap.String("path", p.path), zap.Error(err))
	}
}

// State returns the current output state. A source that played to its end
// reports Paused.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.streamer == nil:
		return Stopped
	case p.playing && p.tail != nil && !p.tail.Ended():
		return Playing
	default:
		return Paused
	}
}

// Loaded returns the path of the loaded source, or "".
func (p *Player) Loaded() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the loaded source's length, or 0.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Events returns the lifecycle signal channel.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Done is closed when the player is closed.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

// Close unloads the source and signals Done.
func (p *Player) Close() {
	p.Unload()
	p.closeOnce.Do(func() { close(p.done) })
}

// emit sends an event (non-blocking).
func (p *Player) emit(e Event) {
	select {
	case p.events <- e:
	default:
		p.log.Warn("event dropped", zap.Stringer("kind", e.Kind))
	}
}

// internal/player/mock.go
package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state     State
	path      string
	position  time.Duration
	duration  time.Duration
	volume    float64
	muted     bool
	loadErr   error
	playErr   error
	loadCalls []string
	playCalls int
	seekCalls []time.Duration
	events    chan Event
	done      chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		volume: 1,
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
	}
}

func (m *Mock) Load(path string) error {
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.path = path
	m.state = Paused
	m.position = 0
	return nil
}

func (m *Mock) Unload() {
	m.path = ""
	m.state = Stopped
	m.position = 0
}

func (m *Mock) Play() error {
	m.playCalls++
	if !m.state.IsActive() {
		return ErrNotLoaded
	}
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) SeekTo(d time.Duration) {
	m.seekCalls = append(m.seekCalls, d)
	m.position = d
}

func (m *Mock) SetVolume(level float64) { m.volume = max(0, min(level, 1)) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) Muted() bool { return m.muted }

func (m *Mock) State() State { return m.state }

func (m *Mock) Loaded() string { return m.path }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Done() <-chan struct{} { return m.done }

func (m *Mock) Close() {
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateEnded simulates the loaded source playing to its end and returns
// the event the real player would emit.
func (m *Mock) SimulateEnded() Event {
	m.state = Paused
	m.position = m.duration
	e := Event{Kind: EventEnded, Path: m.path}
	m.send(e)
	return e
}

// SimulateError simulates a decode failure after load.
func (m *Mock) SimulateError(err error) Event {
	m.state = Paused
	e := Event{Kind: EventError, Path: m.path, Err: err}
	m.send(e)
	return e
}

func (m *Mock) send(e Event) {
	select {
	case m.events <- e:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

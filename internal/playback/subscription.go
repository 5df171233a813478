package playback

// eventBufferSize bounds each subscriber channel. A subscriber that falls
// further behind loses events instead of stalling the service.
const eventBufferSize = 16

// Subscription is one listener's view of the service events. Receive from
// the exported channels until Done is closed.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	VolumeChanged   <-chan VolumeChange
	Notified        <-chan Notification
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	out sinks
}

// sinks holds the send side of every Subscription channel.
type sinks struct {
	state    chan StateChange
	track    chan TrackChange
	position chan PositionChange
	queue    chan QueueChange
	mode     chan ModeChange
	volume   chan VolumeChange
	notified chan Notification
	err      chan ErrorEvent
	done     chan struct{}
}

func newSubscription() *Subscription {
	out := sinks{
		state:    make(chan StateChange, eventBufferSize),
		track:    make(chan TrackChange, eventBufferSize),
		position: make(chan PositionChange, eventBufferSize),
		queue:    make(chan QueueChange, eventBufferSize),
		mode:     make(chan ModeChange, eventBufferSize),
		volume:   make(chan VolumeChange, eventBufferSize),
		notified: make(chan Notification, eventBufferSize),
		err:      make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	return &Subscription{
		StateChanged:    out.state,
		TrackChanged:    out.track,
		PositionChanged: out.position,
		QueueChanged:    out.queue,
		ModeChanged:     out.mode,
		VolumeChanged:   out.volume,
		Notified:        out.notified,
		Error:           out.err,
		Done:            out.done,
		out:             out,
	}
}

func (s *Subscription) close() {
	close(s.out.done)
}

// offer delivers v unless ch is full and reports whether it was delivered.
func offer[T any](ch chan T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		return false
	}
}

package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

var _ beep.Streamer = (*tailStreamer)(nil)

// tailStreamer wraps a track streamer and reports once when it is exhausted.
// onEnd runs on the speaker goroutine with the speaker lock held, so it must
// not call back into the speaker.
type tailStreamer struct {
	mu      sync.Mutex
	current beep.Streamer
	onEnd   func(err error)
	ended   bool
}

// Stream implements beep.Streamer.
func (t *tailStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ended {
		return 0, false
	}

	n, ok = t.current.Stream(samples)

	// A short read may just be a frame boundary; drain before deciding.
	if n < len(samples) && ok {
		n2, ok2 := t.current.Stream(samples[n:])
		n += n2
		ok = ok2
	}

	if !ok {
		t.ended = true
		if t.onEnd != nil {
			t.onEnd(t.current.Err())
		}
		// Deliver the final partial buffer; the mixer drops us next call.
		return n, n > 0
	}
	return n, ok
}

// Err implements beep.Streamer.
func (t *tailStreamer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil {
		return t.current.Err()
	}
	return nil
}

// Ended reports whether the wrapped streamer has been exhausted.
func (t *tailStreamer) Ended() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ended
}

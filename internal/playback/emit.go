package playback

import (
	"time"

	"go.uber.org/zap"
)

// broadcast hands every current subscriber to send. Subscribe only appends,
// so the snapshot stays valid after the lock is released.
func (s *serviceImpl) broadcast(send func(out *sinks)) {
	s.subsMu.RLock()
	subs := s.subs
	s.subsMu.RUnlock()
	for _, sub := range subs {
		send(&sub.out)
	}
}

func (s *serviceImpl) emitState(e StateChange) {
	s.broadcast(func(out *sinks) { offer(out.state, e) })
}

func (s *serviceImpl) emitTrack(e TrackChange) {
	s.broadcast(func(out *sinks) { offer(out.track, e) })
}

// emitTrackChange reports a move away from prev when the current track
// differs from it.
func (s *serviceImpl) emitTrackChange(prev *Track, prevIdx int, started bool) {
	cur := s.currentTrackLocked()
	idx := s.queue.CurrentIndex()
	if prev != nil && cur != nil && prev.ID == cur.ID && prevIdx == idx {
		return
	}
	e := TrackChange{
		Previous:      prev,
		Current:       cur,
		PreviousIndex: prevIdx,
		Index:         idx,
		Started:       started,
	}
	s.emitTrack(e)
}

func (s *serviceImpl) emitQueue() {
	e := QueueChange{Tracks: s.tracksLocked(), Index: s.queue.CurrentIndex()}
	s.broadcast(func(out *sinks) { offer(out.queue, e) })
}

func (s *serviceImpl) emitMode() {
	e := ModeChange{RepeatMode: s.queue.RepeatMode(), Shuffle: s.queue.Shuffle()}
	s.broadcast(func(out *sinks) { offer(out.mode, e) })
}

func (s *serviceImpl) emitPosition(pos time.Duration) {
	e := PositionChange{Position: pos}
	s.broadcast(func(out *sinks) { offer(out.position, e) })
}

func (s *serviceImpl) emitVolume() {
	e := VolumeChange{Volume: s.volume, Muted: s.muted}
	s.broadcast(func(out *sinks) { offer(out.volume, e) })
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	s.broadcast(func(out *sinks) { offer(out.err, e) })
}

// notify publishes a user-facing notification to every subscriber.
func (s *serviceImpl) notify(msg string, sev Severity) {
	s.log.Debug("notify", zap.String("message", msg), zap.Stringer("severity", sev))
	n := Notification{Message: msg, Severity: sev}
	s.broadcast(func(out *sinks) { offer(out.notified, n) })
}

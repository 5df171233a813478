package playlist

// PlayingQueue wraps a Playlist with playback ordering state.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int // -1 if empty
	repeatMode   RepeatMode
	shuffle      bool
	shuffleOrder []int
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
		shuffleOrder: []int{},
	}
}

// Current returns the current track, or nil if none.
func (q *PlayingQueue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the index of the current track (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Next moves to the following track in traversal order and returns it.
// Wraps at the end. Returns nil for an empty queue.
func (q *PlayingQueue) Next() *Track {
	idx := NextIndex(q.currentIndex, q.playlist.Len(), q.shuffle, q.shuffleOrder)
	if idx < 0 {
		return nil
	}
	q.currentIndex = idx
	return q.Current()
}

// Previous moves to the preceding track in traversal order and returns it.
func (q *PlayingQueue) Previous() *Track {
	idx := PreviousIndex(q.currentIndex, q.playlist.Len(), q.shuffle, q.shuffleOrder)
	if idx < 0 {
		return nil
	}
	q.currentIndex = idx
	return q.Current()
}

// HasSubsequent reports whether the current track is not the last one in
// playlist order. Shuffle does not affect it: the end of the list is the
// end of the session whichever order the tracks were visited in.
func (q *PlayingQueue) HasSubsequent() bool {
	return q.currentIndex >= 0 && q.currentIndex < q.playlist.Len()-1
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Add appends tracks to the queue. The first track added to an empty
// queue becomes current.
func (q *PlayingQueue) Add(tracks ...Track) {
	if len(tracks) == 0 {
		return
	}
	wasEmpty := q.playlist.Len() == 0
	q.playlist.Add(tracks...)
	if wasEmpty {
		q.currentIndex = 0
	}
	q.reshuffle()
}

// RemoveAt removes the track at the given index and returns it.
// Tracks before the current one shift the current index down so it keeps
// pointing at the same track. Removing the current track leaves the index
// on its successor, clamped to the last track.
func (q *PlayingQueue) RemoveAt(index int) (Track, bool) {
	removed, ok := q.playlist.Remove(index)
	if !ok {
		return Track{}, false
	}

	switch {
	case q.playlist.Len() == 0:
		q.currentIndex = -1
	case index < q.currentIndex:
		q.currentIndex--
	case q.currentIndex >= q.playlist.Len():
		q.currentIndex = q.playlist.Len() - 1
	}
	q.reshuffle()
	return removed, true
}

// Clear removes all tracks and returns them.
func (q *PlayingQueue) Clear() []Track {
	q.currentIndex = -1
	q.shuffleOrder = []int{}
	return q.playlist.Clear()
}

// Update applies fn to the track with the given ID.
// Returns false if no such track exists.
func (q *PlayingQueue) Update(id string, fn func(*Track)) bool {
	idx := q.playlist.IndexOf(id)
	if idx < 0 {
		return false
	}
	fn(q.playlist.Track(idx))
	return true
}

// Track returns the track at index, or nil if out of bounds.
func (q *PlayingQueue) Track(index int) *Track {
	return q.playlist.Track(index)
}

// IndexOf returns the index of the track with the given ID, or -1.
func (q *PlayingQueue) IndexOf(id string) int {
	return q.playlist.IndexOf(id)
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

// RepeatMode returns the current repeat mode.
func (q *PlayingQueue) RepeatMode() RepeatMode {
	return q.repeatMode
}

// SetRepeatMode sets the repeat mode.
func (q *PlayingQueue) SetRepeatMode(mode RepeatMode) {
	q.repeatMode = mode
}

// CycleRepeatMode advances Off, One, All, Off and returns the new mode.
func (q *PlayingQueue) CycleRepeatMode() RepeatMode {
	q.repeatMode = q.repeatMode.Next()
	return q.repeatMode
}

// Shuffle returns whether shuffle is enabled.
func (q *PlayingQueue) Shuffle() bool {
	return q.shuffle
}

// SetShuffle enables or disables shuffle. Enabling generates a fresh
// order; disabling keeps the stored one unused.
func (q *PlayingQueue) SetShuffle(enabled bool) {
	q.shuffle = enabled
	q.reshuffle()
}

// ToggleShuffle flips shuffle and returns the new value.
func (q *PlayingQueue) ToggleShuffle() bool {
	q.SetShuffle(!q.shuffle)
	return q.shuffle
}

// ShuffleOrder returns a copy of the stored shuffle permutation.
func (q *PlayingQueue) ShuffleOrder() []int {
	order := make([]int, len(q.shuffleOrder))
	copy(order, q.shuffleOrder)
	return order
}

func (q *PlayingQueue) reshuffle() {
	if !q.shuffle {
		return
	}
	q.shuffleOrder = NewShuffleOrder(q.playlist.Len())
}

package playlist

import "github.com/samber/lo"

// RepeatMode defines what happens when a track ends.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatOne
	RepeatAll
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatOne:
		return "One"
	case RepeatAll:
		return "All"
	default:
		return "Unknown"
	}
}

// Next returns the mode following m in the Off, One, All cycle.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatOne
	case RepeatOne:
		return RepeatAll
	default:
		return RepeatOff
	}
}

// NewShuffleOrder returns a uniform random permutation of 0..n-1.
func NewShuffleOrder(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return lo.Shuffle(lo.Range(n))
}

// NextIndex returns the index following current. Without shuffle it wraps
// linearly; with shuffle it steps forward through order. Returns -1 when
// length is 0.
func NextIndex(current, length int, shuffled bool, order []int) int {
	return step(current, length, shuffled, order, 1)
}

// PreviousIndex returns the index preceding current, mirroring NextIndex.
func PreviousIndex(current, length int, shuffled bool, order []int) int {
	return step(current, length, shuffled, order, -1)
}

func step(current, length int, shuffled bool, order []int, dir int) int {
	if length <= 0 {
		return -1
	}
	if shuffled && len(order) == length {
		if pos := lo.IndexOf(order, current); pos >= 0 {
			return order[(pos+dir+length)%length]
		}
	}
	if current < 0 {
		if dir < 0 {
			return length - 1
		}
		return 0
	}
	return (current + dir + length) % length
}

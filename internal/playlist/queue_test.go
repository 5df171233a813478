//nolint:goconst // test file with repeated string literals
package playlist

import (
	"slices"
	"testing"
)

func newQueueABC() *PlayingQueue {
	q := NewQueue()
	q.Add(Track{ID: "a"}, Track{ID: "b"}, Track{ID: "c"})
	return q
}

func TestNewQueue(t *testing.T) {
	q := NewQueue()

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if q.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", q.CurrentIndex())
	}
	if q.Current() != nil {
		t.Error("Current() should be nil for empty queue")
	}
	if q.Next() != nil {
		t.Error("Next() on empty queue should be nil")
	}
	if q.Previous() != nil {
		t.Error("Previous() on empty queue should be nil")
	}
}

func TestQueue_Add_FirstTrackBecomesCurrent(t *testing.T) {
	q := NewQueue()

	q.Add(Track{ID: "a"})

	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}

	q.JumpTo(0)
	q.Add(Track{ID: "b"})
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (unchanged)", q.CurrentIndex())
	}
}

func TestQueue_NextPrevious_Linear(t *testing.T) {
	q := newQueueABC()

	wantNext := []string{"b", "c", "a"}
	for _, want := range wantNext {
		if got := q.Next(); got.ID != want {
			t.Errorf("Next() = %q, want %q", got.ID, want)
		}
	}

	wantPrev := []string{"c", "b", "a"}
	for _, want := range wantPrev {
		if got := q.Previous(); got.ID != want {
			t.Errorf("Previous() = %q, want %q", got.ID, want)
		}
	}
}

func TestQueue_NextThenPrevious_RoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := range n {
			q := NewQueue()
			for range n {
				q.Add(Track{})
			}
			q.JumpTo(start)

			q.Next()
			q.Previous()
			if q.CurrentIndex() != start {
				t.Errorf("n=%d: next/previous from %d landed on %d", n, start, q.CurrentIndex())
			}

			q.Previous()
			q.Next()
			if q.CurrentIndex() != start {
				t.Errorf("n=%d: previous/next from %d landed on %d", n, start, q.CurrentIndex())
			}
		}
	}
}

func TestQueue_RemoveAt(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		remove    int
		wantIndex int
		wantID    string
	}{
		{"before current shifts down", 2, 0, 1, "c"},
		{"after current keeps index", 0, 2, 0, "a"},
		{"current middle lands on successor", 1, 1, 1, "c"},
		{"current last wraps to previous", 2, 2, 1, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newQueueABC()
			q.JumpTo(tt.current)

			if _, ok := q.RemoveAt(tt.remove); !ok {
				t.Fatalf("RemoveAt(%d) = false", tt.remove)
			}
			if q.CurrentIndex() != tt.wantIndex {
				t.Errorf("CurrentIndex() = %d, want %d", q.CurrentIndex(), tt.wantIndex)
			}
			if q.Current().ID != tt.wantID {
				t.Errorf("Current().ID = %q, want %q", q.Current().ID, tt.wantID)
			}
		})
	}
}

func TestQueue_RemoveAt_LastRemainingEmptiesQueue(t *testing.T) {
	q := NewQueue()
	q.Add(Track{ID: "a"})

	q.RemoveAt(0)

	if !q.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if q.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", q.CurrentIndex())
	}
}

func TestQueue_RemoveAt_Invalid(t *testing.T) {
	q := newQueueABC()

	if _, ok := q.RemoveAt(3); ok {
		t.Error("RemoveAt(3) = true, want false")
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
}

func TestQueue_Clear(t *testing.T) {
	q := newQueueABC()
	q.SetShuffle(true)

	removed := q.Clear()

	if len(removed) != 3 {
		t.Errorf("len(removed) = %d, want 3", len(removed))
	}
	if q.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", q.CurrentIndex())
	}
	if len(q.ShuffleOrder()) != 0 {
		t.Errorf("ShuffleOrder() = %v, want empty", q.ShuffleOrder())
	}
}

func TestQueue_Update(t *testing.T) {
	q := newQueueABC()

	ok := q.Update("b", func(tr *Track) { tr.Title = "Bee" })

	if !ok {
		t.Fatal("Update(b) = false, want true")
	}
	if q.Track(1).Title != "Bee" {
		t.Errorf("Track(1).Title = %q, want Bee", q.Track(1).Title)
	}
	if q.Update("gone", func(*Track) {}) {
		t.Error("Update(gone) = true, want false")
	}
}

func TestQueue_CycleRepeatMode(t *testing.T) {
	q := NewQueue()

	want := []RepeatMode{RepeatOne, RepeatAll, RepeatOff}
	for _, w := range want {
		if got := q.CycleRepeatMode(); got != w {
			t.Errorf("CycleRepeatMode() = %v, want %v", got, w)
		}
	}

	for k := 1; k <= 4; k++ {
		for range 3 * k {
			q.CycleRepeatMode()
		}
		if q.RepeatMode() != RepeatOff {
			t.Errorf("after %d cycles RepeatMode() = %v, want Off", 3*k, q.RepeatMode())
		}
	}
}

func TestQueue_SetShuffle_GeneratesPermutation(t *testing.T) {
	q := newQueueABC()
	q.Add(Track{ID: "d"}, Track{ID: "e"})

	q.SetShuffle(true)

	assertPermutation(t, q.ShuffleOrder(), q.Len())
}

func TestQueue_Shuffle_RegeneratedOnSizeChange(t *testing.T) {
	q := newQueueABC()
	q.SetShuffle(true)

	q.Add(Track{ID: "d"})
	assertPermutation(t, q.ShuffleOrder(), 4)

	q.RemoveAt(0)
	assertPermutation(t, q.ShuffleOrder(), 3)
}

func TestQueue_DisableShuffle_KeepsOrder(t *testing.T) {
	q := newQueueABC()
	q.SetShuffle(true)
	order := q.ShuffleOrder()

	q.SetShuffle(false)

	if !slices.Equal(q.ShuffleOrder(), order) {
		t.Errorf("ShuffleOrder() = %v, want %v", q.ShuffleOrder(), order)
	}
}

func TestQueue_Shuffled_TraversesOrder(t *testing.T) {
	q := NewQueue()
	for range 8 {
		q.Add(Track{})
	}
	q.SetShuffle(true)
	order := q.ShuffleOrder()
	q.JumpTo(order[0])

	for i := 1; i < len(order); i++ {
		q.Next()
		if q.CurrentIndex() != order[i] {
			t.Errorf("step %d: CurrentIndex() = %d, want %d", i, q.CurrentIndex(), order[i])
		}
	}
	q.Next()
	if q.CurrentIndex() != order[0] {
		t.Errorf("wrap: CurrentIndex() = %d, want %d", q.CurrentIndex(), order[0])
	}
}

func TestQueue_HasSubsequent_Linear(t *testing.T) {
	q := newQueueABC()

	if !q.HasSubsequent() {
		t.Error("HasSubsequent() at 0 = false, want true")
	}
	q.JumpTo(2)
	if q.HasSubsequent() {
		t.Error("HasSubsequent() at last = true, want false")
	}
}

func TestQueue_HasSubsequent_IgnoresShuffle(t *testing.T) {
	q := NewQueue()
	for range 5 {
		q.Add(Track{})
	}
	q.SetShuffle(true)

	for i := range 5 {
		q.JumpTo(i)
		if got, want := q.HasSubsequent(), i < 4; got != want {
			t.Errorf("HasSubsequent() at %d = %v, want %v (order %v)", i, got, want, q.ShuffleOrder())
		}
	}
}

func TestQueue_HasSubsequent_Empty(t *testing.T) {
	if NewQueue().HasSubsequent() {
		t.Error("HasSubsequent() on empty queue = true")
	}
}

func assertPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	if len(order) != n {
		t.Fatalf("len(order) = %d, want %d", len(order), n)
	}
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("order %v is not a permutation of 0..%d", order, n-1)
		}
	}
}

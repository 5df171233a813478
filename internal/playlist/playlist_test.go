//nolint:goconst // test file with repeated string literals
package playlist

import (
	"math"
	"testing"
	"time"
)

type fakeSource struct {
	path     string
	released int
}

func (s *fakeSource) Path() string { return s.path }

func (s *fakeSource) Release() error {
	s.released++
	return nil
}

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.Tracks() == nil {
		t.Error("Tracks() should return empty slice, not nil")
	}
}

func TestPlaylist_Add(t *testing.T) {
	p := NewPlaylist()

	p.Add(Track{ID: "a", Title: "A"}, Track{ID: "b", Title: "B"})

	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	tracks := p.Tracks()
	if tracks[0].ID != "a" || tracks[1].ID != "b" {
		t.Errorf("tracks = %v, want insertion order [a b]", tracks)
	}
}

func TestPlaylist_Remove_ShiftsIndices(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"}, Track{ID: "b"}, Track{ID: "c"})

	removed, ok := p.Remove(1)

	if !ok {
		t.Fatal("Remove(1) = false, want true")
	}
	if removed.ID != "b" {
		t.Errorf("removed.ID = %q, want b", removed.ID)
	}
	if p.Track(1).ID != "c" {
		t.Errorf("Track(1).ID = %q, want c", p.Track(1).ID)
	}
}

func TestPlaylist_Remove_OutOfBounds(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"})

	for _, idx := range []int{-1, 1, 5} {
		if _, ok := p.Remove(idx); ok {
			t.Errorf("Remove(%d) = true, want false", idx)
		}
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPlaylist_Clear_ReturnsRemoved(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"}, Track{ID: "b"})

	removed := p.Clear()

	if len(removed) != 2 {
		t.Errorf("len(removed) = %d, want 2", len(removed))
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPlaylist_Tracks_ReturnsCopy(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a", Title: "Original"})

	tracks := p.Tracks()
	tracks[0].Title = "Modified"

	if p.Track(0).Title != "Original" {
		t.Error("Tracks() should return a copy")
	}
}

func TestPlaylist_IndexOf(t *testing.T) {
	p := NewPlaylist()
	p.Add(Track{ID: "a"}, Track{ID: "b"})

	if got := p.IndexOf("b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := p.IndexOf("missing"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
}

func TestTrack_DurationDisplay(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  string
	}{
		{"pending", Track{}, "0:00"},
		{"known", Track{Duration: 225 * time.Second}, "3:45"},
		{"unknown", Track{DurationUnknown: true}, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.DurationDisplay(); got != tt.want {
				t.Errorf("DurationDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrack_Apply(t *testing.T) {
	tr := Track{Title: "file", Artist: "Unknown Artist", Album: "Unknown Album"}

	tr.Apply(Metadata{Title: "Song", Duration: 90 * time.Second})

	if tr.Title != "Song" {
		t.Errorf("Title = %q, want Song", tr.Title)
	}
	if tr.Artist != "Unknown Artist" {
		t.Errorf("Artist = %q, want unchanged", tr.Artist)
	}
	if tr.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", tr.Duration)
	}

	tr.Apply(Metadata{DurationUnknown: true})
	if !tr.DurationUnknown {
		t.Error("DurationUnknown = false, want true")
	}
}

func TestTrack_PathWithoutSource(t *testing.T) {
	tr := Track{Title: "Sunset Dreams"}

	if tr.HasSource() {
		t.Error("HasSource() = true, want false")
	}
	if tr.Path() != "" {
		t.Errorf("Path() = %q, want empty", tr.Path())
	}

	tr.Source = &fakeSource{path: "/music/a.mp3"}
	if tr.Path() != "/music/a.mp3" {
		t.Errorf("Path() = %q, want /music/a.mp3", tr.Path())
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{125, "2:05"},
		{59.9, "0:59"},
		{3600, "60:00"},
		{math.NaN(), "0:00"},
		{math.Inf(1), "0:00"},
		{math.Inf(-1), "0:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

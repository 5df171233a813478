package playlist

import "time"

// Source is a playable-source handle bound to a track. Releasing it frees
// any transient resource (spooled file) held for the track.
type Source interface {
	Path() string
	Release() error
}

// Metadata is the result of probing a track's source.
// Empty strings leave the existing fields untouched.
type Metadata struct {
	Title           string
	Artist          string
	Album           string
	Duration        time.Duration
	DurationUnknown bool
}

// Track represents a single track in a playlist.
type Track struct {
	ID              string
	Title           string
	Artist          string
	Album           string
	Duration        time.Duration
	DurationUnknown bool   // probe timed out
	Source          Source // nil for seed entries
	Artwork         string // path or URI, empty if none
}

// HasSource reports whether the track can be played.
func (t Track) HasSource() bool {
	return t.Source != nil
}

// Path returns the source path, or "" if the track has no source.
func (t Track) Path() string {
	if t.Source == nil {
		return ""
	}
	return t.Source.Path()
}

// DurationDisplay returns the duration as shown in the playlist:
// "Unknown" after a probe timeout, "0:00" while pending.
func (t Track) DurationDisplay() string {
	if t.DurationUnknown {
		return "Unknown"
	}
	return FormatDuration(t.Duration)
}

// Apply merges probed metadata into the track.
func (t *Track) Apply(md Metadata) {
	if md.Title != "" {
		t.Title = md.Title
	}
	if md.Artist != "" {
		t.Artist = md.Artist
	}
	if md.Album != "" {
		t.Album = md.Album
	}
	if md.DurationUnknown {
		t.DurationUnknown = true
		return
	}
	t.Duration = md.Duration
	t.DurationUnknown = false
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Remove removes the track at the given index and returns it.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) (Track, bool) {
	if index < 0 || index >= len(p.tracks) {
		return Track{}, false
	}
	removed := p.tracks[index]
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return removed, true
}

// Clear removes all tracks from the playlist and returns them.
func (p *Playlist) Clear() []Track {
	removed := p.tracks
	p.tracks = make([]Track, 0)
	return removed
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IndexOf returns the index of the track with the given ID, or -1.
func (p *Playlist) IndexOf(id string) int {
	for i := range p.tracks {
		if p.tracks[i].ID == id {
			return i
		}
	}
	return -1
}

package playback

import (
	"time"

	"github.com/llehouerou/wavelet/internal/playlist"
)

// Track represents a track in the playlist.
// This is a copy of the data, not a reference to playlist.Track.
type Track struct {
	ID              string
	Path            string
	Title           string
	Artist          string
	Album           string
	Duration        time.Duration
	DurationUnknown bool
	HasSource       bool
	Artwork         string
}

// DurationDisplay returns the duration as shown in the playlist.
func (t Track) DurationDisplay() string {
	if t.DurationUnknown {
		return "Unknown"
	}
	return FormatDuration(t.Duration)
}

func fromPlaylistTrack(t *playlist.Track) Track {
	return Track{
		ID:              t.ID,
		Path:            t.Path(),
		Title:           t.Title,
		Artist:          t.Artist,
		Album:           t.Album,
		Duration:        t.Duration,
		DurationUnknown: t.DurationUnknown,
		HasSource:       t.HasSource(),
		Artwork:         t.Artwork,
	}
}

// FormatTime formats a position in seconds as M:SS.
// NaN, infinite and negative values render as "0:00".
func FormatTime(seconds float64) string {
	return playlist.FormatSeconds(seconds)
}

// FormatDuration formats d as M:SS.
func FormatDuration(d time.Duration) string {
	return playlist.FormatDuration(d)
}

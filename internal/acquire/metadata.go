package acquire

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/google/uuid"

	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/playlist"
)

// ErrProbeTimeout is returned by Probe when the reader does not finish
// before the context deadline.
var ErrProbeTimeout = errors.New("metadata probe timed out")

// Reader extracts metadata from a file.
type Reader func(path string) (playlist.Metadata, error)

// ReadMetadata reads embedded tags and decodes the stream length.
// Formats the player cannot decode report an unknown duration. An error is
// returned only when neither tags nor audio could be read.
func ReadMetadata(path string) (playlist.Metadata, error) {
	var md playlist.Metadata

	tagErr := readTags(path, &md)

	d, err := player.ReadDuration(path)
	switch {
	case err == nil:
		md.Duration = d
	case errors.Is(err, player.ErrUnsupportedFormat):
		md.DurationUnknown = true
		if tagErr != nil && !errors.Is(tagErr, tag.ErrNoTagsFound) {
			return playlist.Metadata{}, tagErr
		}
	default:
		return playlist.Metadata{}, err
	}
	return md, nil
}

func readTags(path string, md *playlist.Metadata) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return err
	}
	md.Title = strings.TrimSpace(m.Title())
	md.Artist = strings.TrimSpace(m.Artist())
	if md.Artist == "" {
		md.Artist = strings.TrimSpace(m.AlbumArtist())
	}
	md.Album = strings.TrimSpace(m.Album())
	return nil
}

// Probe runs read on path, racing it against ctx. When the deadline passes
// first it returns metadata with an unknown duration and ErrProbeTimeout.
// A cancelled context returns its error.
func Probe(ctx context.Context, path string, read Reader) (playlist.Metadata, error) {
	type result struct {
		md  playlist.Metadata
		err error
	}
	ch := make(chan result, 1)
	go func() {
		md, err := read(path)
		ch <- result{md, err}
	}()

	select {
	case r := <-ch:
		return r.md, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return playlist.Metadata{DurationUnknown: true}, ErrProbeTimeout
		}
		return playlist.Metadata{}, ctx.Err()
	}
}

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindArtwork looks for album art next to the track.
// Returns the path to the art file, or empty string if not found.
func FindArtwork(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NewTrack builds a playlist track for h with placeholder metadata; the
// duration stays pending until a probe result is applied.
func NewTrack(h *Handle) playlist.Track {
	name := h.Name()
	return playlist.Track{
		ID:      uuid.NewString(),
		Title:   strings.TrimSuffix(name, filepath.Ext(name)),
		Artist:  "Unknown Artist",
		Album:   "Unknown Album",
		Source:  h,
		Artwork: FindArtwork(h.Origin()),
	}
}

//nolint:goconst // test file with repeated string literals
package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavelet/internal/acquire"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/playlist"
	"github.com/llehouerou/wavelet/internal/ui/playlistpanel"
	"github.com/llehouerou/wavelet/internal/ui/testutil"
)

// probeResults runs cmd and returns only the probe results it produced.
func probeResults(cmd tea.Cmd) []ProbeResultMsg {
	var out []ProbeResultMsg
	for _, msg := range testutil.Collect(cmd) {
		if r, ok := msg.(ProbeResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

func TestAddFiles_Batch(t *testing.T) {
	read := func(path string) (playlist.Metadata, error) {
		if filepath.Base(path) == "b.mp3" {
			return playlist.Metadata{}, errors.New("bad frame header")
		}
		return playlist.Metadata{Title: "Title " + filepath.Base(path), Duration: 2 * time.Minute}, nil
	}
	env := newTestEnv(t, read)
	paths := writeFiles(t, "a.mp3", "b.mp3", "c.flac")

	cmd := env.update(t, AddFilesMsg{Paths: paths})

	// Every file is listed right away with placeholder metadata.
	require.Equal(t, 3, env.model.Playback.Len())
	assert.Equal(t, "a", env.model.Playback.Tracks()[0].Title)
	assert.Len(t, env.model.probes, 3)

	results := probeResults(cmd)
	require.Len(t, results, 3)
	for _, r := range results {
		env.update(t, r)
	}

	tracks := env.model.Playback.Tracks()
	require.Len(t, tracks, 2)
	assert.Equal(t, "Title a.mp3", tracks[0].Title)
	assert.Equal(t, "2:00", tracks[1].DurationDisplay())
	assert.Empty(t, env.model.probes)
	assert.Empty(t, env.model.batches)

	assert.Equal(t, []string{"Error loading b.mp3"}, env.toastMessages(playback.SeverityError))
	assert.Equal(t, []string{"Added 2 song(s) to playlist"}, env.toastMessages(playback.SeveritySuccess))
}

func TestAddFiles_AllFail(t *testing.T) {
	read := func(string) (playlist.Metadata, error) {
		return playlist.Metadata{}, errors.New("corrupt")
	}
	env := newTestEnv(t, read)

	cmd := env.update(t, AddFilesMsg{Paths: writeFiles(t, "a.wav")})
	for _, r := range probeResults(cmd) {
		env.update(t, r)
	}

	assert.True(t, env.model.Playback.IsEmpty())
	assert.Equal(t, []string{"Error loading a.wav"}, env.toastMessages(playback.SeverityError))
	assert.Empty(t, env.toastMessages(playback.SeveritySuccess), "no summary when nothing was added")
}

func TestAddFiles_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"nothing selected", nil, msgNoFiles},
		{"no audio", []string{"notes.txt", "cover.jpg"}, msgInvalidFiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, okReader)
			var paths []string
			if len(tt.files) > 0 {
				paths = writeFiles(t, tt.files...)
			}

			env.update(t, AddFilesMsg{Paths: paths})

			assert.True(t, env.model.Playback.IsEmpty())
			assert.Equal(t, []string{tt.want}, env.toastMessages(playback.SeverityWarning))
		})
	}
}

func TestAddFiles_SkipsNonAudio(t *testing.T) {
	env := newTestEnv(t, okReader)
	paths := writeFiles(t, "song.ogg", "readme.txt")

	cmd := env.update(t, AddFilesMsg{Paths: paths})
	for _, r := range probeResults(cmd) {
		env.update(t, r)
	}

	assert.Equal(t, 1, env.model.Playback.Len())
	assert.Equal(t, []string{"Added 1 song(s) to playlist"}, env.toastMessages(playback.SeveritySuccess))
}

func TestAddFiles_MissingFile(t *testing.T) {
	env := newTestEnv(t, okReader)
	missing := filepath.Join(t.TempDir(), "gone.mp3")

	cmd := env.update(t, AddFilesMsg{Paths: []string{missing}})

	assert.Empty(t, probeResults(cmd))
	assert.True(t, env.model.Playback.IsEmpty())
	assert.Empty(t, env.model.batches)
	assert.Equal(t, []string{"Error loading gone.mp3"}, env.toastMessages(playback.SeverityError))
}

func TestProbeTimeout_KeepsTrackWithUnknownDuration(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	slow := func(string) (playlist.Metadata, error) {
		<-block
		return playlist.Metadata{}, nil
	}
	env := newTestEnv(t, slow)
	env.model.metadataTimeout = 10 * time.Millisecond

	cmd := env.update(t, AddFilesMsg{Paths: writeFiles(t, "long.flac")})
	results := probeResults(cmd)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, acquire.ErrProbeTimeout)

	env.update(t, results[0])

	tracks := env.model.Playback.Tracks()
	require.Len(t, tracks, 1)
	assert.True(t, tracks[0].DurationUnknown)
	assert.Equal(t, "Unknown", tracks[0].DurationDisplay())
	assert.Empty(t, env.toastMessages(playback.SeverityError))
	assert.Equal(t, []string{"Added 1 song(s) to playlist"}, env.toastMessages(playback.SeveritySuccess))
}

func TestRemoveTrack_CancelsProbe(t *testing.T) {
	env := newTestEnv(t, okReader)
	env.update(t, AddFilesMsg{Paths: writeFiles(t, "a.mp3", "b.mp3")})
	removed := env.model.Playback.Tracks()[0].ID

	env.update(t, playlistpanel.RemoveTrackMsg{Index: 0})

	assert.Equal(t, 1, env.model.Playback.Len())
	assert.NotContains(t, env.model.probes, removed)

	// The probe finishing afterwards changes nothing.
	late := ProbeResultMsg{TrackID: removed, Name: "a.mp3", Metadata: playlist.Metadata{Title: "Late"}}
	assert.Nil(t, env.update(t, late))
	assert.Equal(t, 1, env.model.Playback.Len())
	assert.NotEqual(t, "Late", env.model.Playback.Tracks()[0].Title)

	// The remaining probe completes the batch with one song added.
	kept := env.model.Playback.Tracks()[0].ID
	env.update(t, ProbeResultMsg{TrackID: kept, Name: "b.mp3", Metadata: playlist.Metadata{Duration: time.Minute}})
	assert.Equal(t, []string{"Added 1 song(s) to playlist"}, env.toastMessages(playback.SeveritySuccess))
}

func TestClear_CancelsAllProbes(t *testing.T) {
	env := newTestEnv(t, okReader)
	env.update(t, AddFilesMsg{Paths: writeFiles(t, "a.mp3", "b.mp3")})

	env.update(t, playlistpanel.ClearMsg{})

	assert.True(t, env.model.Playback.IsEmpty())
	assert.Empty(t, env.model.probes)
	assert.Empty(t, env.model.batches)
	assert.Empty(t, env.toastMessages(playback.SeveritySuccess))
}

func TestInboxDrop_AdoptsFiles(t *testing.T) {
	env := newTestEnv(t, okReader)
	src := writeFiles(t, "drop.wav")[0]

	cmd := env.update(t, InboxDropMsg{Paths: []string{src}})

	require.Equal(t, 1, env.model.Playback.Len())
	track := env.model.Playback.Tracks()[0]
	assert.Equal(t, env.model.spoolDir, filepath.Dir(track.Path))
	assert.NoFileExists(t, src)
	assert.Len(t, probeResults(cmd), 1)
}

func TestInboxDrop_ReportedTwiceAddsOnce(t *testing.T) {
	env := newTestEnv(t, okReader)
	src := writeFiles(t, "drop.wav")[0]

	first := env.update(t, InboxDropMsg{Paths: []string{src}})
	second := env.update(t, InboxDropMsg{Paths: []string{src}})

	assert.Equal(t, 1, env.model.Playback.Len())
	assert.Len(t, probeResults(first), 1)
	assert.Empty(t, probeResults(second))
	assert.Empty(t, env.toastMessages(playback.SeverityError))
	assert.Empty(t, env.toastMessages(playback.SeverityWarning))
}

func TestInboxDrop_MixedWithAdoptedFile(t *testing.T) {
	env := newTestEnv(t, okReader)
	paths := writeFiles(t, "one.wav", "two.wav")

	env.update(t, InboxDropMsg{Paths: paths[:1]})
	env.update(t, InboxDropMsg{Paths: paths})

	require.Equal(t, 2, env.model.Playback.Len())
	assert.Empty(t, env.toastMessages(playback.SeverityError))
}

func TestProbeCmd(t *testing.T) {
	read := func(path string) (playlist.Metadata, error) {
		return playlist.Metadata{Title: filepath.Base(path), Duration: time.Minute}, nil
	}

	msg := probeCmd(context.Background(), "batch", "track", "x.mp3", "/music/x.mp3", read)()

	r, ok := msg.(ProbeResultMsg)
	require.True(t, ok)
	assert.Equal(t, "batch", r.BatchID)
	assert.Equal(t, "track", r.TrackID)
	assert.Equal(t, "x.mp3", r.Metadata.Title)
	assert.NoError(t, r.Err)
}

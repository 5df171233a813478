package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/acquire"
	"github.com/llehouerou/wavelet/internal/errmsg"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/playlist"
)

const (
	msgNoFiles      = "No files selected"
	msgInvalidFiles = "Please select valid audio files (MP3, WAV, OGG, M4A, AAC, FLAC)"
)

// pendingProbe is a metadata probe still in flight for a track.
type pendingProbe struct {
	batchID string
	cancel  context.CancelFunc
}

// opener turns an accepted path into a source handle.
type opener func(path string) (*acquire.Handle, error)

// addFiles starts an upload batch for paths opened in place.
func (m *Model) addFiles(paths []string) tea.Cmd {
	return m.startBatch(paths, acquire.Open)
}

// adoptFiles starts an upload batch for dropped files, moving them into
// the spool so the inbox stays empty. The startup scan and the watcher can
// both report the same file; whichever arrives second finds it already
// moved and is skipped without a toast.
func (m *Model) adoptFiles(paths []string) tea.Cmd {
	paths = slices.DeleteFunc(slices.Clone(paths), func(p string) bool {
		_, err := os.Lstat(p)
		if errors.Is(err, fs.ErrNotExist) {
			m.log.Debug("inbox file already adopted", zap.String("path", p))
			return true
		}
		return false
	})
	if len(paths) == 0 {
		return nil
	}
	dir := m.spoolDir
	return m.startBatch(paths, func(p string) (*acquire.Handle, error) {
		return acquire.Adopt(dir, p)
	})
}

// startBatch validates paths, adds every audio file to the playlist right
// away with placeholder metadata and probes each one concurrently.
func (m *Model) startBatch(paths []string, open opener) tea.Cmd {
	if len(paths) == 0 {
		return m.notify(msgNoFiles, playback.SeverityWarning)
	}
	accepted, rejected := acquire.Filter(paths)
	if len(rejected) > 0 {
		m.log.Debug("skipping non-audio files", zap.Strings("paths", rejected))
	}
	if len(accepted) == 0 {
		return m.notify(msgInvalidFiles, playback.SeverityWarning)
	}

	batch := acquire.NewBatch(len(accepted))
	m.batches[batch.ID] = batch

	var cmds []tea.Cmd
	tracks := make([]playlist.Track, 0, len(accepted))
	for _, path := range accepted {
		h, err := open(path)
		if err != nil {
			m.log.Warn("cannot open file", zap.String("path", path), zap.Error(err))
			batch.Record(false)
			cmds = append(cmds, m.notify(errmsg.LoadFailed(filepath.Base(path)), playback.SeverityError))
			continue
		}
		batch.Bytes += h.Size()

		t := acquire.NewTrack(h)
		tracks = append(tracks, t)

		ctx, cancel := context.WithTimeout(context.Background(), m.metadataTimeout)
		m.probes[t.ID] = pendingProbe{batchID: batch.ID, cancel: cancel}
		cmds = append(cmds, probeCmd(ctx, batch.ID, t.ID, h.Name(), h.Path(), m.read))
	}

	m.log.Debug("upload batch started",
		zap.String("batch", batch.ID),
		zap.Int("files", batch.Total))
	m.Playback.AddTracks(tracks...)

	if batch.Done() {
		cmds = append(cmds, m.finishBatch(batch))
	}
	return tea.Batch(cmds...)
}

// handleProbeResult applies one probe outcome. Results for tracks that were
// removed meanwhile are dropped.
func (m *Model) handleProbeResult(msg ProbeResultMsg) tea.Cmd {
	p, ok := m.probes[msg.TrackID]
	if !ok {
		m.log.Debug("dropping late probe result", zap.String("track", msg.TrackID))
		return nil
	}
	delete(m.probes, msg.TrackID)
	p.cancel()

	var cmds []tea.Cmd
	added := true
	switch {
	case msg.Err == nil:
		m.Playback.ApplyMetadata(msg.TrackID, msg.Metadata)
	case errors.Is(msg.Err, acquire.ErrProbeTimeout):
		m.log.Info("metadata probe timed out", zap.String("file", msg.Name))
		m.Playback.ApplyMetadata(msg.TrackID, msg.Metadata)
	default:
		m.log.Warn("cannot read file", zap.String("file", msg.Name), zap.Error(msg.Err))
		m.Playback.Discard(msg.TrackID)
		added = false
		cmds = append(cmds, m.notify(errmsg.LoadFailed(msg.Name), playback.SeverityError))
	}

	cmds = append(cmds, m.recordProbe(p.batchID, added))
	return tea.Batch(cmds...)
}

// cancelProbe stops the probe of a track the user removed. The file counts
// as not added.
func (m *Model) cancelProbe(trackID string) tea.Cmd {
	p, ok := m.probes[trackID]
	if !ok {
		return nil
	}
	delete(m.probes, trackID)
	p.cancel()
	return m.recordProbe(p.batchID, false)
}

// cancelAllProbes cancels every pending probe, as on playlist clear.
func (m *Model) cancelAllProbes() tea.Cmd {
	var cmds []tea.Cmd
	for id := range m.probes {
		cmds = append(cmds, m.cancelProbe(id))
	}
	return tea.Batch(cmds...)
}

func (m *Model) recordProbe(batchID string, added bool) tea.Cmd {
	batch, ok := m.batches[batchID]
	if !ok {
		return nil
	}
	batch.Record(added)
	if !batch.Done() {
		return nil
	}
	return m.finishBatch(batch)
}

// finishBatch reports a completed batch.
func (m *Model) finishBatch(batch *acquire.Batch) tea.Cmd {
	delete(m.batches, batch.ID)
	m.log.Info("upload batch complete",
		zap.String("batch", batch.ID),
		zap.Int("added", batch.Added),
		zap.Int("failed", batch.Failed),
		zap.String("size", humanize.Bytes(uint64(max(batch.Bytes, 0)))))
	if batch.Added == 0 {
		return nil
	}
	return m.notify(batch.Summary(), playback.SeveritySuccess)
}

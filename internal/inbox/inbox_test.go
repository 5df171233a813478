package inbox

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "drop")

	w, err := New(dir, nil)
	require.NoError(t, err)
	defer w.Close()

	assert.DirExists(t, dir)
	assert.Equal(t, dir, w.Dir())
}

func TestPending_ListsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mp3"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".partial"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	w, err := New(dir, nil)
	require.NoError(t, err)
	defer w.Close()

	paths, err := w.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.mp3")}, paths)
}

func TestWatcher_BatchesDrops(t *testing.T) {
	dir := t.TempDir()
	w, err := newWatcher(dir, nil, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	a := filepath.Join(dir, "a.mp3")
	b := filepath.Join(dir, "b.flac")
	require.NoError(t, os.WriteFile(a, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tmp"), []byte("z"), 0o644))

	select {
	case got := <-w.Drops():
		assert.Equal(t, []string{a, b}, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for drop")
	}
}

func TestWatcher_Close(t *testing.T) {
	w, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	select {
	case <-w.Done():
	default:
		t.Fatal("Done not closed")
	}
}

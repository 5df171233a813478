package acquire

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Handle is a playable-source handle for one file. Handles created by Spool
// or Adopt own their file and delete it on Release.
type Handle struct {
	path   string
	name   string // original file name
	origin string // original location, for artwork lookup
	size   int64
	owned  bool

	once sync.Once
	err  error
}

// Open returns a non-owning handle for an existing file.
func Open(path string) (*Handle, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAudio)
	}
	return &Handle{
		path:   abs,
		name:   filepath.Base(abs),
		origin: abs,
		size:   info.Size(),
	}, nil
}

// Spool copies r into dir under a unique name and returns an owning handle.
func Spool(dir, name string, r io.Reader) (*Handle, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	dst := filepath.Join(dir, uuid.NewString()+"-"+filepath.Base(name))
	f, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("spool %s: %w", name, err)
	}
	return &Handle{path: dst, name: filepath.Base(name), origin: dst, size: n, owned: true}, nil
}

// Adopt moves the file at path into dir and returns an owning handle.
// Falls back to copy and remove when a rename crosses filesystems.
func Adopt(dir, path string) (*Handle, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	dst := filepath.Join(dir, uuid.NewString()+"-"+name)

	if err := os.Rename(path, dst); err == nil {
		return &Handle{path: dst, name: name, origin: path, size: info.Size(), owned: true}, nil
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	h, err := Spool(dir, name, src)
	src.Close()
	if err != nil {
		return nil, err
	}
	h.origin = path
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = h.Release()
		return nil, fmt.Errorf("remove adopted %s: %w", name, err)
	}
	return h, nil
}

// Path returns the file the handle plays from.
func (h *Handle) Path() string { return h.path }

// Name returns the original file name.
func (h *Handle) Name() string { return h.name }

// Origin returns where the file came from.
func (h *Handle) Origin() string { return h.origin }

// Size returns the file size in bytes.
func (h *Handle) Size() int64 { return h.size }

// Owned reports whether Release deletes the file.
func (h *Handle) Owned() bool { return h.owned }

// Release frees the handle. Owned files are deleted. Safe to call twice.
func (h *Handle) Release() error {
	h.once.Do(func() {
		if !h.owned {
			return
		}
		if err := os.Remove(h.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			h.err = err
		}
	})
	return h.err
}

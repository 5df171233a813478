// Package inbox watches a drop folder for new files.
package inbox

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultSettle is how long the folder must be quiet before new files are
// handed out, so that copies in progress are complete.
const defaultSettle = 300 * time.Millisecond

// Watcher watches a directory and reports files dropped into it in batches.
type Watcher struct {
	dir    string
	fsw    *fsnotify.Watcher
	log    *zap.Logger
	settle time.Duration

	drops     chan []string
	done      chan struct{}
	closeOnce sync.Once
}

// New creates the directory if needed and starts watching it.
func New(dir string, log *zap.Logger) (*Watcher, error) {
	return newWatcher(dir, log, defaultSettle)
}

func newWatcher(dir string, log *zap.Logger, settle time.Duration) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create inbox: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch inbox: %w", err)
	}

	w := &Watcher{
		dir:    dir,
		fsw:    fsw,
		log:    log.Named("inbox"),
		settle: settle,
		drops:  make(chan []string, 4),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Drops delivers batches of files that appeared in the folder.
func (w *Watcher) Drops() <-chan []string { return w.drops }

// Done is closed when the watcher stops.
func (w *Watcher) Done() <-chan struct{} { return w.done }

// Pending lists files already sitting in the folder.
func (w *Watcher) Pending() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && !hidden(e.Name()) {
			paths = append(paths, filepath.Join(w.dir, e.Name()))
		}
	}
	return paths, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || hidden(filepath.Base(event.Name)) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.settle)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			paths := settled(pending)
			clear(pending)
			if len(paths) == 0 {
				continue
			}
			w.log.Debug("files dropped", zap.Int("count", len(paths)))
			select {
			case w.drops <- paths:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

// settled returns the pending paths that still exist as regular files.
func settled(pending map[string]struct{}) []string {
	var paths []string
	for p := range pending {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

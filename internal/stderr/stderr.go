//go:build !windows

// Package stderr redirects file descriptor 2 into the logger while the TUI
// owns the terminal. Audio backends (ALSA through oto) print straight to
// fd 2 and would otherwise scribble over the screen.
package stderr

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// capture is one active redirection.
type capture struct {
	saved   int // duplicate of the terminal's fd 2
	r, w    *os.File
	drained chan struct{}
}

var (
	mu     sync.Mutex
	active *capture
)

// Start points fd 2 at a pipe whose lines are logged at warn level under
// the "stderr" logger. It must run before the speaker is initialised.
// Calling it twice is a no-op. On error fd 2 is left untouched.
func Start(log *zap.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}

	c, err := redirect(int(os.Stderr.Fd()))
	if err != nil {
		return err
	}
	active = c
	go c.forward(log.Named("stderr"))
	return nil
}

func redirect(fd int) (*capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	saved, err := unix.Dup(fd)
	if err != nil {
		return nil, errors.Join(err, r.Close(), w.Close())
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		return nil, errors.Join(err, unix.Close(saved), r.Close(), w.Close())
	}
	return &capture{saved: saved, r: r, w: w, drained: make(chan struct{})}, nil
}

func (c *capture) forward(log *zap.Logger) {
	defer close(c.drained)
	lines := bufio.NewScanner(c.r)
	for lines.Scan() {
		if line := strings.TrimSpace(lines.Text()); line != "" {
			log.Warn(line)
		}
	}
}

// Stop puts the terminal back on fd 2 and waits for buffered lines to be
// logged. It is safe to call without Start.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	c := active
	if c == nil {
		return
	}
	active = nil

	fd := int(os.Stderr.Fd())
	_ = unix.Dup2(c.saved, fd)
	_ = unix.Close(c.saved)

	// fd 2 no longer refers to the pipe, so closing w delivers EOF.
	_ = c.w.Close()
	<-c.drained
	_ = c.r.Close()
}

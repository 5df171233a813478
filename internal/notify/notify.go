// Package notify provides desktop notifications via D-Bus on Linux and
// the platform notifier elsewhere.
package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/playback"
)

const appTitle = "Wavelet"

// Urgency represents notification priority levels as defined by freedesktop notifications.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// UrgencyFor maps a playback notification severity to a desktop urgency.
func UrgencyFor(s playback.Severity) Urgency {
	switch s {
	case playback.SeverityError:
		return UrgencyCritical
	case playback.SeverityWarning, playback.SeveritySuccess:
		return UrgencyNormal
	default:
		return UrgencyLow
	}
}

// Forwarder relays playback notifications to the desktop. Only success and
// error messages are forwarded, and each one replaces the previous bubble.
type Forwarder struct {
	notifier Notifier
	log      *zap.Logger
	timeout  int32

	mu     sync.Mutex
	lastID uint32
}

// NewForwarder creates a forwarder that keeps bubbles for timeoutMS.
func NewForwarder(n Notifier, timeoutMS int32, log *zap.Logger) *Forwarder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Forwarder{notifier: n, timeout: timeoutMS, log: log.Named("notify")}
}

// Forward sends msg to the desktop if its severity warrants it.
// icon may be an artwork path or empty.
func (f *Forwarder) Forward(msg playback.Notification, icon string) {
	if msg.Severity != playback.SeveritySuccess && msg.Severity != playback.SeverityError {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	id, err := f.notifier.Notify(Notification{
		Title:      appTitle,
		Body:       msg.Message,
		Icon:       icon,
		Timeout:    f.timeout,
		ReplacesID: f.lastID,
		Urgency:    UrgencyFor(msg.Severity),
	})
	if err != nil {
		f.log.Debug("desktop notification failed", zap.Error(err))
		return
	}
	if id != 0 {
		f.lastID = id
	}
}

// stubNotifier is used when no desktop notifier is available.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier {
	return &stubNotifier{}
}

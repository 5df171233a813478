//go:build !linux

package notify

import "github.com/gen2brain/beeep"

// beeepNotifier sends notifications through the platform notifier.
// Bubbles cannot be replaced or closed, so IDs are always 0.
type beeepNotifier struct{}

// New returns a notifier backed by the platform notification center.
func New() (Notifier, error) {
	return &beeepNotifier{}, nil
}

func (b *beeepNotifier) Notify(n Notification) (uint32, error) {
	return 0, beeep.Notify(n.Title, n.Body, n.Icon)
}

func (b *beeepNotifier) Close(_ uint32) error {
	return nil
}

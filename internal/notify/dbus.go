//go:build linux

package notify

import (
	"path/filepath"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	methodNotify      = notificationsName + ".Notify"
	methodClose       = notificationsName + ".CloseNotification"

	fallbackIcon     = "audio-x-generic"
	desktopEntryHint = "desktop-entry"
	imagePathHint    = "image-path"
	urgencyHint      = "urgency"
)

const noFlags dbus.Flags = 0

// dbusNotifier talks to the session notification daemon.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one, notifications are dropped
// silently.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}
	return &dbusNotifier{obj: conn.Object(notificationsName, notificationsPath)}, nil
}

// Notify shows n and returns the daemon's bubble ID.
func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	icon, hints := iconAndHints(n)
	call := d.obj.Call(methodNotify, noFlags,
		appTitle, n.ReplacesID, icon, n.Title, n.Body,
		[]string{}, hints, n.Timeout)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close dismisses the bubble with id.
func (d *dbusNotifier) Close(id uint32) error {
	return d.obj.Call(methodClose, noFlags, id).Err
}

// iconAndHints picks the app icon and hints for n. Artwork files go in the
// image-path hint so daemons show the cover next to the text.
func iconAndHints(n Notification) (string, map[string]dbus.Variant) {
	hints := map[string]dbus.Variant{
		urgencyHint:      dbus.MakeVariant(byte(n.Urgency)),
		desktopEntryHint: dbus.MakeVariant("wavelet"),
	}
	icon := n.Icon
	if filepath.IsAbs(icon) {
		hints[imagePathHint] = dbus.MakeVariant("file://" + icon)
		icon = fallbackIcon
	}
	if icon == "" {
		icon = fallbackIcon
	}
	return icon, hints
}

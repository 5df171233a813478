//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestIconAndHints(t *testing.T) {
	tests := []struct {
		name      string
		icon      string
		wantIcon  string
		wantImage string
	}{
		{"no icon", "", fallbackIcon, ""},
		{"named icon", "dialog-error", "dialog-error", ""},
		{"artwork file", "/music/album/cover.jpg", fallbackIcon, "file:///music/album/cover.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, hints := iconAndHints(Notification{Icon: tt.icon, Urgency: UrgencyCritical})

			if icon != tt.wantIcon {
				t.Errorf("icon = %q, want %q", icon, tt.wantIcon)
			}
			image, ok := hints[imagePathHint]
			switch {
			case tt.wantImage == "" && ok:
				t.Errorf("unexpected image-path hint %v", image)
			case tt.wantImage != "" && image != dbus.MakeVariant(tt.wantImage):
				t.Errorf("image-path = %v, want %q", image, tt.wantImage)
			}
			if got := hints[urgencyHint]; got != dbus.MakeVariant(byte(UrgencyCritical)) {
				t.Errorf("urgency hint = %v", got)
			}
		})
	}
}

func TestDBusNotifier_RoundTrip(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, ok := n.(*dbusNotifier); !ok {
		t.Skip("session bus unreachable")
	}

	id, err := n.Notify(Notification{Title: "Wavelet test", Body: "Now playing: Sunset Dreams", Timeout: 1000})
	if err != nil {
		t.Skipf("no notification daemon: %v", err)
	}
	replaced, err := n.Notify(Notification{Title: "Wavelet test", Body: "Added 2 song(s) to playlist", Timeout: 1000, ReplacesID: id})
	if err != nil {
		t.Fatalf("replacing Notify() error: %v", err)
	}
	if replaced != id {
		t.Errorf("replacing notification got id=%d, want %d", replaced, id)
	}
	if err := n.Close(replaced); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

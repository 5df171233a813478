//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"left", ActionPrevTrack},
		{"right", ActionNextTrack},
		{"shift+left", ActionSeekBack},
		{"shift+right", ActionSeekForward},
		{"up", ActionVolumeUp},
		{"down", ActionVolumeDown},
		{"m", ActionToggleMute},
		{"s", ActionToggleShuffle},
		{"r", ActionCycleRepeat},
		{"7", ActionSeekPercent},
		{"o", ActionOpenPicker},
		{"C", ActionClear},
		{"t", ActionToggleTheme},
		{"enter", ActionSelect},
		{"d", ActionDelete},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionDelete, []string{"d"}, "Remove", "playlist"},
		{ActionDelete, []string{"d", "delete"}, "Remove", "other"},
	}

	r := NewResolver(bindings)

	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want [q ctrl+c]", got)
	}
	if got := r.KeysFor(ActionDelete); !slices.Equal(got, []string{"d", "delete"}) {
		t.Errorf("KeysFor(delete) = %v, want deduplicated [d delete]", got)
	}
	if got := r.KeysFor(ActionHelp); got != nil {
		t.Errorf("KeysFor(unbound) = %v, want nil", got)
	}
}

func TestResolver_Bound(t *testing.T) {
	r := NewResolver(ByContext("playlist"))

	if !r.Bound("j") {
		t.Error("Bound(j) = false, want true")
	}
	if r.Bound(" ") {
		t.Error("Bound(space) = true in playlist context, want false")
	}
}

func TestResolver_KeysForReturnsCopy(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionQuit)
	keys[0] = "x"

	if got := r.KeysFor(ActionQuit)[0]; got != "q" {
		t.Errorf("KeysFor(quit)[0] = %q after caller mutation, want q", got)
	}
}

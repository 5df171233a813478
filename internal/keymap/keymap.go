// Package keymap defines key bindings for the application.
package keymap

import "github.com/samber/lo"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

var digitKeys = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionOpenPicker, []string{"o"}, "Add files", "global"},
	{ActionToggleTheme, []string{"t"}, "Toggle light/dark theme", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"right"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"left"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek forward", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek back", "playback"},
	{ActionSeekPercent, digitKeys, "Seek to 0-90%", "playback"},
	{ActionVolumeUp, []string{"up", "+"}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"down", "-"}, "Volume down", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute/unmute", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat mode", "playback"},

	// Playlist panel
	{ActionMoveUp, []string{"k"}, "Move up", "playlist"},
	{ActionMoveDown, []string{"j"}, "Move down", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "playlist"},
	{ActionSelect, []string{"enter"}, "Play track", "playlist"},
	{ActionDelete, []string{"d", "delete"}, "Remove track", "playlist"},
	{ActionClear, []string{"C"}, "Clear playlist", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	return lo.Filter(All, func(kb Binding, _ int) bool {
		return kb.Context == context
	})
}

// SeekPercent returns the position fraction a digit key seeks to:
// "0" is the start and "9" is 90%.
func SeekPercent(key string) (float64, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return float64(key[0]-'0') / 10, true
}

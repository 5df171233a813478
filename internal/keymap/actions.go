// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionOpenPicker  Action = "open_picker"
	ActionToggleTheme Action = "toggle_theme"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionSeekPercent   Action = "seek_percent" // 0-9 - jump to 0%..90%
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionToggleMute    Action = "toggle_mute"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"

	// Playlist panel actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - play selected track
	ActionDelete    Action = "delete" // d/delete - remove selected track
	ActionClear     Action = "clear"  // C - clear playlist
)

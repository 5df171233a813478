// Package icons holds the glyph sets used by the player bar and the
// playlist header. The active set is chosen once at startup.
package icons

// Style names an icon set, as written in the config file.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Set is one complete set of glyphs.
type Set struct {
	Play      string
	Pause     string
	Previous  string
	Next      string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Volume    string
	Muted     string
	Playing   string
}

var sets = map[Style]Set{
	StyleNerd: {
		Play:      "\uf04b",      // nf-fa-play
		Pause:     "\uf04c",      // nf-fa-pause
		Previous:  "\uf048",      // nf-fa-step_backward
		Next:      "\uf051",      // nf-fa-step_forward
		Shuffle:   "\U000f049f",  // nf-md-shuffle
		RepeatAll: "\U000f0456",  // nf-md-repeat
		RepeatOne: "\U000f0458",  // nf-md-repeat_once
		Volume:    "\U000f057e",  // nf-md-volume_high
		Muted:     "\U000f0581",  // nf-md-volume_off
		Playing:   "\U000f075a ", // nf-md-music_note
	},
	StyleUnicode: {
		Play:      "▶",
		Pause:     "⏸",
		Previous:  "⏮",
		Next:      "⏭",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Volume:    "🔊",
		Muted:     "🔇",
		Playing:   "♪ ",
	},
	StyleNone: {
		Play:      ">",
		Pause:     "||",
		Previous:  "|<",
		Next:      ">|",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Volume:    "Vol",
		Muted:     "Mute",
		Playing:   "> ",
	},
}

var (
	active      = StyleNone
	current Set = sets[StyleNone]
)

// Init selects the set named by style. Unknown names, including the empty
// string, select the plain ASCII set. Names are case sensitive.
func Init(style string) {
	s, ok := sets[Style(style)]
	if !ok {
		active, current = StyleNone, sets[StyleNone]
		return
	}
	active, current = Style(style), s
}

// Active returns the selected style.
func Active() Style { return active }

// PlayPause returns the glyph for what the play button would do: pause
// while playing, play otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

func Previous() string  { return current.Previous }
func Next() string      { return current.Next }
func Shuffle() string   { return current.Shuffle }
func RepeatAll() string { return current.RepeatAll }
func RepeatOne() string { return current.RepeatOne }

// Playing marks the current playlist entry.
func Playing() string { return current.Playing }

// Volume returns the speaker glyph, or the muted one.
func Volume(muted bool) string {
	if muted {
		return current.Muted
	}
	return current.Volume
}

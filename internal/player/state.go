package player

// State is the output state of a Player.
//
//	Stopped --load--> Paused <--pause / end of stream-- Playing
//	Paused --play--> Playing
//	Paused, Playing --unload--> Stopped
//
// Load never starts output; a loaded source waits in Paused until Play.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

var stateNames = [...]string{
	Stopped: "Stopped",
	Playing: "Playing",
	Paused:  "Paused",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsActive reports whether a source is loaded.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

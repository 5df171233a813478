//go:build linux

package mpris

// identity answers the org.mpris.MediaPlayer2 root interface. The player
// has no window to raise and its lifetime belongs to the terminal.
type identity struct{}

var (
	uriSchemes = []string{"file"}
	mimeTypes  = []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/x-wav", "audio/ogg", "audio/mp4"}
)

func (identity) Raise() error                          { return nil }
func (identity) Quit() error                           { return nil }
func (identity) CanQuit() (bool, error)                { return false, nil }
func (identity) CanRaise() (bool, error)               { return false, nil }
func (identity) HasTrackList() (bool, error)           { return false, nil }
func (identity) Identity() (string, error)             { return "Wavelet", nil }
func (identity) SupportedMimeTypes() ([]string, error) { return mimeTypes, nil }

//nolint:revive // name fixed by the server interface
func (identity) SupportedUriSchemes() ([]string, error) { return uriSchemes, nil }

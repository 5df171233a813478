// Package app is the bubbletea root model. It owns the UI components,
// forwards controller events to them and turns keys into controller calls.
package app

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/acquire"
	"github.com/llehouerou/wavelet/internal/config"
	"github.com/llehouerou/wavelet/internal/errmsg"
	"github.com/llehouerou/wavelet/internal/icons"
	"github.com/llehouerou/wavelet/internal/inbox"
	"github.com/llehouerou/wavelet/internal/keymap"
	"github.com/llehouerou/wavelet/internal/notify"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/playlist"
	"github.com/llehouerou/wavelet/internal/state"
	"github.com/llehouerou/wavelet/internal/ui/helpbindings"
	"github.com/llehouerou/wavelet/internal/ui/picker"
	"github.com/llehouerou/wavelet/internal/ui/playlistpanel"
	"github.com/llehouerou/wavelet/internal/ui/styles"
	"github.com/llehouerou/wavelet/internal/ui/toast"
)

// Deps are the collaborators the model is built from.
type Deps struct {
	Config   *config.Config
	State    state.Interface
	Playback playback.Service
	Player   player.Interface

	// Forwarder relays notifications to the desktop. Nil disables it.
	Forwarder *notify.Forwarder
	// Inbox is the watched drop folder. Nil disables it.
	Inbox *inbox.Watcher
	// ReadMetadata probes added files. Defaults to acquire.ReadMetadata.
	ReadMetadata acquire.Reader
	// Files are added as one batch at startup.
	Files  []string
	Logger *zap.Logger
}

// Model is the root application model containing all state.
type Model struct {
	Playback playback.Service
	Playlist playlistpanel.Model
	Toasts   toast.Model
	Help     helpbindings.Model
	Picker   picker.Model

	ShowHelp   bool
	ShowPicker bool
	Theme      string
	Width      int
	Height     int

	state     state.Interface
	player    player.Interface
	forwarder *notify.Forwarder
	inbox     *inbox.Watcher
	read      acquire.Reader
	log       *zap.Logger
	sub       *playback.Subscription
	resolver  *keymap.Resolver

	volumeStep      float64
	seekStep        time.Duration
	metadataTimeout time.Duration
	spoolDir        string
	pickerDir       string
	startFiles      []string

	// Upload batches in flight, by batch ID, and their pending probes,
	// by track ID.
	batches map[string]*acquire.Batch
	probes  map[string]pendingProbe
	ticking bool
}

// New creates the application model. The saved theme is applied and the
// configured seed entries are added to the playlist.
func New(d Deps) Model {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	read := d.ReadMetadata
	if read == nil {
		read = acquire.ReadMetadata
	}
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{Volume: config.DefaultVolume}
	}

	icons.Init(cfg.Icons)

	m := Model{
		Playback:        d.Playback,
		Playlist:        playlistpanel.New(),
		Toasts:          toast.New(cfg.GetToastDuration()),
		Help:            helpbindings.New(),
		state:           d.State,
		player:          d.Player,
		forwarder:       d.Forwarder,
		inbox:           d.Inbox,
		read:            read,
		log:             log.Named("app"),
		sub:             d.Playback.Subscribe(),
		resolver:        keymap.NewResolver(append(keymap.ByContext("global"), keymap.ByContext("playback")...)),
		volumeStep:      cfg.GetVolumeStep(),
		seekStep:        cfg.GetSeekStep(),
		metadataTimeout: cfg.GetMetadataTimeout(),
		spoolDir:        cfg.GetSpoolDir(),
		startFiles:      d.Files,
		batches:         make(map[string]*acquire.Batch),
		probes:          make(map[string]pendingProbe),
	}
	if wd, err := os.Getwd(); err == nil {
		m.pickerDir = wd
	}

	m.loadTheme()
	m.Playback.SetVolume(cfg.GetVolume())
	m.addSeeds(cfg.Seeds)
	m.syncPlaylist()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.WatchServiceEvents(), m.WatchPlayerEvents(), m.WatchInbox()}
	if len(m.startFiles) > 0 {
		files := m.startFiles
		cmds = append(cmds, func() tea.Msg { return AddFilesMsg{Paths: files} })
	}
	if m.inbox != nil {
		cmds = append(cmds, m.pendingInboxCmd())
	}
	return tea.Batch(cmds...)
}

// loadTheme applies the persisted theme. Failures fall back to light.
func (m *Model) loadTheme() {
	name := state.ThemeLight
	if m.state != nil {
		saved, err := m.state.Theme()
		if err != nil {
			m.log.Warn(errmsg.Format(errmsg.OpThemeLoad, err))
		} else {
			name = saved
		}
	}
	m.Theme = styles.Use(name).Name
}

// addSeeds adds the configured static entries. Entries whose file cannot be
// opened are kept without a source so they still list.
func (m *Model) addSeeds(seeds []config.SeedConfig) {
	tracks := make([]playlist.Track, 0, len(seeds))
	for _, s := range seeds {
		t := playlist.Track{
			ID:     uuid.NewString(),
			Title:  s.Title,
			Artist: s.Artist,
			Album:  s.Album,
		}
		if d, ok := s.GetDuration(); ok {
			t.Duration = d
		}
		if s.Path != "" {
			h, err := acquire.Open(s.Path)
			if err != nil {
				m.log.Warn("seed source unavailable", zap.String("path", s.Path), zap.Error(err))
			} else {
				t.Source = h
				t.Artwork = acquire.FindArtwork(s.Path)
			}
		}
		tracks = append(tracks, t)
	}
	m.Playback.AddTracks(tracks...)
}

// syncPlaylist copies the controller's playlist and modes into the panel.
func (m *Model) syncPlaylist() {
	m.Playlist.SetTracks(m.Playback.Tracks(), m.Playback.CurrentIndex())
	m.Playlist.SetModes(m.Playback.Shuffle(), m.Playback.RepeatMode())
}

// Shutdown cancels pending probes and releases every transient source.
// Call it after the program exits.
func (m Model) Shutdown() {
	for id, p := range m.probes {
		p.cancel()
		delete(m.probes, id)
	}
	m.Playback.Clear()
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "wavelet"

// Defaults applied when a key is missing or out of range.
const (
	DefaultVolume          = 0.7
	DefaultVolumeStep      = 0.1
	DefaultSeekStep        = 5 * time.Second
	DefaultMetadataTimeout = 3 * time.Second
	DefaultToastDuration   = 3 * time.Second
)

type Config struct {
	Icons           string  `koanf:"icons"`            // "nerd", "unicode", or "none"
	Volume          float64 `koanf:"volume"`           // initial volume, 0..1
	VolumeStep      float64 `koanf:"volume_step"`      // arrow-key step
	SeekStep        string  `koanf:"seek_step"`        // e.g. "5s"
	MetadataTimeout string  `koanf:"metadata_timeout"` // e.g. "3s"

	// Drop folder watched for new files (enabled by default)
	Inbox    *bool  `koanf:"inbox"`
	InboxDir string `koanf:"inbox_dir"`

	// Where transient copies of added files live
	SpoolDir string `koanf:"spool_dir"`

	Notifications NotificationsConfig `koanf:"notifications"`
	Mpris         MprisConfig         `koanf:"mpris"`
	Log           LogConfig           `koanf:"log"`

	// Static entries added to the playlist at startup
	Seeds []SeedConfig `koanf:"seed"`
}

// NotificationsConfig holds toast and desktop notification settings.
type NotificationsConfig struct {
	Desktop       bool   `koanf:"desktop"`        // forward success/error messages to the desktop
	ToastDuration string `koanf:"toast_duration"` // e.g. "3s"
}

// MprisConfig holds media-key integration settings.
type MprisConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level      string `koanf:"level"` // debug, info, warn, error (default: info)
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// SeedConfig describes a playlist entry known before any file is added.
// Entries without a path are listed but cannot be played.
type SeedConfig struct {
	Title    string `koanf:"title"`
	Artist   string `koanf:"artist"`
	Album    string `koanf:"album"`
	Duration string `koanf:"duration"` // e.g. "3:45" or "225s"
	Path     string `koanf:"path"`
}

// Load reads the default config files.
func Load() (*Config, error) {
	return LoadFrom()
}

// LoadFrom reads the default config files followed by extra, in order of
// priority (last wins). Missing default files are skipped; a missing extra
// file is an error.
func LoadFrom(extra ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	for _, path := range extra {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Volume:     DefaultVolume,
		VolumeStep: DefaultVolumeStep,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.InboxDir = expandPath(cfg.InboxDir)
	cfg.SpoolDir = expandPath(cfg.SpoolDir)
	cfg.Log.File = expandPath(cfg.Log.File)
	for i := range cfg.Seeds {
		cfg.Seeds[i].Path = expandPath(cfg.Seeds[i].Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/wavelet/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetVolume returns the initial volume clamped to [0, 1].
func (c *Config) GetVolume() float64 {
	return min(max(c.Volume, 0), 1)
}

// GetVolumeStep returns the volume step, falling back to the default when
// it is not in (0, 1].
func (c *Config) GetVolumeStep() float64 {
	if c.VolumeStep <= 0 || c.VolumeStep > 1 {
		return DefaultVolumeStep
	}
	return c.VolumeStep
}

// GetSeekStep returns the relative seek step.
func (c *Config) GetSeekStep() time.Duration {
	return parsePositive(c.SeekStep, DefaultSeekStep)
}

// GetMetadataTimeout returns how long a metadata probe may run.
func (c *Config) GetMetadataTimeout() time.Duration {
	return parsePositive(c.MetadataTimeout, DefaultMetadataTimeout)
}

// GetToastDuration returns how long a toast stays visible.
func (c *Config) GetToastDuration() time.Duration {
	return parsePositive(c.Notifications.ToastDuration, DefaultToastDuration)
}

// InboxEnabled returns true unless the drop folder was disabled.
func (c *Config) InboxEnabled() bool {
	return c.Inbox == nil || *c.Inbox
}

// GetInboxDir returns the drop folder path.
func (c *Config) GetInboxDir() string {
	if c.InboxDir != "" {
		return c.InboxDir
	}
	return filepath.Join(xdg.DataHome, appName, "inbox")
}

// GetSpoolDir returns the directory for transient file copies.
func (c *Config) GetSpoolDir() string {
	if c.SpoolDir != "" {
		return c.SpoolDir
	}
	return filepath.Join(xdg.CacheHome, appName, "spool")
}

// MprisEnabled returns true unless MPRIS was disabled.
func (c *Config) MprisEnabled() bool {
	return c.Mpris.Enabled == nil || *c.Mpris.Enabled
}

func parsePositive(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// GetDuration parses the seed duration, accepting "M:SS" or a Go duration.
// The second return is false when the duration is missing or malformed.
func (s SeedConfig) GetDuration() (time.Duration, bool) {
	if s.Duration == "" {
		return 0, false
	}
	if mins, secs, ok := strings.Cut(s.Duration, ":"); ok {
		m, err1 := strconv.Atoi(mins)
		sec, err2 := strconv.Atoi(secs)
		if err1 != nil || err2 != nil || m < 0 || sec < 0 || sec >= 60 {
			return 0, false
		}
		return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, true
	}
	d, err := time.ParseDuration(s.Duration)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

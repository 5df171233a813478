//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/inbox/new",
			expected: filepath.Join(home, "music", "inbox", "new"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil && len(paths) > 1 {
		want := filepath.Join(home, ".config", "wavelet", "config.toml")
		if paths[0] != want {
			t.Errorf("first config path = %q, want %q", paths[0], want)
		}
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	cfg.Volume = DefaultVolume

	if got := cfg.GetVolume(); got != 0.7 {
		t.Errorf("GetVolume() = %v, want 0.7", got)
	}
	if got := cfg.GetVolumeStep(); got != 0.1 {
		t.Errorf("GetVolumeStep() = %v, want 0.1", got)
	}
	if got := cfg.GetSeekStep(); got != 5*time.Second {
		t.Errorf("GetSeekStep() = %v, want 5s", got)
	}
	if got := cfg.GetMetadataTimeout(); got != 3*time.Second {
		t.Errorf("GetMetadataTimeout() = %v, want 3s", got)
	}
	if got := cfg.GetToastDuration(); got != 3*time.Second {
		t.Errorf("GetToastDuration() = %v, want 3s", got)
	}
	if !cfg.InboxEnabled() {
		t.Error("InboxEnabled() = false, want true")
	}
	if !cfg.MprisEnabled() {
		t.Error("MprisEnabled() = false, want true")
	}
	if cfg.GetInboxDir() == "" || cfg.GetSpoolDir() == "" {
		t.Error("default directories must not be empty")
	}
}

func TestGetters_InvalidValues(t *testing.T) {
	cfg := Config{
		Volume:          1.8,
		VolumeStep:      -1,
		SeekStep:        "soon",
		MetadataTimeout: "-2s",
		Notifications:   NotificationsConfig{ToastDuration: "0s"},
	}

	if got := cfg.GetVolume(); got != 1 {
		t.Errorf("GetVolume() = %v, want 1", got)
	}
	if got := cfg.GetVolumeStep(); got != DefaultVolumeStep {
		t.Errorf("GetVolumeStep() = %v, want %v", got, DefaultVolumeStep)
	}
	if got := cfg.GetSeekStep(); got != DefaultSeekStep {
		t.Errorf("GetSeekStep() = %v, want %v", got, DefaultSeekStep)
	}
	if got := cfg.GetMetadataTimeout(); got != DefaultMetadataTimeout {
		t.Errorf("GetMetadataTimeout() = %v, want %v", got, DefaultMetadataTimeout)
	}
	if got := cfg.GetToastDuration(); got != DefaultToastDuration {
		t.Errorf("GetToastDuration() = %v, want %v", got, DefaultToastDuration)
	}
}

func TestLoadFrom_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	content := `
icons = "unicode"
volume = 0.4
seek_step = "10s"
inbox = false
spool_dir = "/tmp/spool"

[notifications]
desktop = true
toast_duration = "5s"

[mpris]
enabled = false

[log]
level = "debug"
max_size_mb = 5

[[seed]]
title = "Sunset Dreams"
artist = "Ambient Waves"
album = "Chill Collection"
duration = "3:45"

[[seed]]
title = "Ocean Breeze"
duration = "4:12"
path = "/music/ocean.mp3"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "unicode", cfg.Icons)
	assert.InDelta(t, 0.4, cfg.GetVolume(), 1e-9)
	assert.InDelta(t, DefaultVolumeStep, cfg.GetVolumeStep(), 1e-9)
	assert.Equal(t, 10*time.Second, cfg.GetSeekStep())
	assert.False(t, cfg.InboxEnabled())
	assert.Equal(t, "/tmp/spool", cfg.GetSpoolDir())
	assert.True(t, cfg.Notifications.Desktop)
	assert.Equal(t, 5*time.Second, cfg.GetToastDuration())
	assert.False(t, cfg.MprisEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)

	require.Len(t, cfg.Seeds, 2)
	assert.Equal(t, "Sunset Dreams", cfg.Seeds[0].Title)
	assert.Empty(t, cfg.Seeds[0].Path)
	assert.Equal(t, "/music/ocean.mp3", cfg.Seeds[1].Path)
}

func TestLoadFrom_MissingExtra(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSeedConfig_GetDuration(t *testing.T) {
	tests := []struct {
		input  string
		want   time.Duration
		wantOK bool
	}{
		{"3:45", 3*time.Minute + 45*time.Second, true},
		{"0:07", 7 * time.Second, true},
		{"225s", 225 * time.Second, true},
		{"", 0, false},
		{"3:75", 0, false},
		{"a:10", 0, false},
		{"later", 0, false},
	}

	for _, tt := range tests {
		got, ok := SeedConfig{Duration: tt.input}.GetDuration()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("GetDuration(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

package player

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestCanDecode(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/a.mp3", true},
		{"/music/a.MP3", true},
		{"/music/a.flac", true},
		{"/music/a.wav", true},
		{"/music/a.ogg", true},
		{"/music/a.m4a", true},
		{"/music/a.AAC", true},
		{"/music/a.opus", false},
		{"/music/cover.jpg", false},
		{"/music/noext", false},
	}
	for _, tt := range tests {
		if got := CanDecode(tt.path); got != tt.want {
			t.Errorf("CanDecode(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReadDuration_Unsupported(t *testing.T) {
	_, err := ReadDuration("/music/a.opus")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadDuration(opus) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestReadDuration_CorruptMP4(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bad.m4a", "bad.aac"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("not an mp4 container"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := ReadDuration(path)
		if err == nil {
			t.Errorf("ReadDuration(%s) error = nil, want decode error", name)
		}
		if errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ReadDuration(%s) error = %v, want a decode error", name, err)
		}
	}
}

func TestInt16Frames(t *testing.T) {
	stereo := int16Frames([]int16{16384, -16384, 0, 32767}, 2)
	if len(stereo) != 2 || stereo[0] != [2]float64{0.5, -0.5} {
		t.Errorf("int16Frames(stereo) = %v", stereo)
	}

	mono := int16Frames([]int16{-32768, 8192}, 1)
	want := [][2]float64{{-1, -1}, {0.25, 0.25}}
	if len(mono) != 2 || mono[0] != want[0] || mono[1] != want[1] {
		t.Errorf("int16Frames(mono) = %v, want %v", mono, want)
	}

	if got := int16Frames([]int16{1, 2}, 0); got != nil {
		t.Errorf("int16Frames(no channels) = %v, want nil", got)
	}
}

func TestPCMFrames(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		channels int
		bits     int
		want     [][2]float64
	}{
		{"16-bit stereo", []byte{0x00, 0x40, 0x00, 0xc0}, 2, 16, [][2]float64{{0.5, -0.5}}},
		{"16-bit mono", []byte{0x00, 0x80}, 1, 16, [][2]float64{{-1, -1}}},
		{"24-bit stereo", []byte{0x00, 0x00, 0x40, 0x00, 0x00, 0xc0}, 2, 24, [][2]float64{{0.5, -0.5}}},
		{"partial frame dropped", []byte{0x00, 0x40, 0x00}, 2, 16, [][2]float64{}},
		{"unknown width", []byte{0x00, 0x40}, 1, 8, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pcmFrames(tt.data, tt.channels, tt.bits)
			if len(got) != len(tt.want) {
				t.Fatalf("pcmFrames() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("frame %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadDuration_MissingFile(t *testing.T) {
	_, err := ReadDuration(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadDuration(missing) error = %v, want ErrNotExist", err)
	}
}

func TestSkipID3v2(t *testing.T) {
	t.Run("no tag rewinds", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC0123456789"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		pos, _ := r.Seek(0, io.SeekCurrent)
		if pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})

	t.Run("tag is skipped", func(t *testing.T) {
		header := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 5}
		data := append(header, []byte("xxxxxfLaC")...)
		r := bytes.NewReader(data)
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		pos, _ := r.Seek(0, io.SeekCurrent)
		if pos != 15 {
			t.Errorf("position = %d, want 15", pos)
		}
	})
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{0, -10},
		{-1, -10},
		{0.25, -2},
		{0.5, -1},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := levelToVolume(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestPlayer_WithoutSource(t *testing.T) {
	p := New(nil)
	defer p.Close()

	if err := p.Play(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Play() error = %v, want ErrNotLoaded", err)
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if p.Position() != 0 || p.Duration() != 0 {
		t.Errorf("Position/Duration = %v/%v, want 0/0", p.Position(), p.Duration())
	}

	p.SetVolume(3)
	if p.Volume() != 1 {
		t.Errorf("Volume() = %v, want 1", p.Volume())
	}
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Muted() = false, want true")
	}
	p.Pause()
	p.SeekTo(0)
	p.Unload()
}

func TestPlayer_LoadUnsupported(t *testing.T) {
	p := New(nil)
	defer p.Close()

	err := p.Load("/music/a.opus")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(opus) error = %v, want ErrUnsupportedFormat", err)
	}
	if p.Loaded() != "" {
		t.Errorf("Loaded() = %q, want empty", p.Loaded())
	}
}

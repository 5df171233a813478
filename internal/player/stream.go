package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
	extM4A  = ".m4a"
	extAAC  = ".aac"
)

// ErrUnsupportedFormat is returned for files the decoders cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported format")

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// CanDecode reports whether path has an extension the player can decode.
func CanDecode(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG, extM4A, extAAC:
		return true
	default:
		return false
	}
}

// decodeFile opens path and returns a seekable streamer for it.
// The caller owns both the streamer and the file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, *os.File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !CanDecode(path) {
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err := skipID3v2(f); err != nil {
			f.Close()
			return nil, beep.Format{}, nil, err
		}
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	case extM4A:
		streamer, format, err = decodeM4A(f)
	case extAAC:
		streamer, format, err = decodeAAC(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, f, nil
}

// initSpeaker initializes the speaker at the first decoded sample rate.
// Later sources are resampled to it.
func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}

// ReadDuration decodes path just far enough to report its length.
func ReadDuration(path string) (time.Duration, error) {
	streamer, format, f, err := decodeFile(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
// Some FLAC files have ID3v2 tags prepended, which the FLAC decoder doesn't handle.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := r.Read(header)
	if err != nil {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer in bytes 6-9 (7 bits per byte)
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

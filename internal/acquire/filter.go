// Package acquire turns user-supplied files into playable tracks.
package acquire

import (
	"errors"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrNotAudio is returned for files that are not recognized as audio.
var ErrNotAudio = errors.New("not an audio file")

// Extensions lists the accepted audio file extensions.
var Extensions = []string{".mp3", ".wav", ".ogg", ".m4a", ".aac", ".flac"}

// IsAudio reports whether a file is audio, by MIME type or by extension.
func IsAudio(name, mimeType string) bool {
	if strings.HasPrefix(mimeType, "audio/") {
		return true
	}
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// DetectMIME returns the MIME type of path, from its extension when known
// and otherwise by sniffing its first bytes. Returns "" if undetermined.
func DetectMIME(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	if n == 0 {
		return ""
	}
	return http.DetectContentType(buf[:n])
}

// Filter splits paths into audio files and everything else.
func Filter(paths []string) (accepted, rejected []string) {
	return lo.FilterReject(paths, func(p string, _ int) bool {
		return IsAudio(p, DetectMIME(p))
	})
}

// Package playerbar renders the now-playing bar: track info, transport
// state, progress, volume and play modes.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavelet/internal/icons"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/render"
	"github.com/llehouerou/wavelet/internal/ui/styles"
)

// State holds everything needed to render the player bar.
type State struct {
	Status   playback.State
	HasTrack bool
	Title    string
	Artist   string
	Album    string
	Elapsed  string
	Total    string
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Muted    bool
	Shuffle  bool
	Repeat   playback.RepeatMode
}

// NewState snapshots the controller for rendering.
func NewState(svc playback.Service) State {
	s := State{
		Status:   svc.State(),
		Elapsed:  svc.Elapsed(),
		Total:    svc.Total(),
		Position: svc.Position(),
		Duration: svc.Duration(),
		Volume:   svc.Volume(),
		Muted:    svc.Muted(),
		Shuffle:  svc.Shuffle(),
		Repeat:   svc.RepeatMode(),
	}
	if t := svc.CurrentTrack(); t != nil {
		s.HasTrack = true
		s.Title = t.Title
		s.Artist = t.Artist
		s.Album = t.Album
	}
	return s
}

// Height returns the total height of the player bar.
func Height() int {
	return ui.PlayerBarHeight
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	innerWidth := max(width-ui.BorderHeight-2, 0) // border + horizontal padding
	t := styles.T()

	var lines []string
	if s.HasTrack {
		lines = []string{
			render.Row(titleLine(s, innerWidth), volumeLabel(s), innerWidth),
			render.Row(t.S().Muted.Render(infoLine(s, innerWidth)), modeLabel(s), innerWidth),
		}
	} else {
		lines = []string{
			t.S().Title.Render("Nothing playing"),
			t.S().Subtle.Render("Press o to add files"),
		}
	}

	lines = append(lines,
		ProgressBar(s.Position, s.Duration, innerWidth),
		render.Row(t.S().Muted.Render(s.Elapsed), t.S().Muted.Render(s.Total), innerWidth),
	)

	return styles.PanelStyle(false).
		Padding(0, 1).
		Width(width - ui.BorderHeight).
		Render(strings.Join(lines, "\n"))
}

func titleLine(s State, width int) string {
	t := styles.T()
	// Status glyph: play while playing, pause otherwise.
	status := icons.PlayPause(s.Status != playback.StatePlaying)
	statusStyle := t.S().Header
	if s.Status == playback.StateError {
		statusStyle = t.S().Error
	}

	// Leave room for the volume label on the right.
	maxTitle := max(width-lipgloss.Width(status)-1-lipgloss.Width(volumeLabel(s))-2, 1)
	title := render.TruncateEllipsis(s.Title, maxTitle)
	return statusStyle.Render(status) + " " + styles.ApplyGradient(title, t.Primary, t.Secondary)
}

func infoLine(s State, width int) string {
	info := s.Artist
	if s.Album != "" {
		info += " · " + s.Album
	}
	return render.TruncateEllipsis(info, max(width-lipgloss.Width(modeLabel(s))-2, 1))
}

func volumeLabel(s State) string {
	pct := int(s.Volume*100 + 0.5)
	style := styles.T().S().Muted
	if s.Muted {
		style = styles.T().S().Warning
	}
	return style.Render(fmt.Sprintf("%s %3d%%", icons.Volume(s.Muted), pct))
}

func modeLabel(s State) string {
	var parts []string
	if s.Shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch s.Repeat {
	case playback.RepeatOff:
	case playback.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	case playback.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	}
	return styles.T().S().Header.Render(strings.Join(parts, "  "))
}

package playlistpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavelet/internal/icons"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/render"
	"github.com/llehouerou/wavelet/internal/ui/styles"
)

const durationWidth = 8 // "Unknown" plus a leading space

// View renders the playlist panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	content := m.renderHeader(innerWidth) + "\n" +
		styles.T().S().Subtle.Render(render.Separator(innerWidth)) + "\n" +
		m.renderTrackList(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders the title with position/count and mode icons.
func (m Model) renderHeader(innerWidth int) string {
	text := fmt.Sprintf("Playlist (%d/%d)", m.current+1, len(m.tracks))
	if m.current < 0 {
		text = fmt.Sprintf("Playlist (%d)", len(m.tracks))
	}

	modes, modesWidth := m.renderModeIcons()
	text = render.TruncateAndPad(text, max(innerWidth-modesWidth, 0))
	return styles.T().S().Header.Render(text) + modes
}

// renderModeIcons returns the styled mode icons and their display width.
func (m Model) renderModeIcons() (styled string, width int) {
	var parts []string
	if m.shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch m.repeat {
	case playback.RepeatOff:
	case playback.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	case playback.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	}
	if len(parts) == 0 {
		return "", 0
	}

	raw := strings.Join(parts, "  ") + " "
	return styles.T().S().Header.Render(raw), lipgloss.Width(raw)
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	if len(m.tracks) == 0 {
		lines := make([]string, 0, listHeight)
		lines = append(lines, styles.T().S().Subtle.Render(
			render.TruncateAndPad("No songs yet. Press o to add files.", innerWidth)))
		for len(lines) < listHeight {
			lines = append(lines, render.EmptyLine(innerWidth))
		}
		return strings.Join(lines[:min(len(lines), max(listHeight, 0))], "\n")
	}

	lines := make([]string, 0, listHeight)
	start, end := m.cursor.Window(len(m.tracks), listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderTrackLine(m.tracks[idx], idx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders marker, title, artist and duration on one row.
func (m Model) renderTrackLine(track playback.Track, idx, width int) string {
	marker := icons.Playing()
	prefixWidth := lipgloss.Width(marker)
	prefix := strings.Repeat(" ", prefixWidth)
	if idx == m.current {
		prefix = marker
	}

	contentWidth := max(width-prefixWidth-durationWidth, 0)
	titleWidth := contentWidth * 3 / 5
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(track.Title, titleWidth) +
		render.TruncateAndPad(track.Artist, artistWidth) +
		fmt.Sprintf("%*s", durationWidth, track.DurationDisplay())

	return m.trackStyle(idx).Render(line)
}

// trackStyle returns the style for a row based on cursor and playing state.
func (m Model) trackStyle(idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == m.current

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor:
		return s.Cursor
	case isPlaying:
		return s.Playing
	default:
		return s.Base
	}
}

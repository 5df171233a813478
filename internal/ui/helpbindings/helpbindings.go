// Package helpbindings renders the key reference overlay.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavelet/internal/keymap"
	"github.com/llehouerou/wavelet/internal/ui"
)

// CloseMsg asks the parent to hide the overlay.
type CloseMsg struct{}

// sections lists the binding contexts in display order.
var sections = []struct{ context, title string }{
	{"global", "Global"},
	{"playback", "Playback"},
	{"playlist", "Playlist"},
}

// chrome is the height taken by the title, footer, the blank lines around
// them and the border.
const (
	chrome         = 8
	minBodyHeight  = 5
	separatorExtra = 20
)

type rowKind int

const (
	rowBlank rowKind = iota
	rowTitle
	rowRule
	rowBinding
)

// row is one body line. Rows are styled at render time so a theme switch
// is picked up without rebuilding the model.
type row struct {
	kind rowKind
	key  string
	text string
}

// Model is the help overlay. It scrolls when the body is taller than the
// space it is given.
type Model struct {
	ui.Base
	rows     []row
	keyWidth int
	offset   int
}

// New builds the overlay from the keymap.
func New() Model {
	var m Model
	for i, sec := range sections {
		if i > 0 {
			m.rows = append(m.rows, row{kind: rowBlank})
		}
		m.rows = append(m.rows, row{kind: rowTitle, text: sec.title}, row{kind: rowRule})
		for _, b := range keymap.ByContext(sec.context) {
			label := keyLabel(b)
			m.keyWidth = max(m.keyWidth, lipgloss.Width(label))
			m.rows = append(m.rows, row{kind: rowBinding, key: label, text: b.Description})
		}
	}
	return m
}

// Reset scrolls back to the top.
func (m *Model) Reset() {
	m.offset = 0
}

// Update scrolls on j/k and emits CloseMsg on ?, esc or q.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		m.offset = min(m.offset+1, m.maxScroll())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// View renders the bordered box, or "" before the first size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	st := newStyles()

	start := min(m.offset, len(m.rows))
	end := min(start+m.bodyHeight(), len(m.rows))
	lines := make([]string, 0, end-start)
	for _, r := range m.rows[start:end] {
		lines = append(lines, m.renderRow(st, r))
	}

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Help"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		st.subtle.Render(footer),
	)
	return st.box.Render(body)
}

func (m Model) renderRow(st helpStyles, r row) string {
	switch r.kind {
	case rowTitle:
		return st.section.Render(r.text)
	case rowRule:
		return st.subtle.Render(strings.Repeat("─", m.keyWidth+separatorExtra))
	case rowBinding:
		return st.key.Width(m.keyWidth).Render(r.key) + "  " + st.desc.Render(r.text)
	default:
		return ""
	}
}

// keyLabel joins a binding's keys for display. The digit row is collapsed.
func keyLabel(b keymap.Binding) string {
	if b.Action == keymap.ActionSeekPercent {
		return "0-9"
	}
	names := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}

func (m Model) bodyHeight() int {
	return max(m.Height()-chrome, minBodyHeight)
}

func (m Model) maxScroll() int {
	return max(len(m.rows)-m.bodyHeight(), 0)
}

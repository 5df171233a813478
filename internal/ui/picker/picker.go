// Package picker is the file selection overlay used to add songs.
package picker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavelet/internal/acquire"
	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/styles"
)

// FilesChosenMsg carries one upload batch picked by the user.
// Paths may be empty or contain non-audio files; the app validates them.
type FilesChosenMsg struct {
	Paths []string
}

// ClosedMsg signals the picker was dismissed.
type ClosedMsg struct{}

// chrome is the border, title, hint line and blank lines around the list.
const chrome = ui.BorderHeight + 4

// Model wraps a bubbles file picker restricted to audio files.
type Model struct {
	ui.Base
	picker filepicker.Model
}

// New creates a picker rooted at dir.
func New(dir string) Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = allowedTypes()
	fp.AutoHeight = false
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.Styles = pickerStyles()
	return Model{picker: fp}
}

// allowedTypes lists accepted suffixes in both cases, since the file
// picker matches them verbatim.
func allowedTypes() []string {
	types := make([]string, 0, 2*len(acquire.Extensions))
	for _, ext := range acquire.Extensions {
		types = append(types, ext, strings.ToUpper(ext))
	}
	return types
}

// Init reads the starting directory.
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// SetSize sets the overlay dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.picker.Height = max(height-chrome, 3)
}

// Dir returns the directory being browsed.
func (m Model) Dir() string {
	return m.picker.CurrentDirectory
}

// Update forwards navigation to the file picker and turns selections into
// FilesChosenMsg. "a" picks every file in the current directory at once.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return ClosedMsg{} }
		case "a":
			paths := listFiles(m.picker.CurrentDirectory)
			return m, func() tea.Msg { return FilesChosenMsg{Paths: paths} }
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, chosen(path)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		return m, chosen(path)
	}
	return m, cmd
}

func chosen(path string) tea.Cmd {
	return func() tea.Msg { return FilesChosenMsg{Paths: []string{path}} }
}

// listFiles returns the regular, non-hidden files in dir.
func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths
}

// View renders the picker box.
func (m Model) View() string {
	t := styles.T()
	width := max(m.Width()-ui.BorderHeight-2, 20)

	content := t.S().Title.Render("Add songs") + "\n" +
		t.S().Muted.Render(m.picker.CurrentDirectory) + "\n\n" +
		m.picker.View() + "\n" +
		t.S().Subtle.Render("enter add · a add folder · h back · esc close")

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Width(width).
		Render(content)
}

func pickerStyles() filepicker.Styles {
	t := styles.T()
	s := filepicker.DefaultStyles()
	s.Cursor = lipgloss.NewStyle().Foreground(t.Primary)
	s.Selected = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.Directory = lipgloss.NewStyle().Foreground(t.Secondary)
	s.File = lipgloss.NewStyle().Foreground(t.FgBase)
	s.DisabledFile = lipgloss.NewStyle().Foreground(t.FgSubtle)
	s.FileSize = lipgloss.NewStyle().Foreground(t.FgMuted).Width(7).Align(lipgloss.Right)
	return s
}

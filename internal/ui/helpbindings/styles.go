package helpbindings

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavelet/internal/ui/styles"
)

type helpStyles struct {
	box     lipgloss.Style
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	subtle  lipgloss.Style
}

func newStyles() helpStyles {
	t := styles.T()
	return helpStyles{
		box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),
		title:   t.S().Title,
		section: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		key:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		desc:    t.S().Base,
		subtle:  t.S().Subtle,
	}
}

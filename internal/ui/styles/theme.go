package styles

import "github.com/charmbracelet/lipgloss"

// Theme names, as persisted in the state database.
const (
	Light = "light"
	Dark  = "dark"
)

// Theme is a palette plus the styles derived from it.
type Theme struct {
	Name string

	Primary   lipgloss.Color // focus, current track
	Secondary lipgloss.Color // section titles, gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Toast severities.
	Info    lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles Styles
}

// Styles are the text styles shared by every component.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Header  lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var themes = map[string]*Theme{
	Light: build(Theme{
		Name:        Light,
		Primary:     "#7c3aed",
		Secondary:   "#db2777",
		FgBase:      "#1f2937",
		FgMuted:     "#4b5563",
		FgSubtle:    "#9ca3af",
		BgBase:      "#f9fafb",
		BgCursor:    "#e5e7eb",
		Border:      "#d1d5db",
		BorderFocus: "#7c3aed",
		Info:        "#2563eb",
		Success:     "#15803d",
		Error:       "#dc2626",
		Warning:     "#b45309",
	}),
	Dark: build(Theme{
		Name:        Dark,
		Primary:     "#a78bfa",
		Secondary:   "#f472b6",
		FgBase:      "#c0c0c0",
		FgMuted:     "#808080",
		FgSubtle:    "#585858",
		BgBase:      "#1a1a1a",
		BgCursor:    "#303030",
		Border:      "#585858",
		BorderFocus: "#a78bfa",
		Info:        "#60a5fa",
		Success:     "#42b883",
		Error:       "#ff5555",
		Warning:     "#f1a208",
	}),
}

func build(t Theme) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	base := fg(t.FgBase)
	accent := fg(t.Primary).Bold(true)
	t.styles = Styles{
		Base:    base,
		Muted:   fg(t.FgMuted),
		Subtle:  fg(t.FgSubtle),
		Title:   base.Bold(true),
		Header:  accent,
		Playing: accent,
		Cursor:  base.Background(t.BgCursor),
		Info:    fg(t.Info),
		Success: fg(t.Success),
		Error:   fg(t.Error),
		Warning: fg(t.Warning),
	}
	return &t
}

// current is only touched from the bubbletea update loop.
var current = themes[Light]

// T returns the active theme.
func T() *Theme {
	return current
}

// Use activates the named theme. Unknown names select the light theme.
func Use(name string) *Theme {
	t, ok := themes[name]
	if !ok {
		t = themes[Light]
	}
	current = t
	return t
}

// Other returns the theme a toggle switches to from name.
func Other(name string) string {
	if name == Dark {
		return Light
	}
	return Dark
}

// S returns the theme's shared styles.
func (t *Theme) S() *Styles {
	return &t.styles
}

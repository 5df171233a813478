package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not #rrggbb, such as ANSI indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyGradient colors each grapheme of text along a gradient from one
// color to another.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	stops := Blend(len(clusters), from, to)
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(stops[i]).Render(c))
	}
	return b.String()
}

// GradientBar renders the first filled cells of a width-cell bar. Colors
// span the whole bar, so the tip's hue shows how far along it is.
func GradientBar(cell string, filled, width int) string {
	filled = min(filled, width)
	if filled <= 0 {
		return ""
	}
	t := T()
	stops := Blend(width, t.Primary, t.Secondary)

	var b strings.Builder
	for _, c := range stops[:filled] {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(cell))
	}
	return b.String()
}

// Blend returns n colors from one color to another, interpolated in HCL so
// steps look even.
func Blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n < 2 {
		return []lipgloss.Color{from}
	}
	a, b := parseHex(from), parseHex(to)
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = lipgloss.Color(a.BlendHcl(b, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}

func graphemes(text string) []string {
	var out []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

package playerbar

import (
	"strings"
	"time"

	"github.com/llehouerou/wavelet/internal/ui"
	"github.com/llehouerou/wavelet/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
)

// ProgressBar renders position/duration as a bar of exactly width cells.
// The filled part is a gradient; an unknown duration renders empty.
func ProgressBar(position, duration time.Duration, width int) string {
	if width < ui.MinProgressBarWidth {
		return strings.Repeat(" ", max(width, 0))
	}
	filled := Filled(position, duration, width)
	return styles.GradientBar(filledCell, filled, width) +
		styles.T().S().Subtle.Render(strings.Repeat(emptyCell, width-filled))
}

// Filled returns how many of width cells are filled at position.
func Filled(position, duration time.Duration, width int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(width)*ratio), width)
}

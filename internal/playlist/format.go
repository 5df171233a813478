package playlist

import (
	"fmt"
	"math"
	"time"
)

// FormatSeconds formats a position in seconds as M:SS.
// NaN, infinite and negative values render as "0:00".
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatDuration formats d as M:SS.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}

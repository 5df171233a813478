// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// Used to calculate available list height: listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// PlayerBarHeight is the player bar's content rows plus its border.
	PlayerBarHeight = 4 + BorderHeight

	// HintBarHeight is the single line of key hints under the panels.
	HintBarHeight = 1

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// ToastWidth is the fixed width of a toast box, border included.
	ToastWidth = 44

	// MaxToasts is how many toasts are stacked at once; older ones are dropped.
	MaxToasts = 4
)

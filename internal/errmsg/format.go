// Package errmsg builds the user-facing text for failures shown in toasts.
// Log lines carry the raw error; only these strings reach the screen.
package errmsg

import "fmt"

// Op names what was being attempted, phrased to follow "Failed to".
type Op string

const (
	OpInboxScan Op = "scan drop folder"
	OpThemeLoad Op = "load theme"
	OpThemeSave Op = "save theme"
)

// Format returns "Failed to <op>: <err>", or "" for a nil error.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// LoadFailed is the toast for a file that could not be opened or decoded.
func LoadFailed(name string) string {
	return "Error loading " + name
}

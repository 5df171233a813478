package state

import (
	"errors"
	"fmt"
)

const themeKey = "theme"

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeLight || name == ThemeDark
}

// Theme returns the saved theme, or ThemeLight when none was saved or the
// stored value is not recognised.
func (m *Manager) Theme() (string, error) {
	value, ok, err := getPreference(m.db, themeKey)
	if err != nil {
		return ThemeLight, err
	}
	if !ok || !ValidTheme(value) {
		return ThemeLight, nil
	}
	return value, nil
}

// SaveTheme persists the theme choice.
func (m *Manager) SaveTheme(name string) error {
	if !ValidTheme(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, name)
	}
	return setPreference(m.db, themeKey, name)
}

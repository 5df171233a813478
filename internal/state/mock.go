// internal/state/mock.go
package state

import "fmt"

// Mock is a test double for Manager.
type Mock struct {
	theme   string
	saveErr error
	saves   []string
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{theme: ThemeLight}
}

func (m *Mock) Theme() (string, error) {
	return m.theme, nil
}

func (m *Mock) SaveTheme(name string) error {
	if !ValidTheme(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, name)
	}
	if m.saveErr != nil {
		return m.saveErr
	}
	m.theme = name
	m.saves = append(m.saves, name)
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetTheme(name string) { m.theme = name }

func (m *Mock) SetSaveError(err error) { m.saveErr = err }

func (m *Mock) Saves() []string { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

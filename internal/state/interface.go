// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	Theme() (string, error)
	SaveTheme(name string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

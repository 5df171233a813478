//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does not
// write to the console.
package stderr

import "go.uber.org/zap"

func Start(_ *zap.Logger) error { return nil }

func Stop() {}

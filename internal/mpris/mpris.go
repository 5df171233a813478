//go:build linux

// Package mpris exposes the playback service on the session bus so desktop
// media keys and shell widgets can drive the player.
package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/playback"
)

const busName = "wavelet"

// Adapter owns the MPRIS server for the lifetime of the program.
type Adapter struct {
	srv *server.Server
	log *zap.Logger
}

// New registers the player on the session bus and serves requests in the
// background. Listen failures are logged, not returned.
func New(service playback.Service, log *zap.Logger) (*Adapter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Adapter{
		srv: server.NewServer(busName, identity{}, &playerAdapter{service: service}),
		log: log.Named("mpris"),
	}
	go a.serve()
	return a, nil
}

func (a *Adapter) serve() {
	if err := a.srv.Listen(); err != nil {
		a.log.Warn("mpris server stopped", zap.Error(err))
	}
}

// Close releases the bus name.
func (a *Adapter) Close() error {
	return a.srv.Stop()
}

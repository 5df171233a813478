package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// silentVolume is the beep gain used for level 0. With base 2 it is about
// -60 dB, which is inaudible.
const silentVolume = -10

// SetVolume stores level clamped to [0, 1] and applies it unless muted.
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volumeLevel = max(0, min(level, 1))
	p.applyVolumeLocked()
}

// Volume returns the stored level, which survives muting.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// SetMuted silences output without forgetting the level.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	p.applyVolumeLocked()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// applyVolumeLocked pushes the level and mute flag into the live chain.
// Caller holds p.mu.
func (p *Player) applyVolumeLocked() {
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Silent = p.muted
	p.volume.Volume = levelToVolume(p.volumeLevel)
	speaker.Unlock()
}

// levelToVolume maps a linear level onto beep's base-2 gain: 1 is 0,
// 0.5 is -1 and 0.25 is -2.
func levelToVolume(level float64) float64 {
	switch {
	case level <= 0:
		return silentVolume
	case level >= 1:
		return 0
	default:
		return math.Log2(level)
	}
}

//go:build !windows

package stderr

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStart_ForwardsLinesToLogger(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	if err := Start(zap.New(core)); err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}
	// Second start is a no-op.
	if err := Start(nil); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}

	_, _ = os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n")
	Stop()

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("captured %d entries, want 1", len(entries))
	}
	if entries[0].Message != "ALSA lib pcm.c: underrun" {
		t.Errorf("message = %q, want %q", entries[0].Message, "ALSA lib pcm.c: underrun")
	}
	if entries[0].LoggerName != "stderr" {
		t.Errorf("logger name = %q, want %q", entries[0].LoggerName, "stderr")
	}
}

func TestStop_WithoutStart(t *testing.T) {
	Stop()
}

func TestStart_AfterStop(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	if err := Start(zap.NewNop()); err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}
	Stop()

	if err := Start(zap.New(core)); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	_, _ = os.Stderr.WriteString("oto: device busy\n")
	Stop()

	if logs.Len() != 1 {
		t.Fatalf("captured %d entries, want 1", logs.Len())
	}
}

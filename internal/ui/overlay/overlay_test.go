package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func blank(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestCompose_ReplacesVisibleCells(t *testing.T) {
	base := blank(10, 3)
	got := Compose(base, "\n  XY", 10)

	lines := strings.Split(got, "\n")
	if lines[0] != ".........." {
		t.Errorf("line 0 = %q, want untouched", lines[0])
	}
	if lines[1] != "..XY......" {
		t.Errorf("line 1 = %q, want %q", lines[1], "..XY......")
	}
}

func TestCompose_KeepsStyledOverlay(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("OK")
	got := Compose(blank(6, 1), "  "+styled, 6)

	if ansi.Strip(got) != "..OK.." {
		t.Errorf("stripped = %q, want %q", ansi.Strip(got), "..OK..")
	}
}

func TestCenter(t *testing.T) {
	got := Center(blank(9, 3), "X", 9, 3)
	lines := strings.Split(got, "\n")
	if lines[1] != "....X...." {
		t.Errorf("middle line = %q, want %q", lines[1], "....X....")
	}
}

func TestBottomRight(t *testing.T) {
	got := BottomRight(blank(5, 4), "Z", 5, 4, 1)
	lines := strings.Split(got, "\n")
	if lines[2] != "....Z" {
		t.Errorf("line 2 = %q, want %q", lines[2], "....Z")
	}
	if lines[3] != "....." {
		t.Errorf("reserved line = %q, want untouched", lines[3])
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		plain    string
		from, to int
		ok       bool
	}{
		{"", 0, 0, false},
		{"     ", 0, 0, false},
		{"abc", 0, 3, true},
		{"  ab  ", 2, 4, true},
		{"  a b ", 2, 5, true},
		{" 音楽 ", 1, 5, true},
	}
	for _, tt := range tests {
		from, to, ok := span(tt.plain)
		if from != tt.from || to != tt.to || ok != tt.ok {
			t.Errorf("span(%q) = (%d, %d, %v), want (%d, %d, %v)", tt.plain, from, to, ok, tt.from, tt.to, tt.ok)
		}
	}
}

package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderVolumeGauge(t *testing.T) {
	tests := []struct {
		name   string
		volume int
		width  int
		filled int
	}{
		{"muted", 0, 10, 0},
		{"half", 32768, 10, 5},
		{"full", 65536, 10, 10},
		{"over range clamps", 70000, 10, 10},
		{"negative clamps", -5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderVolumeGauge(tt.volume, tt.width)
			if filled := strings.Count(got, "█"); filled != tt.filled {
				t.Errorf("renderVolumeGauge(%d, %d) = %q, want %d filled cells", tt.volume, tt.width, got, tt.filled)
			}
			if empty := strings.Count(got, "░"); empty != tt.width-tt.filled {
				t.Errorf("renderVolumeGauge(%d, %d) = %q, want %d empty cells", tt.volume, tt.width, got, tt.width-tt.filled)
			}
		})
	}
}

func TestRenderHeader_ShowsConnectionState(t *testing.T) {
	m := New(Options{})

	if got := m.renderHeader(); !strings.Contains(got, "○ disconnected") {
		t.Errorf("header = %q, want disconnected marker before any event", got)
	}

	m.snapshot.Connected = true
	if got := m.renderHeader(); !strings.Contains(got, "● connected") {
		t.Errorf("header = %q, want connected marker", got)
	}

	// With no known player status the header shows the connecting spinner.
	if got := m.renderHeader(); !strings.Contains(got, "waiting for player") {
		t.Errorf("header = %q, want waiting-for-player state", got)
	}
	m.snapshot.PlayerStatus = "playing"
	if got := m.renderHeader(); strings.Contains(got, "waiting for player") {
		t.Errorf("header = %q, want no waiting state once playing", got)
	}
}

func TestDescribeResult(t *testing.T) {
	if got := describeResult(commandResultMsg{label: "pause", status: 200}); got != "pause: ok (200)" {
		t.Errorf("describeResult = %q, want pause: ok (200)", got)
	}
	if got := describeResult(commandResultMsg{label: "pause", status: 204}); got != "pause: no active session (204)" {
		t.Errorf("describeResult = %q, want soft-failure text", got)
	}
	got := describeResult(commandResultMsg{label: "next", err: errors.New("connection refused")})
	if !strings.Contains(got, "next failed") {
		t.Errorf("describeResult = %q, want failure text", got)
	}
}

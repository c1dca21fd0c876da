package render

import (
	"strings"
	"testing"
	"time"
)

// TestStatusLines verifies the plain-text HUD carries the key counters
func TestStatusLines(t *testing.T) {
	snap := baseSnapshot()
	snap.InvincibleUnlocked = true
	snap.InvincibleCooldown = 2 * time.Second

	lines := StatusLines(snap)
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	for _, want := range []string{"HP 3/4", "AMMO 3/5", "LV 2", "01:23"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "SHIELD cooling 2.0s") {
		t.Errorf("line 1 %q", lines[1])
	}
}

// TestOverlayNone verifies an active unpaused run has no overlay
func TestOverlayNone(t *testing.T) {
	if _, _, ok := Overlay(baseSnapshot()); ok {
		t.Error("unexpected overlay")
	}
}

package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/vmath"
)

// TestKeyAction verifies the terminal key bindings
func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want action
	}{
		{"escape quits", tcell.KeyEscape, 0, actQuit},
		{"q quits", tcell.KeyRune, 'q', actQuit},
		{"upper Q quits", tcell.KeyRune, 'Q', actQuit},
		{"w moves up", tcell.KeyRune, 'w', actMoveUp},
		{"vi j moves down", tcell.KeyRune, 'j', actMoveDown},
		{"arrow left", tcell.KeyLeft, 0, actMoveLeft},
		{"d moves right", tcell.KeyRune, 'd', actMoveRight},
		{"space fires", tcell.KeyRune, ' ', actFire},
		{"enter fires", tcell.KeyEnter, 0, actFire},
		{"e shields", tcell.KeyRune, 'e', actShield},
		{"p pauses", tcell.KeyRune, 'p', actPause},
		{"r restarts", tcell.KeyRune, 'r', actRestart},
		{"tab diagnostics", tcell.KeyTab, 0, actDiagnostics},
		{"2 picks second", tcell.KeyRune, '2', actUpgrade2},
		{"unbound rune", tcell.KeyRune, 'z', actNone},
		{"unbound key", tcell.KeyF5, 0, actNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
			if got := keyAction(ev); got != tt.want {
				t.Errorf("keyAction = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestMoveDir verifies movement actions map to unit intents and others are rejected
func TestMoveDir(t *testing.T) {
	tests := []struct {
		a      action
		want   vmath.Vec2F
		wantOK bool
	}{
		{actMoveUp, vmath.Vec2F{Y: -1}, true},
		{actMoveRight, vmath.Vec2F{X: 1}, true},
		{actStop, vmath.Vec2F{}, true},
		{actFire, vmath.Vec2F{}, false},
	}
	for _, tt := range tests {
		got, ok := moveDir(tt.a)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("moveDir(%d) = %v %v, want %v %v", tt.a, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestFrameInterval verifies -fps conversion and clamping
func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{0, parameter.FrameUpdateInterval},
		{-3, parameter.FrameUpdateInterval},
		{50, 20 * time.Millisecond},
		{1, 100 * time.Millisecond},
		{1000, time.Second / 240},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.fps); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/vmath"
)

// action is a frontend command decoded from one key event
type action int

const (
	actNone action = iota
	actQuit
	actMoveUp
	actMoveDown
	actMoveLeft
	actMoveRight
	actStop
	actFire
	actShield
	actPause
	actRestart
	actDiagnostics
	actUpgrade1
	actUpgrade2
	actUpgrade3
)

// keyAction maps a key press to an action; letters are case-insensitive
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyUp:
		return actMoveUp
	case tcell.KeyDown:
		return actMoveDown
	case tcell.KeyLeft:
		return actMoveLeft
	case tcell.KeyRight:
		return actMoveRight
	case tcell.KeyTab:
		return actDiagnostics
	case tcell.KeyEnter:
		return actFire
	case tcell.KeyRune:
	default:
		return actNone
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'q':
		return actQuit
	case 'w', 'k':
		return actMoveUp
	case 's', 'j':
		return actMoveDown
	case 'a', 'h':
		return actMoveLeft
	case 'd', 'l':
		return actMoveRight
	case 'x':
		return actStop
	case ' ':
		return actFire
	case 'e':
		return actShield
	case 'p':
		return actPause
	case 'r':
		return actRestart
	case '1':
		return actUpgrade1
	case '2':
		return actUpgrade2
	case '3':
		return actUpgrade3
	}
	return actNone
}

// moveDir returns the intent of a movement action; screen rows grow downward like world Y
func moveDir(a action) (vmath.Vec2F, bool) {
	switch a {
	case actMoveUp:
		return vmath.Vec2F{Y: -1}, true
	case actMoveDown:
		return vmath.Vec2F{Y: 1}, true
	case actMoveLeft:
		return vmath.Vec2F{X: -1}, true
	case actMoveRight:
		return vmath.Vec2F{X: 1}, true
	case actStop:
		return vmath.Vec2F{}, true
	}
	return vmath.Vec2F{}, false
}

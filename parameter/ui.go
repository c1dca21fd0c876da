package parameter

import "time"

// Layout & Margins
const (
	// TopMargin is rows reserved above the playfield for the HUD
	TopMargin = 2

	// BottomMargin is rows reserved below the playfield for the key hint line
	BottomMargin = 1
)

// Terminal projection
const (
	// CellsPerUnitXFloat is terminal columns per world unit (cells are ~2:1 tall)
	CellsPerUnitXFloat = 2.0

	// CellsPerUnitYFloat is terminal rows per world unit
	CellsPerUnitYFloat = 1.0

	// InvincibleBlinkInterval toggles the player glyph while invincible
	InvincibleBlinkInterval = 150 * time.Millisecond

	// MoveIntentHold keeps a terminal key press active since terminals report no key release
	MoveIntentHold = 180 * time.Millisecond
)

// Window frontend
const (
	WindowWidth  = 960
	WindowHeight = 720

	// PixelsPerUnitFloat is the window projection scale
	PixelsPerUnitFloat = 24.0
)

package render

import (
	"github.com/lixenwraith/survivor/component"
)

// Palette shared by terminal and window frontends
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbGrid       = RGB{48, 50, 68}
	RgbHUDText    = RGB{220, 220, 220}
	RgbHUDDim     = RGB{120, 120, 140}
	RgbHUDBar     = RGB{40, 40, 52}

	RgbPlayer           = RGB{255, 165, 0}
	RgbPlayerInvincible = RGB{140, 190, 255}
	RgbPlayerShot       = RGB{255, 255, 120}
	RgbMonsterShot      = RGB{255, 80, 200}
	RgbHeart            = RGB{255, 60, 90}

	RgbHealthLow  = RGB{200, 40, 40}
	RgbHealthMid  = RGB{255, 215, 0}
	RgbHealthHigh = RGB{50, 220, 90}

	RgbAmmo   = RGB{100, 150, 255}
	RgbReload = RGB{0, 200, 200}

	RgbOverlayBg     = RGB{15, 15, 25}
	RgbOverlayBorder = RGB{135, 206, 250}
	RgbGameOver      = RGB{255, 80, 80}
	RgbLevelUp       = RGB{144, 238, 144}
)

var monsterColors = [component.MonsterKindCount]RGB{
	component.MonsterSkeleton: {230, 230, 210},
	component.MonsterZombie:   {110, 190, 90},
	component.MonsterGhost:    {170, 200, 255},
	component.MonsterVampire:  {200, 30, 60},
}

var monsterGlyphs = [component.MonsterKindCount]rune{
	component.MonsterSkeleton: 's',
	component.MonsterZombie:   'z',
	component.MonsterGhost:    'g',
	component.MonsterVampire:  'V',
}

// MonsterColor returns the body color of kind
func MonsterColor(kind component.MonsterKind) RGB {
	if kind < 0 || kind >= component.MonsterKindCount {
		return RgbHUDText
	}
	return monsterColors[kind]
}

// MonsterGlyph returns the terminal glyph of kind
func MonsterGlyph(kind component.MonsterKind) rune {
	if kind < 0 || kind >= component.MonsterKindCount {
		return '?'
	}
	return monsterGlyphs[kind]
}

// HealthColor grades red through yellow to green; frac is health/max
func HealthColor(frac float64) RGB {
	if frac <= 0.5 {
		return Lerp(RgbHealthLow, RgbHealthMid, frac*2)
	}
	return Lerp(RgbHealthMid, RgbHealthHigh, (frac-0.5)*2)
}

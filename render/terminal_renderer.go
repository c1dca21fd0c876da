package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/game"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/scene"
	"github.com/lixenwraith/survivor/status"
	"github.com/lixenwraith/survivor/vmath"
)

const (
	gridStepX   = 10
	gridStepY   = 5
	healthBarW  = 10
	reloadBarW  = 8
	overlayPadX = 2
)

// SceneView is the displayed world state a frontend draws
type SceneView interface {
	Visuals() []scene.Visual
	Projectiles(faction component.Faction) []vmath.Vec2F
	PlayerFacing() vmath.Vec2F
}

// TerminalRenderer draws frames onto a tcell screen
type TerminalRenderer struct {
	screen     tcell.Screen
	width      int
	height     int
	gameX      int
	gameY      int
	gameWidth  int
	gameHeight int

	showDiagnostics bool
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the playfield below the HUD and above the hint line
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.gameX = 0
	r.gameY = parameter.TopMargin
	r.gameWidth = width
	r.gameHeight = max(height-parameter.TopMargin-parameter.BottomMargin, 0)
}

// ToggleDiagnostics flips the telemetry overlay and returns the new state
func (r *TerminalRenderer) ToggleDiagnostics() bool {
	r.showDiagnostics = !r.showDiagnostics
	return r.showDiagnostics
}

// Project maps a world position to a screen cell with the camera centred on cam
func (r *TerminalRenderer) Project(cam, p vmath.Vec2F) (x, y int, ok bool) {
	x = r.gameX + r.gameWidth/2 + int(math.Round((p.X-cam.X)*parameter.CellsPerUnitXFloat))
	y = r.gameY + r.gameHeight/2 + int(math.Round((p.Y-cam.Y)*parameter.CellsPerUnitYFloat))
	ok = x >= r.gameX && x < r.gameX+r.gameWidth && y >= r.gameY && y < r.gameY+r.gameHeight
	return x, y, ok
}

// RenderFrame renders the entire frame; telemetry is drawn only with diagnostics on
func (r *TerminalRenderer) RenderFrame(snap game.Snapshot, view SceneView, telemetry []status.Entry) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground.TCell()).Foreground(RgbHUDText.TCell())

	r.fill(defaultStyle)
	r.drawGrid(snap.Player, defaultStyle)
	r.drawDrops(snap, defaultStyle)

	r.drawProjectiles(snap.Player, view.Projectiles(component.FactionMonster), '*', defaultStyle.Foreground(RgbMonsterShot.TCell()))
	r.drawProjectiles(snap.Player, view.Projectiles(component.FactionPlayer), '•', defaultStyle.Foreground(RgbPlayerShot.TCell()))

	r.drawMonsters(snap.Player, view.Visuals(), defaultStyle)
	if snap.HasPlayer {
		r.drawPlayer(snap, view.PlayerFacing(), defaultStyle)
	}

	r.drawStatusBar(snap, defaultStyle)
	r.drawUpgradeBar(snap, defaultStyle)
	r.drawHints(snap, defaultStyle)

	if lines, accent, ok := Overlay(snap); ok {
		r.drawBox(lines, accent, defaultStyle)
	}

	if r.showDiagnostics {
		r.drawDiagnostics(telemetry, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawGrid marks fixed world cells so movement reads against the ground
func (r *TerminalRenderer) drawGrid(cam vmath.Vec2F, defaultStyle tcell.Style) {
	gridStyle := defaultStyle.Foreground(RgbGrid.TCell())
	offX := int(math.Round(cam.X*parameter.CellsPerUnitXFloat)) - r.gameWidth/2
	offY := int(math.Round(cam.Y*parameter.CellsPerUnitYFloat)) - r.gameHeight/2

	for y := 0; y < r.gameHeight; y++ {
		if floorMod(y+offY, gridStepY) != 0 {
			continue
		}
		for x := 0; x < r.gameWidth; x++ {
			if floorMod(x+offX, gridStepX) == 0 {
				r.screen.SetContent(r.gameX+x, r.gameY+y, '·', nil, gridStyle)
			}
		}
	}
}

func (r *TerminalRenderer) drawDrops(snap game.Snapshot, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbHeart.TCell())
	for _, d := range snap.Drops {
		if x, y, ok := r.Project(snap.Player, d.Position); ok {
			r.screen.SetContent(x, y, '♥', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawProjectiles(cam vmath.Vec2F, positions []vmath.Vec2F, glyph rune, style tcell.Style) {
	for _, p := range positions {
		if x, y, ok := r.Project(cam, p); ok {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawMonsters(cam vmath.Vec2F, visuals []scene.Visual, defaultStyle tcell.Style) {
	for _, v := range visuals {
		if x, y, ok := r.Project(cam, v.Position); ok {
			style := defaultStyle.Foreground(MonsterColor(v.Kind).TCell()).Bold(true)
			r.screen.SetContent(x, y, MonsterGlyph(v.Kind), nil, style)
		}
	}
}

func (r *TerminalRenderer) drawPlayer(snap game.Snapshot, facing vmath.Vec2F, defaultStyle tcell.Style) {
	x, y, ok := r.Project(snap.Player, snap.Player)
	if !ok {
		return
	}

	color := RgbPlayer
	if snap.Invincible {
		phase := snap.Elapsed / parameter.InvincibleBlinkInterval
		if phase%2 == 0 {
			color = RgbPlayerInvincible
		}
	}
	style := defaultStyle.Foreground(color.TCell()).Bold(true)
	r.screen.SetContent(x, y, '@', nil, style)

	// Facing marker one cell out on the dominant axis
	dx, dy, arrow := 0, 0, 'v'
	switch {
	case math.Abs(facing.X) >= math.Abs(facing.Y) && facing.X > 0:
		dx, arrow = 1, '>'
	case math.Abs(facing.X) >= math.Abs(facing.Y) && facing.X < 0:
		dx, arrow = -1, '<'
	case facing.Y < 0:
		dy, arrow = -1, '^'
	default:
		dy = 1
	}
	ax, ay := x+dx, y+dy
	if ax >= r.gameX && ax < r.gameX+r.gameWidth && ay >= r.gameY && ay < r.gameY+r.gameHeight {
		r.screen.SetContent(ax, ay, arrow, nil, defaultStyle.Foreground(Scale(color, 0.7).TCell()))
	}
}

// drawStatusBar draws vitals, ammo, and run counters on row 0
func (r *TerminalRenderer) drawStatusBar(snap game.Snapshot, defaultStyle tcell.Style) {
	barStyle := defaultStyle.Background(RgbHUDBar.TCell())
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, barStyle)
	}

	x := r.drawText(0, 0, " HP ", barStyle)
	frac := 0.0
	if snap.MaxHealth > 0 {
		frac = float64(snap.Health) / float64(snap.MaxHealth)
	}
	x = r.drawMeter(x, 0, healthBarW, frac, HealthColor(frac), barStyle)
	x = r.drawText(x, 0, fmt.Sprintf(" %d/%d │ ", snap.Health, snap.MaxHealth), barStyle)

	if snap.Reloading && !snap.InfiniteAmmo {
		x = r.drawText(x, 0, "RELOAD ", barStyle.Foreground(RgbReload.TCell()))
		x = r.drawMeter(x, 0, reloadBarW, snap.ReloadProgress, RgbReload, barStyle)
		x = r.drawText(x, 0, fmt.Sprintf(" %3d%%", int(snap.ReloadProgress*100)), barStyle.Foreground(RgbReload.TCell()))
	} else {
		x = r.drawText(x, 0, AmmoLabel(snap), barStyle.Foreground(RgbAmmo.TCell()))
	}

	r.drawText(x, 0, fmt.Sprintf(" │ LV %d  XP %d/%d │ KILLS %d │ %s │ %s",
		snap.Level, snap.XP, snap.XPToNext, snap.Kills, formatElapsed(snap.Elapsed), snap.FireMode), barStyle)
}

// drawUpgradeBar draws upgrade tiers and the shield state on row 1
func (r *TerminalRenderer) drawUpgradeBar(snap game.Snapshot, defaultStyle tcell.Style) {
	dim := defaultStyle.Foreground(RgbHUDDim.TCell())
	x := r.drawText(0, 1, " "+TierLabel(snap)+" │ ", dim)

	shield, highlight := ShieldLabel(snap)
	style := dim
	if highlight {
		style = defaultStyle.Foreground(RgbPlayerInvincible.TCell())
	}
	x = r.drawText(x, 1, shield, style)
	r.drawText(x, 1, fmt.Sprintf(" │ MONSTERS %d", snap.Monsters), dim)
}

func (r *TerminalRenderer) drawHints(snap game.Snapshot, defaultStyle tcell.Style) {
	if r.height <= parameter.TopMargin {
		return
	}
	hint := " wasd/arrows move  space fire  e shield  1-3 upgrade  p pause  tab diag  r restart  q quit"
	if snap.GameOver {
		hint = " r restart  q quit"
	}
	r.drawText(0, r.height-1, hint, defaultStyle.Foreground(RgbHUDDim.TCell()))
}

func (r *TerminalRenderer) drawDiagnostics(entries []status.Entry, defaultStyle tcell.Style) {
	if len(entries) == 0 {
		return
	}
	keyW, valW := 0, 0
	for _, e := range entries {
		keyW = max(keyW, len(e.Key))
		valW = max(valW, len(e.Value))
	}
	boxW := keyW + valW + 3
	startX := max(r.width-boxW, 0)
	style := defaultStyle.Background(RgbOverlayBg.TCell()).Foreground(RgbHUDDim.TCell())

	for i, e := range entries {
		y := r.gameY + i
		if y >= r.gameY+r.gameHeight {
			break
		}
		r.drawText(startX, y, fmt.Sprintf(" %-*s %*s ", keyW, e.Key, valW, e.Value), style)
	}
}

// drawBox draws a bordered box centred on the playfield
func (r *TerminalRenderer) drawBox(lines []string, border RGB, defaultStyle tcell.Style) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	boxW := inner + 2*overlayPadX + 2
	boxH := len(lines) + 2
	x0 := r.gameX + max((r.gameWidth-boxW)/2, 0)
	y0 := r.gameY + max((r.gameHeight-boxH)/2, 0)

	bg := defaultStyle.Background(RgbOverlayBg.TCell())
	edge := bg.Foreground(border.TCell())

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			ch := ' '
			switch {
			case y == 0 && x == 0:
				ch = '┌'
			case y == 0 && x == boxW-1:
				ch = '┐'
			case y == boxH-1 && x == 0:
				ch = '└'
			case y == boxH-1 && x == boxW-1:
				ch = '┘'
			case y == 0 || y == boxH-1:
				ch = '─'
			case x == 0 || x == boxW-1:
				ch = '│'
			}
			style := bg
			if ch != ' ' {
				style = edge
			}
			r.setClipped(x0+x, y0+y, ch, style)
		}
	}

	for i, l := range lines {
		style := bg
		if i == 0 {
			style = edge.Bold(true)
		}
		r.drawText(x0+1+overlayPadX, y0+1+i, l, style)
	}
}

// drawMeter draws a width-cell bar filled to frac and returns the next column
func (r *TerminalRenderer) drawMeter(x, y, width int, frac float64, fill RGB, style tcell.Style) int {
	filled := int(math.Round(min(max(frac, 0), 1) * float64(width)))
	for i := 0; i < width; i++ {
		if i < filled {
			r.setClipped(x+i, y, '█', style.Foreground(fill.TCell()))
		} else {
			r.setClipped(x+i, y, '░', style.Foreground(RgbHUDDim.TCell()))
		}
	}
	return x + width
}

// drawText writes s from (x, y), clipping at the screen edge, and returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.setClipped(x, y, ch, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) setClipped(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func floorMod(v, n int) int {
	return ((v % n) + n) % n
}
